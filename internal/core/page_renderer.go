package core

import (
	"context"
	"fmt"
)

// PageRenderer composes pages and forwards activations of their links to a
// Router. It holds no state besides the router.
type PageRenderer struct {
	router Router
}

func NewPageRenderer(router Router) *PageRenderer {
	return &PageRenderer{router: router}
}

func SectionID(index int) string {
	return fmt.Sprintf("section-%d", index)
}

func (r *PageRenderer) Render(p Page) (Node, error) {
	root := Node{Kind: NodePage, Children: make([]Node, 0, len(p.sections))}
	for i, section := range p.sections {
		node, err := RenderSection(section)
		if err != nil {
			return Node{}, sectionError(i, err)
		}

		id := SectionID(i)
		node.ID = id
		for j := range node.Children {
			Walk(&node.Children[j], func(n *Node) bool {
				if n.ID != "" {
					n.ID = id + "." + n.ID
				}
				return true
			})
		}
		root.Children = append(root.Children, node)
	}
	return root, nil
}

// Activate forwards the NavAction bound to elementID in view. The destination
// is passed through untouched.
func (r *PageRenderer) Activate(ctx context.Context, view Node, elementID string) error {
	node, ok := Find(view, elementID)
	if !ok || node.Kind != NodeAction || node.Action == nil {
		return fmt.Errorf("%w: %q", ErrUnknownElement, elementID)
	}
	if r.router == nil {
		return ErrNoRouter
	}
	return r.router.Navigate(ctx, NavigationRequest{Destination: node.Action.Destination})
}
