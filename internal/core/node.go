package core

type NodeKind string

const (
	NodePage    NodeKind = "page"
	NodeSection NodeKind = "section"
	NodeHeading NodeKind = "heading"
	NodeText    NodeKind = "text"
	NodeImage   NodeKind = "image"
	NodeIcon    NodeKind = "icon"
	NodeAction  NodeKind = "action"
	NodeList    NodeKind = "list"
	NodeItem    NodeKind = "item"
)

// Node is the backend-independent output of rendering. Role says what the node
// is for inside its section ("headline", "subtext", "features", ...), Kind says
// how a backend should draw it.
type Node struct {
	Kind     NodeKind   `json:"kind"`
	Role     string     `json:"role,omitempty"`
	ID       string     `json:"id,omitempty"`
	Text     string     `json:"text,omitempty"`
	Src      string     `json:"src,omitempty"`
	Alt      string     `json:"alt,omitempty"`
	Level    int        `json:"level,omitempty"`
	Action   *NavAction `json:"action,omitempty"`
	Children []Node     `json:"children,omitempty"`
}

// Walk visits n and its descendants depth-first in document order. Returning
// false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for i := range n.Children {
		Walk(&n.Children[i], fn)
	}
}

func Find(root Node, id string) (Node, bool) {
	var found *Node
	Walk(&root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return Node{}, false
	}
	return *found, true
}

func CountKind(root Node, kind NodeKind) int {
	count := 0
	Walk(&root, func(n *Node) bool {
		if n.Kind == kind {
			count++
		}
		return true
	})
	return count
}

// Actions returns every interactive node under root in document order.
func Actions(root Node) []Node {
	var out []Node
	Walk(&root, func(n *Node) bool {
		if n.Kind == NodeAction && n.Action != nil {
			out = append(out, *n)
		}
		return true
	})
	return out
}
