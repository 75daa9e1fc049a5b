package core

import "fmt"

const (
	RolePrimary   = "primary"
	RoleSecondary = "secondary"
	RoleAction    = "action"
)

// RenderSection maps one descriptor to its visual subtree. Interactive nodes get
// IDs local to the section; PageRenderer scopes them to the page.
func RenderSection(d SectionDescriptor) (Node, error) {
	if err := d.Validate(); err != nil {
		return Node{}, err
	}

	switch d.Kind {
	case KindHero:
		return renderHero(d.Payload.(HeroPayload)), nil
	case KindFeatureGrid:
		return renderFeatureGrid(d.Payload.(FeatureGridPayload)), nil
	case KindCardGrid:
		return renderCardGrid(d.Payload.(CardGridPayload)), nil
	case KindCallToAction:
		return renderCallToAction(d.Payload.(CallToActionPayload)), nil
	default:
		return Node{}, &UnsupportedSectionKindError{Kind: d.Kind}
	}
}

func renderHero(p HeroPayload) Node {
	actions := Node{Kind: NodeList, Role: "actions", Children: []Node{actionNode(RolePrimary, p.Primary)}}
	if !p.Secondary.IsZero() {
		actions.Children = append(actions.Children, actionNode(RoleSecondary, p.Secondary))
	}

	children := []Node{
		{Kind: NodeHeading, Role: "headline", Level: 1, Text: p.Headline},
		{Kind: NodeText, Role: "subtext", Text: p.Subtext},
		actions,
	}
	if p.ImageURL != "" {
		children = append(children, Node{Kind: NodeImage, Role: "media", Src: p.ImageURL, Alt: p.ImageAlt})
	}

	return Node{Kind: NodeSection, Role: string(KindHero), Children: children}
}

func renderFeatureGrid(p FeatureGridPayload) Node {
	list := Node{Kind: NodeList, Role: "features", Children: make([]Node, 0, len(p.Items))}
	for _, item := range p.Items {
		list.Children = append(list.Children, Node{
			Kind: NodeItem,
			Role: "feature",
			Children: []Node{
				{Kind: NodeIcon, Role: "icon", Text: item.Icon},
				{Kind: NodeHeading, Role: "title", Level: 3, Text: item.Title},
				{Kind: NodeText, Role: "body", Text: item.Body},
			},
		})
	}

	return Node{
		Kind: NodeSection,
		Role: string(KindFeatureGrid),
		Children: []Node{
			{Kind: NodeHeading, Role: "title", Level: 2, Text: p.Title},
			{Kind: NodeText, Role: "subtitle", Text: p.Subtitle},
			list,
		},
	}
}

func renderCardGrid(p CardGridPayload) Node {
	list := Node{Kind: NodeList, Role: "cards", Children: make([]Node, 0, len(p.Cards))}
	for _, card := range p.Cards {
		list.Children = append(list.Children, Node{
			Kind: NodeItem,
			Role: "card",
			Children: []Node{
				{Kind: NodeImage, Role: "media", Src: card.ImageURL, Alt: card.ImageAlt},
				{Kind: NodeHeading, Role: "title", Level: 3, Text: card.Title},
				{Kind: NodeText, Role: "caption", Text: card.Caption},
			},
		})
	}

	return Node{
		Kind: NodeSection,
		Role: string(KindCardGrid),
		Children: []Node{
			{Kind: NodeHeading, Role: "title", Level: 2, Text: p.Title},
			{Kind: NodeText, Role: "subtitle", Text: p.Subtitle},
			list,
		},
	}
}

func renderCallToAction(p CallToActionPayload) Node {
	return Node{
		Kind: NodeSection,
		Role: string(KindCallToAction),
		Children: []Node{
			{Kind: NodeHeading, Role: "headline", Level: 2, Text: p.Headline},
			{Kind: NodeText, Role: "subtext", Text: p.Subtext},
			actionNode(RoleAction, p.Action),
		},
	}
}

func actionNode(role string, a NavAction) Node {
	action := a
	return Node{Kind: NodeAction, Role: role, ID: role, Text: a.Label, Action: &action}
}

func sectionError(index int, err error) error {
	return fmt.Errorf("section %d: %w", index, err)
}
