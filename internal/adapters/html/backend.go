package html

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/showcase/internal/core"
)

// LinkFunc turns an interactive element into an href. The backend itself never
// looks at the action's destination.
type LinkFunc func(page, elementID string, action core.NavAction) string

// ActivationLinks points every link at the activation endpoint under prefix,
// e.g. "/_nav/home/section-0.primary".
func ActivationLinks(prefix string) LinkFunc {
	return func(page, elementID string, _ core.NavAction) string {
		return fmt.Sprintf("%s/%s/%s", prefix, page, elementID)
	}
}

type Backend struct {
	links      LinkFunc
	markdown   *Markdown
	stylesheet string
}

type BackendOption func(*Backend)

func WithLinks(links LinkFunc) BackendOption {
	return func(b *Backend) {
		b.links = links
	}
}

// WithMarkdown renders text nodes as sanitized markdown.
func WithMarkdown() BackendOption {
	return func(b *Backend) {
		b.markdown = NewMarkdown()
	}
}

func WithStylesheet(href string) BackendOption {
	return func(b *Backend) {
		b.stylesheet = href
	}
}

func New(opts ...BackendOption) *Backend {
	b := &Backend{
		links:      ActivationLinks("/_nav"),
		stylesheet: "/static/styles.css",
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Format() core.Format {
	return core.FormatHTML
}

func (b *Backend) ContentType() string {
	return "text/html; charset=utf-8"
}

func (b *Backend) Render(w io.Writer, doc core.Document) error {
	if doc.Root.Kind != core.NodePage {
		return fmt.Errorf("html: document root is %q, want %q", doc.Root.Kind, core.NodePage)
	}
	return b.layout(doc).Render(w)
}

func (b *Backend) layout(doc core.Document) g.Node {
	title := doc.Meta.Title
	if title == "" {
		title = doc.Site
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				g.If(doc.Meta.Description != "", Meta(Name("description"), Content(doc.Meta.Description))),
				Meta(g.Attr("property", "og:title"), Content(title)),
				g.If(doc.Meta.Description != "", Meta(g.Attr("property", "og:description"), Content(doc.Meta.Description))),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(doc.Meta.Image != "", Meta(g.Attr("property", "og:image"), Content(doc.Meta.Image))),
				g.If(b.stylesheet != "", Link(Rel("stylesheet"), Href(b.stylesheet))),
			),
			Body(
				Class("showcase"),
				Header(
					Class("site-header"),
					A(Href("/"), Class("site-name"), g.Text(doc.Site)),
				),
				b.node(doc.Page, doc.Root),
			),
		),
	})
}

func (b *Backend) node(page string, n core.Node) g.Node {
	switch n.Kind {
	case core.NodePage:
		return Main(
			Class("page"),
			g.Group(b.children(page, n)),
		)

	case core.NodeSection:
		return Section(
			ID(n.ID),
			Class("section section--"+n.Role),
			g.Attr("data-section", n.Role),
			g.Group(b.children(page, n)),
		)

	case core.NodeHeading:
		attrs := Class(n.Role)
		switch n.Level {
		case 1:
			return H1(attrs, g.Text(n.Text))
		case 2:
			return H2(attrs, g.Text(n.Text))
		default:
			return H3(attrs, g.Text(n.Text))
		}

	case core.NodeText:
		if n.Text == "" {
			return nil
		}
		if b.markdown != nil {
			return Div(Class(n.Role+" rich-text"), b.markdown.Node(n.Text))
		}
		return P(Class(n.Role), g.Text(n.Text))

	case core.NodeImage:
		return Img(
			Class(n.Role),
			Src(n.Src),
			Alt(n.Alt),
			g.Attr("loading", "lazy"),
		)

	case core.NodeIcon:
		return Span(Class(n.Role), g.Attr("aria-hidden", "true"), g.Text(n.Text))

	case core.NodeAction:
		href := "#"
		if n.Action != nil {
			href = b.links(page, n.ID, *n.Action)
		}
		return A(
			Href(href),
			Class("action action--"+n.Role),
			g.Attr("data-element", n.ID),
			g.Text(n.Text),
		)

	case core.NodeList:
		if allItems(n.Children) {
			return Ul(Class(n.Role), g.Group(b.children(page, n)))
		}
		return Div(Class(n.Role), g.Group(b.children(page, n)))

	case core.NodeItem:
		return Li(Class(n.Role), g.Group(b.children(page, n)))

	default:
		return nil
	}
}

func (b *Backend) children(page string, n core.Node) []g.Node {
	out := make([]g.Node, 0, len(n.Children))
	for _, child := range n.Children {
		if rendered := b.node(page, child); rendered != nil {
			out = append(out, rendered)
		}
	}
	return out
}

func allItems(nodes []core.Node) bool {
	if len(nodes) == 0 {
		return false
	}
	for _, n := range nodes {
		if n.Kind != core.NodeItem {
			return false
		}
	}
	return true
}
