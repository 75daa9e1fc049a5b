package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/3-lines-studio/showcase/internal/core"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	actionStyle  = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("4"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Preview renders a page view as an indented outline for the terminal.
type Preview struct {
	out *Output
}

func NewPreview(out *Output) *Preview {
	return &Preview{out: out}
}

func (p *Preview) Format() core.Format {
	return core.FormatText
}

func (p *Preview) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (p *Preview) Render(w io.Writer, doc core.Document) error {
	if doc.Root.Kind != core.NodePage {
		return fmt.Errorf("preview: document root is %q, want %q", doc.Root.Kind, core.NodePage)
	}

	title := doc.Site + " / " + doc.Page
	if doc.Meta.Title != "" {
		title += " · " + doc.Meta.Title
	}
	header := p.out.paint(titleStyle, title)
	if p.out.enableColors {
		header = boxStyle.Render(header)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, child := range doc.Root.Children {
		p.node(&b, child, 0)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (p *Preview) node(b *strings.Builder, n core.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n.Kind {
	case core.NodeSection:
		fmt.Fprintf(b, "%s%s %s\n", indent, p.out.paint(sectionStyle, "["+n.Role+"]"), p.out.Gray(n.ID))
	case core.NodeHeading:
		fmt.Fprintf(b, "%s%s %s\n", indent, strings.Repeat("#", n.Level), p.out.Bold(n.Text))
	case core.NodeText:
		if n.Text == "" {
			return
		}
		fmt.Fprintf(b, "%s%s\n", indent, n.Text)
	case core.NodeImage:
		fmt.Fprintf(b, "%s%s\n", indent, p.out.Gray(fmt.Sprintf("[image %s %q]", n.Src, n.Alt)))
	case core.NodeIcon:
		fmt.Fprintf(b, "%s(%s)\n", indent, n.Text)
	case core.NodeAction:
		dest := ""
		if n.Action != nil {
			dest = string(n.Action.Destination)
		}
		fmt.Fprintf(b, "%s→ %s %s\n", indent, p.out.paint(actionStyle, n.Text), p.out.Gray(n.ID+" -> "+dest))
	case core.NodeList, core.NodeItem:
		if n.Kind == core.NodeItem {
			fmt.Fprintf(b, "%s- %s\n", indent, n.Role)
		}
	}

	for _, child := range n.Children {
		p.node(b, child, depth+1)
	}
}

var _ core.Backend = (*Preview)(nil)
