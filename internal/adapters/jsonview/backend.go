package jsonview

import (
	"encoding/json"
	"io"

	"github.com/3-lines-studio/showcase/internal/core"
)

type document struct {
	Site        string    `json:"site"`
	Page        string    `json:"page"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Root        core.Node `json:"root"`
}

// Backend serves the rendered tree itself, for clients that draw it their own way.
type Backend struct {
	indent string
}

func New() *Backend {
	return &Backend{}
}

// NewIndented is used for exported files, which people read.
func NewIndented() *Backend {
	return &Backend{indent: "  "}
}

func (b *Backend) Format() core.Format {
	return core.FormatJSON
}

func (b *Backend) ContentType() string {
	return "application/json"
}

func (b *Backend) Render(w io.Writer, doc core.Document) error {
	enc := json.NewEncoder(w)
	if b.indent != "" {
		enc.SetIndent("", b.indent)
	}
	return enc.Encode(document{
		Site:        doc.Site,
		Page:        doc.Page,
		Title:       doc.Meta.Title,
		Description: doc.Meta.Description,
		Image:       doc.Meta.Image,
		Root:        doc.Root,
	})
}
