package core

import "io"

type Format string

const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Document is what a Backend draws: one rendered page and its metadata.
type Document struct {
	Site string
	Page string
	Meta Meta
	Root Node
}

type Backend interface {
	Format() Format
	ContentType() string
	Render(w io.Writer, doc Document) error
}
