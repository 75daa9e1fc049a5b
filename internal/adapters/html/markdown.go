package html

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	g "maragu.dev/gomponents"
)

// Markdown converts content text to HTML and strips anything the UGC policy
// does not allow, since content files are edited outside the codebase.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewMarkdown() *Markdown {
	return &Markdown{
		md:     goldmark.New(goldmark.WithExtensions(extension.Strikethrough, extension.Linkify)),
		policy: bluemonday.UGCPolicy(),
	}
}

func (m *Markdown) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return string(m.policy.SanitizeBytes(buf.Bytes())), nil
}

// Node falls back to escaped text when conversion fails.
func (m *Markdown) Node(source string) g.Node {
	out, err := m.Render(source)
	if err != nil {
		return g.Text(source)
	}
	return g.Raw(out)
}
