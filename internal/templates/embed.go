package templates

import (
	"embed"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed all:starter
var starterFS embed.FS

var validTemplates = []string{"starter"}

var ErrInvalidTemplate = errors.New("invalid template name")

func GetTemplate(name string) (fs.FS, error) {
	switch name {
	case "starter":
		return fs.Sub(starterFS, "starter")
	default:
		return nil, ErrInvalidTemplate
	}
}

func Names() []string {
	return append([]string(nil), validTemplates...)
}

type TemplateData struct {
	Site string
}

func ProcessFilename(filename string) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(content []byte, isTemplate bool, data TemplateData) []byte {
	if !isTemplate {
		return content
	}
	return []byte(strings.ReplaceAll(string(content), "{{.Site}}", data.Site))
}

// DeriveSiteName turns a directory like "my-shop" into "My Shop".
func DeriveSiteName(projectDir string) string {
	base := filepath.Base(projectDir)
	if base == "." || base == "/" || base == "" {
		return "Showcase"
	}
	words := strings.FieldsFunc(base, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	if len(words) == 0 {
		return "Showcase"
	}
	return strings.Join(words, " ")
}
