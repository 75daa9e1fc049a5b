package core

import (
	"path"
	"strings"
)

// OutputPathForPattern maps a page pattern to the file a static export writes
// it to: "/" -> "index.html", "/about" -> "about/index.html".
func OutputPathForPattern(pattern string) string {
	trimmed := strings.Trim(NormalizePath(pattern), "/")
	if trimmed == "" {
		return "index.html"
	}
	return path.Join(trimmed, "index.html")
}

func EntryNameForPattern(pattern string) string {
	name := strings.Trim(NormalizePath(pattern), "/")
	name = strings.ReplaceAll(name, "/", "-")
	if name == "" {
		return "index"
	}
	return name
}
