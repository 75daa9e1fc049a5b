package core

import (
	"fmt"
	"strings"
)

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func ValidateRoutePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidRoutePath)
	}

	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: path must start with /", ErrInvalidRoutePath)
	}

	if strings.Contains(path, "?") {
		return fmt.Errorf("%w: path cannot contain query string", ErrInvalidRoutePath)
	}

	if strings.Contains(path, "#") {
		return fmt.Errorf("%w: path cannot contain fragment", ErrInvalidRoutePath)
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: path cannot contain parent directory references", ErrInvalidRoutePath)
	}

	if strings.Contains(path, "*") || strings.Contains(path, "{") {
		return fmt.Errorf("%w: path cannot contain wildcards or parameters", ErrInvalidRoutePath)
	}

	return nil
}
