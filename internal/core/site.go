package core

import (
	"fmt"
	"sort"
)

type Meta struct {
	Title       string
	Description string
	Image       string
}

type SitePage struct {
	Name    string
	Pattern string
	Meta    Meta
	Page    Page
}

// Site is the whole set of pages served together, plus the route table the
// default Router resolves RouteKeys against.
type Site struct {
	Name   string
	Pages  []SitePage
	Routes map[RouteKey]string
}

func (s Site) Validate() error {
	names := make(map[string]bool, len(s.Pages))
	patterns := make(map[string]bool, len(s.Pages))
	entries := make(map[string]string, len(s.Pages))

	for _, p := range s.Pages {
		if p.Name == "" {
			return fmt.Errorf("page at %q has no name", p.Pattern)
		}
		if !ValidPageName(p.Name) {
			return fmt.Errorf("%w: %q may only use letters, digits, '-' and '_'", ErrInvalidPageName, p.Name)
		}
		if names[p.Name] {
			return fmt.Errorf("duplicate page name %q", p.Name)
		}
		names[p.Name] = true

		if err := ValidateRoutePath(p.Pattern); err != nil {
			return fmt.Errorf("page %q: %w", p.Name, err)
		}
		pattern := NormalizePath(p.Pattern)
		if patterns[pattern] {
			return fmt.Errorf("duplicate page pattern %q", pattern)
		}
		patterns[pattern] = true

		entry := EntryNameForPattern(pattern)
		if other, ok := entries[entry]; ok {
			return fmt.Errorf("pages %q and %q both export as %q", other, p.Name, entry)
		}
		entries[entry] = p.Name

		if err := p.Page.Validate(); err != nil {
			return fmt.Errorf("page %q: %w", p.Name, err)
		}
	}

	for _, key := range s.RouteKeys() {
		if key == "" {
			return fmt.Errorf("route table has an empty key")
		}
		if err := ValidateRoutePath(s.Routes[key]); err != nil {
			return fmt.Errorf("route %q: %w", key, err)
		}
	}

	return nil
}

// ValidPageName reports whether name can sit in a single URL path segment
// as-is, which activation links rely on.
func ValidPageName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case (c == '-' || c == '_') && i > 0:
		default:
			return false
		}
	}
	return true
}

func (s Site) PageByName(name string) (SitePage, bool) {
	for _, p := range s.Pages {
		if p.Name == name {
			return p, true
		}
	}
	return SitePage{}, false
}

func (s Site) PageByPattern(pattern string) (SitePage, bool) {
	pattern = NormalizePath(pattern)
	for _, p := range s.Pages {
		if NormalizePath(p.Pattern) == pattern {
			return p, true
		}
	}
	return SitePage{}, false
}

// RouteKeys returns the route table keys sorted, so callers iterate it
// deterministically.
func (s Site) RouteKeys() []RouteKey {
	keys := make([]RouteKey, 0, len(s.Routes))
	for k := range s.Routes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
