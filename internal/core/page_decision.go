package core

import (
	"net/http"
	"strings"
)

type PageAction int

const (
	ActionRender PageAction = iota
	ActionRenderHeaders
	ActionNotModified
)

type PageRequest struct {
	Method      string
	Accept      string
	FormatParam string
	IfNoneMatch string
}

type PageDecision struct {
	Action PageAction
	Format Format
}

// NegotiateFormat picks JSON when asked for explicitly by query parameter or
// when the Accept header prefers it; everything else gets HTML.
func NegotiateFormat(req PageRequest) Format {
	switch strings.ToLower(strings.TrimSpace(req.FormatParam)) {
	case "json":
		return FormatJSON
	case "html":
		return FormatHTML
	}

	for _, part := range strings.Split(req.Accept, ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		switch mediaType {
		case "text/html", "application/xhtml+xml":
			return FormatHTML
		case "application/json":
			return FormatJSON
		}
	}
	return FormatHTML
}

func DecidePageAction(req PageRequest, etag string) PageDecision {
	decision := PageDecision{Action: ActionRender, Format: NegotiateFormat(req)}

	if etag != "" && matchesETag(req.IfNoneMatch, etag) {
		decision.Action = ActionNotModified
		return decision
	}

	if req.Method == http.MethodHead {
		decision.Action = ActionRenderHeaders
	}
	return decision
}

func matchesETag(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == etag {
			return true
		}
	}
	return false
}
