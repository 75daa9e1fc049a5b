package core

import (
	"net/http"
	"testing"
)

func TestDecidePageAction(t *testing.T) {
	const etag = `"123-45"`

	tests := []struct {
		name       string
		req        PageRequest
		wantAction PageAction
		wantFormat Format
	}{
		{
			name:       "browser get renders html",
			req:        PageRequest{Method: http.MethodGet, Accept: "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8"},
			wantAction: ActionRender,
			wantFormat: FormatHTML,
		},
		{
			name:       "no accept header renders html",
			req:        PageRequest{Method: http.MethodGet},
			wantAction: ActionRender,
			wantFormat: FormatHTML,
		},
		{
			name:       "json accept renders json",
			req:        PageRequest{Method: http.MethodGet, Accept: "application/json"},
			wantAction: ActionRender,
			wantFormat: FormatJSON,
		},
		{
			name:       "format param wins over accept",
			req:        PageRequest{Method: http.MethodGet, Accept: "text/html", FormatParam: "JSON"},
			wantAction: ActionRender,
			wantFormat: FormatJSON,
		},
		{
			name:       "matching etag is not modified",
			req:        PageRequest{Method: http.MethodGet, IfNoneMatch: etag},
			wantAction: ActionNotModified,
			wantFormat: FormatHTML,
		},
		{
			name:       "weak etag in list matches",
			req:        PageRequest{Method: http.MethodGet, IfNoneMatch: `"x", W/"123-45"`},
			wantAction: ActionNotModified,
			wantFormat: FormatHTML,
		},
		{
			name:       "stale etag renders",
			req:        PageRequest{Method: http.MethodGet, IfNoneMatch: `"old"`},
			wantAction: ActionRender,
			wantFormat: FormatHTML,
		},
		{
			name:       "head renders headers only",
			req:        PageRequest{Method: http.MethodHead},
			wantAction: ActionRenderHeaders,
			wantFormat: FormatHTML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecidePageAction(tt.req, etag)
			if got.Action != tt.wantAction {
				t.Errorf("Action = %v, want %v", got.Action, tt.wantAction)
			}
			if got.Format != tt.wantFormat {
				t.Errorf("Format = %v, want %v", got.Format, tt.wantFormat)
			}
		})
	}
}
