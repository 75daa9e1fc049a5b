package http

import (
	"net/http"

	"github.com/3-lines-studio/showcase/internal/core"
	"github.com/3-lines-studio/showcase/internal/usecase"
)

type PageHandler struct {
	service *usecase.PageService
	pattern string
	isDev   bool
}

func NewPageHandler(service *usecase.PageService, pattern string, isDev bool) http.Handler {
	return &PageHandler{
		service: service,
		pattern: pattern,
		isDev:   isDev,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	input := usecase.ServePageInput{
		Pattern: h.pattern,
		Request: core.PageRequest{
			Method:      req.Method,
			Accept:      req.Header.Get("Accept"),
			FormatParam: req.URL.Query().Get("format"),
			IfNoneMatch: req.Header.Get("If-None-Match"),
		},
	}

	output := h.service.ServePage(req.Context(), input)
	if output.Error != nil {
		serveError(w, req, output.Error, h.isDev)
		return
	}

	header := w.Header()
	header.Set("ETag", output.ETag)
	header.Set("Vary", "Accept")
	if h.isDev {
		header.Set("Cache-Control", "no-cache")
	}

	switch output.Action {
	case core.ActionNotModified:
		w.WriteHeader(http.StatusNotModified)

	case core.ActionRenderHeaders:
		header.Set("Content-Type", output.ContentType)
		w.WriteHeader(http.StatusOK)

	case core.ActionRender:
		header.Set("Content-Type", output.ContentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(output.Body)
	}
}
