package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/3-lines-studio/showcase/internal/adapters/router"
	"github.com/3-lines-studio/showcase/internal/usecase"
)

// NavHandler activates one rendered link and redirects to its destination.
type NavHandler struct {
	service *usecase.PageService
	table   *router.Table
	isDev   bool
}

func NewNavHandler(service *usecase.PageService, table *router.Table, isDev bool) http.Handler {
	return &NavHandler{
		service: service,
		table:   table,
		isDev:   isDev,
	}
}

func (h *NavHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	input := usecase.ActivateInput{
		PageName:  chi.URLParam(req, "page"),
		ElementID: chi.URLParam(req, "element"),
		Router:    router.NewRedirector(h.table, w, req),
	}

	if err := h.service.Activate(req.Context(), input); err != nil {
		serveError(w, req, err, h.isDev)
	}
}
