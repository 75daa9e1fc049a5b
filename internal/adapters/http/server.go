package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/3-lines-studio/showcase/internal/adapters/router"
	"github.com/3-lines-studio/showcase/internal/core"
	"github.com/3-lines-studio/showcase/internal/logging"
	"github.com/3-lines-studio/showcase/internal/usecase"
)

const (
	NavPrefix    = "/_nav"
	StaticPrefix = "/static"
)

type RouterConfig struct {
	Pages  *usecase.PageService
	Routes *router.Table
	Assets AssetReader
	Logger *zap.Logger
	IsDev  bool

	// Fallback receives requests no site route matches.
	Fallback http.Handler
}

// NewRouter mounts every site page plus the activation, static and health
// endpoints.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)

	for _, page := range cfg.Pages.Site().Pages {
		pattern := core.NormalizePath(page.Pattern)
		h := NewPageHandler(cfg.Pages, pattern, cfg.IsDev)
		r.Method(http.MethodGet, pattern, h)
		r.Method(http.MethodHead, pattern, h)
	}

	r.Method(http.MethodGet, NavPrefix+"/{page}/{element}", NewNavHandler(cfg.Pages, cfg.Routes, cfg.IsDev))

	if cfg.Assets != nil {
		assets := http.StripPrefix(StaticPrefix, NewAssetHandler(cfg.Assets, cfg.IsDev))
		r.Method(http.MethodGet, StaticPrefix+"/*", assets)
		r.Method(http.MethodHead, StaticPrefix+"/*", assets)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.Fallback != nil {
		r.NotFound(cfg.Fallback.ServeHTTP)
		r.MethodNotAllowed(cfg.Fallback.ServeHTTP)
	}

	return r
}
