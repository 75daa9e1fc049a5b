// Package showcase renders landing pages built from an ordered list of
// section descriptors and serves them over HTTP.
package showcase

import (
	"context"
	"io"
	iofs "io/fs"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/3-lines-studio/showcase/internal/adapters/cli"
	"github.com/3-lines-studio/showcase/internal/adapters/fs"
	"github.com/3-lines-studio/showcase/internal/adapters/html"
	httpadapter "github.com/3-lines-studio/showcase/internal/adapters/http"
	"github.com/3-lines-studio/showcase/internal/adapters/jsonview"
	"github.com/3-lines-studio/showcase/internal/adapters/router"
	"github.com/3-lines-studio/showcase/internal/assets"
	"github.com/3-lines-studio/showcase/internal/core"
	"github.com/3-lines-studio/showcase/internal/logging"
	"github.com/3-lines-studio/showcase/internal/usecase"
)

type (
	SectionDescriptor   = core.SectionDescriptor
	SectionKind         = core.SectionKind
	HeroPayload         = core.HeroPayload
	FeatureGridPayload  = core.FeatureGridPayload
	FeatureItem         = core.FeatureItem
	CardGridPayload     = core.CardGridPayload
	Card                = core.Card
	CallToActionPayload = core.CallToActionPayload
	NavAction           = core.NavAction
	RouteKey            = core.RouteKey
	Page                = core.Page
	Site                = core.Site
	SitePage            = core.SitePage
	Meta                = core.Meta
	Node                = core.Node
	Router              = core.Router
	RouterFunc          = core.RouterFunc
	NavigationRequest   = core.NavigationRequest
	Manifest            = core.Manifest
)

var (
	Hero            = core.Hero
	FeatureGrid     = core.FeatureGrid
	CardGrid        = core.CardGrid
	CallToAction    = core.CallToAction
	NewPage         = core.NewPage
	RenderSection   = core.RenderSection
	NewPageRenderer = core.NewPageRenderer
)

type App struct {
	site     core.Site
	pages    *usecase.PageService
	routes   *router.Table
	assets   *fs.EmbedFileSystem
	logger   *zap.Logger
	isDev    bool
	markdown bool
}

type appConfig struct {
	dev      bool
	markdown bool
	cacheTTL time.Duration
	logger   *zap.Logger
	assets   iofs.FS
}

type Option func(*appConfig)

// WithDev shows error details and disables render caching.
func WithDev(dev bool) Option {
	return func(c *appConfig) {
		c.dev = dev
	}
}

// WithMarkdown renders body text as sanitized markdown in HTML output.
func WithMarkdown() Option {
	return func(c *appConfig) {
		c.markdown = true
	}
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(c *appConfig) {
		c.cacheTTL = ttl
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}

// WithAssets replaces the bundled files served under /static/.
func WithAssets(fsys iofs.FS) Option {
	return func(c *appConfig) {
		c.assets = fsys
	}
}

// New validates site and prepares it for serving. Nothing is rendered until
// the first request.
func New(site core.Site, opts ...Option) (*App, error) {
	cfg := appConfig{assets: assets.Static()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}

	logger := logging.OrNop(cfg.logger)

	var htmlOpts []html.BackendOption
	if cfg.markdown {
		htmlOpts = append(htmlOpts, html.WithMarkdown())
	}
	backends := []usecase.Backend{html.New(htmlOpts...), jsonview.New()}

	serviceOpts := []usecase.PageServiceOption{usecase.WithLogger(logger)}
	if cfg.dev {
		serviceOpts = append(serviceOpts, usecase.WithoutCache())
	} else if cfg.cacheTTL > 0 {
		serviceOpts = append(serviceOpts, usecase.WithCacheTTL(cfg.cacheTTL))
	}

	return &App{
		site:     site,
		pages:    usecase.NewPageService(site, backends, serviceOpts...),
		routes:   router.NewTable(site.Routes),
		assets:   fs.NewEmbedFileSystem(cfg.assets),
		logger:   logger,
		isDev:    cfg.dev,
		markdown: cfg.markdown,
	}, nil
}

func (a *App) Site() core.Site {
	return a.site
}

// Wrap serves the site and hands every request it does not route to api.
func (a *App) Wrap(api http.Handler) http.Handler {
	if api == nil {
		panic("showcase: nil handler passed to Wrap; use app.Handler()")
	}
	return a.handler(api)
}

func (a *App) Handler() http.Handler {
	return a.handler(nil)
}

func (a *App) handler(fallback http.Handler) http.Handler {
	return httpadapter.NewRouter(httpadapter.RouterConfig{
		Pages:    a.pages,
		Routes:   a.routes,
		Assets:   a.assets,
		Logger:   a.logger,
		IsDev:    a.isDev,
		Fallback: fallback,
	})
}

// Activate follows the link elementID on the named page through r.
func (a *App) Activate(ctx context.Context, pageName, elementID string, r core.Router) error {
	return a.pages.Activate(ctx, usecase.ActivateInput{PageName: pageName, ElementID: elementID, Router: r})
}

type ExportOptions struct {
	Dir string
	// Clean removes Dir before writing.
	Clean  bool
	Output usecase.CLIOutput
}

// Export writes every page as static HTML and JSON, with links pointing
// straight at their route targets.
func (a *App) Export(ctx context.Context, opts ExportOptions) (*core.Manifest, error) {
	out := opts.Output
	if out == nil {
		out = cli.NewOutput()
	}
	htmlOpts := []html.BackendOption{html.WithLinks(a.routes.Link)}
	if a.markdown {
		htmlOpts = append(htmlOpts, html.WithMarkdown())
	}

	svc := usecase.NewExportService(a.site, html.New(htmlOpts...), jsonview.NewIndented(), a.assets, fs.NewOSFileSystem(), out)
	output := svc.Export(logging.WithLogger(ctx, a.logger), usecase.ExportInput{OutDir: opts.Dir, Clean: opts.Clean})
	return output.Manifest, output.Error
}

// Preview writes a terminal outline of the named page to w.
func (a *App) Preview(w io.Writer, pageName string, colors bool) error {
	page, root, err := a.pages.View(pageName)
	if err != nil {
		return err
	}

	var out *cli.Output
	if colors {
		out = cli.NewOutput()
	} else {
		out = cli.NewOutputTo(w, w)
	}
	doc := core.Document{Site: a.site.Name, Page: page.Name, Meta: page.Meta, Root: root}
	return cli.NewPreview(out).Render(w, doc)
}
