package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/3-lines-studio/showcase/internal/core"
	"github.com/3-lines-studio/showcase/internal/logging"
)

type ServePageInput struct {
	Pattern string
	Request core.PageRequest
}

type ServePageOutput struct {
	Action      core.PageAction
	Page        core.SitePage
	Body        []byte
	ContentType string
	ETag        string
	Error       error
}

type ActivateInput struct {
	PageName  string
	ElementID string
	Router    core.Router
}

type PageService struct {
	site     core.Site
	renderer *core.PageRenderer
	backends map[core.Format]Backend
	cache    *renderCache
	logger   *zap.Logger
}

type PageServiceOption func(*PageService)

// WithCacheTTL bounds how long encoded pages are kept. Zero keeps them forever.
func WithCacheTTL(ttl time.Duration) PageServiceOption {
	return func(s *PageService) {
		s.cache = newRenderCache(ttl)
	}
}

// WithoutCache re-renders on every request; used in dev mode.
func WithoutCache() PageServiceOption {
	return func(s *PageService) {
		s.cache = nil
	}
}

func WithLogger(logger *zap.Logger) PageServiceOption {
	return func(s *PageService) {
		s.logger = logging.OrNop(logger)
	}
}

func NewPageService(site core.Site, backends []Backend, opts ...PageServiceOption) *PageService {
	s := &PageService{
		site:     site,
		renderer: core.NewPageRenderer(nil),
		backends: make(map[core.Format]Backend, len(backends)),
		cache:    newRenderCache(0),
		logger:   zap.NewNop(),
	}
	for _, b := range backends {
		s.backends[b.Format()] = b
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PageService) Site() core.Site {
	return s.site
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	page, ok := s.site.PageByPattern(input.Pattern)
	if !ok {
		return ServePageOutput{Error: fmt.Errorf("%w: %s", core.ErrPageNotFound, core.NormalizePath(input.Pattern))}
	}

	format := core.NegotiateFormat(input.Request)
	encoded, err := s.encode(page, format)
	if err != nil {
		logging.FromContext(ctx).Error("render page failed",
			zap.String("page", page.Name),
			zap.String("format", string(format)),
			zap.Error(err),
		)
		return ServePageOutput{Page: page, Error: err}
	}

	decision := core.DecidePageAction(input.Request, encoded.etag)
	output := ServePageOutput{
		Action:      decision.Action,
		Page:        page,
		ContentType: encoded.contentType,
		ETag:        encoded.etag,
	}
	if decision.Action == core.ActionRender {
		output.Body = encoded.body
	}
	return output
}

// View renders the named page to its visual tree.
func (s *PageService) View(name string) (core.SitePage, core.Node, error) {
	page, ok := s.site.PageByName(name)
	if !ok {
		return core.SitePage{}, core.Node{}, fmt.Errorf("%w: %s", core.ErrPageNotFound, name)
	}
	root, err := s.renderer.Render(page.Page)
	if err != nil {
		return page, core.Node{}, fmt.Errorf("page %q: %w", page.Name, err)
	}
	return page, root, nil
}

// Activate forwards the link identified by input.ElementID on the named page
// to input.Router.
func (s *PageService) Activate(ctx context.Context, input ActivateInput) error {
	_, view, err := s.View(input.PageName)
	if err != nil {
		return err
	}
	return core.NewPageRenderer(input.Router).Activate(ctx, view, input.ElementID)
}

func (s *PageService) encode(page core.SitePage, format core.Format) (encodedPage, error) {
	key := cacheKey(page.Name, format)
	if s.cache != nil {
		if cached, ok := s.cache.get(key); ok {
			return cached, nil
		}
	}

	backend, ok := s.backends[format]
	if !ok {
		return encodedPage{}, fmt.Errorf("no backend for format %q", format)
	}

	body, err := renderDocument(s.renderer, backend, s.site, page)
	if err != nil {
		return encodedPage{}, err
	}

	encoded := encodedPage{
		body:        body,
		contentType: backend.ContentType(),
		etag:        core.ETag(body),
	}
	if s.cache != nil {
		s.cache.set(key, encoded)
	}
	s.logger.Debug("page rendered",
		zap.String("page", page.Name),
		zap.String("format", string(format)),
		zap.Int("bytes", len(body)),
	)
	return encoded, nil
}

func renderDocument(renderer *core.PageRenderer, backend Backend, site core.Site, page core.SitePage) ([]byte, error) {
	root, err := renderer.Render(page.Page)
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", page.Name, err)
	}

	var buf bytes.Buffer
	doc := core.Document{Site: site.Name, Page: page.Name, Meta: page.Meta, Root: root}
	if err := backend.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("page %q: encode %s: %w", page.Name, backend.Format(), err)
	}
	return buf.Bytes(), nil
}
