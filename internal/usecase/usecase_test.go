package usecase

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"net/http"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/showcase/internal/adapters/html"
	"github.com/3-lines-studio/showcase/internal/adapters/jsonview"
	"github.com/3-lines-studio/showcase/internal/content"
	"github.com/3-lines-studio/showcase/internal/core"
)

type memFS struct {
	mu    sync.Mutex
	files map[string][]byte
	fail  string
}

func newMemFS() *memFS {
	return &memFS{files: make(map[string][]byte)}
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, iofs.ErrNotExist
	}
	return data, nil
}

func (m *memFS) ReadDir(dir string) ([]iofs.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tree := fstest.MapFS{}
	for path, data := range m.files {
		tree[filepath.ToSlash(filepath.Clean(path))] = &fstest.MapFile{Data: data}
	}
	return iofs.ReadDir(tree, filepath.ToSlash(filepath.Clean(dir)))
}

func (m *memFS) FileExists(path string) bool {
	_, err := m.ReadFile(path)
	return err == nil
}

func (m *memFS) WriteFile(path string, data []byte, _ iofs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != "" && filepath.Base(path) == m.fail {
		return errors.New("disk full")
	}
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func (m *memFS) MkdirAll(string, iofs.FileMode) error { return nil }

func (m *memFS) RemoveAll(string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = make(map[string][]byte)
	return nil
}

type silentOutput struct{ errors []string }

func (o *silentOutput) PrintHeader(string)                 {}
func (o *silentOutput) PrintStep(string, string, ...any)   {}
func (o *silentOutput) PrintSuccess(string, ...any)        {}
func (o *silentOutput) PrintWarning(string, ...any)        {}
func (o *silentOutput) PrintError(msg string, args ...any) { o.errors = append(o.errors, msg) }
func (o *silentOutput) PrintFile(string)                   {}
func (o *silentOutput) PrintDone(string)                   {}

type staticAssets map[string][]byte

func (a staticAssets) Files() ([]string, error) {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (a staticAssets) ReadFile(path string) ([]byte, error) {
	return a[path], nil
}

type countingBackend struct {
	Backend
	calls int
}

func (c *countingBackend) Render(w io.Writer, doc core.Document) error {
	c.calls++
	return c.Backend.Render(w, doc)
}

func defaultSite(t *testing.T) core.Site {
	t.Helper()
	site, err := content.Default()
	require.NoError(t, err)
	return site
}

func backends() []Backend {
	return []Backend{html.New(), jsonview.New()}
}

func TestServePageRendersHTMLAndJSON(t *testing.T) {
	svc := NewPageService(defaultSite(t), backends())

	out := svc.ServePage(context.Background(), ServePageInput{
		Pattern: "/",
		Request: core.PageRequest{Method: http.MethodGet},
	})
	require.NoError(t, out.Error)
	assert.Equal(t, core.ActionRender, out.Action)
	assert.Equal(t, "text/html; charset=utf-8", out.ContentType)
	assert.Contains(t, string(out.Body), `<section id="section-0"`)
	assert.Equal(t, core.ETag(out.Body), out.ETag)

	jsonOut := svc.ServePage(context.Background(), ServePageInput{
		Pattern: "/",
		Request: core.PageRequest{Method: http.MethodGet, FormatParam: "json"},
	})
	require.NoError(t, jsonOut.Error)
	assert.Equal(t, "application/json", jsonOut.ContentType)
	assert.NotEqual(t, out.ETag, jsonOut.ETag)
}

func TestServePageNotFound(t *testing.T) {
	svc := NewPageService(defaultSite(t), backends())

	out := svc.ServePage(context.Background(), ServePageInput{Pattern: "/nope"})
	assert.ErrorIs(t, out.Error, core.ErrPageNotFound)
}

func TestServePageNotModifiedAndHead(t *testing.T) {
	svc := NewPageService(defaultSite(t), backends())
	ctx := context.Background()

	first := svc.ServePage(ctx, ServePageInput{Pattern: "/", Request: core.PageRequest{Method: http.MethodGet}})
	require.NoError(t, first.Error)

	again := svc.ServePage(ctx, ServePageInput{
		Pattern: "/",
		Request: core.PageRequest{Method: http.MethodGet, IfNoneMatch: first.ETag},
	})
	assert.Equal(t, core.ActionNotModified, again.Action)
	assert.Empty(t, again.Body)

	head := svc.ServePage(ctx, ServePageInput{Pattern: "/", Request: core.PageRequest{Method: http.MethodHead}})
	assert.Equal(t, core.ActionRenderHeaders, head.Action)
	assert.Empty(t, head.Body)
	assert.Equal(t, first.ETag, head.ETag)
}

func TestServePageCaches(t *testing.T) {
	backend := &countingBackend{Backend: html.New()}
	svc := NewPageService(defaultSite(t), []Backend{backend})
	req := ServePageInput{Pattern: "/", Request: core.PageRequest{Method: http.MethodGet}}

	a := svc.ServePage(context.Background(), req)
	b := svc.ServePage(context.Background(), req)

	require.NoError(t, a.Error)
	assert.Equal(t, a.Body, b.Body)
	assert.Equal(t, 1, backend.calls)
}

func TestServePageWithoutCacheRendersEveryTime(t *testing.T) {
	backend := &countingBackend{Backend: html.New()}
	svc := NewPageService(defaultSite(t), []Backend{backend}, WithoutCache())
	req := ServePageInput{Pattern: "/", Request: core.PageRequest{Method: http.MethodGet}}

	a := svc.ServePage(context.Background(), req)
	b := svc.ServePage(context.Background(), req)

	assert.Equal(t, a.Body, b.Body)
	assert.Equal(t, 2, backend.calls)
}

func TestRenderCacheExpires(t *testing.T) {
	cache := newRenderCache(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	key := cacheKey("home", core.FormatHTML)
	cache.set(key, encodedPage{body: []byte("x")})

	_, ok := cache.get(key)
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = cache.get(key)
	assert.False(t, ok)
}

func TestServePageMissingBackend(t *testing.T) {
	svc := NewPageService(defaultSite(t), []Backend{html.New()})

	out := svc.ServePage(context.Background(), ServePageInput{
		Pattern: "/",
		Request: core.PageRequest{Method: http.MethodGet, Accept: "application/json"},
	})
	assert.Error(t, out.Error)
}

func TestActivateForwardsToRouter(t *testing.T) {
	svc := NewPageService(defaultSite(t), backends())

	var got []core.NavigationRequest
	router := core.RouterFunc(func(_ context.Context, req core.NavigationRequest) error {
		got = append(got, req)
		return nil
	})

	require.NoError(t, svc.Activate(context.Background(), ActivateInput{
		PageName: "home", ElementID: "section-3.action", Router: router,
	}))
	require.Len(t, got, 1)
	assert.Equal(t, core.RouteKey("quiz"), got[0].Destination)

	err := svc.Activate(context.Background(), ActivateInput{PageName: "home", ElementID: "section-9.action", Router: router})
	assert.ErrorIs(t, err, core.ErrUnknownElement)

	err = svc.Activate(context.Background(), ActivateInput{PageName: "missing", ElementID: "x", Router: router})
	assert.ErrorIs(t, err, core.ErrPageNotFound)
	assert.Len(t, got, 1)
}

func TestExportWritesPagesAssetsAndManifest(t *testing.T) {
	site := defaultSite(t)
	fsys := newMemFS()
	assets := staticAssets{"styles.css": []byte("body{}")}
	svc := NewExportService(site, html.New(), jsonview.New(), assets, fsys, &silentOutput{})

	out := svc.Export(context.Background(), ExportInput{OutDir: "dist", Clean: true})
	require.NoError(t, out.Error)

	index, err := fsys.ReadFile(filepath.Join("dist", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<!DOCTYPE html>")
	assert.True(t, fsys.FileExists(filepath.Join("dist", "index.json")))
	assert.True(t, fsys.FileExists(filepath.Join("dist", "static", "styles.css")))

	data, err := fsys.ReadFile(filepath.Join("dist", "manifest.json"))
	require.NoError(t, err)
	manifest, err := core.ParseManifest(data)
	require.NoError(t, err)

	entry, ok := manifest.Entries["index"]
	require.True(t, ok)
	assert.Equal(t, "/", entry.Pattern)
	assert.Equal(t, "index.html", entry.HTML)
	assert.Equal(t, "index.json", entry.JSON)
	assert.Equal(t, core.ETag(index), entry.ETag)
	assert.Equal(t, []string{"static/styles.css"}, manifest.Assets)
	assert.Equal(t, site.Name, out.Manifest.Site)
}

func TestExportReportsWriteFailure(t *testing.T) {
	fsys := newMemFS()
	fsys.fail = "manifest.json"
	svc := NewExportService(defaultSite(t), html.New(), nil, nil, fsys, &silentOutput{})

	out := svc.Export(context.Background(), ExportInput{OutDir: "dist"})
	assert.ErrorContains(t, out.Error, "disk full")
}

func TestExportRequiresOutDir(t *testing.T) {
	svc := NewExportService(defaultSite(t), html.New(), nil, nil, newMemFS(), &silentOutput{})
	assert.Error(t, svc.Export(context.Background(), ExportInput{}).Error)
}
