package showcase

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/showcase/internal/adapters/cli"
	"github.com/3-lines-studio/showcase/internal/content"
)

func landingSite() Site {
	return Site{
		Name: "Demo",
		Pages: []SitePage{{
			Name:    "home",
			Pattern: "/",
			Meta:    Meta{Title: "Demo"},
			Page: NewPage(
				Hero(HeroPayload{
					Headline: "Welcome",
					Primary:  NavAction{Label: "Start", Destination: "quiz"},
				}),
				CallToAction(CallToActionPayload{
					Headline: "Ready?",
					Action:   NavAction{Label: "Go", Destination: "recommendations"},
				}),
			),
		}},
		Routes: map[RouteKey]string{"quiz": "/quiz", "recommendations": "/recommendations"},
	}
}

func TestNewRejectsInvalidSite(t *testing.T) {
	site := landingSite()
	site.Pages[0].Page = NewPage(SectionDescriptor{Kind: "marquee"})

	_, err := New(site)
	assert.ErrorContains(t, err, `unsupported section kind "marquee"`)
}

func TestNewRejectsPageNamesThatBreakLinks(t *testing.T) {
	for _, name := range []string{"docs/home", "über uns"} {
		site := landingSite()
		site.Pages[0].Name = name

		_, err := New(site)
		assert.ErrorContains(t, err, "invalid page name", name)
	}
}

func TestNewRejectsPagesSharingAnExportName(t *testing.T) {
	site := landingSite()
	about := site.Pages[0]
	about.Name, about.Pattern = "about", "/about-us"
	team := site.Pages[0]
	team.Name, team.Pattern = "team", "/about/us"
	site.Pages = append(site.Pages, about, team)

	_, err := New(site)
	assert.ErrorContains(t, err, `both export as "about-us"`)
}

func TestActivationLinkForDashedPageName(t *testing.T) {
	site := landingSite()
	site.Pages[0].Name = "about-us_2"
	app, err := New(site)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/_nav/about-us_2/section-0.primary"`)

	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_nav/about-us_2/section-0.primary", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/quiz", rec.Header().Get("Location"))
}

func TestHandlerServesSite(t *testing.T) {
	app, err := New(landingSite())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome")

	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quiz", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWrapFallsBackToAPI(t *testing.T) {
	app, err := New(landingSite())
	require.NoError(t, err)

	api := http.NewServeMux()
	api.HandleFunc("/quiz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("quiz"))
	})
	h := app.Wrap(api)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_nav/home/section-0.primary", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/quiz", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quiz", nil))
	assert.Equal(t, "quiz", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), "Welcome")
}

func TestWrapPanicsOnNilRouter(t *testing.T) {
	app, err := New(landingSite())
	require.NoError(t, err)
	assert.Panics(t, func() { app.Wrap(nil) })
}

func TestActivate(t *testing.T) {
	app, err := New(landingSite())
	require.NoError(t, err)

	var got RouteKey
	r := RouterFunc(func(_ context.Context, req NavigationRequest) error {
		got = req.Destination
		return nil
	})
	require.NoError(t, app.Activate(context.Background(), "home", "section-1.action", r))
	assert.Equal(t, RouteKey("recommendations"), got)
}

func TestExportWritesStaticSite(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)
	app, err := New(site, WithAssets(fstest.MapFS{"styles.css": {Data: []byte("body{}")}}))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "dist")
	var out bytes.Buffer
	manifest, err := app.Export(context.Background(), ExportOptions{
		Dir:    dir,
		Clean:  true,
		Output: cli.NewOutputTo(&out, &out),
	})
	require.NoError(t, err)
	assert.Contains(t, manifest.Entries, "index")

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="/quiz"`)
	assert.NotContains(t, string(index), "/_nav/")

	for _, name := range []string{"index.json", "manifest.json", filepath.Join("static", "styles.css")} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, out.String(), "Exported 1 pages")
}

func TestPreview(t *testing.T) {
	app, err := New(landingSite())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, app.Preview(&buf, "home", false))
	assert.Contains(t, buf.String(), "[hero] section-0")
	assert.Contains(t, buf.String(), "→ Go section-1.action -> recommendations")

	assert.Error(t, app.Preview(&buf, "missing", false))
}
