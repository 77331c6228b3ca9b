package handler_test

import (
	"errors"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wanderpeak/tours/internal/catalog"
	"github.com/wanderpeak/tours/internal/domain"
	"github.com/wanderpeak/tours/internal/handler"
	"github.com/wanderpeak/tours/internal/render"
	"github.com/wanderpeak/tours/internal/view"
)

// mockCatalog is a test double for catalog.Catalog.
// Set list to control what the handlers see.
type mockCatalog struct {
	list func() []domain.Destination
}

func (m *mockCatalog) ListDestinations() []domain.Destination { return m.list() }

// mockHighlights is a test double for catalog.HighlightSource.
type mockHighlights struct {
	list func() []domain.Highlight
}

func (m *mockHighlights) ListHighlights() []domain.Highlight { return m.list() }

// stubIcons resolves every key to an SVG tagged with the key.
type stubIcons struct{}

func (stubIcons) Resolve(key string) domain.Glyph {
	return domain.Glyph{Key: key, SVG: template.HTML(`<svg data-icon="` + key + `"></svg>`)}
}

// failingRenderer is a handler.PageRenderer whose every method fails.
type failingRenderer struct{}

var errRender = errors.New("template exploded")

func (failingRenderer) Landing(io.Writer, view.LandingSection) error   { return errRender }
func (failingRenderer) Destinations(io.Writer, view.BrowserPage) error { return errRender }
func (failingRenderer) Detail(io.Writer, view.DetailPage) error        { return errRender }
func (failingRenderer) NotFound(io.Writer, string) error               { return errRender }

// compile-time checks: the doubles must satisfy the interfaces they replace.
var (
	_ catalog.Catalog         = (*mockCatalog)(nil)
	_ catalog.HighlightSource = (*mockHighlights)(nil)
	_ handler.PageRenderer    = failingRenderer{}
	_ handler.PageRenderer    = (*render.Renderer)(nil)
)

// ---- fixtures --------------------------------------------------------------

func fixtureDestinations() []domain.Destination {
	return []domain.Destination{
		{
			Slug: "ladakh", Name: "Ladakh", Tagline: "High-altitude odysseys", Icon: "mountain",
			Summary:    "Roof of the world.",
			QuickFacts: domain.QuickFacts{BestTime: "June - September", StartPoint: "Leh", TravelStyle: "Adventure"},
			Packages: []domain.Package{
				{Name: "Bike Expedition", Rating: 4.85, Reviews: 212, Price: "₹48,500", OldPrice: "₹54,000"},
				{Name: "Pangong Circuit", Rating: 4.7, Reviews: 168, Price: "₹32,000"},
			},
		},
		{
			Slug: "sikkim", Name: "Sikkim", Tagline: "Monastery circuits", Icon: "temple",
			Packages: []domain.Package{
				{Name: "Monastery Trail", Rating: 4.9, Reviews: 131, Price: "₹34,000", Highlights: []string{"Rumtek"}},
				{Name: "Goecha La Trek", Rating: 4.7, Reviews: 87, Price: "₹41,000"},
				{Name: "Tea Garden Stay", Rating: 4.4, Reviews: 12, Price: "₹18,000"},
			},
		},
	}
}

func fixtureHighlights() []domain.Highlight {
	return []domain.Highlight{
		{ID: 1, Title: "Ladakh Bike Expedition", Rating: 4.9, Price: "₹45,000", Image: "/static/img/ladakh-mountains.svg", Highlights: []string{"a", "b", "c", "d"}},
		{ID: 2, Title: "Tropical Paradise Escape", Rating: 4.8, Price: "₹85,000", Highlights: []string{"a", "b"}},
	}
}

// ---- wiring ----------------------------------------------------------------

// newHTTPHandler wires a Server with the given destinations into its router,
// mirroring how main.go wires it in production (minus global middleware).
func newHTTPHandler(t *testing.T, dests []domain.Destination) http.Handler {
	t.Helper()
	pages, err := render.Default(stubIcons{})
	require.NoError(t, err)
	return newServer(dests, pages).Routes()
}

func newServer(dests []domain.Destination, pages handler.PageRenderer) *handler.Server {
	return handler.NewServer(handler.Deps{
		Catalog:    &mockCatalog{list: func() []domain.Destination { return dests }},
		Highlights: &mockHighlights{list: fixtureHighlights},
		Icons:      stubIcons{},
		Pages:      pages,
		BaseURL:    "https://tours.example.com",
	})
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// activeSelectors returns, in document order, the slugs of selector
// controls marked aria-current in rendered HTML.
func activeSelectors(body string) []string {
	var active []string
	for _, chunk := range strings.Split(body, `data-selector="`)[1:] {
		end := strings.Index(chunk, `"`)
		tagEnd := strings.Index(chunk, ">")
		if end < 0 || tagEnd < 0 {
			continue
		}
		if strings.Contains(chunk[:tagEnd], `aria-current="page"`) {
			active = append(active, chunk[:end])
		}
	}
	return active
}
