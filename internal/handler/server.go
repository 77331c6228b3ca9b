// Package handler implements the HTTP surface of the tours site: the HTML
// pages, the read-only JSON API, the sitemap, PDF brochures and static
// assets. All handlers are methods on Server and are split into files by
// concern (pages.go, api.go, etc.).
package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanderpeak/tours/internal/catalog"
	"github.com/wanderpeak/tours/internal/view"
)

// PageRenderer defines the rendering operations the page handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a failing renderer without touching templates.
type PageRenderer interface {
	Landing(w io.Writer, s view.LandingSection) error
	Destinations(w io.Writer, p view.BrowserPage) error
	Detail(w io.Writer, p view.DetailPage) error
	NotFound(w io.Writer, message string) error
}

// Deps are the collaborators a Server needs.
type Deps struct {
	Catalog    catalog.Catalog
	Highlights catalog.HighlightSource
	Icons      catalog.IconResolver
	Pages      PageRenderer

	// BaseURL prefixes sitemap entries, e.g. "https://tours.example.com".
	BaseURL string

	// Logger receives handler-level errors. Defaults to slog.Default().
	Logger *slog.Logger
}

// Server serves every route of the site.
// The catalog and highlights are read-only, so one Server is shared by all
// request goroutines; per-request state (the region selection) lives on
// the stack of each handler call.
type Server struct {
	catalog    catalog.Catalog
	highlights catalog.HighlightSource
	icons      catalog.IconResolver
	pages      PageRenderer
	baseURL    string
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		catalog:    d.Catalog,
		highlights: d.Highlights,
		icons:      d.Icons,
		pages:      d.Pages,
		baseURL:    d.BaseURL,
		log:        log,
	}
}

// Routes returns the router for the whole site. Cross-cutting middleware
// (logging, recovery, compression) is applied by the caller; apiMiddleware
// wraps only the /api subtree (e.g. CORS).
func (s *Server) Routes(apiMiddleware ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Get(view.HomePath, s.GetLanding)
	r.Get(view.DestinationsPath, s.GetDestinations)
	r.Get(view.RegionsPath+"/{slug}", s.GetRegion)
	r.Get(view.DestinationsPath+"/{slug}", s.GetDestination)
	r.Get(view.DestinationsPath+"/{slug}/brochure.pdf", s.GetBrochure)
	r.Get("/sitemap.xml", s.GetSitemap)
	r.Get("/static/*", s.GetStatic)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiMiddleware...)
		r.Get("/destinations", s.ListDestinations)
		r.Get("/destinations/{slug}", s.GetDestinationJSON)
		r.Get("/highlights", s.ListHighlights)
	})

	r.NotFound(s.notFound)
	return r
}
