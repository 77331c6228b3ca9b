package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/wanderpeak/tours/internal/catalog"
	"github.com/wanderpeak/tours/internal/domain"
	"github.com/wanderpeak/tours/internal/view"
)

// GetLanding handles GET /.
func (s *Server) GetLanding(w http.ResponseWriter, r *http.Request) {
	section := view.BuildLanding(s.highlights.ListHighlights())
	s.writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return s.pages.Landing(out, section)
	})
}

// GetDestinations handles GET /destinations.
// The optional ?region= query parameter selects a destination; an unknown
// slug leaves the first destination active.
func (s *Server) GetDestinations(w http.ResponseWriter, r *http.Request) {
	region, err := optionalQuery(r.URL.Query(), view.RegionParam)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.writeBrowser(w, r, s.catalog.ListDestinations(), region)
}

// GetRegion handles GET /regions/{slug}: the browser page with slug active.
// Unlike ?region=, the slug names a resource, so an unknown one is a 404.
func (s *Server) GetRegion(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	dests := s.catalog.ListDestinations()
	if !slices.ContainsFunc(dests, func(d domain.Destination) bool { return d.Slug == slug }) {
		s.writeHTML(w, r, http.StatusNotFound, func(out io.Writer) error {
			return s.pages.NotFound(out, fmt.Sprintf("We have no region called %q yet.", slug))
		})
		return
	}
	s.writeBrowser(w, r, dests, &slug)
}

// writeBrowser renders the browser page for dests with region, if any,
// selected on a fresh per-request Selection.
func (s *Server) writeBrowser(w http.ResponseWriter, r *http.Request, dests []domain.Destination, region *string) {
	sel := view.NewSelection(dests)
	if region != nil {
		sel.Select(*region)
	}

	page := view.BuildBrowser(dests, s.icons, sel)
	s.writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return s.pages.Destinations(out, page)
	})
}

// GetDestination handles GET /destinations/{slug}.
// The optional ?focus= query parameter names the package to highlight.
func (s *Server) GetDestination(w http.ResponseWriter, r *http.Request) {
	focus, err := optionalQuery(r.URL.Query(), view.FocusParam)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slug := chi.URLParam(r, "slug")
	d, err := catalog.Find(s.catalog, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.writeHTML(w, r, http.StatusNotFound, func(out io.Writer) error {
				return s.pages.NotFound(out, fmt.Sprintf("We have no destination called %q yet.", slug))
			})
			return
		}
		s.log.ErrorContext(r.Context(), "find destination", "slug", slug, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var focusName string
	if focus != nil {
		focusName = *focus
	}
	page := view.BuildDetail(d, s.icons, focusName)
	s.writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return s.pages.Detail(out, page)
	})
}

// optionalQuery binds a single optional form-style query parameter.
// Returns nil when the parameter is absent and an error when it is repeated.
func optionalQuery(q url.Values, name string) (*string, error) {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, q, &v); err != nil {
		return nil, fmt.Errorf("invalid %s parameter: %w", name, err)
	}
	return v, nil
}
