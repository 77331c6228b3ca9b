package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanderpeak/tours/internal/catalog"
	"github.com/wanderpeak/tours/internal/domain"
)

// DestinationList is the body of GET /api/destinations.
type DestinationList struct {
	Data []domain.Destination `json:"data"`
}

// HighlightList is the body of GET /api/highlights.
type HighlightList struct {
	Data []domain.Highlight `json:"data"`
}

// ListDestinations handles GET /api/destinations.
// An empty catalog yields {"data": []}, never null.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	dests := s.catalog.ListDestinations()
	if dests == nil {
		dests = []domain.Destination{}
	}
	s.writeJSON(w, r, http.StatusOK, DestinationList{Data: dests})
}

// GetDestinationJSON handles GET /api/destinations/{slug}.
func (s *Server) GetDestinationJSON(w http.ResponseWriter, r *http.Request) {
	d, err := catalog.Find(s.catalog, chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.writeJSON(w, r, http.StatusNotFound, notFoundBody("destination not found"))
			return
		}
		s.log.ErrorContext(r.Context(), "find destination", "error", err)
		s.writeJSON(w, r, http.StatusInternalServerError, internalBody())
		return
	}
	s.writeJSON(w, r, http.StatusOK, d)
}

// ListHighlights handles GET /api/highlights.
func (s *Server) ListHighlights(w http.ResponseWriter, r *http.Request) {
	hs := s.highlights.ListHighlights()
	if hs == nil {
		hs = []domain.Highlight{}
	}
	s.writeJSON(w, r, http.StatusOK, HighlightList{Data: hs})
}
