package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanderpeak/tours/internal/catalog"
	"github.com/wanderpeak/tours/internal/domain"
	"github.com/wanderpeak/tours/internal/render"
)

// GetSitemap handles GET /sitemap.xml.
func (s *Server) GetSitemap(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := render.Sitemap(&buf, s.baseURL, s.catalog.ListDestinations()); err != nil {
		s.log.ErrorContext(r.Context(), "render sitemap", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// GetBrochure handles GET /destinations/{slug}/brochure.pdf.
func (s *Server) GetBrochure(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	d, err := catalog.Find(s.catalog, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.log.ErrorContext(r.Context(), "find destination", "slug", slug, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := render.Brochure(&buf, d); err != nil {
		s.log.ErrorContext(r.Context(), "render brochure", "slug", slug, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", d.Slug+"-brochure.pdf"))
	_, _ = w.Write(buf.Bytes())
}
