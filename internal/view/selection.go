// Package view derives the page models the site renders: the landing
// highlight section, the destinations browser and the destination detail
// page. Everything here is a pure function of catalog data plus, for the
// browser, a request-scoped Selection.
package view

import "github.com/wanderpeak/tours/internal/domain"

// Selection is the browser's single piece of UI state: the slug of the
// active destination. A Selection is owned by one page render and is not
// safe for concurrent use.
//
// When built from a non-empty catalog it always resolves to a destination in
// that catalog. When built from an empty catalog it has no active slug and
// every Select is a no-op.
type Selection struct {
	known  map[string]bool
	active string
}

// NewSelection returns a Selection over dests with the first destination
// active.
func NewSelection(dests []domain.Destination) *Selection {
	s := &Selection{known: make(map[string]bool, len(dests))}
	for _, d := range dests {
		s.known[d.Slug] = true
	}
	if len(dests) > 0 {
		s.active = dests[0].Slug
	}
	return s
}

// Select makes slug the active destination and reports whether the state
// changed. Selecting the active slug, or a slug outside the catalog, leaves
// the state untouched.
func (s *Selection) Select(slug string) bool {
	if !s.known[slug] || slug == s.active {
		return false
	}
	s.active = slug
	return true
}

// Active returns the active slug, or false when the catalog is empty.
func (s *Selection) Active() (string, bool) {
	return s.active, s.active != ""
}
