package view

import (
	"slices"

	"github.com/wanderpeak/tours/internal/catalog"
	"github.com/wanderpeak/tours/internal/domain"
)

// EmptyStateMessage replaces the selector and package grid when the catalog
// has no destinations.
const EmptyStateMessage = "We are curating upcoming journeys. Please check back soon for new destinations."

// Selector is one region-switcher control.
type Selector struct {
	Slug    string
	Name    string
	Tagline string
	Glyph   domain.Glyph
	Href    string
	Active  bool
}

// ActiveDestination is the block rendered under the selector for the
// selected destination.
type ActiveDestination struct {
	Slug    string
	Name    string
	Summary string
	Facts   []QuickFact
	Cards   []PackageCard
}

// BrowserPage is the full model of the destinations browser.
// Exactly one of Empty and Active is set.
type BrowserPage struct {
	Empty        bool
	EmptyMessage string
	Selectors    []Selector
	Active       *ActiveDestination
	CTA          CallToAction
}

// BuildBrowser derives the browser page from dests and the current
// selection. It is pure: calling it twice with the same inputs yields equal
// pages.
func BuildBrowser(dests []domain.Destination, icons catalog.IconResolver, sel *Selection) BrowserPage {
	page := BrowserPage{CTA: CustomItineraryCTA}

	if len(dests) == 0 {
		page.Empty = true
		page.EmptyMessage = EmptyStateMessage
		return page
	}

	// A missing selection, or one built over a different catalog, falls back
	// to the first destination so the page always has exactly one active
	// region.
	var active string
	if sel != nil {
		active, _ = sel.Active()
	}
	idx := slices.IndexFunc(dests, func(d domain.Destination) bool { return d.Slug == active })
	if idx < 0 {
		idx = 0
	}

	page.Selectors = make([]Selector, len(dests))
	for i, d := range dests {
		page.Selectors[i] = Selector{
			Slug:    d.Slug,
			Name:    d.Name,
			Tagline: d.Tagline,
			Glyph:   icons.Resolve(d.Icon),
			Href:    RegionPath(d.Slug),
			Active:  i == idx,
		}
	}

	d := dests[idx]
	page.Active = &ActiveDestination{
		Slug:    d.Slug,
		Name:    d.Name,
		Summary: d.Summary,
		Facts:   quickFacts(d.QuickFacts),
		Cards:   newPackageCards(d.Slug, d.Packages),
	}
	return page
}
