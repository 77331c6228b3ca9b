package view

import (
	"github.com/wanderpeak/tours/internal/catalog"
	"github.com/wanderpeak/tours/internal/domain"
)

// DetailPage is the per-destination page reached from "View itinerary".
type DetailPage struct {
	Slug    string
	Name    string
	Tagline string
	Summary string
	Glyph   domain.Glyph
	Facts   []QuickFact
	Cards   []PackageCard

	// Focus is the name of the focused package, or "" when the requested
	// focus matched nothing.
	Focus       string
	FocusAnchor string

	BrochureURL string
	BackURL     string
	CTA         CallToAction
}

// BuildDetail derives the detail page for d. The package named focus, if
// any, is marked focused; an unknown focus is ignored.
func BuildDetail(d domain.Destination, icons catalog.IconResolver, focus string) DetailPage {
	page := DetailPage{
		Slug:        d.Slug,
		Name:        d.Name,
		Tagline:     d.Tagline,
		Summary:     d.Summary,
		Glyph:       icons.Resolve(d.Icon),
		Facts:       quickFacts(d.QuickFacts),
		Cards:       newPackageCards(d.Slug, d.Packages),
		BrochureURL: BrochurePath(d.Slug),
		BackURL:     RegionPath(d.Slug),
		CTA:         CustomItineraryCTA,
	}
	for i, p := range d.Packages {
		page.Cards[i].Highlights = p.Highlights
	}
	if focus == "" {
		return page
	}
	for i := range page.Cards {
		if page.Cards[i].Name == focus {
			page.Cards[i].Focused = true
			page.Focus = focus
			page.FocusAnchor = page.Cards[i].Anchor
			break
		}
	}
	return page
}
