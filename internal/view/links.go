package view

import (
	"net/url"

	"github.com/wanderpeak/tours/internal/domain"
)

// Routes shared by page models and the HTTP layer.
const (
	HomePath         = "/"
	DestinationsPath = "/destinations"
	RegionsPath      = "/regions"
)

// RegionParam and FocusParam are the query parameters that drive selection
// on the browser page and package focus on the detail page.
const (
	RegionParam = "region"
	FocusParam  = "focus"
)

// DestinationPath returns the detail route for slug: /destinations/{slug}.
func DestinationPath(slug string) string {
	return DestinationsPath + "/" + url.PathEscape(slug)
}

// ItineraryPath returns the detail route for slug carrying pkg as the
// package to focus, e.g.
// /destinations/ladakh?focus=Markha+Valley+Trek#pkg-markha-valley-trek.
// The fragment keeps the focus when the page is served as a static file.
func ItineraryPath(slug, pkg string) string {
	u := url.URL{
		Path:     DestinationPath(slug),
		RawQuery: url.Values{FocusParam: {pkg}}.Encode(),
		Fragment: AnchorID(pkg),
	}
	return u.String()
}

// RegionPath returns the browser route with slug selected: /regions/{slug}.
// Selection lives in the path so every region has its own page, both on
// the server and in a static export.
func RegionPath(slug string) string {
	return RegionsPath + "/" + url.PathEscape(slug)
}

// BrochurePath returns the PDF brochure route for slug.
func BrochurePath(slug string) string {
	return DestinationPath(slug) + "/brochure.pdf"
}

// AnchorID turns a package name into a stable HTML id,
// e.g. "Tiger's Nest & Paro Festival" → "pkg-tiger-s-nest-paro-festival".
func AnchorID(name string) string { return domain.AnchorID(name) }
