// Package domain contains the core data types for the tours site.
// This package has zero external dependencies and is imported by every other
// internal package (catalog, view, render, handler).
package domain

// Destination is a geographic region owning an ordered set of tour packages.
// Destinations are built once at startup and never mutated afterwards.
type Destination struct {
	// Slug is the unique, URL-safe identifier used in routes and selection.
	Slug    string `json:"slug" yaml:"slug"`
	Name    string `json:"name" yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Summary string `json:"summary" yaml:"summary"`

	// Icon is a symbolic key into the icon registry, not an asset path.
	Icon string `json:"icon" yaml:"icon"`

	QuickFacts QuickFacts `json:"quick_facts" yaml:"quick_facts"`

	// Packages are kept in display order.
	Packages []Package `json:"packages" yaml:"packages"`
}

// QuickFacts are the three fixed display attributes shown as badges above
// a destination's package grid.
type QuickFacts struct {
	BestTime    string `json:"best_time" yaml:"best_time"`
	StartPoint  string `json:"start_point" yaml:"start_point"`
	TravelStyle string `json:"travel_style" yaml:"travel_style"`
}

// Package is a single bookable tour offering within a Destination.
// Name is unique within its owning destination.
// OldPrice, Badge and Image are optional; empty means absent.
type Package struct {
	Name        string   `json:"name" yaml:"name"`
	Duration    string   `json:"duration" yaml:"duration"`
	GroupSize   string   `json:"group_size" yaml:"group_size"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Reviews     int      `json:"reviews" yaml:"reviews"`
	Price       string   `json:"price" yaml:"price"`
	OldPrice    string   `json:"old_price,omitempty" yaml:"old_price"`
	Badge       string   `json:"badge,omitempty" yaml:"badge"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image,omitempty" yaml:"image"`
	Highlights  []string `json:"highlights" yaml:"highlights"`
}

// HasDiscount reports whether the package carries a superseded price.
func (p Package) HasDiscount() bool {
	return p.OldPrice != ""
}
