package view

import "github.com/wanderpeak/tours/internal/domain"

// ImagePlaceholder is shown in place of a missing package image.
const ImagePlaceholder = "Image coming soon"

// PackageCard is the display model of one tour package.
// Optional fields are empty when absent and each is rendered independently.
type PackageCard struct {
	Name        string
	Anchor      string
	Duration    string
	GroupSize   string
	Description string

	// Highlights is only populated on the detail page.
	Highlights []string

	// Image is empty when the package has none; templates show
	// ImagePlaceholder instead.
	Image string
	Badge string

	Rating      string
	Reviews     int
	RatingBadge string

	Price    string
	OldPrice string

	ItineraryURL string
	Focused      bool
}

// HasImage reports whether an image reference is present.
func (c PackageCard) HasImage() bool { return c.Image != "" }

// HasOldPrice reports whether a struck-through prior price must be shown.
func (c PackageCard) HasOldPrice() bool { return c.OldPrice != "" }

func newPackageCard(slug string, p domain.Package) PackageCard {
	reviews := p.Reviews
	if reviews < 0 {
		reviews = 0
	}
	return PackageCard{
		Name:         p.Name,
		Anchor:       AnchorID(p.Name),
		Duration:     p.Duration,
		GroupSize:    p.GroupSize,
		Description:  p.Description,
		Image:        p.Image,
		Badge:        p.Badge,
		Rating:       domain.FormatRating(p.Rating),
		Reviews:      reviews,
		RatingBadge:  domain.RatingBadge(p.Rating, reviews),
		Price:        p.Price,
		OldPrice:     p.OldPrice,
		ItineraryURL: ItineraryPath(slug, p.Name),
	}
}

func newPackageCards(slug string, pkgs []domain.Package) []PackageCard {
	cards := make([]PackageCard, len(pkgs))
	for i, p := range pkgs {
		cards[i] = newPackageCard(slug, p)
	}
	return cards
}

// QuickFact is one labelled badge above a destination's package grid.
type QuickFact struct {
	Label string
	Value string
}

func quickFacts(f domain.QuickFacts) []QuickFact {
	return []QuickFact{
		{Label: "Best time", Value: f.BestTime},
		{Label: "Start point", Value: f.StartPoint},
		{Label: "Style", Value: f.TravelStyle},
	}
}

// CallToAction is a titled block with a single navigation link.
type CallToAction struct {
	Title string
	Body  string
	Label string
	Href  string
}

// CustomItineraryCTA closes the destinations pages regardless of catalog
// state.
var CustomItineraryCTA = CallToAction{
	Title: "Need something more custom?",
	Body:  "Tell us the adventure you dream about and our travel designers will craft an exclusive itinerary for your crew.",
	Label: "Talk to an expert",
	Href:  HomePath,
}
