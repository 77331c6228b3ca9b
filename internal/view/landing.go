package view

import (
	"strconv"

	"github.com/wanderpeak/tours/internal/domain"
)

// MaxVisibleTags is how many highlight tags a landing card shows before
// collapsing the rest into an overflow counter.
const MaxVisibleTags = 2

// HighlightCard is one landing-page adventure card.
type HighlightCard struct {
	Title       string
	Location    string
	Duration    string
	GroupSize   string
	Rating      string
	Price       string
	Image       string
	Description string

	// Tags holds at most MaxVisibleTags highlights.
	Tags []string
	// Overflow is the number of highlights not shown in Tags.
	Overflow int

	BookURL string
}

// HasImage reports whether an image reference is present; templates show
// ImagePlaceholder otherwise.
func (c HighlightCard) HasImage() bool { return c.Image != "" }

// OverflowLabel returns "+{n} more", or "" when nothing overflows.
func (c HighlightCard) OverflowLabel() string {
	if c.Overflow <= 0 {
		return ""
	}
	return "+" + strconv.Itoa(c.Overflow) + " more"
}

// LandingSection is the landing page's "Popular Destinations" block.
type LandingSection struct {
	Title      string
	Intro      string
	Cards      []HighlightCard
	ViewAllURL string
}

// BuildLanding renders one card per highlight, in order.
func BuildLanding(hs []domain.Highlight) LandingSection {
	section := LandingSection{
		Title:      "Popular Destinations",
		Intro:      "Discover our most loved adventure destinations, each offering unique experiences and unforgettable memories.",
		Cards:      make([]HighlightCard, len(hs)),
		ViewAllURL: DestinationsPath,
	}
	for i, h := range hs {
		tags, overflow := splitTags(h.Highlights)
		section.Cards[i] = HighlightCard{
			Title:       h.Title,
			Location:    h.Location,
			Duration:    h.Duration,
			GroupSize:   h.GroupSize,
			Rating:      domain.FormatRating(h.Rating),
			Price:       h.Price,
			Image:       h.Image,
			Description: h.Description,
			Tags:        tags,
			Overflow:    overflow,
			BookURL:     DestinationsPath,
		}
	}
	return section
}

// splitTags returns the visible tags and how many were held back.
func splitTags(all []string) ([]string, int) {
	if len(all) <= MaxVisibleTags {
		return all, 0
	}
	return all[:MaxVisibleTags], len(all) - MaxVisibleTags
}
