package domain

// Highlight is a curated landing-page adventure card.
// Highlights are a separate dataset from the destination catalog: their copy
// overlaps with catalog packages but is maintained independently.
type Highlight struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Location    string   `json:"location" yaml:"location"`
	Duration    string   `json:"duration" yaml:"duration"`
	GroupSize   string   `json:"group_size" yaml:"group_size"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Price       string   `json:"price" yaml:"price"`
	Image       string   `json:"image,omitempty" yaml:"image"`
	Description string   `json:"description" yaml:"description"`
	Highlights  []string `json:"highlights" yaml:"highlights"`
}
