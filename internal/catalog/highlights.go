package catalog

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/wanderpeak/tours/data"
	"github.com/wanderpeak/tours/internal/domain"
)

// HighlightSource supplies the curated landing-page adventure cards.
type HighlightSource interface {
	ListHighlights() []domain.Highlight
}

// Highlights is the in-memory HighlightSource.
type Highlights struct {
	items []domain.Highlight
}

// NewHighlights validates hs and returns a Highlights holding a private copy.
func NewHighlights(hs []domain.Highlight) (*Highlights, error) {
	if err := validateHighlights(hs); err != nil {
		return nil, fmt.Errorf("catalog.NewHighlights: %w", err)
	}
	return &Highlights{items: cloneHighlights(hs)}, nil
}

// LoadHighlights decodes a YAML list of highlights from r.
func LoadHighlights(r io.Reader) (*Highlights, error) {
	var hs []domain.Highlight
	if err := decodeYAML(r, &hs); err != nil {
		return nil, fmt.Errorf("catalog.LoadHighlights: %w", err)
	}
	return NewHighlights(hs)
}

// DefaultHighlights returns the highlights embedded in the binary.
func DefaultHighlights() (*Highlights, error) {
	return LoadHighlights(bytes.NewReader(data.Highlights))
}

// ListHighlights returns the highlights in display order as a deep copy.
func (h *Highlights) ListHighlights() []domain.Highlight {
	return cloneHighlights(h.items)
}

func cloneHighlights(in []domain.Highlight) []domain.Highlight {
	out := slices.Clone(in)
	for i := range out {
		out[i].Highlights = slices.Clone(out[i].Highlights)
	}
	return out
}
