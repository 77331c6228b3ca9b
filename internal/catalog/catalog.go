// Package catalog provides the immutable destination catalog and the landing
// highlight dataset the site renders from.
// Both are decoded from YAML once at startup, validated, and then served as
// read-only copies. Consumers depend on the Catalog and HighlightSource
// interfaces so tests can inject fakes.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/wanderpeak/tours/data"
	"github.com/wanderpeak/tours/internal/domain"
)

// Catalog is a read-only ordered collection of destinations.
// ListDestinations may return an empty slice; callers must tolerate it.
type Catalog interface {
	ListDestinations() []domain.Destination
}

// Static is the in-memory Catalog implementation.
// It is safe for concurrent use because nothing mutates it after New returns.
type Static struct {
	destinations []domain.Destination
	bySlug       map[string]int
}

// New validates dests and returns a Static catalog holding a private copy.
// Returns an error wrapping domain.ErrValidation when any rule fails.
func New(dests []domain.Destination) (*Static, error) {
	if err := validateDestinations(dests); err != nil {
		return nil, fmt.Errorf("catalog.New: %w", err)
	}

	s := &Static{
		destinations: cloneDestinations(dests),
		bySlug:       make(map[string]int, len(dests)),
	}
	for i, d := range s.destinations {
		s.bySlug[d.Slug] = i
	}
	return s, nil
}

// Load decodes a YAML list of destinations from r and builds a Static catalog.
// An empty document yields an empty catalog. Unknown keys are rejected so
// typos in hand-edited data surface at startup.
func Load(r io.Reader) (*Static, error) {
	var dests []domain.Destination
	if err := decodeYAML(r, &dests); err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}
	return New(dests)
}

// LoadFile reads the catalog from the YAML file at path.
func LoadFile(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadFile: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the catalog embedded in the binary.
func Default() (*Static, error) {
	return Load(bytes.NewReader(data.Destinations))
}

// ListDestinations returns the destinations in display order.
// The result is a deep copy; mutating it does not affect the catalog.
func (s *Static) ListDestinations() []domain.Destination {
	return cloneDestinations(s.destinations)
}

// Find returns the destination with the given slug.
// Returns domain.ErrNotFound if no destination has that slug.
func (s *Static) Find(slug string) (domain.Destination, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return domain.Destination{}, fmt.Errorf("catalog.Static.Find %q: %w", slug, domain.ErrNotFound)
	}
	return cloneDestination(s.destinations[i]), nil
}

// Find looks slug up in any Catalog by scanning ListDestinations.
// Returns domain.ErrNotFound if no destination has that slug.
func Find(c Catalog, slug string) (domain.Destination, error) {
	if s, ok := c.(*Static); ok {
		return s.Find(slug)
	}
	for _, d := range c.ListDestinations() {
		if d.Slug == slug {
			return d, nil
		}
	}
	return domain.Destination{}, fmt.Errorf("catalog.Find %q: %w", slug, domain.ErrNotFound)
}

// decodeYAML strictly decodes a single YAML document from r into out.
// io.EOF (an empty document) is not an error and leaves out untouched.
func decodeYAML(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func cloneDestinations(in []domain.Destination) []domain.Destination {
	out := make([]domain.Destination, len(in))
	for i, d := range in {
		out[i] = cloneDestination(d)
	}
	return out
}

func cloneDestination(d domain.Destination) domain.Destination {
	d.Packages = slices.Clone(d.Packages)
	for i := range d.Packages {
		d.Packages[i].Highlights = slices.Clone(d.Packages[i].Highlights)
	}
	return d
}
