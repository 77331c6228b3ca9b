package catalog

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/wanderpeak/tours/internal/domain"
)

// slugPattern matches lowercase, hyphen-separated URL-safe slugs.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// validateDestinations enforces the catalog rules: unique URL-safe slugs,
// named destinations, and well-formed packages.
func validateDestinations(dests []domain.Destination) error {
	seen := make(map[string]bool, len(dests))
	for i, d := range dests {
		if !slugPattern.MatchString(d.Slug) {
			return fmt.Errorf("%w: destination %d: slug %q is not URL-safe", domain.ErrValidation, i, d.Slug)
		}
		if seen[d.Slug] {
			return fmt.Errorf("%w: duplicate destination slug %q", domain.ErrValidation, d.Slug)
		}
		seen[d.Slug] = true

		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("%w: destination %q: name is required", domain.ErrValidation, d.Slug)
		}
		if err := validatePackages(d); err != nil {
			return err
		}
	}
	return nil
}

func validatePackages(d domain.Destination) error {
	names := make(map[string]bool, len(d.Packages))
	anchors := make(map[string]string, len(d.Packages))
	for _, p := range d.Packages {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: destination %q: package name is required", domain.ErrValidation, d.Slug)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: destination %q: duplicate package %q", domain.ErrValidation, d.Slug, p.Name)
		}
		names[p.Name] = true

		anchor := domain.AnchorID(p.Name)
		if other, ok := anchors[anchor]; ok {
			return fmt.Errorf("%w: destination %q: packages %q and %q share anchor %q",
				domain.ErrValidation, d.Slug, other, p.Name, anchor)
		}
		anchors[anchor] = p.Name

		if err := validateRating(p.Rating); err != nil {
			return fmt.Errorf("%w: package %q: %s", domain.ErrValidation, p.Name, err)
		}
		if p.Reviews < 0 {
			return fmt.Errorf("%w: package %q: reviews must not be negative", domain.ErrValidation, p.Name)
		}
	}
	return nil
}

func validateHighlights(hs []domain.Highlight) error {
	for i, h := range hs {
		if strings.TrimSpace(h.Title) == "" {
			return fmt.Errorf("%w: highlight %d: title is required", domain.ErrValidation, i)
		}
		if err := validateRating(h.Rating); err != nil {
			return fmt.Errorf("%w: highlight %q: %s", domain.ErrValidation, h.Title, err)
		}
	}
	return nil
}

func validateRating(r float64) error {
	if math.IsNaN(r) || r < 0 || r > domain.MaxRating {
		return fmt.Errorf("rating %v outside 0-%v", r, domain.MaxRating)
	}
	return nil
}
