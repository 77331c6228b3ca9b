package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderpeak/tours/internal/catalog"
	"github.com/wanderpeak/tours/internal/domain"
)

// ---- helpers ---------------------------------------------------------------

func ladakh() domain.Destination {
	return domain.Destination{
		Slug:    "ladakh",
		Name:    "Ladakh",
		Tagline: "High-altitude odysseys",
		Icon:    "mountain",
		Packages: []domain.Package{
			{Name: "Bike Expedition", Rating: 4.85, Reviews: 212, Price: "₹48,500", Highlights: []string{"Rohtang Pass"}},
			{Name: "Pangong Circuit", Rating: 4.7, Reviews: 168, Price: "₹32,000"},
		},
	}
}

// ---- Default catalog ---------------------------------------------------------

// TestDefault_loadsEmbeddedCatalog verifies the embedded YAML decodes and
// passes validation, keeping destination order.
func TestDefault_loadsEmbeddedCatalog(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	dests := c.ListDestinations()
	require.NotEmpty(t, dests)
	assert.Equal(t, "ladakh", dests[0].Slug)

	for _, d := range dests {
		assert.NotEmpty(t, d.Packages, "destination %s has no packages", d.Slug)
		assert.NotEmpty(t, d.QuickFacts.BestTime)
		assert.NotEmpty(t, d.QuickFacts.StartPoint)
		assert.NotEmpty(t, d.QuickFacts.TravelStyle)
	}
}

func TestDefaultHighlights_threeEntries(t *testing.T) {
	h, err := catalog.DefaultHighlights()
	require.NoError(t, err)

	items := h.ListHighlights()
	require.Len(t, items, 3)
	assert.Equal(t, "Ladakh Bike Expedition", items[0].Title)
	assert.Equal(t, "Mystic Forest Trek", items[2].Title)
}

// ---- New / validation ------------------------------------------------------

func TestNew_Empty(t *testing.T) {
	c, err := catalog.New(nil)
	require.NoError(t, err)
	assert.Empty(t, c.ListDestinations())
}

func TestNew_ValidationErrors(t *testing.T) {
	cases := map[string]func(d *domain.Destination){
		"bad slug":          func(d *domain.Destination) { d.Slug = "Ladakh Valley" },
		"empty slug":        func(d *domain.Destination) { d.Slug = "" },
		"missing name":      func(d *domain.Destination) { d.Name = " " },
		"empty package":     func(d *domain.Destination) { d.Packages[0].Name = "" },
		"duplicate package": func(d *domain.Destination) { d.Packages[1].Name = d.Packages[0].Name },
		"rating too high":   func(d *domain.Destination) { d.Packages[0].Rating = 5.1 },
		"negative rating":   func(d *domain.Destination) { d.Packages[0].Rating = -0.1 },
		"negative reviews":  func(d *domain.Destination) { d.Packages[0].Reviews = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := ladakh()
			mutate(&d)

			_, err := catalog.New([]domain.Destination{d})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNew_AnchorCollision(t *testing.T) {
	d := ladakh()
	d.Packages[0].Name = "Leh-Manali"
	d.Packages[1].Name = "Leh Manali"

	_, err := catalog.New([]domain.Destination{d})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, `share anchor "pkg-leh-manali"`)
}

// TestNew_AnchorsScopedPerDestination verifies the same package name may
// appear under two destinations.
func TestNew_AnchorsScopedPerDestination(t *testing.T) {
	a, b := ladakh(), ladakh()
	b.Slug = "spiti"

	_, err := catalog.New([]domain.Destination{a, b})
	require.NoError(t, err)
}

func TestNew_DuplicateSlug(t *testing.T) {
	_, err := catalog.New([]domain.Destination{ladakh(), ladakh()})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "duplicate destination slug")
}

// TestListDestinations_returnsCopy verifies callers cannot mutate the catalog
// through the returned slice.
func TestListDestinations_returnsCopy(t *testing.T) {
	c, err := catalog.New([]domain.Destination{ladakh()})
	require.NoError(t, err)

	got := c.ListDestinations()
	got[0].Name = "changed"
	got[0].Packages[0].Name = "changed"
	got[0].Packages[0].Highlights[0] = "changed"

	again := c.ListDestinations()
	assert.Equal(t, "Ladakh", again[0].Name)
	assert.Equal(t, "Bike Expedition", again[0].Packages[0].Name)
	assert.Equal(t, "Rohtang Pass", again[0].Packages[0].Highlights[0])
}

// ---- Find ------------------------------------------------------------------

func TestFind(t *testing.T) {
	c, err := catalog.New([]domain.Destination{ladakh()})
	require.NoError(t, err)

	d, err := c.Find("ladakh")
	require.NoError(t, err)
	assert.Equal(t, "Ladakh", d.Name)

	_, err = c.Find("atlantis")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// fakeCatalog is a minimal Catalog that is not a *catalog.Static, forcing
// catalog.Find down its scanning path.
type fakeCatalog []domain.Destination

func (f fakeCatalog) ListDestinations() []domain.Destination { return f }

func TestFind_anyCatalog(t *testing.T) {
	c := fakeCatalog{ladakh()}

	d, err := catalog.Find(c, "ladakh")
	require.NoError(t, err)
	assert.Len(t, d.Packages, 2)

	_, err = catalog.Find(c, "spiti")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Load ------------------------------------------------------------------

func TestLoad_YAML(t *testing.T) {
	const doc = `
- slug: ladakh
  name: Ladakh
  tagline: High-altitude odysseys
  icon: mountain
  summary: Roof of the world.
  quick_facts: {best_time: June, start_point: Leh, travel_style: Adventure}
  packages:
    - name: Bike Expedition
      rating: 4.85
      reviews: 212
      price: "₹48,500"
      old_price: "₹54,000"
      highlights: [Rohtang Pass, Tanglang La, Sarchu]
`
	c, err := catalog.Load(strings.NewReader(doc))
	require.NoError(t, err)

	dests := c.ListDestinations()
	require.Len(t, dests, 1)
	p := dests[0].Packages[0]
	assert.Equal(t, 4.85, p.Rating)
	assert.Equal(t, "₹54,000", p.OldPrice)
	assert.Empty(t, p.Badge)
	assert.Equal(t, "Leh", dests[0].QuickFacts.StartPoint)
}

func TestLoad_EmptyDocument(t *testing.T) {
	c, err := catalog.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c.ListDestinations())
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := catalog.Load(strings.NewReader("- slug: ladakh\n  name: Ladakh\n  colour: red\n"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "colour")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- slug: spiti\n  name: Spiti Valley\n"), 0o600))

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, c.ListDestinations(), 1)

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewHighlights_Validation(t *testing.T) {
	_, err := catalog.NewHighlights([]domain.Highlight{{Title: "", Rating: 4}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = catalog.NewHighlights([]domain.Highlight{{Title: "Trek", Rating: 9}})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
