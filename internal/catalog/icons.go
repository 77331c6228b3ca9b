package catalog

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/wanderpeak/tours/internal/domain"
	"github.com/wanderpeak/tours/web"
)

// DefaultIconKey is the glyph every unrecognised icon key resolves to.
const DefaultIconKey = "map-pin"

// IconResolver maps symbolic icon keys to renderable glyphs.
// Resolve never fails: unknown keys yield a deterministic fallback glyph.
type IconResolver interface {
	Resolve(key string) domain.Glyph
}

// SVGIcons is an IconResolver backed by a directory of <key>.svg files.
type SVGIcons struct {
	glyphs   map[string]domain.Glyph
	fallback domain.Glyph
}

// NewSVGIcons loads every *.svg file at the root of fsys, keyed by file name
// without extension. fsys must contain DefaultIconKey + ".svg".
func NewSVGIcons(fsys fs.FS) (*SVGIcons, error) {
	matches, err := fs.Glob(fsys, "*.svg")
	if err != nil {
		return nil, fmt.Errorf("catalog.NewSVGIcons: %w", err)
	}

	icons := &SVGIcons{glyphs: make(map[string]domain.Glyph, len(matches))}
	for _, name := range matches {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("catalog.NewSVGIcons: read %s: %w", name, err)
		}
		key := strings.TrimSuffix(path.Base(name), ".svg")
		// Icon files are trusted build-time assets embedded in the binary.
		icons.glyphs[key] = domain.Glyph{Key: key, SVG: template.HTML(strings.TrimSpace(string(raw)))}
	}

	fallback, ok := icons.glyphs[DefaultIconKey]
	if !ok {
		return nil, fmt.Errorf("catalog.NewSVGIcons: fallback icon %q missing", DefaultIconKey)
	}
	icons.fallback = fallback
	return icons, nil
}

// DefaultIcons returns the icon set embedded under web/static/icons.
func DefaultIcons() (*SVGIcons, error) {
	sub, err := fs.Sub(web.Static, "static/icons")
	if err != nil {
		return nil, fmt.Errorf("catalog.DefaultIcons: %w", err)
	}
	return NewSVGIcons(sub)
}

// Resolve returns the glyph registered under key, or the DefaultIconKey
// glyph when key is unknown.
func (i *SVGIcons) Resolve(key string) domain.Glyph {
	if g, ok := i.glyphs[key]; ok {
		return g
	}
	return i.fallback
}
