// Package service assembles whole-site operations out of the catalog, view
// and render layers. It has no HTTP dependency.
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/wanderpeak/tours/internal/catalog"
	"github.com/wanderpeak/tours/internal/render"
	"github.com/wanderpeak/tours/internal/view"
)

// Pages renders the HTML pages of the site.
type Pages interface {
	Landing(w io.Writer, s view.LandingSection) error
	Destinations(w io.Writer, p view.BrowserPage) error
	Detail(w io.Writer, p view.DetailPage) error
}

// ExportService writes the site as a tree of static files.
type ExportService struct {
	catalog    catalog.Catalog
	highlights catalog.HighlightSource
	icons      catalog.IconResolver
	pages      Pages
	assets     fs.FS
}

// NewExportService constructs an ExportService. assets is copied verbatim
// under static/; pass nil to skip it.
func NewExportService(c catalog.Catalog, h catalog.HighlightSource, icons catalog.IconResolver, pages Pages, assets fs.FS) *ExportService {
	return &ExportService{catalog: c, highlights: h, icons: icons, pages: pages, assets: assets}
}

// Export renders every page into dir and returns the slash-separated paths
// written, relative to dir. Each page lands at <route>/index.html so the
// tree can be served by any static file host; that includes one
// regions/<slug>/index.html per destination, which the region selectors
// link to.
func (s *ExportService) Export(ctx context.Context, dir, baseURL string) ([]string, error) {
	var written []string
	write := func(name string, render func(io.Writer) error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		if err := writeFile(dir, name, buf.Bytes()); err != nil {
			return err
		}
		written = append(written, name)
		return nil
	}

	dests := s.catalog.ListDestinations()

	landing := view.BuildLanding(s.highlights.ListHighlights())
	if err := write("index.html", func(w io.Writer) error {
		return s.pages.Landing(w, landing)
	}); err != nil {
		return written, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	browser := view.BuildBrowser(dests, s.icons, view.NewSelection(dests))
	if err := write("destinations/index.html", func(w io.Writer) error {
		return s.pages.Destinations(w, browser)
	}); err != nil {
		return written, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	for _, d := range dests {
		sel := view.NewSelection(dests)
		sel.Select(d.Slug)
		region := view.BuildBrowser(dests, s.icons, sel)
		if err := write(path.Join(strings.TrimPrefix(view.RegionPath(d.Slug), "/"), "index.html"), func(w io.Writer) error {
			return s.pages.Destinations(w, region)
		}); err != nil {
			return written, fmt.Errorf("service.ExportService.Export: %w", err)
		}

		detail := view.BuildDetail(d, s.icons, "")
		base := path.Join("destinations", d.Slug)
		if err := write(path.Join(base, "index.html"), func(w io.Writer) error {
			return s.pages.Detail(w, detail)
		}); err != nil {
			return written, fmt.Errorf("service.ExportService.Export: %w", err)
		}
		if err := write(path.Join(base, "brochure.pdf"), func(w io.Writer) error {
			return render.Brochure(w, d)
		}); err != nil {
			return written, fmt.Errorf("service.ExportService.Export: %w", err)
		}
	}

	if err := write("sitemap.xml", func(w io.Writer) error {
		return render.Sitemap(w, baseURL, dests)
	}); err != nil {
		return written, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	if s.assets == nil {
		return written, nil
	}
	err := fs.WalkDir(s.assets, ".", func(p string, e fs.DirEntry, err error) error {
		if err != nil || e.IsDir() {
			return err
		}
		data, err := fs.ReadFile(s.assets, p)
		if err != nil {
			return err
		}
		return write(path.Join("static", p), func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		})
	})
	if err != nil {
		return written, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	return written, nil
}

func writeFile(dir, name string, data []byte) error {
	full := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}
