package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/wanderpeak/tours/internal/domain"
	"github.com/wanderpeak/tours/internal/view"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Sitemap writes a sitemaps.org urlset listing the home page, the browser
// and one detail page per destination, all absolute under baseURL.
func Sitemap(w io.Writer, baseURL string, dests []domain.Destination) error {
	base := strings.TrimRight(baseURL, "/")

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNS)

	addURL := func(path, priority string) {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(base + path)
		u.CreateElement("priority").SetText(priority)
	}

	addURL(view.HomePath, "1.0")
	addURL(view.DestinationsPath, "0.8")
	for _, d := range dests {
		addURL(view.DestinationPath(d.Slug), "0.6")
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("render.Sitemap: %w", err)
	}
	return nil
}
