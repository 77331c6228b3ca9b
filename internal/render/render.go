// Package render turns view models into bytes: HTML pages via html/template,
// the XML sitemap and the PDF destination brochure.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/yosssi/gohtml"

	"github.com/wanderpeak/tours/internal/catalog"
	"github.com/wanderpeak/tours/internal/view"
	"github.com/wanderpeak/tours/web"
)

// Page names accepted by Renderer.
const (
	PageLanding      = "landing"
	PageDestinations = "destinations"
	PageDetail       = "detail"
	PageNotFound     = "notfound"
)

// sharedTemplates are parsed into every page set.
var sharedTemplates = []string{"templates/layout.html", "templates/partials.html"}

// Renderer renders full HTML pages. Templates are parsed once by New; a
// Renderer is safe for concurrent use.
type Renderer struct {
	pages  map[string]*template.Template
	pretty bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPretty makes the Renderer re-indent its output with gohtml.
func WithPretty(pretty bool) Option {
	return func(r *Renderer) { r.pretty = pretty }
}

// page is the data handed to the layout template.
type page struct {
	Title       string
	Description string
	Body        any
}

// New parses the templates in fsys. icons backs the {{icon "key"}} template
// function.
func New(fsys fs.FS, icons catalog.IconResolver, opts ...Option) (*Renderer, error) {
	funcs := template.FuncMap{
		"icon": func(key string) template.HTML { return icons.Resolve(key).SVG },
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{PageLanding, PageDestinations, PageDetail, PageNotFound} {
		files := append([]string{"templates/" + name + ".html"}, sharedTemplates...)
		t, err := template.New(name).Funcs(funcs).ParseFS(fsys, files...)
		if err != nil {
			return nil, fmt.Errorf("render.New: parse %s: %w", name, err)
		}
		r.pages[name] = t
	}

	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Default builds a Renderer over the templates embedded in the web package.
func Default(icons catalog.IconResolver, opts ...Option) (*Renderer, error) {
	return New(web.Templates, icons, opts...)
}

// Landing renders the home page with its highlight section.
func (r *Renderer) Landing(w io.Writer, s view.LandingSection) error {
	return r.render(w, PageLanding, page{
		Title:       "Adventure travel",
		Description: s.Intro,
		Body:        s,
	})
}

// Destinations renders the destinations browser.
func (r *Renderer) Destinations(w io.Writer, p view.BrowserPage) error {
	title := "Destinations"
	if p.Active != nil {
		title = "Tours in " + p.Active.Name
	}
	return r.render(w, PageDestinations, page{
		Title:       title,
		Description: "Curated journeys across the Himalayas.",
		Body:        p,
	})
}

// Detail renders a single destination page.
func (r *Renderer) Detail(w io.Writer, p view.DetailPage) error {
	return r.render(w, PageDetail, page{
		Title:       p.Name,
		Description: p.Summary,
		Body:        p,
	})
}

// NotFound renders the 404 page with message as its explanation.
func (r *Renderer) NotFound(w io.Writer, message string) error {
	return r.render(w, PageNotFound, page{Title: "Not found", Body: message})
}

// render executes the named page into a buffer first so a template failure
// never leaves a half-written response.
func (r *Renderer) render(w io.Writer, name string, data page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("render.Renderer: unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render.Renderer.%s: %w", name, err)
	}

	out := buf.Bytes()
	if r.pretty {
		out = gohtml.FormatBytes(out)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("render.Renderer.%s: write: %w", name, err)
	}
	return nil
}
