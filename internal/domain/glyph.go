package domain

import "html/template"

// Glyph is a renderable icon: the registry key it was resolved under and the
// inline SVG markup to embed in a page.
type Glyph struct {
	Key string
	SVG template.HTML
}
