// Package web embeds the HTML templates and static assets (CSS, SVG icons,
// destination imagery) served by the site. Serving them from the binary keeps
// markup, assets and code in lockstep.
package web

import "embed"

// Templates holds the html/template sources under templates/.
//
//go:embed templates/*.html
var Templates embed.FS

// Static holds everything under static/, served at /static/.
//
//go:embed static
var Static embed.FS
