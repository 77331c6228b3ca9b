// Package data embeds the site's static content: the destination catalog and
// the curated landing-page highlights. Both are YAML documents decoded once at
// startup by the catalog package.
package data

import _ "embed"

// Destinations holds destinations.yaml, the ordered destination catalog.
//
//go:embed destinations.yaml
var Destinations []byte

// Highlights holds highlights.yaml, the three landing-page adventure cards.
// It is maintained separately from the catalog on purpose.
//
//go:embed highlights.yaml
var Highlights []byte
