package domain

import (
	"strings"
	"unicode"
)

// AnchorID turns a package name into an HTML id: "pkg-" followed by the
// lowercased letters and digits of name, runs of anything else collapsed
// to one hyphen. Names differing only in punctuation share an id, so the
// catalog rejects such pairs within a destination.
func AnchorID(name string) string {
	var b strings.Builder
	b.WriteString("pkg")
	dash := true
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash {
				b.WriteByte('-')
				dash = false
			}
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}
