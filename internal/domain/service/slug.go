package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a display name into a guild URL name: diacritics are
// folded away, the result is lowercased, and runs of whitespace collapse to
// single hyphens.
func Slugify(name string) string {
	folded, _, err := transform.String(deaccent, name)
	if err != nil {
		folded = name
	}

	folded = strings.ToLower(strings.TrimSpace(folded))
	return strings.Join(strings.Fields(folded), "-")
}
