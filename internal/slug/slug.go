// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// decomposes, drops combining marks (diacritics), recomposes
	deaccent = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	whitespace = regexp.MustCompile(`\s+`)
	nonWord    = regexp.MustCompile(`[^\w-]+`)
	dashes     = regexp.MustCompile(`-{2,}`)
)

// Make normalizes value into a lowercase, hyphen-separated slug. The transform
// is deterministic and idempotent: whitespace becomes hyphens, "&" becomes
// "-and-", diacritics are stripped, anything outside [a-z0-9_-] is dropped,
// and runs of hyphens collapse. Input with no ASCII word characters (for
// example Arabic-only text) yields an empty slug.
func Make(value string) string {
	s, _, err := transform.String(deaccent, value)
	if err != nil {
		s = value
	}
	s = strings.ToLower(s)
	s = whitespace.ReplaceAllString(s, "-")
	s = strings.ReplaceAll(s, "&", "-and-")
	s = nonWord.ReplaceAllString(s, "")
	s = dashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
