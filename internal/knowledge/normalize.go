package knowledge

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	reNonWord  = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	reSpaces   = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes text for matching: combining marks are stripped,
// anything that is not a word character becomes a space, whitespace runs
// collapse to one space, and the result is trimmed and lowercased. Latin and
// Devanagari input go through the same path. Idempotent.
func Normalize(text string) string {
	text, _, _ = transform.String(stripMarks, text)
	text = reNonWord.ReplaceAllString(text, " ")
	text = reSpaces.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}
