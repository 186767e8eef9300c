package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize converts raw clinical text into its canonical form: diacritics
// folded, lowercased, and whitespace collapsed to single spaces. The result
// is used as the cache key and as classifier input, so it must be pure and
// deterministic: the same raw text always yields the same normalized form.
func Normalize(raw string) string {
	s := foldDiacritics(raw)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// foldDiacritics strips combining marks so accented characters match their
// plain ASCII keyword forms.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
