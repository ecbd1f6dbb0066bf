package lang

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics decomposes accented characters and removes the combining
// marks, so "café" becomes "cafe". Input that fails to transform is
// returned unchanged.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize lowercases the text, strips diacritics, removes every character
// except word characters, whitespace and apostrophes, and trims the result.
// Curly apostrophes are folded to the ASCII form first.
func Normalize(text string) string {
	s := foldApostrophes(strings.ToLower(text))
	s = StripDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isWordRune(r) || unicode.IsSpace(r) || r == '\'' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// NormalizeWord lowercases a single token and strips diacritics, keeping
// apostrophes intact. This is the per-token form the scorer aligns on.
func NormalizeWord(word string) string {
	return StripDiacritics(foldApostrophes(strings.ToLower(word)))
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func foldApostrophes(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '’' || r == '‘' {
			return '\''
		}
		return r
	}, s)
}
