package lang

import "regexp"

var (
	// Elision languages: split on whitespace and punctuation but keep an
	// apostrophe attached to its surrounding letters, then discard tokens
	// carrying no word character or apostrophe.
	elisionRe    = regexp.MustCompile(`[0-9A-Za-z_']+|[^\s0-9A-Za-z_']+`)
	hasWordRe    = regexp.MustCompile(`[0-9A-Za-z_']`)
	separatorRe  = regexp.MustCompile(`[0-9A-Za-z_']+`)
	defaultRe    = regexp.MustCompile(`[0-9A-Za-z_\x{00C0}-\x{024F}]+`)
)

// Tokenize splits text into word tokens using the apostrophe rules of the
// given language code. "l'acqua" stays one token in Italian, "don't" stays
// one token in English, and the default class splits on runs of word
// characters including the extended Latin diacritic range.
func Tokenize(text, code string) []string {
	text = foldApostrophes(text)

	switch ClassFor(code) {
	case ClassElision:
		raw := elisionRe.FindAllString(text, -1)
		tokens := make([]string, 0, len(raw))
		for _, t := range raw {
			if hasWordRe.MatchString(t) {
				tokens = append(tokens, t)
			}
		}
		return tokens
	case ClassSeparator:
		return separatorRe.FindAllString(text, -1)
	default:
		return defaultRe.FindAllString(text, -1)
	}
}
