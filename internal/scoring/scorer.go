// Package scoring compares a learner's submission against reference answers.
// It produces a 0-100 similarity score and a word-level diff, both built on
// the same greedy first-fit alignment so the number and the displayed
// feedback always agree.
package scoring

import (
	"math"
	"strings"

	"github.com/aliskhannn/lingua-trainer-bot/internal/lang"
)

// sameWordDistance is the edit distance at which two tokens still count as
// the same word for the similarity score. The diff's "close" threshold is
// deliberately looser; the two constants must never be unified.
const sameWordDistance = 1

// Score returns the 0-100 similarity between a submission and a reference,
// tokenizing both with the target language's rules.
//
// The alignment is greedy first-fit: each submitted token, in order, claims
// the first unused reference token that is identical or within edit
// distance 1. This is intentionally not an optimal bipartite matching; the
// quality thresholds downstream were calibrated against the greedy
// behavior, and the result is allowed to be asymmetric in its arguments.
func Score(submitted, reference, targetLang string) int {
	if lang.Normalize(submitted) == lang.Normalize(reference) {
		return 100
	}

	subWords := normalizeAll(lang.Tokenize(submitted, targetLang))
	refWords := normalizeAll(lang.Tokenize(reference, targetLang))

	maxLen := max(len(subWords), len(refWords))
	if maxLen == 0 {
		return 0
	}

	used := make([]bool, len(refWords))
	matches := 0
	for _, w := range subWords {
		for i, ref := range refWords {
			if used[i] {
				continue
			}
			if w == ref || lang.Distance(w, ref) <= sameWordDistance {
				used[i] = true
				matches++
				break
			}
		}
	}

	return int(math.Round(float64(matches) / float64(maxLen) * 100))
}

// KeywordBonus returns 0-10 extra points for keywords found in the
// submission. A keyword matches as a normalized substring, not token-exact.
func KeywordBonus(submitted string, keywords []string) int {
	if len(keywords) == 0 {
		return 0
	}

	norm := lang.NormalizeWord(submitted)
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(norm, lang.NormalizeWord(kw)) {
			matched++
		}
	}

	return int(math.Round(float64(matched) / float64(len(keywords)) * 10))
}

// BestResponse scores a respond-mode submission against every acceptable
// response and returns the combined score (best similarity plus keyword
// bonus, capped at 100) together with the best-matching response.
func BestResponse(submitted string, responses, keywords []string, targetLang string) (int, string) {
	best := 0
	bestMatch := ""
	for _, r := range responses {
		if s := Score(submitted, r, targetLang); s > best || bestMatch == "" {
			best = s
			bestMatch = r
		}
	}

	return min(100, best+KeywordBonus(submitted, keywords)), bestMatch
}

func normalizeAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = lang.NormalizeWord(t)
	}
	return out
}
