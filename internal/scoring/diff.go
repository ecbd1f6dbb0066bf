package scoring

import (
	"strings"
	"unicode"

	"github.com/aliskhannn/lingua-trainer-bot/internal/lang"
)

// closeWordDistance is the edit distance (1-2) at which a submitted token
// is shown as "close" to a reference token in the diff. Looser than the
// scorer's same-word threshold on purpose.
const closeWordDistance = 2

// DiffClass classifies one submitted token against the reference.
type DiffClass string

const (
	DiffMatch DiffClass = "match" // exact normalized match
	DiffClose DiffClass = "close" // within edit distance 2 of a reference token
	DiffExtra DiffClass = "extra" // nothing comparable left in the reference
)

// DiffToken is one classified token of the submission. Suggestion holds the
// reference token a "close" word resembles, in its original spelling.
type DiffToken struct {
	Token      string
	Class      DiffClass
	Suggestion string
}

// Diff classifies every submitted token and reports the reference tokens
// that were never claimed as missing. It walks the submission in order and
// claims reference tokens greedily first-fit, mirroring the scorer's
// matching discipline: an exact scan first, then a close scan allowing
// edit distance up to 2.
func Diff(submitted, reference, targetLang string) ([]DiffToken, []string) {
	subWords := lang.Tokenize(submitted, targetLang)
	refWords := lang.Tokenize(reference, targetLang)

	subNorm := make([]string, len(subWords))
	for i, w := range subWords {
		subNorm[i] = diffNormalize(w)
	}
	refNorm := make([]string, len(refWords))
	for i, w := range refWords {
		refNorm[i] = diffNormalize(w)
	}

	used := make([]bool, len(refWords))
	tokens := make([]DiffToken, 0, len(subWords))

	for i, word := range subWords {
		exact := -1
		for j, ref := range refNorm {
			if !used[j] && subNorm[i] == ref {
				exact = j
				break
			}
		}
		if exact >= 0 {
			used[exact] = true
			tokens = append(tokens, DiffToken{Token: word, Class: DiffMatch})
			continue
		}

		closest := -1
		for j, ref := range refNorm {
			if !used[j] && lang.Distance(subNorm[i], ref) <= closeWordDistance {
				closest = j
				break
			}
		}
		if closest >= 0 {
			used[closest] = true
			tokens = append(tokens, DiffToken{Token: word, Class: DiffClose, Suggestion: refWords[closest]})
			continue
		}

		tokens = append(tokens, DiffToken{Token: word, Class: DiffExtra})
	}

	var missing []string
	for j, word := range refWords {
		if !used[j] {
			missing = append(missing, word)
		}
	}

	return tokens, missing
}

// diffNormalize strips everything but word characters before comparison,
// apostrophes included; the diff compares bare word cores.
func diffNormalize(word string) string {
	w := lang.NormalizeWord(word)
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, w)
}
