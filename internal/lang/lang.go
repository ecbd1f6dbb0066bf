// Package lang provides the language-aware text primitives used by the
// scoring engine: normalization, tokenization and edit distance.
// All functions are pure and safe for concurrent use.
package lang

// Class describes how a language treats apostrophes during tokenization.
type Class int

const (
	// ClassDefault splits on runs of word characters; apostrophes are
	// not preserved.
	ClassDefault Class = iota
	// ClassElision keeps apostrophes word-internal, as in Italian
	// "l'acqua" or French "j'ai".
	ClassElision
	// ClassSeparator keeps apostrophes inside contractions, as in
	// English "don't". Near-identical to ClassElision for this system;
	// the two differ only in edge handling of surrounding punctuation.
	ClassSeparator
)

// classByCode is the closed per-language table. Adding a language is a
// data edit here, not a code change.
var classByCode = map[string]Class{
	"it": ClassElision,
	"fr": ClassElision,
	"ca": ClassElision,
	"en": ClassSeparator,
}

// ClassFor returns the tokenization class for an ISO 639-1 language code.
// Unknown codes fall back to ClassDefault.
func ClassFor(code string) Class {
	if c, ok := classByCode[code]; ok {
		return c
	}
	return ClassDefault
}
