package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffAllMatch(t *testing.T) {
	tokens, missing := Diff("the cat sat", "the cat sat", "en")

	require.Len(t, tokens, 3)
	for _, tok := range tokens {
		assert.Equal(t, DiffMatch, tok.Class)
	}
	assert.Empty(t, missing)
}

func TestDiffCloseWord(t *testing.T) {
	tokens, missing := Diff("the cat sit", "the cat sat", "en")

	require.Len(t, tokens, 3)
	assert.Equal(t, DiffMatch, tokens[0].Class)
	assert.Equal(t, DiffMatch, tokens[1].Class)
	assert.Equal(t, DiffClose, tokens[2].Class)
	assert.Equal(t, "sat", tokens[2].Suggestion)
	assert.Empty(t, missing)
}

func TestDiffExtraAndMissing(t *testing.T) {
	tokens, missing := Diff("the dog jumped", "the cat sat", "en")

	require.Len(t, tokens, 3)
	assert.Equal(t, DiffMatch, tokens[0].Class)
	// "dog" is within distance 2 of "cat"? d-c, o-a, g-t: three edits, so extra.
	assert.Equal(t, DiffExtra, tokens[1].Class)
	assert.Equal(t, DiffExtra, tokens[2].Class)
	assert.Equal(t, []string{"cat", "sat"}, missing)
}

func TestDiffCloseThresholdLooserThanScorer(t *testing.T) {
	// Two edits away: invisible to the similarity score, still "close" here.
	tokens, _ := Diff("kat", "cats", "en")

	require.Len(t, tokens, 1)
	assert.Equal(t, DiffClose, tokens[0].Class)
	assert.Equal(t, "cats", tokens[0].Suggestion)
}

func TestDiffKeepsOriginalSpelling(t *testing.T) {
	tokens, missing := Diff("El Niño come", "el niño come", "es")

	require.Len(t, tokens, 3)
	for _, tok := range tokens {
		assert.Equal(t, DiffMatch, tok.Class)
	}
	// Token text keeps the submitted casing.
	assert.Equal(t, "El", tokens[0].Token)
	assert.Empty(t, missing)
}

func TestDiffEmptySubmission(t *testing.T) {
	tokens, missing := Diff("", "the cat", "en")

	assert.Empty(t, tokens)
	assert.Equal(t, []string{"the", "cat"}, missing)
}
