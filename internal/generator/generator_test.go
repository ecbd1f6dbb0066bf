package generator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
)

func TestSentenceDeterministicWithSeed(t *testing.T) {
	a := NewWithRand(rand.New(rand.NewSource(42)))
	b := NewWithRand(rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		sa, _ := a.Sentence(entities.LevelB1, "")
		sb, _ := b.Sentence(entities.LevelB1, "")
		assert.Equal(t, sa, sb)
	}
}

func TestSentenceNoUnfilledSlots(t *testing.T) {
	g := NewWithRand(rand.New(rand.NewSource(7)))

	for _, level := range g.Levels() {
		for i := 0; i < 50; i++ {
			sentence, grammar := g.Sentence(level, "")
			assert.NotContains(t, sentence, "{", "level %s: %q", level, sentence)
			assert.NotContains(t, sentence, "}", "level %s: %q", level, sentence)
			assert.NotEmpty(t, grammar)
		}
	}
}

func TestSentenceTargetsGrammar(t *testing.T) {
	g := NewWithRand(rand.New(rand.NewSource(3)))

	for i := 0; i < 30; i++ {
		_, grammar := g.Sentence(entities.LevelA2, "comparatives")
		assert.Contains(t, grammar, "comparatives")
	}
}

func TestSentenceUnknownGrammarFallsBackToLevel(t *testing.T) {
	g := NewWithRand(rand.New(rand.NewSource(3)))

	sentence, grammar := g.Sentence(entities.LevelA1, "no-such-grammar")
	assert.NotEmpty(t, sentence)
	assert.NotEmpty(t, grammar)
}

func TestSentenceMissingLevelFallback(t *testing.T) {
	g := NewWithRand(rand.New(rand.NewSource(3)))

	sentence, grammar := g.Sentence(entities.Level("Z9"), "")
	assert.Equal(t, "Hello, how are you?", sentence)
	assert.Equal(t, []string{"greetings"}, grammar)
}

func TestExpandAvoidsRepeatedSlotValues(t *testing.T) {
	tpl := Template{
		Pattern: "{city} is bigger than {city2}.",
		Slots:   map[string]string{"city": "cities", "city2": "cities"},
		Grammar: []string{"comparatives"},
	}

	g := NewWithRand(rand.New(rand.NewSource(11)))
	for i := 0; i < 100; i++ {
		sentence := g.expand(tpl)
		parts := strings.Split(strings.TrimSuffix(sentence, "."), " is bigger than ")
		require.Len(t, parts, 2, sentence)
		assert.NotEqual(t, parts[0], parts[1], "same city on both sides: %q", sentence)
	}
}

func TestConversationPromptFallsBackToA1(t *testing.T) {
	g := NewWithRand(rand.New(rand.NewSource(5)))

	p, ok := g.ConversationPrompt(entities.Level("Z9"), "")
	require.True(t, ok)
	assert.NotEmpty(t, p.Prompt)
	assert.NotEmpty(t, p.Responses)
}

func TestConversationPromptTargetsGrammar(t *testing.T) {
	g := NewWithRand(rand.New(rand.NewSource(5)))

	for i := 0; i < 50; i++ {
		p, ok := g.ConversationPrompt(entities.LevelA1, "polite-expressions")
		require.True(t, ok)
		assert.Contains(t, p.Grammar, "polite-expressions")
	}
}

func TestConversationPromptUnknownGrammarFallsBack(t *testing.T) {
	g := NewWithRand(rand.New(rand.NewSource(5)))

	p, ok := g.ConversationPrompt(entities.LevelA1, "no-such-grammar")
	require.True(t, ok)
	assert.NotEmpty(t, p.Prompt)
}

func TestQuestionRespondTargetsGrammar(t *testing.T) {
	g := NewWithRand(rand.New(rand.NewSource(17)))

	var responds int
	for i := 0; i < 200; i++ {
		q := g.Question(entities.LevelA1, "polite-expressions")
		if q.Type != entities.QuestionRespond {
			continue
		}
		responds++
		assert.Contains(t, q.GrammarIDs, "polite-expressions", "prompt %q", q.PromptText)
	}
	assert.Greater(t, responds, 0)
}

func TestSentenceAvoidsRecentRepeats(t *testing.T) {
	g := NewWithRand(rand.New(rand.NewSource(21)))

	seen := make(map[string]bool)
	for i := 0; i < 30; i++ {
		sentence, _ := g.Sentence(entities.LevelB1, "")
		assert.False(t, seen[sentence], "repeated sentence %q", sentence)
		seen[sentence] = true
	}
}

func TestSentenceRecentMemoryBounded(t *testing.T) {
	g := NewWithRand(rand.New(rand.NewSource(21)))

	for i := 0; i < 300; i++ {
		g.Sentence(entities.LevelB1, "")
	}
	assert.LessOrEqual(t, len(g.recent), recentSentenceCap)
}

func TestQuestionMix(t *testing.T) {
	g := NewWithRand(rand.New(rand.NewSource(9)))

	var translates, responds int
	for i := 0; i < 200; i++ {
		q := g.Question(entities.LevelA1, "")
		switch q.Type {
		case entities.QuestionRespond:
			responds++
			assert.NotEmpty(t, q.PromptText)
			assert.NotEmpty(t, q.AcceptableResponses)
			assert.NotEmpty(t, q.GrammarIDs)
			assert.Equal(t, q.AcceptableResponses[0], q.Reference())
		case entities.QuestionTranslate:
			translates++
			assert.NotEmpty(t, q.SourceText)
			assert.NotEmpty(t, q.GrammarIDs)
			assert.Equal(t, q.SourceText, q.Reference())
		}
	}

	assert.Greater(t, translates, 0)
	assert.Greater(t, responds, 0)
}

func TestLevels(t *testing.T) {
	g := New()
	levels := g.Levels()

	assert.Equal(t, []entities.Level{
		entities.LevelA1, entities.LevelA2, entities.LevelB1,
		entities.LevelB2, entities.LevelC1, entities.LevelC2,
	}, levels)
}

func TestEstimateSentenceCount(t *testing.T) {
	assert.Greater(t, EstimateSentenceCount(), int64(1000))
}

func TestCategoryLookups(t *testing.T) {
	cat, ok := Category("present-perfect")
	require.True(t, ok)
	assert.Equal(t, "Present Perfect", cat.Name)
	assert.Equal(t, entities.LevelB1, cat.Level)

	_, ok = Category("no-such-id")
	assert.False(t, ok)

	a1 := CategoriesForLevel(entities.LevelA1)
	assert.NotEmpty(t, a1)
	for _, c := range a1 {
		assert.Equal(t, entities.LevelA1, c.Level)
	}
}

func TestPromptTablesWellFormed(t *testing.T) {
	for level, prompts := range conversationPrompts {
		for _, p := range prompts {
			assert.NotEmpty(t, p.Prompt, "level %s", level)
			assert.NotEmpty(t, p.Responses, "level %s prompt %q", level, p.Prompt)
			assert.NotEmpty(t, p.Grammar, "level %s prompt %q", level, p.Prompt)
		}
	}
}

func TestTemplateSlotsResolve(t *testing.T) {
	for level, templates := range sentenceTemplates {
		for _, tpl := range templates {
			for slotName, vocabKey := range tpl.Slots {
				baseKey := strings.TrimRight(vocabKey, "0123456789")
				_, ok := vocab[baseKey]
				if !ok {
					_, ok = vocab[vocabKey]
				}
				assert.True(t, ok, "level %s template %q slot %s references unknown pool %q",
					level, tpl.Pattern, slotName, vocabKey)
			}
		}
	}
}
