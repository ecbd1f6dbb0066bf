// Package generator produces practice material from slot-based sentence
// templates and conversation prompts, organized by CEFR level.
package generator

import (
	"math/rand"
	"strings"
	"time"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
)

// respondChance is the probability that a generated question is a
// conversation-response item rather than a translation item.
const respondChance = 0.3

// slot expansion retries before accepting a repeated value.
const maxSlotAttempts = 10

// Recently served sentences are avoided; after maxSentenceAttempts retries a
// repeat is accepted. The memory clears once it grows past recentSentenceCap
// so small levels keep cycling.
const (
	maxSentenceAttempts = 10
	recentSentenceCap   = 50
)

// Generator builds practice sentences and questions.
type Generator struct {
	rng    *rand.Rand
	recent map[string]bool
}

// New creates a Generator with its own randomness source.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a Generator driven by the given source. Used in tests
// for reproducible output.
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{
		rng:    rng,
		recent: make(map[string]bool),
	}
}

// Sentence generates one sentence for the level. When targetGrammar is
// non-empty, templates exercising that grammar are preferred; if none match,
// any template of the level is used. Returns the sentence and the grammar
// ids it exercises.
func (g *Generator) Sentence(level entities.Level, targetGrammar string) (string, []string) {
	templates := sentenceTemplates[level]
	if len(templates) == 0 {
		return "Hello, how are you?", []string{"greetings"}
	}

	if targetGrammar != "" {
		filtered := make([]Template, 0, len(templates))
		for _, t := range templates {
			if containsString(t.Grammar, targetGrammar) {
				filtered = append(filtered, t)
			}
		}
		if len(filtered) > 0 {
			templates = filtered
		}
	}

	tpl := templates[g.rng.Intn(len(templates))]
	sentence := g.expand(tpl)
	for attempts := 1; attempts < maxSentenceAttempts && g.recent[sentence]; attempts++ {
		tpl = templates[g.rng.Intn(len(templates))]
		sentence = g.expand(tpl)
	}

	g.recent[sentence] = true
	if len(g.recent) > recentSentenceCap {
		g.recent = make(map[string]bool)
	}

	return sentence, tpl.Grammar
}

// expand fills every slot of the template with vocabulary, avoiding the same
// value twice within one sentence ("Paris is bigger than Paris").
func (g *Generator) expand(tpl Template) string {
	sentence := tpl.Pattern
	used := make(map[string][]string)

	for slotName, vocabKey := range tpl.Slots {
		baseKey := strings.TrimRight(vocabKey, "0123456789")
		pool, ok := vocab[baseKey]
		if !ok {
			pool, ok = vocab[vocabKey]
		}
		if !ok {
			continue
		}

		var value string
		for attempts := 0; attempts < maxSlotAttempts; attempts++ {
			value = pool[g.rng.Intn(len(pool))]
			if !containsString(used[baseKey], value) {
				break
			}
		}
		used[baseKey] = append(used[baseKey], value)

		sentence = strings.Replace(sentence, "{"+slotName+"}", value, 1)
	}

	return sentence
}

// ConversationPrompt picks a prompt for the level. When targetGrammar is
// non-empty, prompts exercising that grammar are preferred; if none match,
// any prompt of the level is used, falling back to A1 when the level has
// none at all.
func (g *Generator) ConversationPrompt(level entities.Level, targetGrammar string) (Prompt, bool) {
	prompts := conversationPrompts[level]
	if len(prompts) == 0 {
		prompts = conversationPrompts[entities.LevelA1]
	}
	if len(prompts) == 0 {
		return Prompt{}, false
	}

	if targetGrammar != "" {
		filtered := make([]Prompt, 0, len(prompts))
		for _, p := range prompts {
			if containsString(p.Grammar, targetGrammar) {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) > 0 {
			prompts = filtered
		}
	}

	return prompts[g.rng.Intn(len(prompts))], true
}

// Question generates one practice item for the level. Roughly 30% of items
// are conversation responses when the level has prompts; the rest are
// translation items. Both kinds are steered toward targetGrammar when one
// is given.
func (g *Generator) Question(level entities.Level, targetGrammar string) *entities.Question {
	if len(conversationPrompts[level]) > 0 && g.rng.Float64() < respondChance {
		p, ok := g.ConversationPrompt(level, targetGrammar)
		if ok {
			return &entities.Question{
				Type:                entities.QuestionRespond,
				PromptText:          p.Prompt,
				RespondWithHint:     p.RespondWith,
				AcceptableResponses: p.Responses,
				Keywords:            p.Keywords,
				GrammarIDs:          p.Grammar,
			}
		}
	}

	sentence, grammar := g.Sentence(level, targetGrammar)
	return &entities.Question{
		Type:       entities.QuestionTranslate,
		SourceText: sentence,
		GrammarIDs: grammar,
	}
}

// Levels lists the levels that have sentence templates, lowest first.
func (g *Generator) Levels() []entities.Level {
	all := []entities.Level{
		entities.LevelA1, entities.LevelA2, entities.LevelB1,
		entities.LevelB2, entities.LevelC1, entities.LevelC2,
	}
	out := make([]entities.Level, 0, len(all))
	for _, lvl := range all {
		if len(sentenceTemplates[lvl]) > 0 {
			out = append(out, lvl)
		}
	}
	return out
}

// EstimateSentenceCount returns the number of distinct sentences the
// templates can produce, assuming independent slot choices.
func EstimateSentenceCount() int64 {
	var total int64
	for _, templates := range sentenceTemplates {
		for _, tpl := range templates {
			combos := int64(1)
			for _, vocabKey := range tpl.Slots {
				baseKey := strings.TrimRight(vocabKey, "0123456789")
				if pool, ok := vocab[baseKey]; ok {
					combos *= int64(len(pool))
				}
			}
			total += combos
		}
	}
	return total
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
