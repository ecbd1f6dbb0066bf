package entities

// QuestionType distinguishes the two practice item kinds.
type QuestionType string

const (
	QuestionTranslate QuestionType = "translate" // translate a generated sentence
	QuestionRespond   QuestionType = "respond"   // reply to a conversation prompt
)

// Question is one ephemeral practice item. It is produced by the generator,
// consumed once by the orchestrator and scorer, and discarded after the round.
type Question struct {
	Type QuestionType

	// Translate items.
	SourceText string // sentence in the target language, to be translated for display

	// Respond items.
	PromptText          string   // the conversation line to react to
	RespondWithHint     string   // short instruction ("Accept and suggest a restaurant")
	AcceptableResponses []string // non-empty; the first one is canonical
	Keywords            []string // partial-credit keywords

	GrammarIDs []string // categories this item exercises, primary first
}

// PrimaryGrammar returns the first grammar id, or "" when untagged.
func (q *Question) PrimaryGrammar() string {
	if len(q.GrammarIDs) == 0 {
		return ""
	}
	return q.GrammarIDs[0]
}

// Reference returns the canonical expected answer for scoring and hints.
func (q *Question) Reference() string {
	if q.Type == QuestionRespond && len(q.AcceptableResponses) > 0 {
		return q.AcceptableResponses[0]
	}
	return q.SourceText
}
