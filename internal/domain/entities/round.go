package entities

import "time"

// PracticeRound is the single in-flight question for a chat, together with
// its provider-resolved texts and the ephemeral session counters. It lives
// only in memory; a newer round simply supersedes it.
type PracticeRound struct {
	Question Question

	DisplayText string   // what the learner sees (native language for translate, target for respond)
	Reference   string   // canonical expected answer in the target language
	Responses   []string // all acceptable answers in the target language (respond mode)

	HintsUsed int
	Score     int // session score, carried across rounds
	Streak    int // consecutive rounds at 80%+ similarity
	StartedAt time.Time
}
