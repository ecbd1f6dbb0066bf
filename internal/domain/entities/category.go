package entities

// Level is a CEFR proficiency level ("A1" .. "C2").
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// ParseLevel validates a CEFR level string.
func ParseLevel(s string) (Level, bool) {
	switch Level(s) {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return Level(s), true
	}
	return "", false
}

// GrammarCategory describes a grammar skill tracked independently by the
// spaced repetition scheduler. Questions reference categories by ID.
type GrammarCategory struct {
	ID          string
	Name        string
	Level       Level
	Description string
}
