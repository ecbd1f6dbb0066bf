package entities

// SessionStats are lifetime review counters kept with the state blob.
// They only reset on an explicit progress wipe.
type SessionStats struct {
	TotalReviews   int `json:"totalReviews"`
	CorrectReviews int `json:"correctReviews"`
}

// Accuracy returns the overall review accuracy as a percentage (0-100).
func (s SessionStats) Accuracy() int {
	if s.TotalReviews == 0 {
		return 0
	}
	return int(float64(s.CorrectReviews)/float64(s.TotalReviews)*100 + 0.5)
}

// TrainerState is the complete per-user scheduler state. It is persisted as
// a single serialized blob and must round-trip through JSON exactly,
// timestamps included.
type TrainerState struct {
	GrammarProgress map[string]*GrammarProgress `json:"grammarProgress"`
	SessionStats    SessionStats                `json:"sessionStats"`
	Settings        SRSSettings                 `json:"settings"`
}

// NewTrainerState returns the documented default state: no progress,
// zeroed counters, default scheduler settings.
func NewTrainerState() *TrainerState {
	return &TrainerState{
		GrammarProgress: make(map[string]*GrammarProgress),
		Settings:        DefaultSRSSettings(),
	}
}

// Progress returns the progress record for a category, creating a fresh
// "new" record on first access.
func (ts *TrainerState) Progress(grammarID string) *GrammarProgress {
	if ts.GrammarProgress == nil {
		ts.GrammarProgress = make(map[string]*GrammarProgress)
	}
	p, ok := ts.GrammarProgress[grammarID]
	if !ok {
		p = NewGrammarProgress()
		ts.GrammarProgress[grammarID] = p
	}
	return p
}

// Wipe resets all progress and counters, keeping the settings.
func (ts *TrainerState) Wipe() {
	ts.GrammarProgress = make(map[string]*GrammarProgress)
	ts.SessionStats = SessionStats{}
}
