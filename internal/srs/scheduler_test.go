package srs

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestScheduler(state *entities.TrainerState) *Scheduler {
	return NewWithClock(state, func() time.Time { return testNow }, rand.New(rand.NewSource(1)))
}

func daysAgo(n int) *time.Time {
	t := testNow.AddDate(0, 0, -n)
	return &t
}

func TestSimilarityToQuality(t *testing.T) {
	tests := []struct {
		similarity int
		want       entities.Quality
	}{
		{100, entities.QualityPerfect},
		{95, entities.QualityPerfect},
		{94, entities.QualityHesitation},
		{92, entities.QualityHesitation},
		{85, entities.QualityHesitation},
		{84, entities.QualityDifficult},
		{70, entities.QualityDifficult},
		{69, entities.QualityAlmost},
		{50, entities.QualityAlmost},
		{49, entities.QualityIncorrect},
		{25, entities.QualityIncorrect},
		{24, entities.QualityBlackout},
		{0, entities.QualityBlackout},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SimilarityToQuality(tt.similarity), "similarity %d", tt.similarity)
	}
}

func TestProcessReviewScenario(t *testing.T) {
	s := newTestScheduler(nil)

	r := s.ProcessReview("present-simple", entities.QualityHesitation)
	assert.Equal(t, 1, r.NewInterval)
	assert.Equal(t, entities.StatusReviewing, r.Status)

	r = s.ProcessReview("present-simple", entities.QualityHesitation)
	assert.Equal(t, 3, r.NewInterval)

	r = s.ProcessReview("present-simple", entities.QualityHesitation)
	assert.Equal(t, 8, r.NewInterval, "3 × 2.5 rounds to 8")
	assert.Equal(t, testNow.AddDate(0, 0, 8), r.NextReview)

	stats := s.state.SessionStats
	assert.Equal(t, 3, stats.TotalReviews)
	assert.Equal(t, 3, stats.CorrectReviews)
}

func TestProcessReviewFailureCountsAttempt(t *testing.T) {
	s := newTestScheduler(nil)

	r := s.ProcessReview("past-simple", entities.QualityBlackout)
	assert.Equal(t, 0, r.NewInterval)
	assert.Equal(t, entities.StatusLearning, r.Status)
	assert.Equal(t, 1, s.state.SessionStats.TotalReviews)
	assert.Equal(t, 0, s.state.SessionStats.CorrectReviews)
}

func TestDueReviewsFiltersAndSorts(t *testing.T) {
	state := entities.NewTrainerState()
	state.GrammarProgress["present-simple"] = &entities.GrammarProgress{
		EaseFactor: 2.5, Interval: 3, NextReview: daysAgo(1),
		TotalAttempts: 4, CorrectAttempts: 4, Status: entities.StatusReviewing,
	}
	state.GrammarProgress["greetings"] = &entities.GrammarProgress{
		EaseFactor: 1.5, Interval: 1, NextReview: daysAgo(4),
		TotalAttempts: 4, CorrectAttempts: 1, Status: entities.StatusLearning,
	}
	// Not yet due.
	future := testNow.AddDate(0, 0, 2)
	state.GrammarProgress["numbers"] = &entities.GrammarProgress{
		EaseFactor: 2.5, Interval: 5, NextReview: &future, Status: entities.StatusReviewing,
	}
	// Due, but a different level.
	state.GrammarProgress["past-simple"] = &entities.GrammarProgress{
		EaseFactor: 2.5, Interval: 1, NextReview: daysAgo(1), Status: entities.StatusReviewing,
	}

	s := newTestScheduler(state)
	due := s.DueReviews(entities.LevelA1)

	require.Len(t, due, 2)
	assert.Equal(t, "greetings", due[0].GrammarID, "harder, more overdue item first")
	assert.Equal(t, "present-simple", due[1].GrammarID)
	assert.Equal(t, 4, due[0].OverdueDays)
	assert.Greater(t, due[0].Priority, due[1].Priority)
}

func TestDueReviewsTieOrderDeterministic(t *testing.T) {
	state := entities.NewTrainerState()
	for _, id := range []string{"numbers", "greetings", "basic-questions"} {
		state.GrammarProgress[id] = &entities.GrammarProgress{
			EaseFactor: 2.5, Interval: 1, NextReview: daysAgo(2),
			TotalAttempts: 4, CorrectAttempts: 3, Status: entities.StatusReviewing,
		}
	}

	s := newTestScheduler(state)

	// Identical priorities must not fall back to map iteration order.
	for i := 0; i < 10; i++ {
		due := s.DueReviews(entities.LevelA1)
		require.Len(t, due, 3)
		assert.Equal(t, "basic-questions", due[0].GrammarID)
		assert.Equal(t, "greetings", due[1].GrammarID)
		assert.Equal(t, "numbers", due[2].GrammarID)
	}
}

func TestDueReviewsAllLevels(t *testing.T) {
	state := entities.NewTrainerState()
	state.GrammarProgress["present-simple"] = &entities.GrammarProgress{
		EaseFactor: 2.5, NextReview: daysAgo(0), Status: entities.StatusReviewing,
	}
	state.GrammarProgress["past-simple"] = &entities.GrammarProgress{
		EaseFactor: 2.5, NextReview: daysAgo(0), Status: entities.StatusReviewing,
	}

	s := newTestScheduler(state)
	assert.Len(t, s.DueReviews(""), 2)
}

func TestNewGrammar(t *testing.T) {
	state := entities.NewTrainerState()
	state.GrammarProgress["present-simple"] = &entities.GrammarProgress{
		EaseFactor: 2.5, Interval: 1, NextReview: daysAgo(0), Status: entities.StatusReviewing,
	}

	s := newTestScheduler(state)
	fresh := s.NewGrammar(entities.LevelA1)

	assert.NotContains(t, fresh, "present-simple")
	assert.Contains(t, fresh, "greetings")
}

func TestNextGrammarNewUser(t *testing.T) {
	s := newTestScheduler(nil)

	sel := s.NextGrammar(entities.LevelA1)
	require.NotNil(t, sel)
	assert.NotEmpty(t, sel.GrammarID)
	assert.True(t, sel.IsNew)
}

func TestNextGrammarVeryOverdueJumpsQueue(t *testing.T) {
	state := entities.NewTrainerState()
	state.GrammarProgress["present-simple"] = &entities.GrammarProgress{
		EaseFactor: 2.5, Interval: 3, NextReview: daysAgo(7),
		TotalAttempts: 2, CorrectAttempts: 2, Status: entities.StatusReviewing,
	}

	s := newTestScheduler(state)
	sel := s.NextGrammar(entities.LevelA1)

	require.NotNil(t, sel)
	assert.Equal(t, "present-simple", sel.GrammarID)
	assert.Equal(t, "Overdue by 7 days", sel.Reason)
}

func TestNextGrammarUnknownLevelReturnsNil(t *testing.T) {
	s := newTestScheduler(nil)
	assert.Nil(t, s.NextGrammar(entities.Level("Z9")))
}

func TestNextGrammarRespectsDailyNewCap(t *testing.T) {
	state := entities.NewTrainerState()
	state.Settings.NewPerDay = 1
	// One category was introduced today; the cap is spent.
	state.GrammarProgress["greetings"] = &entities.GrammarProgress{
		EaseFactor: 2.5, Interval: 1, Repetitions: 1,
		NextReview: daysAgo(-1), LastReview: &testNow,
		TotalAttempts: 1, CorrectAttempts: 1, Status: entities.StatusReviewing,
	}

	s := newTestScheduler(state)
	for i := 0; i < 50; i++ {
		sel := s.NextGrammar(entities.LevelA1)
		require.NotNil(t, sel)
		assert.NotEqual(t, "New grammar to learn", sel.Reason)
	}
}

func TestVarietyConstraint(t *testing.T) {
	s := newTestScheduler(nil)

	assert.False(t, s.wouldRepeat("idioms"))
	s.recordUsed("idioms")
	assert.False(t, s.wouldRepeat("idioms"), "one serving is fine")
	s.recordUsed("idioms")
	assert.True(t, s.wouldRepeat("idioms"), "two in a row hits the cap")

	s.recordUsed("inversion")
	assert.False(t, s.wouldRepeat("idioms"), "an interleaved pick resets the run")
}

func TestRecentHistoryBounded(t *testing.T) {
	s := newTestScheduler(nil)
	for i := 0; i < 25; i++ {
		s.recordUsed("greetings")
	}
	assert.Len(t, s.recent, recentHistorySize)
}

func TestTodayNewCount(t *testing.T) {
	state := entities.NewTrainerState()
	// Introduced today: one lifetime attempt, reviewed today.
	state.GrammarProgress["greetings"] = &entities.GrammarProgress{
		EaseFactor: 2.5, LastReview: &testNow, TotalAttempts: 1, Status: entities.StatusReviewing,
	}
	// Reviewed today but an old acquaintance.
	state.GrammarProgress["numbers"] = &entities.GrammarProgress{
		EaseFactor: 2.5, LastReview: &testNow, TotalAttempts: 5, Status: entities.StatusReviewing,
	}
	// Introduced yesterday.
	state.GrammarProgress["present-simple"] = &entities.GrammarProgress{
		EaseFactor: 2.5, LastReview: daysAgo(1), TotalAttempts: 1, Status: entities.StatusReviewing,
	}

	s := newTestScheduler(state)
	assert.Equal(t, 1, s.TodayNewCount())
	assert.Equal(t, 2, s.TodayReviewCount())
}

func TestOverallStats(t *testing.T) {
	state := entities.NewTrainerState()
	state.GrammarProgress["greetings"] = &entities.GrammarProgress{
		EaseFactor: 2.6, Interval: 30, NextReview: daysAgo(-10), Status: entities.StatusMastered,
	}
	state.GrammarProgress["numbers"] = &entities.GrammarProgress{
		EaseFactor: 2.4, Interval: 3, NextReview: daysAgo(2), Status: entities.StatusReviewing,
	}
	state.GrammarProgress["present-simple"] = &entities.GrammarProgress{
		EaseFactor: 2.5, NextReview: daysAgo(0), Status: entities.StatusLearning,
	}
	state.SessionStats = entities.SessionStats{TotalReviews: 10, CorrectReviews: 8}

	s := newTestScheduler(state)
	stats := s.OverallStats()

	assert.Equal(t, 3, stats.TotalGrammar)
	assert.Equal(t, 1, stats.Mastered)
	assert.Equal(t, 1, stats.Reviewing)
	assert.Equal(t, 1, stats.Learning)
	assert.Equal(t, 2, stats.DueToday)
	assert.Equal(t, 1, stats.OverdueCount)
	assert.InDelta(t, 2.5, stats.AverageEaseFactor, 1e-9)
	assert.Equal(t, 10, stats.TotalReviews)
	assert.Equal(t, 80, stats.Accuracy)
}

func TestGrammarStats(t *testing.T) {
	state := entities.NewTrainerState()
	state.GrammarProgress["present-perfect"] = &entities.GrammarProgress{
		EaseFactor: 2.36, Interval: 4, NextReview: daysAgo(-4),
		TotalAttempts: 8, CorrectAttempts: 6, Status: entities.StatusReviewing,
	}

	s := newTestScheduler(state)
	gs := s.GrammarStats("present-perfect")

	assert.Equal(t, "Present Perfect", gs.Name)
	assert.Equal(t, entities.LevelB1, gs.Level)
	assert.Equal(t, 4, gs.Interval)
	assert.Equal(t, 75, gs.Accuracy)
}

func TestAllGrammarStatsCatalogOrder(t *testing.T) {
	s := newTestScheduler(nil)
	list := s.AllGrammarStats(entities.LevelA1)

	require.NotEmpty(t, list)
	for _, gs := range list {
		assert.Equal(t, entities.LevelA1, gs.Level)
		assert.Equal(t, entities.StatusNew, gs.Status)
	}
}

func TestResetProgress(t *testing.T) {
	state := entities.NewTrainerState()
	state.GrammarProgress["greetings"] = &entities.GrammarProgress{EaseFactor: 2.5}
	state.GrammarProgress["numbers"] = &entities.GrammarProgress{EaseFactor: 2.5}
	state.SessionStats.TotalReviews = 5

	s := newTestScheduler(state)

	s.ResetProgress("greetings")
	assert.NotContains(t, s.state.GrammarProgress, "greetings")
	assert.Contains(t, s.state.GrammarProgress, "numbers")
	assert.Equal(t, 5, s.state.SessionStats.TotalReviews)

	s.ResetProgress("")
	assert.Empty(t, s.state.GrammarProgress)
	assert.Equal(t, 0, s.state.SessionStats.TotalReviews)
}

func TestFormatNextReview(t *testing.T) {
	tests := []struct {
		name string
		date *time.Time
		want string
	}{
		{"not scheduled", nil, "Not scheduled"},
		{"overdue", daysAgo(2), "Overdue by 2 days"},
		{"overdue singular", daysAgo(1), "Overdue by 1 day"},
		{"today", daysAgo(0), "Due today"},
		{"tomorrow", daysAgo(-1), "Due tomorrow"},
		{"days", daysAgo(-3), "Due in 3 days"},
		{"weeks", daysAgo(-10), "Due in 1 week"},
		{"months", daysAgo(-45), "Due in 1 month"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNextReview(tt.date, testNow))
		})
	}
}

func TestStatusIcon(t *testing.T) {
	assert.Equal(t, "★", StatusIcon(entities.StatusMastered))
	assert.Equal(t, "↻", StatusIcon(entities.StatusReviewing))
	assert.Equal(t, "◐", StatusIcon(entities.StatusLearning))
	assert.Equal(t, "○", StatusIcon(entities.StatusNew))
}
