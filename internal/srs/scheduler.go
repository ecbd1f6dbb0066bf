// Package srs schedules grammar reviews with an SM-2 variant: categories
// are graded 0-5, intervals grow with the ease factor, and the next item
// to practice balances due reviews, new material and variety.
package srs

import (
	"math"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
	"github.com/aliskhannn/lingua-trainer-bot/internal/generator"
)

const (
	// maxConsecutiveSame caps how often the same grammar may be served
	// back to back.
	maxConsecutiveSame = 2

	// recentHistorySize bounds the variety buffer.
	recentHistorySize = 10

	// veryOverdueDays is the threshold past which a due review skips the
	// weighted pool and is served immediately.
	veryOverdueDays = 5
)

// Scheduler drives review scheduling over one user's trainer state.
// It is not safe for concurrent use; callers serialize per user.
type Scheduler struct {
	state  *entities.TrainerState
	recent []string

	now func() time.Time
	rng *rand.Rand
}

// New creates a Scheduler over the given state.
func New(state *entities.TrainerState) *Scheduler {
	return NewWithClock(state, time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithClock creates a Scheduler with an explicit clock and randomness
// source. Used in tests for reproducible scheduling.
func NewWithClock(state *entities.TrainerState, now func() time.Time, rng *rand.Rand) *Scheduler {
	if state == nil {
		state = entities.NewTrainerState()
	}
	// Imported or legacy blobs may lack the settings block.
	if state.Settings == (entities.SRSSettings{}) {
		state.Settings = entities.DefaultSRSSettings()
	}
	return &Scheduler{state: state, now: now, rng: rng}
}

// State exposes the underlying trainer state for persistence.
func (s *Scheduler) State() *entities.TrainerState {
	return s.state
}

// ProcessReview grades one review and reschedules the category.
func (s *Scheduler) ProcessReview(grammarID string, quality entities.Quality) entities.ReviewResult {
	progress := s.state.Progress(grammarID)
	progress.ApplyReview(quality, s.now(), s.state.Settings)

	s.state.SessionStats.TotalReviews++
	if quality.Passed() {
		s.state.SessionStats.CorrectReviews++
	}

	var next time.Time
	if progress.NextReview != nil {
		next = *progress.NextReview
	}
	return entities.ReviewResult{
		GrammarID:   grammarID,
		Quality:     quality,
		NewInterval: progress.Interval,
		NextReview:  next,
		Status:      progress.Status,
	}
}

// SimilarityToQuality maps an answer similarity score (0-100) onto the
// SM-2 quality scale.
func SimilarityToQuality(similarity int) entities.Quality {
	switch {
	case similarity >= 95:
		return entities.QualityPerfect
	case similarity >= 85:
		return entities.QualityHesitation
	case similarity >= 70:
		return entities.QualityDifficult
	case similarity >= 50:
		return entities.QualityAlmost
	case similarity >= 25:
		return entities.QualityIncorrect
	default:
		return entities.QualityBlackout
	}
}

// DueReview is one category whose next review date has passed.
type DueReview struct {
	GrammarID   string
	Progress    *entities.GrammarProgress
	OverdueDays int
	Priority    float64
}

// DueReviews returns the categories due now, highest priority first.
// An empty level means all levels.
func (s *Scheduler) DueReviews(level entities.Level) []DueReview {
	now := s.now()
	var due []DueReview

	for grammarID, progress := range s.state.GrammarProgress {
		if level != "" {
			cat, ok := generator.Category(grammarID)
			if !ok || cat.Level != level {
				continue
			}
		}
		if progress.NextReview == nil || progress.NextReview.After(now) {
			continue
		}

		overdueDays := daysBetween(*progress.NextReview, now)
		due = append(due, DueReview{
			GrammarID:   grammarID,
			Progress:    progress,
			OverdueDays: overdueDays,
			Priority:    priority(progress, overdueDays),
		})
	}

	sortDue(due)
	return due
}

// NewGrammar returns the level's categories that have never been studied.
func (s *Scheduler) NewGrammar(level entities.Level) []string {
	var out []string
	for _, cat := range generator.CategoriesForLevel(level) {
		progress, ok := s.state.GrammarProgress[cat.ID]
		if !ok || progress.Status == entities.StatusNew {
			out = append(out, cat.ID)
		}
	}
	return out
}

// priority ranks a due review: more overdue, lower ease, still-learning
// and historically harder categories come first.
func priority(p *entities.GrammarProgress, overdueDays int) float64 {
	pr := math.Min(float64(overdueDays)*10, 100)
	pr += (3 - p.EaseFactor) * 20
	if p.Status == entities.StatusLearning {
		pr += 50
	}
	if p.TotalAttempts > 0 {
		pr += (1 - p.SuccessRate()) * 30
	}
	return pr
}

// Selection is the scheduler's pick of what to practice next.
type Selection struct {
	GrammarID string
	IsNew     bool
	Reason    string
}

// NextGrammar picks the next category for the level, balancing due reviews,
// new material under the daily cap, and plain variety. Returns nil when the
// level has no categories at all.
func (s *Scheduler) NextGrammar(level entities.Level) *Selection {
	dueReviews := s.DueReviews(level)
	newGrammar := s.NewGrammar(level)
	levelGrammar := generator.CategoriesForLevel(level)

	// Very overdue items jump the queue, variety permitting.
	var veryOverdue []DueReview
	for _, r := range dueReviews {
		if r.OverdueDays >= veryOverdueDays {
			veryOverdue = append(veryOverdue, r)
		}
	}
	veryOverdue = s.varietyDue(veryOverdue, true)
	if len(veryOverdue) > 0 {
		sel := veryOverdue[0]
		s.recordUsed(sel.GrammarID)
		return &Selection{
			GrammarID: sel.GrammarID,
			Reason:    overdueReason(sel.OverdueDays),
		}
	}

	type candidate struct {
		Selection
		weight float64
	}
	var pool []candidate

	for _, r := range s.varietyDue(dueReviews, false) {
		if len(pool) >= 3 {
			break
		}
		reason := "Due for review"
		if r.OverdueDays > 0 {
			reason = "Due " + plural(r.OverdueDays, "day") + " ago"
		}
		pool = append(pool, candidate{
			Selection: Selection{GrammarID: r.GrammarID, Reason: reason},
			weight:    2 + math.Min(float64(r.OverdueDays), 3),
		})
	}

	if s.TodayNewCount() < s.state.Settings.NewPerDay {
		added := 0
		for _, grammarID := range s.varietyIDs(newGrammar, false) {
			if added >= 3 {
				break
			}
			pool = append(pool, candidate{
				Selection: Selection{GrammarID: grammarID, IsNew: true, Reason: "New grammar to learn"},
				weight:    3,
			})
			added++
		}
	}

	var levelIDs []string
	for _, cat := range levelGrammar {
		levelIDs = append(levelIDs, cat.ID)
	}
	added := 0
	for _, grammarID := range s.varietyIDs(levelIDs, false) {
		if added >= 2 {
			break
		}
		inPool := false
		for _, c := range pool {
			if c.GrammarID == grammarID {
				inPool = true
				break
			}
		}
		if inPool {
			continue
		}
		_, seen := s.state.GrammarProgress[grammarID]
		pool = append(pool, candidate{
			Selection: Selection{GrammarID: grammarID, IsNew: !seen, Reason: "Practice variety"},
			weight:    1,
		})
		added++
	}

	if len(pool) == 0 {
		return s.fallback(dueReviews, newGrammar, levelGrammar)
	}

	var totalWeight float64
	for _, c := range pool {
		totalWeight += c.weight
	}
	r := s.rng.Float64() * totalWeight
	for _, c := range pool {
		r -= c.weight
		if r <= 0 {
			s.recordUsed(c.GrammarID)
			sel := c.Selection
			return &sel
		}
	}

	s.recordUsed(pool[0].GrammarID)
	sel := pool[0].Selection
	return &sel
}

// fallback serves anything available when the variety-filtered pool came
// up empty: any due review, then any new category, then any of the level.
func (s *Scheduler) fallback(dueReviews []DueReview, newGrammar []string, levelGrammar []entities.GrammarCategory) *Selection {
	if len(dueReviews) > 0 {
		s.recordUsed(dueReviews[0].GrammarID)
		return &Selection{GrammarID: dueReviews[0].GrammarID, Reason: "Due for review"}
	}
	if len(newGrammar) > 0 {
		grammarID := newGrammar[s.rng.Intn(len(newGrammar))]
		s.recordUsed(grammarID)
		return &Selection{GrammarID: grammarID, IsNew: true, Reason: "New grammar to learn"}
	}
	if len(levelGrammar) > 0 {
		grammarID := levelGrammar[s.rng.Intn(len(levelGrammar))].ID
		s.recordUsed(grammarID)
		return &Selection{GrammarID: grammarID, Reason: "Practice"}
	}
	return nil
}

// wouldRepeat reports whether serving the id again would exceed the
// consecutive-repeat cap.
func (s *Scheduler) wouldRepeat(grammarID string) bool {
	if len(s.recent) < maxConsecutiveSame {
		return false
	}
	for _, g := range s.recent[len(s.recent)-maxConsecutiveSame:] {
		if g != grammarID {
			return false
		}
	}
	return true
}

func (s *Scheduler) recordUsed(grammarID string) {
	s.recent = append(s.recent, grammarID)
	if len(s.recent) > recentHistorySize {
		s.recent = s.recent[len(s.recent)-recentHistorySize:]
	}
}

// varietyDue drops candidates that would repeat too often. With fallback
// enabled the original list is returned when everything would repeat.
func (s *Scheduler) varietyDue(candidates []DueReview, fallbackToAny bool) []DueReview {
	var varied []DueReview
	for _, c := range candidates {
		if !s.wouldRepeat(c.GrammarID) {
			varied = append(varied, c)
		}
	}
	if len(varied) > 0 || !fallbackToAny {
		return varied
	}
	return candidates
}

func (s *Scheduler) varietyIDs(candidates []string, fallbackToAny bool) []string {
	var varied []string
	for _, id := range candidates {
		if !s.wouldRepeat(id) {
			varied = append(varied, id)
		}
	}
	if len(varied) > 0 || !fallbackToAny {
		return varied
	}
	return candidates
}

// TodayReviewCount counts categories reviewed today.
func (s *Scheduler) TodayReviewCount() int {
	today := s.now()
	count := 0
	for _, p := range s.state.GrammarProgress {
		if p.LastReview != nil && sameDay(*p.LastReview, today) {
			count++
		}
	}
	return count
}

// TodayNewCount counts categories introduced today: first reviewed today
// with exactly one lifetime attempt.
func (s *Scheduler) TodayNewCount() int {
	today := s.now()
	count := 0
	for _, p := range s.state.GrammarProgress {
		if p.Status != entities.StatusNew &&
			p.LastReview != nil && sameDay(*p.LastReview, today) &&
			p.TotalAttempts == 1 {
			count++
		}
	}
	return count
}

// OverallStats aggregates the whole trainer state.
type OverallStats struct {
	TotalGrammar      int
	Mastered          int
	Reviewing         int
	Learning          int
	New               int
	DueToday          int
	OverdueCount      int
	AverageEaseFactor float64
	TotalReviews      int
	Accuracy          int
}

// OverallStats summarizes progress across every tracked category.
func (s *Scheduler) OverallStats() OverallStats {
	stats := OverallStats{
		TotalGrammar: len(s.state.GrammarProgress),
		TotalReviews: s.state.SessionStats.TotalReviews,
		Accuracy:     s.state.SessionStats.Accuracy(),
	}

	now := s.now()
	var easeSum float64
	for _, p := range s.state.GrammarProgress {
		switch p.Status {
		case entities.StatusMastered:
			stats.Mastered++
		case entities.StatusReviewing:
			stats.Reviewing++
		case entities.StatusLearning:
			stats.Learning++
		default:
			stats.New++
		}

		easeSum += p.EaseFactor

		if p.NextReview != nil && !p.NextReview.After(now) {
			stats.DueToday++
			if daysBetween(*p.NextReview, now) > 0 {
				stats.OverdueCount++
			}
		}
	}

	if stats.TotalGrammar > 0 {
		stats.AverageEaseFactor = easeSum / float64(stats.TotalGrammar)
	}
	return stats
}

// GrammarStats is the per-category report shown to the user.
type GrammarStats struct {
	ID          string
	Name        string
	Level       entities.Level
	Description string
	Status      entities.Status
	Interval    int
	EaseFactor  float64
	NextReview  *time.Time
	LastReview  *time.Time
	Attempts    int
	Correct     int
	Accuracy    int
}

// GrammarStats reports the scheduling state of one category.
func (s *Scheduler) GrammarStats(grammarID string) GrammarStats {
	progress := s.state.Progress(grammarID)

	stats := GrammarStats{
		ID:         grammarID,
		Name:       grammarID,
		Status:     progress.Status,
		Interval:   progress.Interval,
		EaseFactor: progress.EaseFactor,
		NextReview: progress.NextReview,
		LastReview: progress.LastReview,
		Attempts:   progress.TotalAttempts,
		Correct:    progress.CorrectAttempts,
	}
	if cat, ok := generator.Category(grammarID); ok {
		stats.Name = cat.Name
		stats.Level = cat.Level
		stats.Description = cat.Description
	}
	if progress.TotalAttempts > 0 {
		stats.Accuracy = int(progress.SuccessRate()*100 + 0.5)
	}
	return stats
}

// AllGrammarStats reports every category of the level, in catalog order.
func (s *Scheduler) AllGrammarStats(level entities.Level) []GrammarStats {
	cats := generator.CategoriesForLevel(level)
	out := make([]GrammarStats, 0, len(cats))
	for _, cat := range cats {
		out = append(out, s.GrammarStats(cat.ID))
	}
	return out
}

// ResetProgress wipes one category, or everything when grammarID is empty.
// Settings survive a full wipe.
func (s *Scheduler) ResetProgress(grammarID string) {
	if grammarID != "" {
		delete(s.state.GrammarProgress, grammarID)
		return
	}
	s.state.Wipe()
}

// FormatNextReview renders a review date relative to now.
func FormatNextReview(date *time.Time, now time.Time) string {
	if date == nil {
		return "Not scheduled"
	}

	diffDays := daysBetween(now, *date)
	switch {
	case diffDays < 0:
		return "Overdue by " + plural(-diffDays, "day")
	case diffDays == 0:
		return "Due today"
	case diffDays == 1:
		return "Due tomorrow"
	case diffDays < 7:
		return "Due in " + plural(diffDays, "day")
	case diffDays < 30:
		return "Due in " + plural(diffDays/7, "week")
	default:
		return "Due in " + plural(diffDays/30, "month")
	}
}

// StatusIcon returns the one-rune marker used in progress listings.
func StatusIcon(status entities.Status) string {
	switch status {
	case entities.StatusMastered:
		return "★"
	case entities.StatusReviewing:
		return "↻"
	case entities.StatusLearning:
		return "◐"
	default:
		return "○"
	}
}

func overdueReason(days int) string {
	if days > 0 {
		return "Overdue by " + plural(days, "day")
	}
	return "Due for review"
}

func plural(n int, unit string) string {
	s := strconv.Itoa(n) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}

// daysBetween returns whole days from a to b, negative when b is before a.
func daysBetween(a, b time.Time) int {
	d := b.Sub(a).Hours() / 24
	return int(math.Floor(d))
}

// sameDay reports whether both times fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// sortDue orders by priority descending. Equal priorities fall back to the
// grammar id so the order never depends on map iteration.
func sortDue(due []DueReview) {
	sort.Slice(due, func(i, j int) bool {
		if due[i].Priority != due[j].Priority {
			return due[i].Priority > due[j].Priority
		}
		return due[i].GrammarID < due[j].GrammarID
	})
}
