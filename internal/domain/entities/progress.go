package entities

import (
	"math"
	"time"
)

// Quality grades a single review on the SM-2 scale (0-5).
type Quality int

const (
	QualityBlackout   Quality = 0 // complete failure
	QualityIncorrect  Quality = 1 // incorrect, but recognized the answer
	QualityAlmost     Quality = 2 // incorrect, but easy to recall
	QualityDifficult  Quality = 3 // correct with serious difficulty
	QualityHesitation Quality = 4 // correct with some hesitation
	QualityPerfect    Quality = 5 // perfect response
)

// Passed reports whether the quality counts as a successful review.
func (q Quality) Passed() bool {
	return q >= QualityDifficult
}

// Status represents the learning status of a grammar category.
// It is derived from the current interval, never stored independently.
type Status string

const (
	StatusNew       Status = "new"       // never reviewed
	StatusLearning  Status = "learning"  // interval 0, review again this session
	StatusReviewing Status = "reviewing" // regular review cycle
	StatusMastered  Status = "mastered"  // interval of 21 days or more
)

const (
	minEaseFactor     = 1.3
	initialEaseFactor = 2.5
	masteredInterval  = 21
)

// SRSSettings are the tunable scheduler parameters stored with the state blob.
type SRSSettings struct {
	NewPerDay   int     `json:"newCardsPerDay"` // daily cap on new categories
	EasyBonus   float64 `json:"easyBonus"`      // interval multiplier for quality 5
	HardPenalty float64 `json:"hardPenalty"`    // interval multiplier for quality 3
}

// DefaultSRSSettings returns the scheduler defaults.
func DefaultSRSSettings() SRSSettings {
	return SRSSettings{
		NewPerDay:   5,
		EasyBonus:   1.3,
		HardPenalty: 0.5,
	}
}

// GrammarProgress stores the spaced repetition state of one grammar category.
type GrammarProgress struct {
	EaseFactor      float64    `json:"easeFactor"`      // interval growth rate, never below 1.3
	Interval        int        `json:"interval"`        // current spacing in days, 0 means "again this session"
	Repetitions     int        `json:"repetitions"`     // consecutive successful reviews
	NextReview      *time.Time `json:"nextReview"`      // nil until the first review
	LastReview      *time.Time `json:"lastReview"`      // nil until the first review
	TotalAttempts   int        `json:"totalAttempts"`   // lifetime counter
	CorrectAttempts int        `json:"correctAttempts"` // lifetime counter, never exceeds TotalAttempts
	Status          Status     `json:"status"`
}

// NewGrammarProgress creates progress for a category that has never been reviewed.
func NewGrammarProgress() *GrammarProgress {
	return &GrammarProgress{
		EaseFactor: initialEaseFactor,
		Status:     StatusNew,
	}
}

// ReviewResult summarizes a single scheduler update for presentation.
type ReviewResult struct {
	GrammarID   string
	Quality     Quality
	NewInterval int
	NextReview  time.Time
	Status      Status
}

// ApplyReview updates the progress with one graded review using the SM-2 rule.
//
//  1. On success (quality >= 3) the interval grows: 1 day after the first
//     success, 3 after the second, then interval * easeFactor. The ease factor
//     is adjusted by the standard SM-2 formula and floored at 1.3. Quality 5
//     stretches the interval by the easy bonus; quality 3 shrinks it by the
//     hard penalty, floored at one day.
//  2. On failure the repetitions and interval reset to zero; the ease factor
//     is left unchanged.
//
// The status is recomputed from the resulting interval.
func (p *GrammarProgress) ApplyReview(quality Quality, now time.Time, settings SRSSettings) {
	p.TotalAttempts++
	p.LastReview = &now

	if quality.Passed() {
		p.CorrectAttempts++

		switch p.Repetitions {
		case 0:
			p.Interval = 1
		case 1:
			p.Interval = 3
		default:
			p.Interval = int(math.Round(float64(p.Interval) * p.EaseFactor))
		}
		p.Repetitions++

		q := float64(quality)
		p.EaseFactor = max(minEaseFactor, p.EaseFactor+(0.1-(5-q)*(0.08+(5-q)*0.02)))

		switch quality {
		case QualityPerfect:
			p.Interval = int(math.Round(float64(p.Interval) * settings.EasyBonus))
		case QualityDifficult:
			p.Interval = max(1, int(math.Round(float64(p.Interval)*settings.HardPenalty)))
		}
	} else {
		p.Repetitions = 0
		p.Interval = 0
	}

	if p.Interval == 0 {
		p.Status = StatusLearning
		p.NextReview = &now
	} else {
		if p.Interval >= masteredInterval {
			p.Status = StatusMastered
		} else {
			p.Status = StatusReviewing
		}
		next := now.AddDate(0, 0, p.Interval)
		p.NextReview = &next
	}
}

// SuccessRate returns the lifetime share of correct attempts (0.0-1.0).
// A category without attempts counts as fully successful for priority math.
func (p *GrammarProgress) SuccessRate() float64 {
	if p.TotalAttempts == 0 {
		return 1
	}
	return float64(p.CorrectAttempts) / float64(p.TotalAttempts)
}
