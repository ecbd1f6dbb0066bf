package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
	"github.com/aliskhannn/lingua-trainer-bot/internal/generator"
	"github.com/aliskhannn/lingua-trainer-bot/internal/lang"
	"github.com/aliskhannn/lingua-trainer-bot/internal/provider"
	"github.com/aliskhannn/lingua-trainer-bot/internal/scoring"
	"github.com/aliskhannn/lingua-trainer-bot/internal/srs"
)

var ErrNoActiveRound = errors.New("no active round")

// passThreshold is the similarity above which a round counts toward the
// session score and streak.
const passThreshold = 80

// TrainerService orchestrates practice rounds: picking grammar via the
// scheduler, generating and translating questions, scoring answers and
// persisting the updated state.
type TrainerService struct {
	stateRepo    StateRepository
	settingsRepo SettingsRepository
	rounds       RoundStorage
	translator   Translator
	dictionary   Dictionary
	gen          *generator.Generator

	// Schedulers are cached per user so the in-memory variety history
	// survives between rounds. Access is serialized per process; Telegram
	// updates for one chat arrive sequentially.
	mu         sync.Mutex
	schedulers map[int64]*srs.Scheduler
}

// NewTrainerService creates a TrainerService.
func NewTrainerService(
	stateRepo StateRepository,
	settingsRepo SettingsRepository,
	rounds RoundStorage,
	translator Translator,
	dictionary Dictionary,
	gen *generator.Generator,
) *TrainerService {
	return &TrainerService{
		stateRepo:    stateRepo,
		settingsRepo: settingsRepo,
		rounds:       rounds,
		translator:   translator,
		dictionary:   dictionary,
		gen:          gen,
		schedulers:   make(map[int64]*srs.Scheduler),
	}
}

// scheduler returns the cached scheduler for a user, loading the state on
// first access.
func (s *TrainerService) scheduler(ctx context.Context, userID int64) (*srs.Scheduler, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sched, ok := s.schedulers[userID]; ok {
		return sched, nil
	}

	state, err := s.stateRepo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	sched := srs.New(state)
	s.schedulers[userID] = sched
	return sched, nil
}

func (s *TrainerService) settings(ctx context.Context, userID int64) *entities.UserSettings {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil || settings == nil {
		return entities.NewUserSettings(userID)
	}
	return settings
}

// NextRound builds a fresh practice round for the chat, carrying the
// session score and streak over from the previous one.
func (s *TrainerService) NextRound(ctx context.Context, userID, chatID int64) (*entities.PracticeRound, *srs.Selection, error) {
	settings := s.settings(ctx, userID)

	sched, err := s.scheduler(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load scheduler: %w", err)
	}

	sel := sched.NextGrammar(settings.Level)
	if sel == nil {
		return nil, nil, fmt.Errorf("no grammar available for level %s", settings.Level)
	}

	question := s.gen.Question(settings.Level, sel.GrammarID)

	round := &entities.PracticeRound{
		Question:  *question,
		StartedAt: time.Now(),
	}
	if prev := s.rounds.Get(chatID); prev != nil {
		round.Score = prev.Score
		round.Streak = prev.Streak
	}

	switch question.Type {
	case entities.QuestionRespond:
		round.DisplayText = s.translator.TranslateSoft(ctx, question.PromptText, "en", settings.TargetLang)
		round.Responses = make([]string, 0, len(question.AcceptableResponses))
		for _, r := range question.AcceptableResponses {
			round.Responses = append(round.Responses, s.translator.TranslateSoft(ctx, r, "en", settings.TargetLang))
		}
		if len(round.Responses) > 0 {
			round.Reference = round.Responses[0]
		}
	default:
		round.DisplayText = s.translator.TranslateSoft(ctx, question.SourceText, "en", settings.NativeLang)
		round.Reference = s.translator.TranslateSoft(ctx, question.SourceText, "en", settings.TargetLang)
	}

	s.rounds.Store(chatID, round)
	return round, sel, nil
}

// CheckResult is everything the delivery layer needs to render feedback
// for one answered round.
type CheckResult struct {
	Similarity int
	Quality    entities.Quality
	BestMatch  string
	Diff       []scoring.DiffToken
	Missing    []string
	Review     entities.ReviewResult
	Score      int
	Streak     int
	Passed     bool

	// Respond mode extras.
	RespondWith  string
	AllResponses []string
}

// CheckAnswer scores the chat's active round, updates the schedule and
// session counters, and persists the state.
func (s *TrainerService) CheckAnswer(ctx context.Context, userID, chatID int64, answer string) (*CheckResult, error) {
	round := s.rounds.Get(chatID)
	if round == nil {
		return nil, ErrNoActiveRound
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, errors.New("empty answer")
	}

	settings := s.settings(ctx, userID)

	var similarity int
	bestMatch := round.Reference
	if round.Question.Type == entities.QuestionRespond && len(round.Responses) > 0 {
		similarity, bestMatch = scoring.BestResponse(answer, round.Responses, round.Question.Keywords, settings.TargetLang)
	} else {
		similarity = scoring.Score(answer, round.Reference, settings.TargetLang)
	}

	diff, missing := scoring.Diff(answer, bestMatch, settings.TargetLang)
	quality := srs.SimilarityToQuality(similarity)

	sched, err := s.scheduler(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load scheduler: %w", err)
	}

	grammarID := round.Question.PrimaryGrammar()
	var review entities.ReviewResult
	if grammarID != "" {
		review = sched.ProcessReview(grammarID, quality)
	}

	if similarity >= passThreshold {
		round.Score += int(math.Round(float64(similarity)/10)) - round.HintsUsed
		round.Streak++
	} else {
		round.Streak = 0
	}
	s.rounds.Store(chatID, round)

	if err := s.stateRepo.Save(ctx, userID, sched.State()); err != nil {
		return nil, fmt.Errorf("save trainer state: %w", err)
	}

	result := &CheckResult{
		Similarity: similarity,
		Quality:    quality,
		BestMatch:  bestMatch,
		Diff:       diff,
		Missing:    missing,
		Review:     review,
		Score:      round.Score,
		Streak:     round.Streak,
		Passed:     similarity >= passThreshold,
	}
	if round.Question.Type == entities.QuestionRespond {
		result.RespondWith = round.Question.RespondWithHint
		result.AllResponses = round.Responses
	}
	return result, nil
}

// Hint reveals progressively more of the expected answer. Respond rounds
// get a three-stage hint: the instruction, a native-language example, then
// the opening words of the target answer. Translate rounds reveal opening
// words directly, never more than half the sentence plus one word per call.
func (s *TrainerService) Hint(ctx context.Context, userID, chatID int64) (string, error) {
	round := s.rounds.Get(chatID)
	if round == nil {
		return "", ErrNoActiveRound
	}

	round.HintsUsed++
	s.rounds.Store(chatID, round)

	settings := s.settings(ctx, userID)

	if round.Question.Type == entities.QuestionRespond && round.Question.RespondWithHint != "" {
		switch round.HintsUsed {
		case 1:
			return fmt.Sprintf("Respond with: %q", round.Question.RespondWithHint), nil
		case 2:
			example := s.translator.TranslateSoft(ctx, round.Reference, settings.TargetLang, settings.NativeLang)
			return fmt.Sprintf("Example in %s: %q", lang.Name(settings.NativeLang), example), nil
		default:
			hint := openingWords(round.Reference, round.HintsUsed-2)
			return fmt.Sprintf("In %s: %q", lang.Name(settings.TargetLang), hint), nil
		}
	}

	return fmt.Sprintf("Hint: %q", openingWords(round.Reference, round.HintsUsed)), nil
}

// openingWords returns the first n words of text, capped at half its
// length rounded up, with a trailing ellipsis.
func openingWords(text string, n int) string {
	words := strings.Fields(text)
	limit := (len(words) + 1) / 2
	if n > limit {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	if n > len(words) {
		n = len(words)
	}
	return strings.Join(words[:n], " ") + "..."
}

// Skip abandons the chat's active round and returns its reference answer.
// Session counters survive; the next round picks them up.
func (s *TrainerService) Skip(chatID int64) (string, error) {
	round := s.rounds.Get(chatID)
	if round == nil {
		return "", ErrNoActiveRound
	}
	return round.Reference, nil
}

// EndSession drops the chat's round and its session counters.
func (s *TrainerService) EndSession(chatID int64) {
	s.rounds.Delete(chatID)
}

// ActiveRound returns the chat's in-flight round, or nil.
func (s *TrainerService) ActiveRound(chatID int64) *entities.PracticeRound {
	return s.rounds.Get(chatID)
}

// OverallStats summarizes the user's progress across all categories.
func (s *TrainerService) OverallStats(ctx context.Context, userID int64) (srs.OverallStats, error) {
	sched, err := s.scheduler(ctx, userID)
	if err != nil {
		return srs.OverallStats{}, err
	}
	return sched.OverallStats(), nil
}

// GrammarList reports per-category progress for the user's level in
// catalog order.
func (s *TrainerService) GrammarList(ctx context.Context, userID int64, level entities.Level) ([]srs.GrammarStats, error) {
	sched, err := s.scheduler(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sched.AllGrammarStats(level), nil
}

// ResetProgress wipes one category, or everything when grammarID is empty,
// and persists the result.
func (s *TrainerService) ResetProgress(ctx context.Context, userID int64, grammarID string) error {
	sched, err := s.scheduler(ctx, userID)
	if err != nil {
		return err
	}
	sched.ResetProgress(grammarID)
	return s.stateRepo.Save(ctx, userID, sched.State())
}

// Export serializes the user's trainer state for backup.
func (s *TrainerService) Export(ctx context.Context, userID int64) ([]byte, error) {
	sched, err := s.scheduler(ctx, userID)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(sched.State(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal trainer state: %w", err)
	}
	return data, nil
}

// Import replaces the user's trainer state with a previously exported
// blob. Invalid payloads leave the stored state untouched.
func (s *TrainerService) Import(ctx context.Context, userID int64, data []byte) error {
	var state entities.TrainerState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parse imported state: %w", err)
	}
	if state.GrammarProgress == nil {
		state.GrammarProgress = make(map[string]*entities.GrammarProgress)
	}

	if err := s.stateRepo.Save(ctx, userID, &state); err != nil {
		return err
	}

	s.mu.Lock()
	s.schedulers[userID] = srs.New(&state)
	s.mu.Unlock()
	return nil
}

// WordInfo is a dictionary lookup enriched with translations.
type WordInfo struct {
	Word         string
	Phonetic     string
	Definitions  []provider.Definition
	Synonyms     []string
	Translations map[string]string // language code -> translation
}

// LookupWord explains a word from the target language: dictionary entry
// when the target is English, plus translations into the native language
// and English. Partial results are fine; the APIs are best effort.
func (s *TrainerService) LookupWord(ctx context.Context, userID int64, word string) (*WordInfo, error) {
	settings := s.settings(ctx, userID)

	info := &WordInfo{
		Word:         word,
		Translations: make(map[string]string),
	}

	if settings.TargetLang == "en" {
		if entry, err := s.dictionary.Lookup(ctx, word); err == nil {
			info.Phonetic = entry.Phonetic
			info.Definitions = entry.Definitions
			info.Synonyms = entry.Synonyms
		}
	}

	if native := s.translator.TranslateSoft(ctx, word, settings.TargetLang, settings.NativeLang); !strings.HasPrefix(native, provider.UnavailablePrefix) {
		info.Translations[settings.NativeLang] = native
	}
	if settings.TargetLang != "en" && settings.NativeLang != "en" {
		if english := s.translator.TranslateSoft(ctx, word, settings.TargetLang, "en"); !strings.HasPrefix(english, provider.UnavailablePrefix) {
			info.Translations["en"] = english
		}
	}

	if len(info.Definitions) == 0 && len(info.Translations) == 0 {
		return nil, fmt.Errorf("no information found for %q", word)
	}
	return info, nil
}
