package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
	"github.com/aliskhannn/lingua-trainer-bot/internal/generator"
	"github.com/aliskhannn/lingua-trainer-bot/internal/provider"
	"github.com/aliskhannn/lingua-trainer-bot/internal/storage"
)

// fakeStateRepo keeps trainer states in memory.
type fakeStateRepo struct {
	states map[int64]*entities.TrainerState
	saves  int
}

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{states: make(map[int64]*entities.TrainerState)}
}

func (r *fakeStateRepo) Save(_ context.Context, userID int64, state *entities.TrainerState) error {
	r.states[userID] = state
	r.saves++
	return nil
}

func (r *fakeStateRepo) Load(_ context.Context, userID int64) (*entities.TrainerState, error) {
	if s, ok := r.states[userID]; ok {
		return s, nil
	}
	return entities.NewTrainerState(), nil
}

func (r *fakeStateRepo) Delete(_ context.Context, userID int64) error {
	delete(r.states, userID)
	return nil
}

// fakeSettingsRepo serves one settings row for every user.
type fakeSettingsRepo struct {
	settings *entities.UserSettings
}

func (r *fakeSettingsRepo) CreateDefaults(_ context.Context, _ int64) error { return nil }

func (r *fakeSettingsRepo) GetByUserID(_ context.Context, userID int64) (*entities.UserSettings, error) {
	if r.settings != nil {
		return r.settings, nil
	}
	return entities.NewUserSettings(userID), nil
}

func (r *fakeSettingsRepo) UpdateLevel(_ context.Context, _ int64, level entities.Level) error {
	r.settings.Level = level
	return nil
}

func (r *fakeSettingsRepo) UpdateNativeLang(_ context.Context, _ int64, lang string) error {
	r.settings.NativeLang = lang
	return nil
}

func (r *fakeSettingsRepo) UpdateTargetLang(_ context.Context, _ int64, lang string) error {
	r.settings.TargetLang = lang
	return nil
}

// echoTranslator marks texts instead of translating them, so tests can see
// which language pair was requested.
type echoTranslator struct{}

func (echoTranslator) TranslateSoft(_ context.Context, text, from, to string) string {
	if from == to {
		return text
	}
	return text + " [" + from + ">" + to + "]"
}

type fakeDictionary struct {
	entry *provider.WordEntry
}

func (d *fakeDictionary) Lookup(_ context.Context, word string) (*provider.WordEntry, error) {
	if d.entry == nil {
		return nil, assert.AnError
	}
	return d.entry, nil
}

func newTestTrainer() (*TrainerService, *fakeStateRepo) {
	stateRepo := newFakeStateRepo()
	svc := NewTrainerService(
		stateRepo,
		&fakeSettingsRepo{},
		storage.NewRoundStorage(),
		echoTranslator{},
		&fakeDictionary{},
		generator.New(),
	)
	return svc, stateRepo
}

const (
	testUserID = int64(100)
	testChatID = int64(200)
)

func TestNextRoundStartsARound(t *testing.T) {
	svc, _ := newTestTrainer()
	ctx := context.Background()

	round, sel, err := svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)
	require.NotNil(t, round)
	require.NotNil(t, sel)

	assert.NotEmpty(t, round.DisplayText)
	assert.NotEmpty(t, round.Reference)
	assert.Same(t, round, svc.ActiveRound(testChatID))

	switch round.Question.Type {
	case entities.QuestionTranslate:
		// Display stays in the native language (en, no translation needed),
		// the reference goes to the target.
		assert.NotContains(t, round.DisplayText, ">")
		assert.Contains(t, round.Reference, "[en>es]")
	case entities.QuestionRespond:
		assert.Contains(t, round.DisplayText, "[en>es]")
		assert.Equal(t, round.Responses[0], round.Reference)
	}
}

func TestCheckAnswerCorrect(t *testing.T) {
	svc, stateRepo := newTestTrainer()
	ctx := context.Background()

	round, _, err := svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)

	result, err := svc.CheckAnswer(ctx, testUserID, testChatID, round.Reference)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Similarity)
	assert.Equal(t, entities.QualityPerfect, result.Quality)
	assert.True(t, result.Passed)
	assert.Equal(t, 10, result.Score, "perfect answer without hints earns 10")
	assert.Equal(t, 1, result.Streak)

	// The review reached the scheduler and the state was persisted.
	grammarID := round.Question.PrimaryGrammar()
	require.NotEmpty(t, grammarID)
	saved := stateRepo.states[testUserID]
	require.NotNil(t, saved)
	progress := saved.GrammarProgress[grammarID]
	require.NotNil(t, progress)
	assert.Equal(t, 1, progress.TotalAttempts)
	assert.Equal(t, 1, progress.CorrectAttempts)
}

func TestCheckAnswerWrongResetsStreak(t *testing.T) {
	svc, _ := newTestTrainer()
	ctx := context.Background()

	round, _, err := svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)

	result, err := svc.CheckAnswer(ctx, testUserID, testChatID, round.Reference)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Streak)

	_, _, err = svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)

	result, err = svc.CheckAnswer(ctx, testUserID, testChatID, "qqqq wwww eeee")
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Equal(t, 0, result.Streak)
}

func TestCheckAnswerHintsReduceScore(t *testing.T) {
	svc, _ := newTestTrainer()
	ctx := context.Background()

	round, _, err := svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)

	_, err = svc.Hint(ctx, testUserID, testChatID)
	require.NoError(t, err)
	_, err = svc.Hint(ctx, testUserID, testChatID)
	require.NoError(t, err)

	result, err := svc.CheckAnswer(ctx, testUserID, testChatID, round.Reference)
	require.NoError(t, err)
	assert.Equal(t, 8, result.Score, "two hints cost two points")
}

func TestCheckAnswerNoActiveRound(t *testing.T) {
	svc, _ := newTestTrainer()

	_, err := svc.CheckAnswer(context.Background(), testUserID, testChatID, "hola")
	assert.ErrorIs(t, err, ErrNoActiveRound)
}

func TestScoreCarriesAcrossRounds(t *testing.T) {
	svc, _ := newTestTrainer()
	ctx := context.Background()

	round, _, err := svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)
	_, err = svc.CheckAnswer(ctx, testUserID, testChatID, round.Reference)
	require.NoError(t, err)

	next, _, err := svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)
	assert.Equal(t, 10, next.Score)
	assert.Equal(t, 1, next.Streak)
}

func TestHintProgressive(t *testing.T) {
	svc, _ := newTestTrainer()
	ctx := context.Background()

	_, _, err := svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)

	first, err := svc.Hint(ctx, testUserID, testChatID)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := svc.Hint(ctx, testUserID, testChatID)
	require.NoError(t, err)
	assert.NotEmpty(t, second)

	assert.Equal(t, 2, svc.ActiveRound(testChatID).HintsUsed)
}

func TestHintWithoutRound(t *testing.T) {
	svc, _ := newTestTrainer()

	_, err := svc.Hint(context.Background(), testUserID, testChatID)
	assert.ErrorIs(t, err, ErrNoActiveRound)
}

func TestSkipRevealsReference(t *testing.T) {
	svc, _ := newTestTrainer()
	ctx := context.Background()

	round, _, err := svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)

	reference, err := svc.Skip(testChatID)
	require.NoError(t, err)
	assert.Equal(t, round.Reference, reference)
}

func TestEndSessionDropsRound(t *testing.T) {
	svc, _ := newTestTrainer()
	ctx := context.Background()

	_, _, err := svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)

	svc.EndSession(testChatID)
	assert.Nil(t, svc.ActiveRound(testChatID))
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, stateRepo := newTestTrainer()
	ctx := context.Background()

	round, _, err := svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)
	_, err = svc.CheckAnswer(ctx, testUserID, testChatID, round.Reference)
	require.NoError(t, err)

	data, err := svc.Export(ctx, testUserID)
	require.NoError(t, err)

	var exported entities.TrainerState
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Equal(t, 1, exported.SessionStats.TotalReviews)

	// A different user imports the snapshot.
	otherUser := int64(999)
	require.NoError(t, svc.Import(ctx, otherUser, data))
	assert.Equal(t, 1, stateRepo.states[otherUser].SessionStats.TotalReviews)
}

func TestImportInvalidLeavesStateUntouched(t *testing.T) {
	svc, stateRepo := newTestTrainer()
	ctx := context.Background()

	round, _, err := svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)
	_, err = svc.CheckAnswer(ctx, testUserID, testChatID, round.Reference)
	require.NoError(t, err)
	savesBefore := stateRepo.saves

	err = svc.Import(ctx, testUserID, []byte("{not json"))
	require.Error(t, err)
	assert.Equal(t, savesBefore, stateRepo.saves, "invalid import must not write")

	stats, err := svc.OverallStats(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalReviews)
}

func TestResetProgressPersists(t *testing.T) {
	svc, stateRepo := newTestTrainer()
	ctx := context.Background()

	round, _, err := svc.NextRound(ctx, testUserID, testChatID)
	require.NoError(t, err)
	_, err = svc.CheckAnswer(ctx, testUserID, testChatID, round.Reference)
	require.NoError(t, err)

	require.NoError(t, svc.ResetProgress(ctx, testUserID, ""))

	saved := stateRepo.states[testUserID]
	require.NotNil(t, saved)
	assert.Empty(t, saved.GrammarProgress)
	assert.Equal(t, 0, saved.SessionStats.TotalReviews)
}

func TestLookupWordTranslationsOnly(t *testing.T) {
	svc, _ := newTestTrainer()

	// Default settings: native en, target es. No dictionary for Spanish.
	info, err := svc.LookupWord(context.Background(), testUserID, "lluvia")
	require.NoError(t, err)

	assert.Equal(t, "lluvia", info.Word)
	assert.Empty(t, info.Definitions)
	assert.Equal(t, "lluvia [es>en]", info.Translations["en"])
}

func TestLookupWordWithDictionary(t *testing.T) {
	stateRepo := newFakeStateRepo()
	settings := entities.NewUserSettings(testUserID)
	settings.NativeLang = "es"
	settings.TargetLang = "en"

	svc := NewTrainerService(
		stateRepo,
		&fakeSettingsRepo{settings: settings},
		storage.NewRoundStorage(),
		echoTranslator{},
		&fakeDictionary{entry: &provider.WordEntry{
			Word:        "rain",
			Phonetic:    "/ɹeɪn/",
			Definitions: []provider.Definition{{PartOfSpeech: "noun", Definition: "Water."}},
		}},
		generator.New(),
	)

	info, err := svc.LookupWord(context.Background(), testUserID, "rain")
	require.NoError(t, err)

	assert.Equal(t, "/ɹeɪn/", info.Phonetic)
	require.Len(t, info.Definitions, 1)
	assert.Equal(t, "rain [en>es]", info.Translations["es"])
}
