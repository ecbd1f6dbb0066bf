package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
)

// retryingSettingsRepo fails GetByUserID until CreateDefaults runs.
type retryingSettingsRepo struct {
	fakeSettingsRepo
	created bool
}

func (r *retryingSettingsRepo) CreateDefaults(_ context.Context, _ int64) error {
	r.created = true
	return nil
}

func (r *retryingSettingsRepo) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	if !r.created {
		return nil, errors.New("no rows")
	}
	return r.fakeSettingsRepo.GetByUserID(ctx, userID)
}

func TestSettingsGetCreatesDefaults(t *testing.T) {
	repo := &retryingSettingsRepo{}
	svc := NewSettingsService(repo)

	settings, err := svc.Get(context.Background(), testUserID)
	require.NoError(t, err)

	assert.True(t, repo.created)
	assert.Equal(t, "en", settings.NativeLang)
	assert.Equal(t, "es", settings.TargetLang)
	assert.Equal(t, entities.LevelA1, settings.Level)
}

func TestSettingsSetLevel(t *testing.T) {
	repo := &fakeSettingsRepo{settings: entities.NewUserSettings(testUserID)}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SetLevel(ctx, testUserID, "B2"))
	assert.Equal(t, entities.LevelB2, repo.settings.Level)

	assert.Error(t, svc.SetLevel(ctx, testUserID, "D1"))
	assert.Equal(t, entities.LevelB2, repo.settings.Level)
}

func TestSettingsSetLangs(t *testing.T) {
	repo := &fakeSettingsRepo{settings: entities.NewUserSettings(testUserID)}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SetNativeLang(ctx, testUserID, "de"))
	require.NoError(t, svc.SetTargetLang(ctx, testUserID, "fr"))
	assert.Equal(t, "de", repo.settings.NativeLang)
	assert.Equal(t, "fr", repo.settings.TargetLang)

	assert.Error(t, svc.SetNativeLang(ctx, testUserID, ""))
	assert.Error(t, svc.SetTargetLang(ctx, testUserID, ""))
}
