package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
)

// SettingsService manages the user's learning preferences.
type SettingsService struct {
	repo SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the user's settings, creating defaults when none exist yet.
func (s *SettingsService) Get(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}

	if createErr := s.repo.CreateDefaults(ctx, userID); createErr != nil {
		return nil, errors.Join(err, createErr)
	}
	return s.repo.GetByUserID(ctx, userID)
}

// SetLevel updates the user's CEFR level.
func (s *SettingsService) SetLevel(ctx context.Context, userID int64, level string) error {
	parsed, ok := entities.ParseLevel(level)
	if !ok {
		return fmt.Errorf("invalid level %q", level)
	}
	return s.repo.UpdateLevel(ctx, userID, parsed)
}

// SetNativeLang updates the language questions are displayed in.
func (s *SettingsService) SetNativeLang(ctx context.Context, userID int64, code string) error {
	if code == "" {
		return errors.New("empty language code")
	}
	return s.repo.UpdateNativeLang(ctx, userID, code)
}

// SetTargetLang updates the language the learner produces.
func (s *SettingsService) SetTargetLang(ctx context.Context, userID int64, code string) error {
	if code == "" {
		return errors.New("empty language code")
	}
	return s.repo.UpdateTargetLang(ctx, userID, code)
}
