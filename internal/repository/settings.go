package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
	"github.com/aliskhannn/lingua-trainer-bot/internal/infra/postgres"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository provides access to user learning preferences.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository with the provided database pool.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// CreateDefaults inserts default settings for a user if none exist yet.
func (r *SettingsRepository) CreateDefaults(ctx context.Context, userID int64) error {
	defaults := entities.NewUserSettings(userID)
	query := `
		INSERT INTO user_settings (user_id, native_lang, target_lang, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, userID, defaults.NativeLang, defaults.TargetLang, defaults.Level)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByUserID retrieves settings for a user.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
		SELECT user_id, native_lang, target_lang, level, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var settings entities.UserSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.NativeLang,
		&settings.TargetLang,
		&settings.Level,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &settings, nil
}

// UpdateLevel updates the user's CEFR level.
func (r *SettingsRepository) UpdateLevel(ctx context.Context, userID int64, level entities.Level) error {
	query := `
		UPDATE user_settings
		SET level = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, level, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update level: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// UpdateNativeLang updates the language answers are displayed in.
func (r *SettingsRepository) UpdateNativeLang(ctx context.Context, userID int64, lang string) error {
	query := `
		UPDATE user_settings
		SET native_lang = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, lang, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update native lang: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// UpdateTargetLang updates the language the learner produces.
func (r *SettingsRepository) UpdateTargetLang(ctx context.Context, userID int64, lang string) error {
	query := `
		UPDATE user_settings
		SET target_lang = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, lang, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update target lang: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
