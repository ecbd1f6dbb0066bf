package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
	"github.com/aliskhannn/lingua-trainer-bot/internal/provider"
)

// Transactor runs a function inside one database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

type SettingsRepository interface {
	CreateDefaults(ctx context.Context, userID int64) error
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdateLevel(ctx context.Context, userID int64, level entities.Level) error
	UpdateNativeLang(ctx context.Context, userID int64, lang string) error
	UpdateTargetLang(ctx context.Context, userID int64, lang string) error
}

type StateRepository interface {
	Save(ctx context.Context, userID int64, state *entities.TrainerState) error
	Load(ctx context.Context, userID int64) (*entities.TrainerState, error)
	Delete(ctx context.Context, userID int64) error
}

// Translator resolves question texts between languages. Implementations
// degrade softly: on failure the original text comes back marked, never
// an error.
type Translator interface {
	TranslateSoft(ctx context.Context, text, from, to string) string
}

type Dictionary interface {
	Lookup(ctx context.Context, word string) (*provider.WordEntry, error)
}

// RoundStorage keeps the single in-flight practice round per chat.
type RoundStorage interface {
	Store(chatID int64, round *entities.PracticeRound)
	Get(chatID int64) *entities.PracticeRound
	Delete(chatID int64)
}
