package telegram

import (
	"context"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
	"github.com/aliskhannn/lingua-trainer-bot/internal/service"
	"github.com/aliskhannn/lingua-trainer-bot/internal/srs"
)

type UserService interface {
	Register(ctx context.Context, userID, chatID int64) (bool, error)
}

type SettingsService interface {
	Get(ctx context.Context, userID int64) (*entities.UserSettings, error)
	SetLevel(ctx context.Context, userID int64, level string) error
	SetNativeLang(ctx context.Context, userID int64, code string) error
	SetTargetLang(ctx context.Context, userID int64, code string) error
}

type TrainerService interface {
	NextRound(ctx context.Context, userID, chatID int64) (*entities.PracticeRound, *srs.Selection, error)
	CheckAnswer(ctx context.Context, userID, chatID int64, answer string) (*service.CheckResult, error)
	Hint(ctx context.Context, userID, chatID int64) (string, error)
	Skip(chatID int64) (string, error)
	EndSession(chatID int64)
	ActiveRound(chatID int64) *entities.PracticeRound

	OverallStats(ctx context.Context, userID int64) (srs.OverallStats, error)
	GrammarList(ctx context.Context, userID int64, level entities.Level) ([]srs.GrammarStats, error)
	ResetProgress(ctx context.Context, userID int64, grammarID string) error
	Export(ctx context.Context, userID int64) ([]byte, error)
	Import(ctx context.Context, userID int64, data []byte) error
	LookupWord(ctx context.Context, userID int64, word string) (*service.WordInfo, error)
}
