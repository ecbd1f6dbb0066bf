package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
	"github.com/aliskhannn/lingua-trainer-bot/internal/repository"
)

// UserService manages bot user registration.
type UserService struct {
	tr Transactor
}

// NewUserService creates a new UserService.
func NewUserService(tr Transactor) *UserService {
	return &UserService{tr: tr}
}

// Register saves the user and ensures default settings exist, atomically.
// Returns true when the user is new.
func (s *UserService) Register(ctx context.Context, userID, chatID int64) (bool, error) {
	user := entities.NewUser(userID, chatID)
	user.IsActive = true

	var created bool
	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		userRepo := repository.NewUserRepository(tx)
		settingsRepo := repository.NewSettingsRepository(tx)

		var err error
		created, err = userRepo.Save(ctx, user)
		if err != nil {
			return err
		}

		return settingsRepo.CreateDefaults(ctx, userID)
	})
	if err != nil {
		return false, fmt.Errorf("register user: %w", err)
	}

	return created, nil
}
