package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
	"github.com/aliskhannn/lingua-trainer-bot/internal/infra/postgres"
)

// StateRepository persists each user's trainer state as a single JSONB blob.
// The blob is the unit of consistency: it is always written whole.
type StateRepository struct {
	db postgres.DBTX
}

// NewStateRepository creates a new StateRepository with the provided database pool.
func NewStateRepository(db postgres.DBTX) *StateRepository {
	return &StateRepository{db: db}
}

// Save upserts the user's trainer state.
func (r *StateRepository) Save(ctx context.Context, userID int64, state *entities.TrainerState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal trainer state: %w", err)
	}

	query := `
		INSERT INTO trainer_states (user_id, state, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			state = EXCLUDED.state,
			updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, userID, payload); err != nil {
		return fmt.Errorf("save trainer state: %w", err)
	}

	return nil
}

// Load reads the user's trainer state. A missing row or an unreadable blob
// yields a fresh default state, so a user can always practice.
func (r *StateRepository) Load(ctx context.Context, userID int64) (*entities.TrainerState, error) {
	query := `SELECT state FROM trainer_states WHERE user_id = $1`

	var payload []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.NewTrainerState(), nil
		}
		return nil, fmt.Errorf("load trainer state: %w", err)
	}

	var state entities.TrainerState
	if err := json.Unmarshal(payload, &state); err != nil {
		return entities.NewTrainerState(), nil
	}
	if state.GrammarProgress == nil {
		state.GrammarProgress = make(map[string]*entities.GrammarProgress)
	}

	return &state, nil
}

// Delete removes the user's trainer state.
func (r *StateRepository) Delete(ctx context.Context, userID int64) error {
	query := `DELETE FROM trainer_states WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("delete trainer state: %w", err)
	}

	return nil
}
