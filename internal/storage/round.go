package storage

import (
	"sync"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
)

// RoundStorage provides in-memory storage for the active practice round by chat ID.
type RoundStorage struct {
	mu     sync.RWMutex
	rounds map[int64]*entities.PracticeRound
}

// NewRoundStorage creates a new RoundStorage.
func NewRoundStorage() *RoundStorage {
	return &RoundStorage{
		rounds: make(map[int64]*entities.PracticeRound),
	}
}

// Store saves the active round for a chat, replacing any previous one.
func (s *RoundStorage) Store(chatID int64, round *entities.PracticeRound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds[chatID] = round
}

// Get retrieves the active round for a chat, or nil when none is in flight.
func (s *RoundStorage) Get(chatID int64) *entities.PracticeRound {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rounds[chatID]
}

// Delete removes the active round for a chat.
func (s *RoundStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rounds, chatID)
}
