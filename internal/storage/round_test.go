package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
)

func TestRoundStorage(t *testing.T) {
	s := NewRoundStorage()

	assert.Nil(t, s.Get(1))

	first := &entities.PracticeRound{Score: 5}
	s.Store(1, first)
	assert.Same(t, first, s.Get(1))

	// A newer round supersedes the old one.
	second := &entities.PracticeRound{Score: 7}
	s.Store(1, second)
	assert.Same(t, second, s.Get(1))

	// Chats are independent.
	assert.Nil(t, s.Get(2))

	s.Delete(1)
	assert.Nil(t, s.Get(1))
}
