package storage

import (
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
)

// Repository is the persistence boundary for game sessions. Implementations
// are expected to be idempotent per call: one load and at most one save
// happen per turn.
type Repository interface {
	// GetSessionByKey returns the session for the given key, or
	// (nil, nil) when no session exists yet.
	GetSessionByKey(key string) (*game.Session, error)
	CreateSession(s *game.Session) error
	SaveSession(s *game.Session) error
}
