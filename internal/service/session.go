package service

import (
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/storage"
)

// PauseGame suspends an active session until the next continue.
func PauseGame(repo storage.Repository, sessionKey string) (*game.Session, error) {
	s, err := repo.GetSessionByKey(sessionKey)
	if err != nil {
		return nil, err
	}
	if s == nil || !s.Active {
		return nil, ErrNoActiveGame
	}
	s.Paused = true
	if err := repo.SaveSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// StopGame ends an active session for good. A stopped session never
// becomes active again.
func StopGame(repo storage.Repository, sessionKey string) (*game.Session, error) {
	s, err := repo.GetSessionByKey(sessionKey)
	if err != nil {
		return nil, err
	}
	if s == nil || !s.Active {
		return nil, ErrNoActiveGame
	}
	s.Active = false
	s.Paused = false
	if err := repo.SaveSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetStats returns progress counters for the session's game.
func GetStats(repo storage.Repository, sessionKey string) (game.GameStats, error) {
	s, err := repo.GetSessionByKey(sessionKey)
	if err != nil {
		return game.GameStats{}, err
	}
	if s == nil {
		return game.GameStats{}, ErrSessionNotFound
	}
	return game.Stats(s.CalledNumbers, game.PoolSize), nil
}

// CalledNumbers returns the read-back text for the session's call history.
func CalledNumbers(repo storage.Repository, sessionKey string) (string, error) {
	s, err := repo.GetSessionByKey(sessionKey)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", ErrSessionNotFound
	}
	return game.FormatCalledNumbers(s.CalledNumbers), nil
}

// VerifyCard checks a candidate card against the session's called balls.
func VerifyCard(repo storage.Repository, sessionKey string, card []int) (bool, error) {
	s, err := repo.GetSessionByKey(sessionKey)
	if err != nil {
		return false, err
	}
	if s == nil {
		return false, ErrSessionNotFound
	}
	return game.VerifyWinningCard(s.CalledNumbers, card), nil
}
