package service

import (
	"errors"
	"math/rand"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/constants"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/engine"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/logging"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/storage"
)

var (
	// ErrNoActiveGame means a turn was requested without an active
	// session. It is a normal condition, answered with an invitation to
	// start a new game rather than a failure.
	ErrNoActiveGame = errors.New("no active game for this session")

	// ErrSessionNotFound means no session record exists for the key.
	ErrSessionNotFound = errors.New("session not found")
)

// ContinueGame resumes an active session and calls the next batch of
// balls. The session's pause flag is cleared before drawing.
func ContinueGame(repo storage.Repository, rng *rand.Rand, sessionKey string, cfg engine.BatchConfig) (*TurnResult, error) {
	s, err := repo.GetSessionByKey(sessionKey)
	if err != nil {
		return nil, err
	}
	if s == nil || !s.Active {
		return nil, ErrNoActiveGame
	}

	s.Paused = false

	segments, exhausted := engine.RunBatch(rng, s, cfg)

	if err := repo.SaveSession(s); err != nil {
		return nil, err
	}

	logging.Info("game continued", logging.Fields{
		constants.LogFieldSessionKey: sessionKey,
		constants.LogFieldCalled:     len(s.CalledNumbers),
		constants.LogFieldRemaining:  game.PoolSize - len(s.CalledNumbers),
	})

	reprompt := `Di "sigue" para continuar cantando números.`
	if exhausted {
		reprompt = `Di "nueva partida" para jugar otra vez.`
	}

	return &TurnResult{
		Session:  s,
		Speech:   renderTurn(segments),
		Reprompt: reprompt,
		Finished: exhausted,
	}, nil
}
