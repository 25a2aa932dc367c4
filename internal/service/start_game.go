package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/constants"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/engine"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/logging"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/speech"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/storage"
)

// TurnResult is what one turn hands back to the response layer: the mutated
// session plus the rendered speech and the re-prompt to use if the player
// stays silent.
type TurnResult struct {
	Session  *game.Session
	Speech   string
	Reprompt string
	Finished bool
}

var speedMessages = map[game.Speed]string{
	game.SpeedSlow:   "modo lento, con 5 segundos entre cada bola",
	game.SpeedNormal: "modo normal, con 3 segundos entre cada bola",
	game.SpeedFast:   "modo rápido, con un segundo y medio entre cada bola",
	game.SpeedTurbo:  "modo turbo, ¡con solo un segundo entre cada bola!",
}

func speedMessage(speed game.Speed) string {
	if m, ok := speedMessages[speed]; ok {
		return m
	}
	return speedMessages[game.SpeedNormal]
}

// StartGame creates a fresh session for the key and calls the first batch
// of balls. An existing session under the same key is reset in place so
// "nueva partida" always works.
func StartGame(repo storage.Repository, rng *rand.Rand, sessionKey string, speed game.Speed, cfg engine.BatchConfig) (*TurnResult, error) {
	fresh := game.NewSession(sessionKey, speed)

	existing, err := repo.GetSessionByKey(sessionKey)
	if err != nil {
		return nil, err
	}

	intro := speech.WrapExcited(fmt.Sprintf(
		`¡Bienvenidos al Virtual Bingo Show! %s Iniciando partida en %s %s ¡Preparen sus cartones! El juego comienza en 3... 2... 1... %s`,
		speech.Break(500*time.Millisecond),
		speedMessage(fresh.Speed),
		speech.Break(700*time.Millisecond),
		speech.Break(800*time.Millisecond),
	), "high")

	segments, exhausted := engine.RunBatch(rng, fresh, cfg)

	if existing != nil {
		// Keep the stored record, replace its game state.
		existing.Active = fresh.Active
		existing.Paused = fresh.Paused
		existing.Speed = fresh.Speed
		existing.CalledNumbers = fresh.CalledNumbers
		existing.LastNumber = fresh.LastNumber
		existing.StartTime = fresh.StartTime
		fresh = existing
		if err := repo.SaveSession(fresh); err != nil {
			return nil, err
		}
	} else if err := repo.CreateSession(fresh); err != nil {
		return nil, err
	}

	logging.Info("game started", logging.Fields{
		constants.LogFieldSessionKey: sessionKey,
		constants.LogFieldSpeed:      string(fresh.Speed),
		constants.LogFieldCalled:     len(fresh.CalledNumbers),
	})

	return &TurnResult{
		Session:  fresh,
		Speech:   intro + " " + renderTurn(segments),
		Reprompt: `Di "sigue" para continuar cantando números, o "pausa" para detener.`,
		Finished: exhausted,
	}, nil
}

// renderTurn wraps the ball run in the excited voice and leaves the final
// closing segment outside the wrapper, matching the show's delivery.
func renderTurn(segments []engine.Segment) string {
	if len(segments) == 0 {
		return ""
	}
	run := segments[:len(segments)-1]
	closing := segments[len(segments)-1]
	if len(run) == 0 {
		return closing.Text
	}
	return speech.WrapExcited(speech.Render(run), "medium") + " " + closing.Text
}
