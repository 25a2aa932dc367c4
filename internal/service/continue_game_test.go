package service

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/engine"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
)

func TestContinueGame_NoSession(t *testing.T) {
	repo := newMockRepo()
	rng := rand.New(rand.NewSource(1))

	_, err := ContinueGame(repo, rng, "missing", engine.DefaultBatchConfig())
	if !errors.Is(err, ErrNoActiveGame) {
		t.Fatalf("expected ErrNoActiveGame, got %v", err)
	}
}

func TestContinueGame_InactiveSession(t *testing.T) {
	repo := newMockRepo()
	rng := rand.New(rand.NewSource(1))

	s := game.NewSession("done", game.SpeedNormal)
	s.Active = false
	repo.sessions["done"] = s

	_, err := ContinueGame(repo, rng, "done", engine.DefaultBatchConfig())
	if !errors.Is(err, ErrNoActiveGame) {
		t.Fatalf("expected ErrNoActiveGame for ended game, got %v", err)
	}
}

func TestContinueGame_ClearsPauseAndAdvances(t *testing.T) {
	repo := newMockRepo()
	rng := rand.New(rand.NewSource(2))

	s := game.NewSession("live", game.SpeedTurbo)
	for b := 1; b <= 20; b++ {
		s.RecordDraw(b)
	}
	s.Paused = true
	repo.sessions["live"] = s

	res, err := ContinueGame(repo, rng, "live", engine.DefaultBatchConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Session.Paused {
		t.Fatalf("continue should clear the pause flag")
	}
	if len(res.Session.CalledNumbers) != 60 {
		t.Fatalf("expected 60 cumulative calls, got %d", len(res.Session.CalledNumbers))
	}
	if repo.saves != 1 {
		t.Fatalf("expected exactly one save, got %d", repo.saves)
	}
	if !strings.Contains(res.Speech, "Quedan 30 números") {
		t.Fatalf("speech should state remaining numbers: %q", res.Speech)
	}
}

func TestContinueGame_FinishesOnExhaustion(t *testing.T) {
	repo := newMockRepo()
	rng := rand.New(rand.NewSource(3))

	s := game.NewSession("ending", game.SpeedNormal)
	for b := 1; b <= 85; b++ {
		s.RecordDraw(b)
	}
	repo.sessions["ending"] = s

	res, err := ContinueGame(repo, rng, "ending", engine.DefaultBatchConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Finished {
		t.Fatalf("expected the game to finish with 85 balls already called")
	}
	if res.Session.Active {
		t.Fatalf("exhausted game should be inactive")
	}
	if len(res.Session.CalledNumbers) != game.PoolSize {
		t.Fatalf("expected the full pool called, got %d", len(res.Session.CalledNumbers))
	}
	if !strings.Contains(res.Speech, "La partida ha terminado") {
		t.Fatalf("speech should announce completion: %q", res.Speech)
	}
	if !strings.Contains(res.Reprompt, `"nueva partida"`) {
		t.Fatalf("reprompt should invite a new game: %q", res.Reprompt)
	}
}
