package api

import (
	"math/rand"
	"time"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/engine"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/storage"
)

// CallerHandler groups all session-related HTTP handlers.
type CallerHandler struct {
	repo storage.Repository
	cfg  engine.BatchConfig
}

// NewCallerHandler creates a new CallerHandler with the given repository
// and batch tuning.
func NewCallerHandler(repo storage.Repository, cfg engine.BatchConfig) *CallerHandler {
	return &CallerHandler{repo: repo, cfg: cfg}
}

// newRNG returns a fresh generator per turn. Services take the generator
// as a parameter so tests can seed deterministic outcomes.
func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
