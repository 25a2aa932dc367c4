package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
)

func TestAnnounce_AmbientDisabledIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	first := Announce(rng, 15, 0)
	second := Announce(rng, 15, 0)
	if first != second {
		t.Fatalf("ambient-off announcements differ: %q vs %q", first, second)
	}
	if first != game.NumberPhrase(15) {
		t.Fatalf("expected canonical phrase, got %q", first)
	}
}

func TestAnnounce_FallbackForUnknownNumber(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	got := Announce(rng, 3, 0)
	if got != "El 3" {
		t.Fatalf("expected generic fallback, got %q", got)
	}
}

func TestAnnounce_AmbientAlwaysPrepends(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	got := Announce(rng, 22, 1)
	phrase := game.NumberPhrase(22)
	if !strings.HasSuffix(got, phrase) {
		t.Fatalf("announcement %q should end with %q", got, phrase)
	}
	if got == phrase {
		t.Fatalf("expected ambient prefix with chance=1, got bare phrase %q", got)
	}
}
