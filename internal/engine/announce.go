package engine

import (
	"math/rand"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
)

// Announce builds the spoken text for a drawn ball: the traditional phrase
// for the number, occasionally preceded by an ambient flavor line. The
// ambient line is prepended with probability ambientChance; pass 0 to
// disable ambient flavor entirely. Pause markup is not added here.
func Announce(rng *rand.Rand, ball int, ambientChance float64) string {
	announcement := ""
	if ambientChance > 0 && rng.Float64() < ambientChance {
		announcement += game.AmbientPhrase(rng) + " "
	}
	announcement += game.NumberPhrase(ball)
	return announcement
}
