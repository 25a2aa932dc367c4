package engine

import (
	"math/rand"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
)

// Draw picks one ball uniformly at random among those not yet called.
// It returns ok=false when the pool is exhausted. The caller records the
// returned ball into the session; Draw itself has no side effects.
func Draw(rng *rand.Rand, called game.NumberList) (int, bool) {
	available := make([]int, 0, game.PoolSize-len(called))
	for ball := 1; ball <= game.PoolSize; ball++ {
		if !called.Contains(ball) {
			available = append(available, ball)
		}
	}
	if len(available) == 0 {
		return 0, false
	}
	return available[rng.Intn(len(available))], true
}
