package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
)

// Segment is one ordered unit of spoken output. Pause is descriptive
// pacing metadata for the downstream speech renderer; the engine never
// sleeps. A zero Pause means no break follows the text.
type Segment struct {
	Text  string
	Pause time.Duration
}

// BatchConfig bounds the work done by one RunBatch call. The batch size is
// sized so that even at the slowest pacing the declared pause time of a
// full batch fits the voice platform's response window.
type BatchConfig struct {
	BatchSize       int
	AmbientChance   float64
	CheckpointEvery int
	CheckpointPause time.Duration
	Pacing          map[game.Speed]time.Duration
}

// DefaultBatchConfig returns the standard tuning: 40 balls per batch, a
// progress checkpoint every 10 cumulative balls, 30% ambient flavor, and
// the traditional pacing table.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		BatchSize:       40,
		AmbientChance:   0.3,
		CheckpointEvery: 10,
		CheckpointPause: 1 * time.Second,
		Pacing: map[game.Speed]time.Duration{
			game.SpeedSlow:   5 * time.Second,
			game.SpeedNormal: 3 * time.Second,
			game.SpeedFast:   1500 * time.Millisecond,
			game.SpeedTurbo:  1 * time.Second,
		},
	}
}

// ResolvePacing returns the pause between balls for the session's speed,
// falling back to the normal pacing for unrecognized values.
func (c BatchConfig) ResolvePacing(speed game.Speed) time.Duration {
	if d, ok := c.Pacing[speed]; ok {
		return d
	}
	return c.Pacing[game.SpeedNormal]
}

// RunBatch draws up to cfg.BatchSize balls, mutating the session in place
// and emitting the spoken segments for this turn. It returns exhausted=true
// when the pool ran out, in which case the session has been marked inactive
// and the final segment announces the end of the game; otherwise the final
// segment invites the player to continue.
//
// The progress checkpoint fires on the cumulative call count, so it lands
// exactly once per multiple of the interval no matter how draws are split
// across batches.
func RunBatch(rng *rand.Rand, s *game.Session, cfg BatchConfig) (segments []Segment, exhausted bool) {
	pacing := cfg.ResolvePacing(s.Speed)

	// The opening run of a game announces progress as "Llevamos N bolas";
	// later rounds use "Van N bolas".
	checkpointVerb := "Van"
	if len(s.CalledNumbers) == 0 {
		checkpointVerb = "Llevamos"
	}

	for i := 0; i < cfg.BatchSize; i++ {
		ball, ok := Draw(rng, s.CalledNumbers)
		if !ok {
			s.Active = false
			segments = append(segments, Segment{
				Text: "¡Y eso es todo! Se han cantado todos los números. La partida ha terminado.",
			})
			return segments, true
		}

		s.RecordDraw(ball)
		segments = append(segments, Segment{
			Text:  Announce(rng, ball, cfg.AmbientChance) + ".",
			Pause: pacing,
		})

		if cfg.CheckpointEvery > 0 && len(s.CalledNumbers)%cfg.CheckpointEvery == 0 {
			segments = append(segments, Segment{
				Text:  fmt.Sprintf("%s %d bolas.", checkpointVerb, len(s.CalledNumbers)),
				Pause: cfg.CheckpointPause,
			})
		}
	}

	remaining := game.PoolSize - len(s.CalledNumbers)
	if remaining == 0 {
		// The last ball of the batch emptied the pool.
		s.Active = false
		segments = append(segments, Segment{
			Text: "¡Y eso es todo! Se han cantado todos los números. La partida ha terminado.",
		})
		return segments, true
	}

	segments = append(segments, Segment{
		Text: fmt.Sprintf("Quedan %d números. Di \"sigue\" para continuar.", remaining),
	})
	return segments, false
}
