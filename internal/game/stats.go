package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GameStats summarizes game progress.
type GameStats struct {
	Called    int `json:"called"`
	Remaining int `json:"remaining"`
	Progress  int `json:"progress"`
}

// Stats computes progress over the given pool total. A non-positive total
// falls back to the standard pool size.
func Stats(called NumberList, total int) GameStats {
	if total <= 0 {
		total = PoolSize
	}
	c := len(called)
	return GameStats{
		Called:    c,
		Remaining: total - c,
		Progress:  int(math.Round(float64(c) / float64(total) * 100)),
	}
}

// FormatCalledNumbers renders the call history for read-back: the full list
// when short, otherwise only the ten most recent balls.
func FormatCalledNumbers(numbers NumberList) string {
	if len(numbers) == 0 {
		return "No se han cantado números aún."
	}
	if len(numbers) <= 5 {
		return joinNumbers(numbers)
	}
	start := len(numbers) - 10
	if start < 0 {
		start = 0
	}
	recent := numbers[start:]
	return fmt.Sprintf("Los últimos números son: %s", joinNumbers(recent))
}

// VerifyWinningCard reports whether every number on the candidate card has
// already been called.
func VerifyWinningCard(called NumberList, card []int) bool {
	for _, n := range card {
		if !called.Contains(n) {
			return false
		}
	}
	return true
}

func joinNumbers(numbers NumberList) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
