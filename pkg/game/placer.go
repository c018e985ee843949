package game

import (
	"math/rand"
	"time"
)

// RandomPlacer picks free cells for food. It draws random cells up to a
// bounded number of attempts and then falls back to a deterministic scan,
// so placement cost stays bounded even on a crowded board.
type RandomPlacer struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewRandomPlacer returns a placer with its own random source. A zero seed
// means seed from the current time.
func NewRandomPlacer(seed int64, maxAttempts int) *RandomPlacer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RandomPlacer{
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: maxAttempts,
	}
}

// Place returns a free cell on the grid, never one in occupied. When the
// random attempts are exhausted it scans the grid for the first free cell;
// only a completely full board yields NoCell.
func (p *RandomPlacer) Place(grid Grid, occupied map[Point]bool) Point {
	for i := 0; i < p.maxAttempts; i++ {
		c := Point{X: p.rng.Intn(grid.Width), Y: p.rng.Intn(grid.Height)}
		if !occupied[c] {
			return c
		}
	}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := Point{X: x, Y: y}
			if !occupied[c] {
				return c
			}
		}
	}
	return NoCell
}
