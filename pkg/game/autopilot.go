package game

import (
	"math/rand"
	"time"
)

// Autopilot picks the next direction for demo mode. It is a pure consumer
// of snapshots: it sees exactly what a renderer sees and feeds its choice
// back through SubmitDirection like any other input source.
type Autopilot struct {
	rng *rand.Rand
}

// NewAutopilot returns a pilot with its own random source for tie
// breaking. A zero seed means seed from the current time.
func NewAutopilot(seed int64) *Autopilot {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Autopilot{rng: rand.New(rand.NewSource(seed))}
}

// Step computes the best next move for the given state. It reports false
// when the game is over or no safe move exists.
func (a *Autopilot) Step(s Snapshot) (Direction, bool) {
	if s.GameOver || len(s.Entity) == 0 {
		return 0, false
	}

	grid := Grid{Width: s.Width, Height: s.Height}
	head := s.Head()
	occupied := make(map[Point]bool, len(s.Entity))
	for _, p := range s.Entity {
		occupied[p] = true
	}

	// Shuffle dirs to avoid deterministic behavior when scores are equal
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	a.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	entityLen := len(s.Entity)
	tail := s.Entity[entityLen-1]
	found := false
	var bestDir Direction
	bestScore := -1000000.0

	for _, dir := range dirs {
		// Prevent 180-degree turns
		if dir == s.Direction.Opposite() {
			continue
		}

		next := head.Add(dir.Delta())
		if !grid.Contains(next) || occupied[next] {
			continue
		}

		reachable := countReachableSpace(grid, occupied, tail, next)
		score := float64(reachable) * 50.0
		if reachable < entityLen {
			score -= 5000.0
		}

		if s.HasFood() {
			distToFood := float64(manhattan(next, s.Food))
			score += (100.0 - distToFood) * 2.0
			if next == s.Food {
				score += 1000.0
			}
		}

		// When space gets tight, shadow the tail: it frees a cell per tick.
		if threshold := entityLen + 10; reachable < threshold {
			distToTail := float64(manhattan(next, tail))
			urgency := float64(threshold - reachable)
			score += (100.0 - distToTail) * urgency * 0.5
		}

		if score > bestScore {
			bestScore = score
			bestDir = dir
			found = true
		}
	}

	return bestDir, found
}

// countReachableSpace uses a simple flood fill to count safe tiles
func countReachableSpace(grid Grid, occupied map[Point]bool, tail, start Point) int {
	visited := map[Point]bool{start: true}
	queue := []Point{start}
	count := 0
	limit := grid.Cells()

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		count++

		if count > limit {
			return count
		}

		for _, d := range Directions {
			next := curr.Add(d.Delta())
			if !grid.Contains(next) {
				continue
			}
			// The tail cell frees up as the entity moves, so treat it as
			// passable even though it is occupied right now.
			if occupied[next] && next != tail {
				continue
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return count
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
