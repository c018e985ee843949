package game

import (
	"time"

	"github.com/benjialonso/snake/pkg/config"
)

// Engine is the authoritative game state machine. It advances only when a
// host calls Tick and is not safe for concurrent use; hosts that drive it
// from multiple goroutines must serialize Tick, SubmitDirection and Reset
// themselves.
type Engine struct {
	grid     Grid
	cfg      config.Game
	curve    DifficultyCurve
	detector CollisionDetector
	placer   *RandomPlacer
	arbiter  DirectionArbiter

	entity    []Point
	food      Point
	committed Direction
	level     int
	interval  time.Duration
	tick      uint64
	over      bool
	crashCell Point
	crash     Collision
}

// New builds a fresh engine on a width x height grid. Dimensions below 2
// fall back to the standard board; cfg is normalized before use.
func New(width, height int, cfg config.Game) *Engine {
	if width < 2 {
		width = config.DefaultWidth
	}
	if height < 2 {
		height = config.DefaultHeight
	}
	cfg = cfg.Normalized()

	grid := Grid{Width: width, Height: height}
	e := &Engine{
		grid:     grid,
		cfg:      cfg,
		curve:    NewDifficultyCurve(cfg),
		detector: NewCollisionDetector(grid),
		placer:   NewRandomPlacer(cfg.Seed, cfg.MaxPlacementAttempts),
	}
	e.entity = []Point{grid.Center()}
	e.committed = DirRight
	e.level = 1
	e.interval = e.curve.IntervalFor(1)
	e.placeFood()
	return e
}

// SubmitDirection requests a direction change for the next tick. Reversals
// of the committed direction are dropped; of several requests between two
// ticks only the latest valid one survives.
func (e *Engine) SubmitDirection(d Direction) {
	if e.over {
		return
	}
	e.arbiter.Submit(d, e.committed)
}

// Tick advances the game by one step and returns the resulting snapshot.
// After game over it is a safe no-op that keeps returning the final frame.
func (e *Engine) Tick() Snapshot {
	if e.over {
		return e.Snapshot()
	}
	e.tick++

	if d, ok := e.arbiter.ConsumePending(); ok {
		e.committed = d
	}

	head := e.entity[0]
	candidate := head.Add(e.committed.Delta())
	willEat := e.food != NoCell && candidate == e.food

	// When the tail vacates its cell this tick, moving into that cell is
	// legal; a growing entity keeps its tail, so the whole body counts.
	body := e.entity
	if !willEat {
		body = e.entity[:len(e.entity)-1]
	}
	if c := e.detector.Classify(candidate, body); c != CollisionNone {
		// Fatal move is never applied: the last valid frame freezes.
		e.over = true
		e.crash = c
		e.crashCell = candidate
		return e.Snapshot()
	}

	e.entity = append([]Point{candidate}, e.entity...)
	if willEat {
		e.placeFood()
		e.advanceDifficulty()
	} else {
		e.entity = e.entity[:len(e.entity)-1]
	}
	if e.food == NoCell && !willEat {
		// A failed earlier placement is retried once space may have freed.
		e.placeFood()
	}
	return e.Snapshot()
}

// Reset rebuilds the engine wholesale into a fresh running game with the
// same grid and rules, and returns the initial snapshot.
func (e *Engine) Reset() Snapshot {
	*e = *New(e.grid.Width, e.grid.Height, e.cfg)
	return e.Snapshot()
}

// Score is the number of food cells eaten, derived from entity length.
func (e *Engine) Score() int {
	return len(e.entity) - 1
}

// Snapshot copies the current state into an immutable DTO.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:           e.tick,
		Width:          e.grid.Width,
		Height:         e.grid.Height,
		Entity:         append([]Point(nil), e.entity...),
		Food:           e.food,
		Direction:      e.committed,
		Score:          e.Score(),
		Level:          e.level,
		TickIntervalMs: int(e.interval / time.Millisecond),
		GameOver:       e.over,
	}
	if d, ok := e.arbiter.Peek(); ok {
		pending := d
		s.PendingDirection = &pending
	}
	if e.over {
		cell := e.crashCell
		s.CrashCell = &cell
		s.CrashCause = e.crash.String()
	}
	return s
}

// Config returns the client-facing settings DTO.
func (e *Engine) Config() GameConfig {
	return GameConfig{
		Width:          e.grid.Width,
		Height:         e.grid.Height,
		ScorePerLevel:  e.cfg.ScorePerLevel,
		MaxLevel:       e.cfg.MaxLevel,
		BaseIntervalMs: int(e.cfg.BaseInterval / time.Millisecond),
		MinIntervalMs:  int(e.cfg.MinInterval / time.Millisecond),
	}
}

// placeFood asks the placer for a free cell given current occupancy.
func (e *Engine) placeFood() {
	occupied := make(map[Point]bool, len(e.entity))
	for _, p := range e.entity {
		occupied[p] = true
	}
	e.food = e.placer.Place(e.grid, occupied)
}

// advanceDifficulty recomputes level and interval. Called only when the
// score changed, so hosts can treat an interval change as a real event.
func (e *Engine) advanceDifficulty() {
	level := e.curve.LevelFor(e.Score())
	if level != e.level {
		e.level = level
		e.interval = e.curve.IntervalFor(level)
	}
}
