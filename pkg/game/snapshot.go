package game

import "time"

// Snapshot is an immutable copy of the game state for clients and
// renderers. The entity slice is owned by the snapshot; mutating it never
// affects the engine.
type Snapshot struct {
	Tick             uint64     `json:"tick"`
	Width            int        `json:"width"`
	Height           int        `json:"height"`
	Entity           []Point    `json:"entity"`
	Food             Point      `json:"food"`
	Direction        Direction  `json:"direction"`
	PendingDirection *Direction `json:"pendingDirection,omitempty"`
	Score            int        `json:"score"`
	Level            int        `json:"level"`
	TickIntervalMs   int        `json:"tickIntervalMs"`
	GameOver         bool       `json:"gameOver"`
	CrashCell        *Point     `json:"crashCell,omitempty"`
	CrashCause       string     `json:"crashCause,omitempty"`
}

// Head returns the entity's head cell.
func (s Snapshot) Head() Point {
	return s.Entity[0]
}

// HasFood reports whether food is currently placed on the board.
func (s Snapshot) HasFood() bool {
	return s.Food != NoCell
}

// TickInterval returns the current tick period as a duration.
func (s Snapshot) TickInterval() time.Duration {
	return time.Duration(s.TickIntervalMs) * time.Millisecond
}

// GameConfig is a DTO for game settings sent to client on connect
type GameConfig struct {
	Width          int `json:"width"`
	Height         int `json:"height"`
	ScorePerLevel  int `json:"scorePerLevel"`
	MaxLevel       int `json:"maxLevel"`
	BaseIntervalMs int `json:"baseIntervalMs"`
	MinIntervalMs  int `json:"minIntervalMs"`
}
