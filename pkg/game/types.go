// Package game implements the core snake state machine: a discrete-tick
// engine that owns the grid, the entity, food placement, collision
// classification and the score-driven difficulty curve. The engine performs
// no I/O and keeps no timers; hosts drive it by calling Tick and render the
// immutable snapshots it returns.
package game

// Point represents a coordinate on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// NoCell is the off-grid placeholder used when food placement finds no
// free cell. It never collides with a reachable candidate head position.
var NoCell = Point{X: -1, Y: -1}
