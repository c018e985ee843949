package game

// Grid describes the playfield bounds. All cells with 0 <= X < Width and
// 0 <= Y < Height are playable; everything outside is wall.
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether p lies inside the playfield.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the spawn cell for a fresh entity.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the total number of playable cells.
func (g Grid) Cells() int {
	return g.Width * g.Height
}
