package game

// Collision classifies the outcome of moving the head into a candidate cell.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall-collision"
	case CollisionSelf:
		return "self-collision"
	}
	return "none"
}

// CollisionDetector classifies candidate head positions against the grid
// and an entity body. It holds no mutable state.
type CollisionDetector struct {
	grid Grid
}

// NewCollisionDetector returns a detector bound to the given grid.
func NewCollisionDetector(grid Grid) CollisionDetector {
	return CollisionDetector{grid: grid}
}

// Classify checks the candidate head cell, wall first. The body passed in
// must already exclude any cell the entity vacates on the same tick; the
// detector does not know whether the tail moves.
func (d CollisionDetector) Classify(candidate Point, body []Point) Collision {
	if !d.grid.Contains(candidate) {
		return CollisionWall
	}
	for _, p := range body {
		if p == candidate {
			return CollisionSelf
		}
	}
	return CollisionNone
}
