package game

import "testing"

// TestPlaceAvoidsOccupied draws many placements against a half-full board
// and expects every one on a free in-bounds cell.
func TestPlaceAvoidsOccupied(t *testing.T) {
	grid := Grid{Width: 10, Height: 10}
	occupied := make(map[Point]bool)
	for y := 0; y < 10; y++ {
		for x := 0; x < 5; x++ {
			occupied[Point{X: x, Y: y}] = true
		}
	}

	p := NewRandomPlacer(42, 128)
	for i := 0; i < 200; i++ {
		c := p.Place(grid, occupied)
		if !grid.Contains(c) {
			t.Fatalf("Placement %d out of bounds: %v", i, c)
		}
		if occupied[c] {
			t.Fatalf("Placement %d on occupied cell: %v", i, c)
		}
	}
}

// TestPlaceFindsLastFreeCell leaves a single free cell and a tiny attempt
// budget, so the scan fallback has to find it.
func TestPlaceFindsLastFreeCell(t *testing.T) {
	grid := Grid{Width: 6, Height: 6}
	free := Point{X: 4, Y: 3}
	occupied := make(map[Point]bool)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			c := Point{X: x, Y: y}
			if c != free {
				occupied[c] = true
			}
		}
	}

	p := NewRandomPlacer(1, 1)
	if c := p.Place(grid, occupied); c != free {
		t.Errorf("Expected the only free cell %v, got %v", free, c)
	}
}

// TestPlaceFullBoardSentinel expects NoCell when nothing is free.
func TestPlaceFullBoardSentinel(t *testing.T) {
	grid := Grid{Width: 3, Height: 3}
	occupied := make(map[Point]bool)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			occupied[Point{X: x, Y: y}] = true
		}
	}

	p := NewRandomPlacer(42, 16)
	if c := p.Place(grid, occupied); c != NoCell {
		t.Errorf("Expected NoCell on a full board, got %v", c)
	}
}

// TestPlaceDeterministicSeed runs two placers with the same seed and
// expects identical sequences.
func TestPlaceDeterministicSeed(t *testing.T) {
	grid := Grid{Width: 12, Height: 12}
	occupied := map[Point]bool{{X: 6, Y: 6}: true}

	a := NewRandomPlacer(1234, 128)
	b := NewRandomPlacer(1234, 128)
	for i := 0; i < 50; i++ {
		ca, cb := a.Place(grid, occupied), b.Place(grid, occupied)
		if ca != cb {
			t.Fatalf("Draw %d diverged: %v vs %v", i, ca, cb)
		}
	}
}
