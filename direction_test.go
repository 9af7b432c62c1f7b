package main

import "testing"

func TestDirectionVectors(t *testing.T) {
	cases := []struct {
		dir    Direction
		dx, dy int
	}{
		{TopLeft, -1, -1},
		{Top, 0, -1},
		{TopRight, 1, -1},
		{Left, -1, 0},
		{Center, 0, 0},
		{Right, 1, 0},
		{BottomLeft, -1, 1},
		{Bottom, 0, 1},
		{BottomRight, 1, 1},
	}
	for _, c := range cases {
		dx, dy, ok := c.dir.Vector()
		if !ok || dx != c.dx || dy != c.dy {
			t.Fatalf("%s: expected (%d,%d), got (%d,%d) ok=%v", c.dir, c.dx, c.dy, dx, dy, ok)
		}
	}
	if _, _, ok := Direction(42).Vector(); ok {
		t.Fatalf("expected unknown direction to have no vector")
	}
	if _, _, ok := Direction(-1).Vector(); ok {
		t.Fatalf("expected negative direction to have no vector")
	}
}

func TestNeighborLookup(t *testing.T) {
	grid := NewGrid(3, 3, 0)
	grid.Set(2, 1, 7)
	value, ok := grid.Neighbor(2, 2, Top)
	if !ok || value != 7 {
		t.Fatalf("expected 7 above (2,2), got %d ok=%v", value, ok)
	}
	if _, ok := grid.Neighbor(1, 1, TopLeft); ok {
		t.Fatalf("expected neighbor off the grid to be absent")
	}
	if _, ok := grid.Neighbor(9, 9, Right); ok {
		t.Fatalf("expected invalid origin to have no neighbor")
	}
	if _, ok := grid.Neighbor(2, 2, Direction(42)); ok {
		t.Fatalf("expected unknown direction to have no neighbor")
	}
}

func TestNeighborsTagsOutsideCells(t *testing.T) {
	grid := NewGrid(3, 3, 0)
	grid.Set(2, 1, 5)
	neighbors := grid.Neighbors(1, 1)
	if len(neighbors) != 8 {
		t.Fatalf("expected 8 entries for a corner origin, got %d", len(neighbors))
	}
	outside := 0
	for _, n := range neighbors {
		if n.Outside {
			outside++
		}
	}
	// A corner cell has exactly three in-range neighbors.
	if outside != 5 {
		t.Fatalf("expected 5 outside entries at a corner, got %d", outside)
	}
	// scanDirections order: TopRight is the third entry and its cell (2,0)
	// is off the grid; Right is the fifth and holds the written value.
	if !neighbors[2].Outside {
		t.Fatalf("expected TopRight of (1,1) to be outside")
	}
	if neighbors[4].Outside || neighbors[4].X != 2 || neighbors[4].Y != 1 || neighbors[4].Value != 5 {
		t.Fatalf("unexpected Right neighbor: %+v", neighbors[4])
	}
}

func TestNeighborsInvalidOriginIsEmpty(t *testing.T) {
	grid := NewGrid(3, 3, 0)
	if got := grid.Neighbors(0, 2); len(got) != 0 {
		t.Fatalf("expected empty enumeration for invalid origin, got %d entries", len(got))
	}
}

func TestTraverseWalksToTheEdge(t *testing.T) {
	grid := NewGrid(8, 8, 0)
	cells, ok := grid.Traverse(1, 1, BottomRight)
	if !ok {
		t.Fatalf("expected valid origin")
	}
	if len(cells) != 7 {
		t.Fatalf("expected 7 cells from (1,1) to the corner, got %d", len(cells))
	}
	if cells[0].X != 2 || cells[0].Y != 2 {
		t.Fatalf("expected traversal to start one step past the origin, got (%d,%d)", cells[0].X, cells[0].Y)
	}
	if last := cells[len(cells)-1]; last.X != 8 || last.Y != 8 {
		t.Fatalf("expected traversal to end at the corner, got (%d,%d)", last.X, last.Y)
	}
}

func TestTraverseDistinguishesNoOriginFromNoCells(t *testing.T) {
	grid := NewGrid(4, 4, 0)
	if _, ok := grid.Traverse(0, 0, Right); ok {
		t.Fatalf("expected invalid origin to report ok=false")
	}
	cells, ok := grid.Traverse(4, 4, BottomRight)
	if !ok || len(cells) != 0 {
		t.Fatalf("expected empty traversal from the far corner, got %d cells ok=%v", len(cells), ok)
	}
	cells, ok = grid.Traverse(2, 2, Center)
	if !ok || len(cells) != 0 {
		t.Fatalf("expected empty traversal for Center, got %d cells ok=%v", len(cells), ok)
	}
	cells, ok = grid.Traverse(2, 2, Direction(42))
	if !ok || len(cells) != 0 {
		t.Fatalf("expected empty traversal for unknown direction, got %d cells ok=%v", len(cells), ok)
	}
}

func TestTraverseReportsValuesInOrder(t *testing.T) {
	grid := NewGrid(4, 4, 0)
	grid.Set(2, 3, 20)
	grid.Set(2, 4, 30)
	cells, ok := grid.Traverse(2, 2, Bottom)
	if !ok || len(cells) != 2 {
		t.Fatalf("expected 2 cells below (2,2), got %d ok=%v", len(cells), ok)
	}
	if cells[0].Value != 20 || cells[1].Value != 30 {
		t.Fatalf("expected nearest-to-farthest order, got %d then %d", cells[0].Value, cells[1].Value)
	}
}
