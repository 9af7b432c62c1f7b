package main

// Cell is the unit returned by bulk grid queries: a coordinate and the value
// stored there.
type Cell[V any] struct {
	X     int
	Y     int
	Value V
}

// Entry seeds a single cell for Populate. A nil Value stores the grid
// default at that coordinate.
type Entry[V any] struct {
	X     int
	Y     int
	Value *V
}

// fallbackGridSize is used when a grid is created with non-positive
// dimensions instead of failing construction.
const fallbackGridSize = 8

// Grid is a bounded two-dimensional container. Coordinates are 1-based:
// 1 <= x <= SizeX, 1 <= y <= SizeY. Every in-range coordinate always holds a
// value; cells a caller never touched hold the default.
type Grid[V comparable] struct {
	sizeX int
	sizeY int
	def   V
	cells []V
}

func NewGrid[V comparable](sizeX, sizeY int, def V) Grid[V] {
	if sizeX <= 0 || sizeY <= 0 {
		sizeX = fallbackGridSize
		sizeY = fallbackGridSize
	}
	g := Grid[V]{sizeX: sizeX, sizeY: sizeY, def: def}
	g.cells = make([]V, sizeX*sizeY)
	g.ResetAll()
	return g
}

func (g Grid[V]) SizeX() int {
	return g.sizeX
}

func (g Grid[V]) SizeY() int {
	return g.sizeY
}

func (g Grid[V]) Default() V {
	return g.def
}

func (g Grid[V]) IsValid(x, y int) bool {
	return x >= 1 && x <= g.sizeX && y >= 1 && y <= g.sizeY
}

// At returns the value stored at (x, y), or the zero value and false when
// the coordinate is out of range.
func (g Grid[V]) At(x, y int) (V, bool) {
	if !g.IsValid(x, y) {
		var zero V
		return zero, false
	}
	return g.cells[g.index(x, y)], true
}

// Set overwrites the value at (x, y). Out-of-range coordinates are a no-op.
func (g *Grid[V]) Set(x, y int, value V) {
	if !g.IsValid(x, y) {
		return
	}
	g.cells[g.index(x, y)] = value
}

// ResetCell puts the default back at (x, y) and reports whether the
// coordinate was in range.
func (g *Grid[V]) ResetCell(x, y int) bool {
	if !g.IsValid(x, y) {
		return false
	}
	g.cells[g.index(x, y)] = g.def
	return true
}

// ResetAll returns every cell to the default without resizing.
func (g *Grid[V]) ResetAll() {
	for i := range g.cells {
		g.cells[i] = g.def
	}
}

// Populate applies each entry whose coordinate is in range and skips the
// rest; one bad entry never fails the whole call. Entries without a value
// store the grid default.
func (g *Grid[V]) Populate(entries []Entry[V]) {
	for _, entry := range entries {
		if !g.IsValid(entry.X, entry.Y) {
			continue
		}
		value := g.def
		if entry.Value != nil {
			value = *entry.Value
		}
		g.cells[g.index(entry.X, entry.Y)] = value
	}
}

// Contents enumerates every cell in x-ascending, then y-ascending order.
// With excludeDefault set, cells still holding the default are omitted.
func (g Grid[V]) Contents(excludeDefault bool) []Cell[V] {
	cells := make([]Cell[V], 0, len(g.cells))
	for x := 1; x <= g.sizeX; x++ {
		for y := 1; y <= g.sizeY; y++ {
			value := g.cells[g.index(x, y)]
			if excludeDefault && value == g.def {
				continue
			}
			cells = append(cells, Cell[V]{X: x, Y: y, Value: value})
		}
	}
	return cells
}

// Resize rebuilds storage at the new dimensions, keeping values at
// coordinates that exist in both the old and new bounds and defaulting the
// rest. Non-positive dimensions fail without touching the grid.
func (g *Grid[V]) Resize(sizeX, sizeY int) bool {
	if sizeX <= 0 || sizeY <= 0 {
		return false
	}
	old := *g
	g.sizeX = sizeX
	g.sizeY = sizeY
	g.cells = make([]V, sizeX*sizeY)
	g.ResetAll()
	for x := 1; x <= old.sizeX && x <= sizeX; x++ {
		for y := 1; y <= old.sizeY && y <= sizeY; y++ {
			g.cells[g.index(x, y)] = old.cells[old.index(x, y)]
		}
	}
	return true
}

// Row returns the values of row x in y order, or an empty slice when x is
// out of range.
func (g Grid[V]) Row(x int) []V {
	if x < 1 || x > g.sizeX {
		return []V{}
	}
	row := make([]V, g.sizeY)
	copy(row, g.cells[g.index(x, 1):g.index(x, g.sizeY)+1])
	return row
}

// Column returns the values of column y in x order, or an empty slice when
// y is out of range.
func (g Grid[V]) Column(y int) []V {
	if y < 1 || y > g.sizeY {
		return []V{}
	}
	column := make([]V, g.sizeX)
	for x := 1; x <= g.sizeX; x++ {
		column[x-1] = g.cells[g.index(x, y)]
	}
	return column
}

// Clone returns a deep copy sharing no storage with the receiver.
func (g Grid[V]) Clone() Grid[V] {
	clone := Grid[V]{sizeX: g.sizeX, sizeY: g.sizeY, def: g.def}
	clone.cells = make([]V, len(g.cells))
	copy(clone.cells, g.cells)
	return clone
}

func (g Grid[V]) index(x, y int) int {
	return (x-1)*g.sizeY + (y - 1)
}
