package main

// Direction is one of the nine symbolic compass offsets, center included.
type Direction int

const (
	TopLeft Direction = iota
	Top
	TopRight
	Left
	Center
	Right
	BottomLeft
	Bottom
	BottomRight
)

// directionVectors maps each direction to its (dx, dy) delta. Top is
// towards smaller y, Left towards smaller x.
var directionVectors = [9][2]int{
	TopLeft:     {-1, -1},
	Top:         {0, -1},
	TopRight:    {1, -1},
	Left:        {-1, 0},
	Center:      {0, 0},
	Right:       {1, 0},
	BottomLeft:  {-1, 1},
	Bottom:      {0, 1},
	BottomRight: {1, 1},
}

// scanDirections is the fixed enumeration order of the eight non-center
// directions used by neighbor queries and the rules engine.
var scanDirections = [8]Direction{
	TopLeft, Top, TopRight, Left, Right, BottomLeft, Bottom, BottomRight,
}

// Vector returns the coordinate delta of the direction. Unknown direction
// values report ok=false.
func (d Direction) Vector() (dx, dy int, ok bool) {
	if d < TopLeft || d > BottomRight {
		return 0, 0, false
	}
	return directionVectors[d][0], directionVectors[d][1], true
}

func (d Direction) String() string {
	switch d {
	case TopLeft:
		return "TopLeft"
	case Top:
		return "Top"
	case TopRight:
		return "TopRight"
	case Left:
		return "Left"
	case Center:
		return "Center"
	case Right:
		return "Right"
	case BottomLeft:
		return "BottomLeft"
	case Bottom:
		return "Bottom"
	case BottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// Neighbor is one entry of a full 8-neighbor enumeration. Outside marks a
// direction whose cell falls off the grid; its coordinates and value are
// then meaningless.
type Neighbor[V any] struct {
	X       int
	Y       int
	Value   V
	Outside bool
}

// Neighbor returns the value one step from (x, y) in the given direction.
// ok=false when the direction is unknown, the origin is out of range, or
// the neighbor cell is out of range.
func (g Grid[V]) Neighbor(x, y int, dir Direction) (V, bool) {
	dx, dy, ok := dir.Vector()
	if !ok || !g.IsValid(x, y) {
		var zero V
		return zero, false
	}
	return g.At(x+dx, y+dy)
}

// Neighbors enumerates the eight non-center directions around (x, y) in
// scanDirections order, tagging out-of-range cells with Outside. An invalid
// origin yields an empty slice rather than eight Outside entries, so callers
// can tell "no origin" apart from "origin on an edge".
func (g Grid[V]) Neighbors(x, y int) []Neighbor[V] {
	if !g.IsValid(x, y) {
		return []Neighbor[V]{}
	}
	neighbors := make([]Neighbor[V], 0, len(scanDirections))
	for _, dir := range scanDirections {
		dx, dy, _ := dir.Vector()
		nx := x + dx
		ny := y + dy
		value, ok := g.At(nx, ny)
		if !ok {
			neighbors = append(neighbors, Neighbor[V]{Outside: true})
			continue
		}
		neighbors = append(neighbors, Neighbor[V]{X: nx, Y: ny, Value: value})
	}
	return neighbors
}

// Traverse walks from one step past (x, y) to the grid edge along dir and
// returns the cells in nearest-to-farthest order. ok=false means the origin
// itself was out of range; a valid origin with nothing to walk (unknown
// direction, Center, or the first step already off the grid) returns an
// empty slice with ok=true. Callers branch on the difference.
func (g Grid[V]) Traverse(x, y int, dir Direction) (cells []Cell[V], ok bool) {
	if !g.IsValid(x, y) {
		return nil, false
	}
	cells = []Cell[V]{}
	dx, dy, known := dir.Vector()
	if !known || (dx == 0 && dy == 0) {
		return cells, true
	}
	for nx, ny := x+dx, y+dy; g.IsValid(nx, ny); nx, ny = nx+dx, ny+dy {
		value, _ := g.At(nx, ny)
		cells = append(cells, Cell[V]{X: nx, Y: ny, Value: value})
	}
	return cells, true
}
