package main

// Piece is the content of one board cell: one of the two player markers or
// Empty. Empty is never a legal piece to play.
type Piece int

const (
	Empty Piece = iota
	Dark
	Light
)

func (p Piece) String() string {
	switch p {
	case Dark:
		return "Dark"
	case Light:
		return "Light"
	default:
		return "Empty"
	}
}

const othelloBoardSize = 8

// NewOthelloBoard builds the 8x8 starting position: the four center cells
// hold two pieces per player, diagonally opposed, everything else Empty.
func NewOthelloBoard() Grid[Piece] {
	board := NewGrid(othelloBoardSize, othelloBoardSize, Empty)
	mid := othelloBoardSize / 2
	dark, light := Dark, Light
	board.Populate([]Entry[Piece]{
		{X: mid, Y: mid, Value: &dark},
		{X: mid + 1, Y: mid + 1, Value: &dark},
		{X: mid, Y: mid + 1, Value: &light},
		{X: mid + 1, Y: mid, Value: &light},
	})
	return board
}

// Opponent returns the other player marker. ok=false for Empty or any value
// that is not one of the two players.
func Opponent(piece Piece) (Piece, bool) {
	switch piece {
	case Dark:
		return Light, true
	case Light:
		return Dark, true
	default:
		return Empty, false
	}
}

// Rules is the Othello rules engine over a Grid[Piece]. It holds no state;
// the board is always passed in so the same value can serve live games and
// scratch simulations alike.
type Rules struct{}

func NewRules() Rules {
	return Rules{}
}

// LegalMoves returns every empty cell where placing player's piece would
// flip at least one opponent run. Each qualifying cell appears exactly once,
// in ascending x, then ascending y order.
func (r Rules) LegalMoves(board *Grid[Piece], player Piece) []Move {
	opponent, ok := Opponent(player)
	if !ok {
		return []Move{}
	}
	moves := []Move{}
	for x := 1; x <= board.SizeX(); x++ {
		for y := 1; y <= board.SizeY(); y++ {
			if value, ok := board.At(x, y); !ok || value != Empty {
				continue
			}
			for _, dir := range scanDirections {
				if r.capturesInDirection(board, x, y, dir, player, opponent) {
					// Legality is a boolean property of the cell, not a
					// count: one qualifying direction is enough.
					moves = append(moves, NewMove(x, y))
					break
				}
			}
		}
	}
	return moves
}

func (r Rules) IsLegalMove(board *Grid[Piece], x, y int, player Piece) bool {
	opponent, ok := Opponent(player)
	if !ok {
		return false
	}
	if value, ok := board.At(x, y); !ok || value != Empty {
		return false
	}
	for _, dir := range scanDirections {
		if r.capturesInDirection(board, x, y, dir, player, opponent) {
			return true
		}
	}
	return false
}

func (r Rules) HasLegalMoves(board *Grid[Piece], player Piece) bool {
	opponent, ok := Opponent(player)
	if !ok {
		return false
	}
	for x := 1; x <= board.SizeX(); x++ {
		for y := 1; y <= board.SizeY(); y++ {
			if value, ok := board.At(x, y); !ok || value != Empty {
				continue
			}
			for _, dir := range scanDirections {
				if r.capturesInDirection(board, x, y, dir, player, opponent) {
					return true
				}
			}
		}
	}
	return false
}

// Flips returns the positions that placing player's piece at (x, y) would
// flip, without touching the board. Runs are all-or-nothing per direction:
// a run is collected only when it is bounded by the player's own piece, and
// abandoned whole at an empty cell or the grid edge.
func (r Rules) Flips(board *Grid[Piece], x, y int, player Piece) []Move {
	opponent, ok := Opponent(player)
	if !ok {
		return []Move{}
	}
	flips := []Move{}
	for _, dir := range scanDirections {
		first, ok := board.Neighbor(x, y, dir)
		if !ok || first != opponent {
			continue
		}
		ray, ok := board.Traverse(x, y, dir)
		if !ok {
			continue
		}
		run := []Move{}
		anchored := false
		for _, cell := range ray {
			if cell.Value == opponent {
				run = append(run, NewMove(cell.X, cell.Y))
				continue
			}
			anchored = cell.Value == player
			break
		}
		if anchored {
			flips = append(flips, run...)
		}
	}
	return flips
}

// Place sets (x, y) to player and flips every qualifying opponent run.
// Legality is the caller's responsibility; Place itself only refuses
// non-player pieces and out-of-range coordinates.
func (r Rules) Place(board *Grid[Piece], x, y int, player Piece) {
	if _, ok := Opponent(player); !ok || !board.IsValid(x, y) {
		return
	}
	flips := r.Flips(board, x, y, player)
	board.Set(x, y, player)
	for _, flip := range flips {
		board.Set(flip.X, flip.Y, player)
	}
}

// Score counts the cells holding player's piece.
func (r Rules) Score(board *Grid[Piece], player Piece) int {
	count := 0
	for _, cell := range board.Contents(true) {
		if cell.Value == player {
			count++
		}
	}
	return count
}

// capturesInDirection reports whether an empty cell at (x, y) captures along
// dir: the immediate neighbor holds the opponent and the ray reaches the
// player's own piece before any empty cell or the grid edge.
func (r Rules) capturesInDirection(board *Grid[Piece], x, y int, dir Direction, player, opponent Piece) bool {
	first, ok := board.Neighbor(x, y, dir)
	if !ok || first != opponent {
		return false
	}
	ray, ok := board.Traverse(x, y, dir)
	if !ok {
		return false
	}
	for _, cell := range ray {
		if cell.Value == opponent {
			continue
		}
		return cell.Value == player
	}
	return false
}
