package main

const ticTacToeBoardSize = 3

// NewTicTacToeBoard builds an empty 3x3 board on the same grid the Othello
// engine uses.
func NewTicTacToeBoard() Grid[Piece] {
	return NewGrid(ticTacToeBoardSize, ticTacToeBoardSize, Empty)
}

// TicTacToeRules is the trivial collaborator of the grid core: a
// three-in-a-row check around the last move plus a full-board draw check.
type TicTacToeRules struct{}

func NewTicTacToeRules() TicTacToeRules {
	return TicTacToeRules{}
}

var ticTacToeAxes = [4][2]Direction{
	{Left, Right},
	{Top, Bottom},
	{TopLeft, BottomRight},
	{TopRight, BottomLeft},
}

// IsWin reports whether the piece at lastMove completes a line of three in
// any of the four axes.
func (r TicTacToeRules) IsWin(board *Grid[Piece], lastMove Move) bool {
	value, ok := board.At(lastMove.X, lastMove.Y)
	if !ok || value == Empty {
		return false
	}
	for _, axis := range ticTacToeAxes {
		count := 1
		count += r.countRun(board, lastMove, axis[0], value)
		count += r.countRun(board, lastMove, axis[1], value)
		if count >= ticTacToeBoardSize {
			return true
		}
	}
	return false
}

func (r TicTacToeRules) IsDraw(board *Grid[Piece]) bool {
	return len(board.Contents(true)) == board.SizeX()*board.SizeY()
}

func (r TicTacToeRules) IsLegalMove(board *Grid[Piece], x, y int) bool {
	value, ok := board.At(x, y)
	return ok && value == Empty
}

func (r TicTacToeRules) countRun(board *Grid[Piece], origin Move, dir Direction, value Piece) int {
	ray, ok := board.Traverse(origin.X, origin.Y, dir)
	if !ok {
		return 0
	}
	count := 0
	for _, cell := range ray {
		if cell.Value != value {
			break
		}
		count++
	}
	return count
}
