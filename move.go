package main

// Move is a 1-based board coordinate.
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewMove(x, y int) Move {
	return Move{X: x, Y: y}
}

func (m Move) IsValid(boardSize int) bool {
	return m.X >= 1 && m.Y >= 1 && m.X <= boardSize && m.Y <= boardSize
}

func (m Move) Equals(other Move) bool {
	return m.X == other.X && m.Y == other.Y
}
