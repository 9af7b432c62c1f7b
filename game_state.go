package main

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusDarkWon
	StatusLightWon
	StatusDraw
)

type GameState struct {
	Board       Grid[Piece]
	ToMove      Piece
	Status      GameStatus
	HasLastMove bool
	LastMove    Move
	// LastPassed is set when the previous turn change skipped a player who
	// had no legal move; PassedBy names the skipped player.
	LastPassed  bool
	PassedBy    Piece
	LastMessage string
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = NewOthelloBoard()
	s.ToMove = Dark
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = Move{X: -1, Y: -1}
	s.LastPassed = false
	s.PassedBy = Empty
	s.LastMessage = ""
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	return clone
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusRunning:
		return "running"
	case StatusDarkWon:
		return "dark_won"
	case StatusLightWon:
		return "light_won"
	case StatusDraw:
		return "draw"
	default:
		return "not_started"
	}
}
