package main

// HumanPlayer holds at most one move queued from the API until the tick loop
// picks it up. ChooseMove never answers on its own; the queue is the only
// input path.
type HumanPlayer struct {
	queued *Move
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

func (h *HumanPlayer) ChooseMove(GameState, Rules) (Move, bool) {
	return Move{}, false
}

func (h *HumanPlayer) SetPendingMove(move Move) {
	h.queued = &move
}

func (h *HumanPlayer) HasPendingMove() bool {
	return h.queued != nil
}

func (h *HumanPlayer) TakePendingMove() Move {
	if h.queued == nil {
		return Move{}
	}
	move := *h.queued
	h.queued = nil
	return move
}
