package main

type IPlayer interface {
	IsHuman() bool
	// ChooseMove picks a move for the side to play in state. ok=false means
	// the player has nothing to play (no pending input, or no legal move).
	ChooseMove(state GameState, rules Rules) (Move, bool)
}
