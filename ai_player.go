package main

import (
	"math/rand"
	"time"
)

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyHard
)

func (d Difficulty) String() string {
	if d == DifficultyHard {
		return "hard"
	}
	return "easy"
}

// SelectMove picks a move for player, or ok=false when player has no legal
// move. Easy picks uniformly from the legal moves using rng. Hard simulates
// each candidate on an independent scratch copy of the board and keeps the
// first candidate with the highest weighted capture delta, falling back to
// the uniform pick when no candidate scores strictly positive. The live
// board is never mutated.
func SelectMove(board *Grid[Piece], player Piece, difficulty Difficulty, rules Rules, rng *rand.Rand) (Move, bool) {
	candidates := rules.LegalMoves(board, player)
	if len(candidates) == 0 {
		return Move{}, false
	}
	if difficulty != DifficultyHard {
		return candidates[rng.Intn(len(candidates))], true
	}
	weights := GetConfig().Heuristics
	base := rules.Score(board, player)
	best := Move{}
	bestDelta := 0
	found := false
	for _, candidate := range candidates {
		scratch := board.Clone()
		rules.Place(&scratch, candidate.X, candidate.Y, player)
		delta := rules.Score(&scratch, player) - base + positionalWeight(board, candidate.X, candidate.Y, weights)
		// Strict comparison keeps the first candidate on ties.
		if !found || delta > bestDelta {
			best = candidate
			bestDelta = delta
			found = true
		}
	}
	if bestDelta <= 0 {
		return candidates[rng.Intn(len(candidates))], true
	}
	return best, true
}

// positionalWeight is the placement bonus added to the raw capture delta:
// corners beat edges beat interior cells.
func positionalWeight(board *Grid[Piece], x, y int, weights HeuristicConfig) int {
	onEdgeX := x == 1 || x == board.SizeX()
	onEdgeY := y == 1 || y == board.SizeY()
	switch {
	case onEdgeX && onEdgeY:
		return weights.CornerWeight
	case onEdgeX || onEdgeY:
		return weights.EdgeWeight
	default:
		return 0
	}
}

// AIPlayer is the computer opponent: a one-ply weighted evaluation with an
// explicit, seedable random source for the easy tier and tie fallback.
type AIPlayer struct {
	difficulty Difficulty
	rng        *rand.Rand
}

func NewAIPlayer(difficulty Difficulty, seed int64) *AIPlayer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &AIPlayer{
		difficulty: difficulty,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) ChooseMove(state GameState, rules Rules) (Move, bool) {
	return SelectMove(&state.Board, state.ToMove, a.difficulty, rules, a.rng)
}
