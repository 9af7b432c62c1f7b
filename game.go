package main

import (
	"log"
	"math/rand"
	"time"
)

type Game struct {
	settings    GameSettings
	rules       Rules
	state       GameState
	history     MoveHistory
	darkPlayer  IPlayer
	lightPlayer IPlayer
	hintRng     *rand.Rand
	hintSent    bool
	turnStart   time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.rules = NewRules()
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.hintRng = rand.New(rand.NewSource(time.Now().UnixNano()))
	g.hintSent = false
	g.turnStart = time.Now()
	g.logMatchup()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

func (g *Game) Scores() (dark, light int) {
	return g.rules.Score(&g.state.Board, Dark), g.rules.Score(&g.state.Board, Light)
}

func (g *Game) LegalMovesForCurrent() []Move {
	if g.state.Status != StatusRunning {
		return []Move{}
	}
	return g.rules.LegalMoves(&g.state.Board, g.state.ToMove)
}

// TryApplyMove validates and applies a move for the side to play, then
// advances the turn: the opponent moves next unless they have no legal move,
// in which case the turn passes back; when neither side can move the game is
// over and the higher score wins. A rejected move leaves the board unchanged.
func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()
	mover := g.state.ToMove
	if !g.rules.IsLegalMove(&g.state.Board, move.X, move.Y, mover) {
		g.state.LastMessage = "Illegal move"
		return false, g.state.LastMessage
	}
	g.state.LastMessage = ""
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	flips := g.rules.Flips(&g.state.Board, move.X, move.Y, mover)
	g.rules.Place(&g.state.Board, move.X, move.Y, mover)
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.state.LastPassed = false
	g.state.PassedBy = Empty
	entry := HistoryEntry{
		Move:             move,
		Player:           mover,
		FlippedPositions: flips,
		FlippedCount:     len(flips),
		ElapsedMs:        elapsedMs,
		IsAi:             isAiMove,
	}
	g.history.Push(entry)
	g.logMovePlayed(move, mover, elapsedMs, isAiMove, len(flips))
	g.advanceTurn(mover)
	g.hintSent = false
	g.turnStart = time.Now()
	return true, ""
}

func (g *Game) advanceTurn(mover Piece) {
	opponent, _ := Opponent(mover)
	switch {
	case g.rules.HasLegalMoves(&g.state.Board, opponent):
		g.state.ToMove = opponent
	case g.rules.HasLegalMoves(&g.state.Board, mover):
		g.state.LastPassed = true
		g.state.PassedBy = opponent
		g.state.ToMove = mover
		g.history.Push(HistoryEntry{
			Player: opponent,
			Passed: true,
			IsAi:   !g.playerFor(opponent).IsHuman(),
		})
		log.Printf("[game] %s has no legal move, turn passes", opponent)
	default:
		g.finish()
	}
}

func (g *Game) finish() {
	darkScore, lightScore := g.Scores()
	switch {
	case darkScore > lightScore:
		g.state.Status = StatusDarkWon
	case lightScore > darkScore:
		g.state.Status = StatusLightWon
	default:
		g.state.Status = StatusDraw
	}
	log.Printf("[game] game over: dark %d, light %d (%s)", darkScore, lightScore, statusToString(g.state.Status))
}

// Tick advances the game one step: publishes a hint for a human player,
// applies a pending human move, or asks the computer player for one.
// Returns true when a move was applied.
func (g *Game) Tick(hintEnabled bool, hintSink func(hintPayload)) bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		if hintEnabled && hintSink != nil {
			g.publishHint(hintSink)
		}
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			applied, _ := g.TryApplyMove(human.TakePendingMove())
			return applied
		}
		return false
	}
	move, ok := player.ChooseMove(g.state.Clone(), g.rules)
	if !ok {
		return false
	}
	applied, _ := g.TryApplyMove(move)
	return applied
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerFor(g.state.ToMove)
}

func (g *Game) playerFor(piece Piece) IPlayer {
	if piece == Dark {
		return g.darkPlayer
	}
	return g.lightPlayer
}

func (g *Game) createPlayers() {
	darkSeed, lightSeed := g.settings.Seed, g.settings.Seed
	if g.settings.Seed != 0 {
		lightSeed = g.settings.Seed + 1
	}
	if g.settings.DarkType == PlayerHuman {
		g.darkPlayer = NewHumanPlayer()
	} else {
		g.darkPlayer = NewAIPlayer(g.settings.Difficulty, darkSeed)
	}
	if g.settings.LightType == PlayerHuman {
		g.lightPlayer = NewHumanPlayer()
	} else {
		g.lightPlayer = NewAIPlayer(g.settings.Difficulty, lightSeed)
	}
}

// publishHint pushes the heuristic's suggestion for the human to move, once
// per turn.
func (g *Game) publishHint(sink func(hintPayload)) {
	if g.hintSent {
		return
	}
	g.hintSent = true
	move, ok := SelectMove(&g.state.Board, g.state.ToMove, DifficultyHard, g.rules, g.hintRng)
	if !ok {
		sink(hintPayload{Active: false})
		return
	}
	sink(hintPayload{
		Best:   &hintCell{X: move.X, Y: move.Y, Player: pieceToInt(g.state.ToMove)},
		Active: true,
	})
}

func (g *Game) logMatchup() {
	label := func(t PlayerType) string {
		if t == PlayerComputer {
			return "AI"
		}
		return "Human"
	}
	log.Printf("[game] Dark (%s) vs Light (%s), difficulty %s",
		label(g.settings.DarkType), label(g.settings.LightType), g.settings.Difficulty)
}

func (g *Game) logMovePlayed(move Move, mover Piece, elapsedMs float64, isAiMove bool, flipped int) {
	source := "human"
	if isAiMove {
		source = "ai"
	}
	log.Printf("[game] %s (%s) plays (%d,%d) flipping %d in %.0fms",
		mover, source, move.X, move.Y, flipped, elapsedMs)
}
