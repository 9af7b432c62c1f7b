package main

import "sync"

// GameController serializes access to the single in-memory game session. The
// engine itself is single-threaded; this mutex is the only concurrency
// boundary.
type GameController struct {
	mu            sync.Mutex
	game          Game
	hintEnabled   func() bool
	hintPublisher func(hintPayload)
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{game: NewGame(settings)}
}

func (gc *GameController) SetHintPublisher(enabled func() bool, publisher func(hintPayload)) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.hintEnabled = enabled
	gc.hintPublisher = publisher
}

func (gc *GameController) ApplyHumanMove(move Move) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if !gc.game.CurrentPlayerIsHuman() {
		return false, "not human turn"
	}
	return gc.game.TryApplyMove(move)
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	hintEnabled := false
	if gc.hintEnabled != nil {
		hintEnabled = gc.hintEnabled()
	}
	return gc.game.Tick(hintEnabled, gc.hintPublisher)
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.settings
}

func (gc *GameController) History() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) Scores() (dark, light int) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Scores()
}

func (gc *GameController) LegalMoves() []Move {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.LegalMovesForCurrent()
}

func (gc *GameController) CurrentTurnStartedAtMs() int64 {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TurnStartedAtMs()
}

func (gc *GameController) LatestHistoryEntry() (HistoryEntry, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	history := gc.game.History()
	if history.Size() == 0 {
		return HistoryEntry{}, false
	}
	entries := history.All()
	return entries[len(entries)-1], true
}

func (gc *GameController) Reset(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
}

func (gc *GameController) StartGame(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
	gc.game.Start()
}

func (gc *GameController) UpdateSettings(update GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.settings = update
	gc.game.createPlayers()
}
