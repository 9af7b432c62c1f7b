package main

import "testing"

func TestControllerRejectsHumanMoveOnComputerTurn(t *testing.T) {
	settings := DefaultGameSettings()
	settings.DarkType = PlayerComputer
	settings.LightType = PlayerHuman
	controller := NewGameController(settings)
	controller.StartGame(settings)
	if applied, reason := controller.ApplyHumanMove(NewMove(3, 5)); applied || reason != "not human turn" {
		t.Fatalf("expected rejection on computer turn, got %v %q", applied, reason)
	}
}

func TestControllerStartGameRunsAndResets(t *testing.T) {
	settings := DefaultGameSettings()
	settings.DarkType = PlayerHuman
	settings.LightType = PlayerHuman
	controller := NewGameController(settings)
	if state := controller.State(); state.Status != StatusNotStarted {
		t.Fatalf("expected new controller to be idle, got %s", statusToString(state.Status))
	}
	controller.StartGame(settings)
	if state := controller.State(); state.Status != StatusRunning {
		t.Fatalf("expected running game, got %s", statusToString(state.Status))
	}
	if applied, _ := controller.ApplyHumanMove(NewMove(3, 5)); !applied {
		t.Fatalf("expected opening move to apply")
	}
	if entry, ok := controller.LatestHistoryEntry(); !ok || entry.Player != Dark {
		t.Fatalf("expected a dark history entry, got %+v ok=%v", entry, ok)
	}
	controller.Reset(settings)
	if state := controller.State(); state.Status != StatusNotStarted || controller.History().Size() != 0 {
		t.Fatalf("expected reset to clear the game")
	}
}

func TestControllerLegalMovesTracksTurn(t *testing.T) {
	settings := DefaultGameSettings()
	settings.DarkType = PlayerHuman
	settings.LightType = PlayerHuman
	controller := NewGameController(settings)
	if got := controller.LegalMoves(); len(got) != 0 {
		t.Fatalf("expected no legal moves before start, got %v", got)
	}
	controller.StartGame(settings)
	moves := controller.LegalMoves()
	if len(moves) != 4 {
		t.Fatalf("expected 4 opening moves, got %v", moves)
	}
}
