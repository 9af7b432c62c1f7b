package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

type StatusResponse struct {
	Settings        GameSettingsDTO   `json:"settings"`
	Config          Config            `json:"config"`
	Board           [][]int           `json:"board"`
	BoardSize       int               `json:"board_size"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	Status          string            `json:"status"`
	ScoreDark       int               `json:"score_dark"`
	ScoreLight      int               `json:"score_light"`
	LegalMoves      []Move            `json:"legal_moves"`
	LastPassed      bool              `json:"last_passed"`
	PassedBy        int               `json:"passed_by"`
	History         []historyEntryDTO `json:"history"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type GameSettingsDTO struct {
	Mode        string `json:"mode"`
	HumanPlayer int    `json:"human_player"`
	Difficulty  string `json:"difficulty"`
	Seed        int64  `json:"seed"`
}

type apiMove struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type historyEntryDTO struct {
	X                int     `json:"x"`
	Y                int     `json:"y"`
	Player           int     `json:"player"`
	ElapsedMs        float64 `json:"elapsed_ms"`
	IsAi             bool    `json:"is_ai"`
	Passed           bool    `json:"passed"`
	FlippedCount     int     `json:"flipped_count"`
	FlippedPositions []Move  `json:"flipped_positions"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

type resetPayload struct {
	Board           [][]int `json:"board"`
	BoardSize       int     `json:"board_size"`
	NextPlayer      int     `json:"next_player"`
	Winner          int     `json:"winner"`
	Status          string  `json:"status"`
	ScoreDark       int     `json:"score_dark"`
	ScoreLight      int     `json:"score_light"`
	TurnStartedAtMs int64   `json:"turn_started_at_ms"`
}

type settingsPayload struct {
	Settings GameSettingsDTO `json:"settings"`
	Config   Config          `json:"config"`
}

func main() {
	controller := NewGameController(DefaultGameSettings())
	hub := NewHub()
	hintHub := NewHintHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	controller.SetHintPublisher(
		func() bool { return hintHub.HasClients() && GetConfig().HintMode },
		func(payload hintPayload) {
			hintHub.Publish(payload)
		},
	)

	go hub.Run(ctx.Done())
	go hintHub.Run(ctx.Done())
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !controller.Tick() || !hub.HasClients() {
					continue
				}
				if entry, ok := controller.LatestHistoryEntry(); ok {
					hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
				}
				hub.broadcastStatus <- controllerStatus(controller)
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/api/legal-moves", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"moves": controller.LegalMoves()})
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := settingsFromDTO(payload.Settings, DefaultGameSettings())
		controller.StartGame(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		settings := controller.Settings()
		controller.Reset(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
			Config   *Config          `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		if payload.Settings != nil {
			settings := settingsFromDTO(*payload.Settings, controller.Settings())
			controller.UpdateSettings(settings)
		}
		hub.broadcastSettings <- settingsPayload{
			Settings: settingsToDTO(controller.Settings()),
			Config:   GetConfig(),
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.ApplyHumanMove(NewMove(payload.X, payload.Y))
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		if entry, ok := controller.LatestHistoryEntry(); ok {
			hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})
	r.Get("/ws/hint", func(w http.ResponseWriter, r *http.Request) {
		serveHintWS(hintHub, w, r)
	})

	server := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Println("[backend] listening on :8080")
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	status := controllerStatus(controller)
	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})

	go func() {
		defer conn.Close()
		if err := pumpClient(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	scoreDark, scoreLight := controller.Scores()
	return StatusResponse{
		Settings:        settingsToDTO(controller.Settings()),
		Config:          GetConfig(),
		Board:           boardToSlice(state.Board),
		BoardSize:       state.Board.SizeX(),
		NextPlayer:      pieceToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		Status:          statusToString(state.Status),
		ScoreDark:       scoreDark,
		ScoreLight:      scoreLight,
		LegalMoves:      controller.LegalMoves(),
		LastPassed:      state.LastPassed,
		PassedBy:        pieceToInt(state.PassedBy),
		History:         historyToDTO(controller.History()),
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func resetFromController(controller *GameController) resetPayload {
	state := controller.State()
	scoreDark, scoreLight := controller.Scores()
	return resetPayload{
		Board:           boardToSlice(state.Board),
		BoardSize:       state.Board.SizeX(),
		NextPlayer:      pieceToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		Status:          statusToString(state.Status),
		ScoreDark:       scoreDark,
		ScoreLight:      scoreLight,
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	switch dto.Mode {
	case "ai_vs_ai":
		settings.DarkType = PlayerComputer
		settings.LightType = PlayerComputer
	case "human_vs_human":
		settings.DarkType = PlayerHuman
		settings.LightType = PlayerHuman
	case "ai_vs_human":
		if dto.HumanPlayer == 2 {
			settings.DarkType = PlayerComputer
			settings.LightType = PlayerHuman
		} else {
			settings.DarkType = PlayerHuman
			settings.LightType = PlayerComputer
		}
	}
	switch dto.Difficulty {
	case "easy":
		settings.Difficulty = DifficultyEasy
	case "hard":
		settings.Difficulty = DifficultyHard
	}
	if dto.Seed != 0 {
		settings.Seed = dto.Seed
	}
	return settings
}

func settingsToDTO(settings GameSettings) GameSettingsDTO {
	mode := "ai_vs_human"
	if settings.DarkType == PlayerComputer && settings.LightType == PlayerComputer {
		mode = "ai_vs_ai"
	} else if settings.DarkType == PlayerHuman && settings.LightType == PlayerHuman {
		mode = "human_vs_human"
	}
	humanPlayer := 0
	if settings.DarkType == PlayerHuman {
		humanPlayer = 1
	} else if settings.LightType == PlayerHuman {
		humanPlayer = 2
	}
	return GameSettingsDTO{
		Mode:        mode,
		HumanPlayer: humanPlayer,
		Difficulty:  settings.Difficulty.String(),
		Seed:        settings.Seed,
	}
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	dtos := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, historyEntryToDTO(entry))
	}
	return dtos
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		X:                entry.Move.X,
		Y:                entry.Move.Y,
		Player:           pieceToInt(entry.Player),
		ElapsedMs:        entry.ElapsedMs,
		IsAi:             entry.IsAi,
		Passed:           entry.Passed,
		FlippedCount:     entry.FlippedCount,
		FlippedPositions: append([]Move(nil), entry.FlippedPositions...),
	}
}

func boardToSlice(board Grid[Piece]) [][]int {
	rows := make([][]int, board.SizeY())
	for y := 1; y <= board.SizeY(); y++ {
		rows[y-1] = make([]int, board.SizeX())
		for x := 1; x <= board.SizeX(); x++ {
			value, _ := board.At(x, y)
			rows[y-1][x-1] = pieceToInt(value)
		}
	}
	return rows
}

func pieceToInt(piece Piece) int {
	switch piece {
	case Dark:
		return 1
	case Light:
		return 2
	default:
		return 0
	}
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusDarkWon:
		return 1
	case StatusLightWon:
		return 2
	default:
		return 0
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[backend] failed to encode response: %v", err)
	}
}
