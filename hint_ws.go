package main

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

type hintCell struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Player int `json:"player"`
}

type hintPayload struct {
	Best   *hintCell `json:"best,omitempty"`
	Active bool      `json:"active"`
}

type HintClient struct {
	hub  *HintHub
	conn *websocket.Conn
	send chan []byte
}

// HintHub streams the heuristic's suggested move for the human player to
// clients that opted in.
type HintHub struct {
	mu        sync.Mutex
	clients   map[*HintClient]struct{}
	broadcast chan hintPayload
}

func NewHintHub() *HintHub {
	return &HintHub{
		clients:   make(map[*HintClient]struct{}),
		broadcast: make(chan hintPayload, 32),
	}
}

func (h *HintHub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcast:
			h.mu.Lock()
			if len(h.clients) == 0 {
				h.mu.Unlock()
				continue
			}
			for client := range h.clients {
				client.sendJSON(wsMessage{Type: "hint", Payload: mustMarshal(payload)})
			}
			h.mu.Unlock()
		}
	}
}

func (h *HintHub) Register(c *HintClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *HintHub) Publish(payload hintPayload) {
	select {
	case h.broadcast <- payload:
	default:
	}
}

func (h *HintHub) Unregister(c *HintClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *HintHub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

func (c *HintClient) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func serveHintWS(hub *HintHub, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &HintClient{hub: hub, conn: conn, send: make(chan []byte, 16)}
	hub.Register(client)

	go func() {
		defer conn.Close()
		if err := pumpClient(conn, client.send); err != nil {
			return
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.Unregister(client)
			return
		}
	}
}
