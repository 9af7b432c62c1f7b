package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newWSPair(t *testing.T, serve func(*websocket.Conn)) (*httptest.Server, *websocket.Conn) {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serve(conn)
	}))
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		server.Close()
		t.Fatalf("dial failed: %v", err)
	}
	return server, client
}

func TestPumpClientDeliversQueuedFrames(t *testing.T) {
	send := make(chan []byte, 1)
	send <- []byte(`{"type":"status"}`)
	close(send)
	done := make(chan error, 1)
	server, client := newWSPair(t, func(conn *websocket.Conn) {
		defer conn.Close()
		done <- pumpClient(conn, send)
	})
	defer server.Close()
	defer client.Close()

	msgType, message, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if msgType != websocket.TextMessage || string(message) != `{"type":"status"}` {
		t.Fatalf("unexpected frame: type=%d %s", msgType, message)
	}
	if err := <-done; err != nil {
		t.Fatalf("expected clean return on closed queue, got %v", err)
	}
}

func TestPumpClientPingsIdleConnection(t *testing.T) {
	send := make(chan []byte)
	server, client := newWSPair(t, func(conn *websocket.Conn) {
		defer conn.Close()
		pumpClientEvery(conn, send, 20*time.Millisecond)
	})
	defer server.Close()
	defer client.Close()

	pinged := make(chan struct{}, 1)
	client.SetPingHandler(func(string) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return nil
	})
	// Control frames are only processed while reading.
	go func() {
		for {
			if _, _, err := client.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case <-pinged:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a control ping on an idle connection")
	}
	close(send)
}
