package main

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsIdlePingInterval = 30 * time.Second
	wsWriteTimeout     = 10 * time.Second
)

// pumpClient drains a client's send queue into its connection and keeps idle
// connections alive with control pings. Returns when the queue is closed or
// a write fails; the caller owns closing the connection.
func pumpClient(conn *websocket.Conn, send <-chan []byte) error {
	return pumpClientEvery(conn, send, wsIdlePingInterval)
}

func pumpClientEvery(conn *websocket.Conn, send <-chan []byte, pingEvery time.Duration) error {
	ticker := time.NewTicker(pingEvery)
	defer ticker.Stop()
	lastWrite := time.Now()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < pingEvery {
				continue
			}
			deadline := time.Now().Add(wsWriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
