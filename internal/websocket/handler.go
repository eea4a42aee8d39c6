package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches a socket to the hub and blocks until it disconnects.
func ServeWs(hub *Hub, conn *websocket.Conn) {
	client := NewClient(hub, conn)
	if !hub.Register(client) {
		conn.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
