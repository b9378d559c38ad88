package services

import (
	"flock_server/socket"

	"github.com/gofiber/websocket/v2"
)

// Timeline starts and maintains the duplex timeline stream
func Timeline(ws *websocket.Conn) {
	socket.TimelineSocket(ws)
}
