package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"jobnest_backend/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Auth happens via the bearer token; the socket carries no state-changing
	// requests, so cross-origin reads are harmless.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades an authenticated request to a websocket and registers it
// with the manager. Must run behind the auth middleware.
func (m *Manager) ServeWS(c *gin.Context) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err.Error())
		return
	}

	client := &Client{
		manager: m,
		conn:    conn,
		userID:  userID,
		send:    make(chan []byte, 16),
	}
	m.register <- client

	go client.writePump()
	go client.readPump()
}
