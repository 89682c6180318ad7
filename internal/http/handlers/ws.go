package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"signaldraft/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WS upgrades the connection and attaches the client to its room's
// event stream. roomCode is required, playerId identifies the seat
// (spectators may omit it).
func (h *Handler) WS() gin.HandlerFunc {
	return func(c *gin.Context) {
		roomCode := normalizeRoomCode(c.Query("roomCode"))
		if roomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		playerID := strings.TrimSpace(c.Query("playerId"))

		allowedOrigin := h.AllowedOrigin
		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("ws upgrade error:", err)
			return
		}

		client := ws.NewClient(roomCode, playerID, conn, h.GameService, h.Notifier)

		// the request context dies with the handler; the client outlives it
		go client.Run(context.Background())
	}
}
