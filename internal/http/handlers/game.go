package handlers

import (
	"net/http"
	"strings"

	"signaldraft/internal/game"
	"signaldraft/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateGameRequest creates a new session with the caller as host.
type CreateGameRequest struct {
	HostName string                 `json:"hostName" binding:"required"`
	Settings *game.SettingsOverride `json:"settings"`
}

func (h *Handler) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hostName is required"})
		return
	}

	g, err := h.GameService.CreateGame(c.Request.Context(), strings.TrimSpace(req.HostName), req.Settings)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"roomCode": g.RoomCode,
		"playerId": g.HostPlayerID,
		"game":     g,
	})
}

// JoinGameRequest joins an existing session by room code.
type JoinGameRequest struct {
	RoomCode   string `json:"roomCode" binding:"required"`
	PlayerName string `json:"playerName" binding:"required"`
}

func (h *Handler) JoinGame(c *gin.Context) {
	var req JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerName are required"})
		return
	}

	g, playerID, err := h.GameService.JoinGame(c.Request.Context(),
		normalizeRoomCode(req.RoomCode), strings.TrimSpace(req.PlayerName))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"playerId": playerID,
		"game":     g,
	})
}

func (h *Handler) GameState(c *gin.Context) {
	roomCode := normalizeRoomCode(c.Query("roomCode"))
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode is required"})
		return
	}

	g, err := h.GameService.GetGame(c.Request.Context(), roomCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "game": g})
}

func (h *Handler) GameAction(c *gin.Context) {
	var action service.Action
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if action.Type == "" || action.PlayerID == "" || action.RoomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type, playerId, and roomCode are required"})
		return
	}
	action.RoomCode = normalizeRoomCode(action.RoomCode)

	g, err := h.GameService.PerformAction(c.Request.Context(), action)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "game": g})
}

// DeleteGame is administrative cleanup; live sessions otherwise expire on
// their own.
func (h *Handler) DeleteGame(c *gin.Context) {
	roomCode := normalizeRoomCode(c.Param("roomCode"))
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode is required"})
		return
	}

	if err := h.GameService.DeleteGame(c.Request.Context(), roomCode); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Room codes are typed by hand; accept any case and stray spaces.
func normalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
