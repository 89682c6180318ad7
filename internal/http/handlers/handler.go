package handlers

import (
	"errors"
	"net/http"

	"signaldraft/internal/catalog"
	"signaldraft/internal/game"
	"signaldraft/internal/pubsub"
	"signaldraft/internal/repository"
	"signaldraft/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	GameService   *service.GameService
	Catalog       *catalog.Provider
	CardRepo      *repository.CardRepository // nil without postgres
	HistoryRepo   *repository.HistoryRepository
	Notifier      *pubsub.Notifier
	AdminPassword string
	AllowedOrigin string
}

// respondError maps a domain error onto an HTTP status and a stable error
// kind the client can dispatch on.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidPayload) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false, "errorKind": "BadRequest", "error": err.Error(),
		})
		return
	}

	kind := game.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case game.KindNotFound:
		status = http.StatusNotFound
	case game.KindForbidden:
		status = http.StatusForbidden
	case game.KindInvalidTransition, game.KindConflict:
		status = http.StatusConflict
	case game.KindPreconditionFailed:
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{
		"success":   false,
		"errorKind": kind,
		"error":     err.Error(),
	})
}
