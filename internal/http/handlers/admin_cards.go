package handlers

import (
	"net/http"

	"signaldraft/internal/catalog"
	"signaldraft/internal/domain"

	"github.com/gin-gonic/gin"
)

// ListCards returns the current catalog as the session-creation code would
// see it: override, then postgres, then the bundled deck.
func (h *Handler) ListCards(c *gin.Context) {
	deck := h.Catalog.CardPool(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"cards": deck})
}

type cardRequest struct {
	Card domain.Card `json:"card"`
}

// CreateCard upserts one card into the primary catalog.
func (h *Handler) CreateCard(c *gin.Context) {
	if h.CardRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog storage not configured"})
		return
	}

	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card is required"})
		return
	}
	if req.Card.ID == "" || req.Card.Title == "" || !validCardType(req.Card.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card must have id, title, and a valid type"})
		return
	}

	if err := h.CardRepo.Upsert(c.Request.Context(), &req.Card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save card"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateCard replaces one card by id.
func (h *Handler) UpdateCard(c *gin.Context) {
	if h.CardRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog storage not configured"})
		return
	}

	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card is required"})
		return
	}
	req.Card.ID = c.Param("id")
	if req.Card.Title == "" || !validCardType(req.Card.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card must have title and a valid type"})
		return
	}

	if err := h.CardRepo.Upsert(c.Request.Context(), &req.Card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save card"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteCard removes one card from the primary catalog.
func (h *Handler) DeleteCard(c *gin.Context) {
	if h.CardRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog storage not configured"})
		return
	}

	deleted, err := h.CardRepo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete card"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MigrateCards seeds the primary catalog from the bundled deck.
func (h *Handler) MigrateCards(c *gin.Context) {
	if h.CardRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog storage not configured"})
		return
	}

	deck := catalog.BundledDeck()
	if err := h.CardRepo.ReplaceAll(c.Request.Context(), deck); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to migrate cards"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"counts": gin.H{
			"trends":   len(deck.Trends),
			"problems": len(deck.Problems),
			"tech":     len(deck.Tech),
			"assets":   len(deck.Assets),
			"markets":  len(deck.Markets),
		},
	})
}

// SetCardOverride stores a full deck under the redis override key. The
// override takes precedence over the primary catalog for new sessions until
// cleared.
func (h *Handler) SetCardOverride(c *gin.Context) {
	var deck domain.CardDeck
	if err := c.ShouldBindJSON(&deck); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a deck is required"})
		return
	}

	if err := h.Catalog.SaveOverride(c.Request.Context(), &deck); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save override"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RecentGames lists archived finished games.
func (h *Handler) RecentGames(c *gin.Context) {
	if h.HistoryRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "archive not configured"})
		return
	}

	records, err := h.HistoryRepo.Recent(c.Request.Context(), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": records})
}

func validCardType(t domain.CardType) bool {
	switch t {
	case domain.CardTrend, domain.CardProblem, domain.CardTech, domain.CardAsset, domain.CardMarket:
		return true
	}
	return false
}
