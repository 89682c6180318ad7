package handlers

import (
	"net/http"

	"signaldraft/internal/service"

	"github.com/gin-gonic/gin"
)

type adminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminLogin exchanges the admin password for a bearer token used by the
// card-catalog editor.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	if h.AdminPassword == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "admin password not configured"})
		return
	}

	token, err := service.AdminLogin(h.AdminPassword, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
