package middleware

import (
	"net/http"
	"strings"

	"signaldraft/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminAuth guards the card-catalog editor endpoints with a bearer token
// issued by the admin login.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if err := service.ParseAdminToken(strings.TrimPrefix(header, "Bearer ")); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}
