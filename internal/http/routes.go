package http

import (
	"signaldraft/internal/config"
	"signaldraft/internal/http/handlers"
	"signaldraft/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, health *handlers.HealthHandler, cfg *config.Config) {
	// Health checks (no rate limiting)
	r.GET("/health", health.Health)
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	{
		// Game sessions
		v1.POST("/games", h.CreateGame)
		v1.POST("/games/join", h.JoinGame)
		v1.GET("/games/state", h.GameState)
		v1.POST("/games/action", h.GameAction)

		// Admin auth is limited harder than the rest of the API
		v1.POST("/admin/login", middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow), h.AdminLogin)

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth())
		{
			admin.GET("/cards", h.ListCards)
			admin.POST("/cards", h.CreateCard)
			admin.PUT("/cards/:id", h.UpdateCard)
			admin.DELETE("/cards/:id", h.DeleteCard)
			admin.POST("/cards/migrate", h.MigrateCards)
			admin.PUT("/cards/override", h.SetCardOverride)
			admin.GET("/games/recent", h.RecentGames)
			admin.DELETE("/games/:roomCode", h.DeleteGame)
		}
	}

	// WebSocket sync channel
	r.GET("/ws", h.WS())
}
