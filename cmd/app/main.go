package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"signaldraft/internal/catalog"
	"signaldraft/internal/config"
	"signaldraft/internal/db"
	"signaldraft/internal/http/handlers"
	"signaldraft/internal/http/middleware"
	"signaldraft/internal/logger"
	"signaldraft/internal/pubsub"
	"signaldraft/internal/repository"
	"signaldraft/internal/service"
	"signaldraft/internal/store"

	httpServer "signaldraft/internal/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	service.InitJWT(cfg.JWTSecret)

	rdb := db.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer rdb.Close()

	dbPool := db.Connect(cfg.DatabaseURL)
	if dbPool != nil {
		defer dbPool.Close()
	}

	gameStore := store.NewGameStore(rdb, cfg.GameTTL)
	notifier := pubsub.NewNotifier(rdb)

	var cardRepo *repository.CardRepository
	var historyRepo *repository.HistoryRepository
	var archiver service.Archiver
	var catalogRepo catalog.Repository
	if dbPool != nil {
		cardRepo = repository.NewCardRepository(dbPool)
		historyRepo = repository.NewHistoryRepository(dbPool)
		archiver = historyRepo
		catalogRepo = cardRepo
	}

	cardCatalog := catalog.NewProvider(rdb, catalogRepo)
	gameService := service.NewGameService(gameStore, notifier, cardCatalog, archiver)

	h := &handlers.Handler{
		GameService:   gameService,
		Catalog:       cardCatalog,
		CardRepo:      cardRepo,
		HistoryRepo:   historyRepo,
		Notifier:      notifier,
		AdminPassword: cfg.AdminPassword,
		AllowedOrigin: cfg.AllowedOrigin,
	}
	health := handlers.NewHealthHandler(rdb, dbPool, version)

	r := gin.Default()

	// CORS for production (frontend on different domain)
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (cfg.AllowedOrigin == "" || origin == cfg.AllowedOrigin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	middleware.InitRedisRateLimiter(rdb)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, h, health, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		log.Println("server started on port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown:", err)
	}

	log.Println("server exited")
}
