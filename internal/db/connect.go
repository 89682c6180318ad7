package db

import (
	"context"

	"signaldraft/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"
)

// Connect opens the postgres pool for the card catalog and game archive.
// Postgres is optional: without it the server runs on the bundled deck and
// skips archiving, so a nil pool is returned rather than failing startup.
func Connect(dsn string) *pgxpool.Pool {
	if dsn == "" {
		logger.Warn("DATABASE_URL not set, running without postgres")
		return nil
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Warn("failed to create database pool, running without postgres", "error", err)
		return nil
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Warn("failed to ping database, running without postgres", "error", err)
		pool.Close()
		return nil
	}

	logger.Info("database connected")
	return pool
}

// ConnectRedis opens the redis client backing the session store and the
// notification channel. Redis is required.
func ConnectRedis(addr, password string, dbIndex int) *redis.Client {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: dbIndex})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to ping redis", "error", err)
	}
	logger.Info("redis connected")
	return rdb
}
