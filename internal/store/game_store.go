package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"signaldraft/internal/domain"
	"signaldraft/internal/game"

	redis "github.com/redis/go-redis/v9"
)

const gameKeyPrefix = "game:"

func gameKey(roomCode string) string {
	return gameKeyPrefix + roomCode
}

// GameStore persists sessions as JSON blobs in redis, one key per room code,
// with a sliding TTL. Save performs a compare-and-set on the session version
// so concurrent commands against the same room cannot silently overwrite
// each other.
type GameStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewGameStore(rdb *redis.Client, ttl time.Duration) *GameStore {
	return &GameStore{rdb: rdb, ttl: ttl}
}

// Get loads a session by room code. game.ErrGameNotFound when absent.
func (s *GameStore) Get(ctx context.Context, roomCode string) (*domain.Game, error) {
	raw, err := s.rdb.Get(ctx, gameKey(roomCode)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, game.ErrGameNotFound
		}
		return nil, err
	}

	var g domain.Game
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Create stores a brand-new session. Fails if the room code is taken.
func (s *GameStore) Create(ctx context.Context, g *domain.Game) error {
	raw, err := json.Marshal(g)
	if err != nil {
		return err
	}
	ok, err := s.rdb.SetNX(ctx, gameKey(g.RoomCode), raw, s.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return game.ErrVersionConflict
	}
	return nil
}

// Save persists a mutated session, bumping its version, but only if the
// stored version still matches the version the caller loaded. On mismatch
// the session is left untouched and game.ErrVersionConflict is returned so
// the caller can reload and retry.
func (s *GameStore) Save(ctx context.Context, g *domain.Game) error {
	key := gameKey(g.RoomCode)
	loadedVersion := g.Version

	err := s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return game.ErrGameNotFound
			}
			return err
		}

		var stored struct {
			Version int64 `json:"version"`
		}
		if err := json.Unmarshal(raw, &stored); err != nil {
			return err
		}
		if stored.Version != loadedVersion {
			return game.ErrVersionConflict
		}

		g.Version = loadedVersion + 1
		next, err := json.Marshal(g)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, s.ttl)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		// someone wrote between our read and the commit
		g.Version = loadedVersion
		return game.ErrVersionConflict
	}
	if err != nil {
		g.Version = loadedVersion
	}
	return err
}

// Delete removes a session outright. Normal games just expire.
func (s *GameStore) Delete(ctx context.Context, roomCode string) error {
	return s.rdb.Del(ctx, gameKey(roomCode)).Err()
}

// Exists reports whether the room code resolves to a live session.
func (s *GameStore) Exists(ctx context.Context, roomCode string) (bool, error) {
	n, err := s.rdb.Exists(ctx, gameKey(roomCode)).Result()
	return n == 1, err
}

// Touch refreshes the session TTL without rewriting the value.
func (s *GameStore) Touch(ctx context.Context, roomCode string) error {
	return s.rdb.Expire(ctx, gameKey(roomCode), s.ttl).Err()
}
