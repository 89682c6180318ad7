package repository

import (
	"context"
	"encoding/json"
	"time"

	"signaldraft/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// GameRecord is one archived finished game.
type GameRecord struct {
	ID          int64           `json:"id"`
	RoomCode    string          `json:"roomCode"`
	HostName    string          `json:"hostName"`
	PlayerCount int             `json:"playerCount"`
	Results     json.RawMessage `json:"results"`
	CreatedAt   time.Time       `json:"createdAt"`
	EndedAt     time.Time       `json:"endedAt"`
}

// HistoryRepository archives finished games so results survive the session
// TTL.
type HistoryRepository struct {
	db *pgxpool.Pool
}

func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record stores the final standings of an ended game.
func (r *HistoryRepository) Record(ctx context.Context, g *domain.Game, ranked []domain.StartupConcept) error {
	results, err := json.Marshal(ranked)
	if err != nil {
		return err
	}

	hostName := ""
	if host := g.Player(g.HostPlayerID); host != nil {
		hostName = host.Name
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO game_history (room_code, host_name, player_count, results, game_created_at, ended_at)
		 VALUES ($1, $2, $3, $4, $5, now())`,
		g.RoomCode, hostName, len(g.Players), results, g.CreatedAt)
	return err
}

// Recent returns the latest archived games, newest first.
func (r *HistoryRepository) Recent(ctx context.Context, limit int) ([]*GameRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, room_code, host_name, player_count, results, game_created_at, ended_at
		 FROM game_history ORDER BY ended_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*GameRecord
	for rows.Next() {
		rec := &GameRecord{}
		if err := rows.Scan(&rec.ID, &rec.RoomCode, &rec.HostName, &rec.PlayerCount,
			&rec.Results, &rec.CreatedAt, &rec.EndedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
