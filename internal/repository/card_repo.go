package repository

import (
	"context"
	"encoding/json"

	"signaldraft/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CardRepository is the durable primary card catalog, one row per card with
// type-specific attrs as jsonb.
type CardRepository struct {
	db *pgxpool.Pool
}

func NewCardRepository(db *pgxpool.Pool) *CardRepository {
	return &CardRepository{db: db}
}

type cardAttrs struct {
	Trend   *domain.TrendAttrs   `json:"trend,omitempty"`
	Problem *domain.ProblemAttrs `json:"problem,omitempty"`
	Tech    *domain.TechAttrs    `json:"tech,omitempty"`
	Asset   *domain.AssetAttrs   `json:"asset,omitempty"`
}

// Deck loads the whole catalog grouped by card type.
func (r *CardRepository) Deck(ctx context.Context) (*domain.CardDeck, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, type, title, COALESCE(description, ''), tags, attrs FROM cards ORDER BY type, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deck := &domain.CardDeck{}
	for rows.Next() {
		var c domain.Card
		var attrsRaw []byte
		if err := rows.Scan(&c.ID, &c.Type, &c.Title, &c.Description, &c.Tags, &attrsRaw); err != nil {
			return nil, err
		}
		if len(attrsRaw) > 0 {
			var attrs cardAttrs
			if err := json.Unmarshal(attrsRaw, &attrs); err != nil {
				return nil, err
			}
			c.Trend, c.Problem, c.Tech, c.Asset = attrs.Trend, attrs.Problem, attrs.Tech, attrs.Asset
		}

		switch c.Type {
		case domain.CardTrend:
			deck.Trends = append(deck.Trends, c)
		case domain.CardProblem:
			deck.Problems = append(deck.Problems, c)
		case domain.CardTech:
			deck.Tech = append(deck.Tech, c)
		case domain.CardAsset:
			deck.Assets = append(deck.Assets, c)
		case domain.CardMarket:
			deck.Markets = append(deck.Markets, c)
		}
	}
	return deck, rows.Err()
}

// Upsert creates or replaces one catalog card.
func (r *CardRepository) Upsert(ctx context.Context, c *domain.Card) error {
	attrsRaw, err := json.Marshal(cardAttrs{Trend: c.Trend, Problem: c.Problem, Tech: c.Tech, Asset: c.Asset})
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO cards (id, type, title, description, tags, attrs)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
		   type = EXCLUDED.type, title = EXCLUDED.title,
		   description = EXCLUDED.description, tags = EXCLUDED.tags, attrs = EXCLUDED.attrs`,
		c.ID, c.Type, c.Title, c.Description, c.Tags, attrsRaw)
	return err
}

// Delete removes one card from the catalog.
func (r *CardRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ReplaceAll swaps the entire catalog for the given deck in one transaction.
// Used by the migrate endpoint to seed the catalog from the bundled deck.
func (r *CardRepository) ReplaceAll(ctx context.Context, deck *domain.CardDeck) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM cards`); err != nil {
		return err
	}
	for _, c := range deck.All() {
		attrsRaw, err := json.Marshal(cardAttrs{Trend: c.Trend, Problem: c.Problem, Tech: c.Tech, Asset: c.Asset})
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO cards (id, type, title, description, tags, attrs) VALUES ($1, $2, $3, $4, $5, $6)`,
			c.ID, c.Type, c.Title, c.Description, c.Tags, attrsRaw); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
