package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"signaldraft/internal/domain"
	"signaldraft/internal/logger"

	redis "github.com/redis/go-redis/v9"
)

// MasterDeckKey is the fixed key for the catalog override deck.
const MasterDeckKey = "cards:master"

// Repository is the durable primary catalog source (postgres-backed).
type Repository interface {
	Deck(ctx context.Context) (*domain.CardDeck, error)
}

// Provider resolves the card pool for new sessions: redis override first,
// then the primary repository, then the bundled deck. Every fallback is
// silent; an unavailable source never blocks session creation.
type Provider struct {
	rdb  *redis.Client
	repo Repository
}

func NewProvider(rdb *redis.Client, repo Repository) *Provider {
	return &Provider{rdb: rdb, repo: repo}
}

// CardPool returns the deck used to seed a new session's cards.
func (p *Provider) CardPool(ctx context.Context) *domain.CardDeck {
	if deck := p.overrideDeck(ctx); deck != nil {
		return deck
	}

	if p.repo != nil {
		deck, err := p.repo.Deck(ctx)
		if err != nil {
			logger.Warn("catalog repository unavailable, using bundled deck", "error", err)
		} else if deck != nil && !empty(deck) {
			return deck
		}
	}

	return BundledDeck()
}

func (p *Provider) overrideDeck(ctx context.Context) *domain.CardDeck {
	if p.rdb == nil {
		return nil
	}
	raw, err := p.rdb.Get(ctx, MasterDeckKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("catalog override read failed", "error", err)
		}
		return nil
	}
	var deck domain.CardDeck
	if err := json.Unmarshal(raw, &deck); err != nil {
		logger.Warn("catalog override is not a valid deck", "error", err)
		return nil
	}
	if empty(&deck) {
		return nil
	}
	return &deck
}

// SaveOverride stores the deck under the fixed override key.
func (p *Provider) SaveOverride(ctx context.Context, deck *domain.CardDeck) error {
	raw, err := json.Marshal(deck)
	if err != nil {
		return err
	}
	return p.rdb.Set(ctx, MasterDeckKey, raw, 0).Err()
}

func empty(d *domain.CardDeck) bool {
	return len(d.Trends) == 0 && len(d.Problems) == 0 && len(d.Tech) == 0 &&
		len(d.Assets) == 0 && len(d.Markets) == 0
}
