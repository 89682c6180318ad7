package domain

// CardType - card category
type CardType string

const (
	CardTrend   CardType = "trend"
	CardProblem CardType = "problem"
	CardTech    CardType = "tech"
	CardAsset   CardType = "asset"
	CardMarket  CardType = "market"
)

// CardStatus - session-scoped lifecycle of a card
type CardStatus string

const (
	CardAvailable CardStatus = "available"
	CardInHand    CardStatus = "in_hand"
	CardDrafted   CardStatus = "drafted"
	CardLocked    CardStatus = "locked"
)

// TrendAttrs holds trend-specific content fields
type TrendAttrs struct {
	TimeHorizon string `json:"timeHorizon,omitempty"` // "1-3 yrs" | "3-5 yrs" | "5+ yrs"
	Category    string `json:"category,omitempty"`
}

// ProblemAttrs holds problem-specific content fields
type ProblemAttrs struct {
	Persona       string `json:"persona,omitempty"`
	PainLevelHint int    `json:"painLevelHint,omitempty"` // 1-5
}

// TechAttrs holds tech-specific content fields
type TechAttrs struct {
	TechCategory string `json:"techCategory,omitempty"`
}

// AssetAttrs holds asset-specific content fields
type AssetAttrs struct {
	OwnerPlayerName string `json:"ownerPlayerName,omitempty"`
}

// Card is a tagged variant: Type selects which attrs pointer is set.
// Content fields are immutable after session creation; only Status and
// OwnerPlayerID mutate at runtime. Market cards carry no extra attrs.
type Card struct {
	ID          string   `json:"id"`
	Type        CardType `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	Trend   *TrendAttrs   `json:"trend,omitempty"`
	Problem *ProblemAttrs `json:"problem,omitempty"`
	Tech    *TechAttrs    `json:"tech,omitempty"`
	Asset   *AssetAttrs   `json:"asset,omitempty"`

	Status        CardStatus `json:"status"`
	OwnerPlayerID string     `json:"ownerPlayerId,omitempty"`
}

// CardDeck groups content-only cards by type, as served by the catalog.
type CardDeck struct {
	Trends   []Card `json:"trends"`
	Problems []Card `json:"problems"`
	Tech     []Card `json:"tech"`
	Assets   []Card `json:"assets"`
	Markets  []Card `json:"markets"`
}

// All returns every card in the deck as one flat slice.
func (d *CardDeck) All() []Card {
	out := make([]Card, 0, len(d.Trends)+len(d.Problems)+len(d.Tech)+len(d.Assets)+len(d.Markets))
	out = append(out, d.Trends...)
	out = append(out, d.Problems...)
	out = append(out, d.Tech...)
	out = append(out, d.Assets...)
	out = append(out, d.Markets...)
	return out
}

// Count returns how many cards of the given type the deck holds.
func (d *CardDeck) Count(t CardType) int {
	switch t {
	case CardTrend:
		return len(d.Trends)
	case CardProblem:
		return len(d.Problems)
	case CardTech:
		return len(d.Tech)
	case CardAsset:
		return len(d.Assets)
	case CardMarket:
		return len(d.Markets)
	}
	return 0
}
