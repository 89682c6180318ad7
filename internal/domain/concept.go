package domain

// BusinessModel - how the concept makes money
type BusinessModel string

const (
	ModelSaaS           BusinessModel = "saas"
	ModelMarketplace    BusinessModel = "marketplace"
	ModelTransactionFee BusinessModel = "transaction_fee"
	ModelLicensing      BusinessModel = "licensing"
	ModelHybrid         BusinessModel = "hybrid"
	ModelOther          BusinessModel = "other"
)

// ConceptScore is one player's rating of one concept. Each dimension is 1-5.
type ConceptScore struct {
	PlayerID    string `json:"playerId"`
	Pain        int    `json:"pain"`
	MarketSize  int    `json:"marketSize"`
	FounderFit  int    `json:"founderFit"`
	WouldInvest bool   `json:"wouldInvest"`
}

// AggregatedScore is a cached projection over a concept's scores. It is
// recomputable at any time; the scores slice stays the source of truth.
type AggregatedScore struct {
	AvgPain       float64 `json:"avgPain"`
	AvgMarketSize float64 `json:"avgMarketSize"`
	AvgFounderFit float64 `json:"avgFounderFit"`
	InvestYesRate float64 `json:"investYesRate"`
	TotalScore    float64 `json:"totalScore"` // range 3-15
}

// Superlative award labels
const (
	SuperlativeSeed       = "Most Likely to Raise a Seed"
	SuperlativeFounderFit = "Best Founder Fit"
	SuperlativeOutrageous = "Most Outrageous"
)

// StartupConcept - one player's submission built from drafted cards plus the
// shared asset/market pool. Content is immutable after creation; scores
// accumulate during the scoring phase.
type StartupConcept struct {
	ID            string        `json:"id"`
	OwnerPlayerID string        `json:"ownerPlayerId"`
	Name          string        `json:"name"`
	OneLiner      string        `json:"oneLiner"`
	MarketDesc    string        `json:"marketDescription,omitempty"`
	BusinessModel BusinessModel `json:"businessModel,omitempty"`

	TrendIDs   []string `json:"trendIds"`
	ProblemIDs []string `json:"problemIds"`
	TechIDs    []string `json:"techIds"`
	AssetIDs   []string `json:"assetIds"`
	MarketID   string   `json:"marketId,omitempty"`

	Scores          []ConceptScore   `json:"scores"`
	AggregatedScore *AggregatedScore `json:"aggregatedScore,omitempty"`
	Superlatives    []string         `json:"superlatives,omitempty"`
}

// ScoredBy reports whether the given player already scored this concept.
func (c *StartupConcept) ScoredBy(playerID string) bool {
	for _, s := range c.Scores {
		if s.PlayerID == playerID {
			return true
		}
	}
	return false
}
