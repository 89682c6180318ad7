package game

import "signaldraft/internal/domain"

// ConceptInput is the player-authored content of a concept. Ingredient ids
// reference the owner's drafted cards or the shared asset/market pool.
type ConceptInput struct {
	Name          string               `json:"name"`
	OneLiner      string               `json:"oneLiner"`
	MarketDesc    string               `json:"marketDescription"`
	BusinessModel domain.BusinessModel `json:"businessModel"`
	TrendIDs      []string             `json:"trendIds"`
	ProblemIDs    []string             `json:"problemIds"`
	TechIDs       []string             `json:"techIds"`
	AssetIDs      []string             `json:"assetIds"`
	MarketID      string               `json:"marketId"`
}

// SubmitConcept appends a new concept for the player. Only valid during the
// build phase and capped at the configured concepts-per-player.
func SubmitConcept(g *domain.Game, playerID string, in ConceptInput) (string, error) {
	if g.Phase != domain.PhaseBuildConcepts {
		return "", ErrWrongPhase
	}
	if g.Player(playerID) == nil {
		return "", ErrPlayerNotFound
	}

	owned := 0
	for i := range g.Concepts {
		if g.Concepts[i].OwnerPlayerID == playerID {
			owned++
		}
	}
	if owned >= g.Settings.NumConceptsPerPlayer {
		return "", ErrConceptLimitReached
	}

	concept := domain.StartupConcept{
		ID:            NewID(),
		OwnerPlayerID: playerID,
		Name:          in.Name,
		OneLiner:      in.OneLiner,
		MarketDesc:    in.MarketDesc,
		BusinessModel: in.BusinessModel,
		TrendIDs:      in.TrendIDs,
		ProblemIDs:    in.ProblemIDs,
		TechIDs:       in.TechIDs,
		AssetIDs:      in.AssetIDs,
		MarketID:      in.MarketID,
		Scores:        []domain.ConceptScore{},
	}
	g.Concepts = append(g.Concepts, concept)
	return concept.ID, nil
}

// ScoreInput is one player's rating of a concept.
type ScoreInput struct {
	Pain        int  `json:"pain"`
	MarketSize  int  `json:"marketSize"`
	FounderFit  int  `json:"founderFit"`
	WouldInvest bool `json:"wouldInvest"`
}

// SubmitScore records the player's score for a concept, at most once per
// player per concept (self-scoring included). When the player has now scored
// every concept they are added to the scoring-complete set.
func SubmitScore(g *domain.Game, playerID, conceptID string, in ScoreInput) error {
	if g.Phase != domain.PhaseScoring {
		return ErrWrongPhase
	}

	concept := g.Concept(conceptID)
	if concept == nil {
		return ErrConceptNotFound
	}
	if concept.ScoredBy(playerID) {
		return ErrDuplicateScore
	}

	concept.Scores = append(concept.Scores, domain.ConceptScore{
		PlayerID:    playerID,
		Pain:        in.Pain,
		MarketSize:  in.MarketSize,
		FounderFit:  in.FounderFit,
		WouldInvest: in.WouldInvest,
	})

	scored := 0
	for i := range g.Concepts {
		if g.Concepts[i].ScoredBy(playerID) {
			scored++
		}
	}
	if scored == len(g.Concepts) {
		for _, id := range g.ScoringComplete {
			if id == playerID {
				return nil
			}
		}
		g.ScoringComplete = append(g.ScoringComplete, playerID)
	}
	return nil
}

// AllScoringComplete reports whether every connected non-host player has
// scored every concept.
func AllScoringComplete(g *domain.Game) bool {
	for _, p := range g.ConnectedGuests() {
		found := false
		for _, id := range g.ScoringComplete {
			if id == p.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
