package domain

import "time"

// Phase - position of a session in the fixed game lifecycle
type Phase string

const (
	PhaseLobby          Phase = "LOBBY"
	PhaseTrendDraft     Phase = "ROUND_TREND_DRAFT"
	PhaseProblemDraft   Phase = "ROUND_PROBLEM_DRAFT"
	PhaseTechAssetDraft Phase = "ROUND_TECH_ASSET_DRAFT"
	PhaseBuildConcepts  Phase = "BUILD_CONCEPTS"
	PhaseScoring        Phase = "SCORING"
	PhaseSummary        Phase = "SUMMARY"
	PhaseEnded          Phase = "ENDED"
)

// IsDraft reports whether the phase is one of the three draft rounds.
func (p Phase) IsDraft() bool {
	return p == PhaseTrendDraft || p == PhaseProblemDraft || p == PhaseTechAssetDraft
}

// DraftType returns the card type drafted during this phase.
func (p Phase) DraftType() (CardType, bool) {
	switch p {
	case PhaseTrendDraft:
		return CardTrend, true
	case PhaseProblemDraft:
		return CardProblem, true
	case PhaseTechAssetDraft:
		return CardTech, true
	}
	return "", false
}

// Player - one participant, host included. Removed players are soft-deleted
// via IsConnected so their concepts and scores stay intact.
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsHost      bool   `json:"isHost"`
	IsConnected bool   `json:"isConnected"`
	IsReady     bool   `json:"isReady"`

	// Card ids dealt for the active round; empty outside draft rounds
	Hand []string `json:"hand"`

	// Cumulative selections, one slice per draft round
	DraftedTrends   []string `json:"draftedTrends"`
	DraftedProblems []string `json:"draftedProblems"`
	DraftedTech     []string `json:"draftedTech"`

	HasLockedPicks bool `json:"hasLockedPicks"`
}

// Settings - immutable-after-creation session configuration
type Settings struct {
	MaxPlayers           int `json:"maxPlayers"`
	NumTrendsPerPlayer   int `json:"numTrendsPerPlayer"`
	NumProblemsPerPlayer int `json:"numProblemsPerPlayer"`
	NumTechPerPlayer     int `json:"numTechPerPlayer"`
	NumConceptsPerPlayer int `json:"numConceptsPerPlayer"`

	TrendsDealtPerPlayer   int `json:"trendsDealtPerPlayer"`
	ProblemsDealtPerPlayer int `json:"problemsDealtPerPlayer"`
	TechDealtPerPlayer     int `json:"techDealtPerPlayer"`
}

// DefaultSettings returns the stock game configuration.
func DefaultSettings() Settings {
	return Settings{
		MaxPlayers:             6,
		NumTrendsPerPlayer:     3,
		NumProblemsPerPlayer:   3,
		NumTechPerPlayer:       1,
		NumConceptsPerPlayer:   2,
		TrendsDealtPerPlayer:   6,
		ProblemsDealtPerPlayer: 6,
		TechDealtPerPlayer:     5,
	}
}

// PicksRequired returns how many cards of the given type a player drafts.
func (s Settings) PicksRequired(t CardType) int {
	switch t {
	case CardTrend:
		return s.NumTrendsPerPlayer
	case CardProblem:
		return s.NumProblemsPerPlayer
	case CardTech:
		return s.NumTechPerPlayer
	}
	return 0
}

// DealtPerPlayer returns the hand size for a draft round of the given type.
func (s Settings) DealtPerPlayer(t CardType) int {
	switch t {
	case CardTrend:
		return s.TrendsDealtPerPlayer
	case CardProblem:
		return s.ProblemsDealtPerPlayer
	case CardTech:
		return s.TechDealtPerPlayer
	}
	return 0
}

// Game is the root aggregate, one per room code. Mutations go through the
// state machine in internal/game; Version backs the optimistic-concurrency
// check on save.
type Game struct {
	ID           string           `json:"id"`
	RoomCode     string           `json:"roomCode"`
	CreatedAt    time.Time        `json:"createdAt"`
	Phase        Phase            `json:"phase"`
	HostPlayerID string           `json:"hostPlayerId"`
	Players      []Player         `json:"players"`
	Settings     Settings         `json:"settings"`
	Cards        []Card           `json:"cards"`
	Concepts     []StartupConcept `json:"concepts"`

	// Player ids that have scored every concept
	ScoringComplete []string `json:"scoringComplete"`

	Version int64 `json:"version"`
}

// Player returns the player with the given id, or nil.
func (g *Game) Player(id string) *Player {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// Card returns the card with the given id, or nil.
func (g *Game) Card(id string) *Card {
	for i := range g.Cards {
		if g.Cards[i].ID == id {
			return &g.Cards[i]
		}
	}
	return nil
}

// Concept returns the concept with the given id, or nil.
func (g *Game) Concept(id string) *StartupConcept {
	for i := range g.Concepts {
		if g.Concepts[i].ID == id {
			return &g.Concepts[i]
		}
	}
	return nil
}

// ConnectedGuests returns connected non-host players in join order.
func (g *Game) ConnectedGuests() []*Player {
	var out []*Player
	for i := range g.Players {
		p := &g.Players[i]
		if p.IsConnected && !p.IsHost {
			out = append(out, p)
		}
	}
	return out
}
