package game

import (
	"time"

	"signaldraft/internal/domain"
)

// SettingsOverride carries optional per-field overrides merged on top of the
// defaults at creation time. Nil fields keep the default.
type SettingsOverride struct {
	MaxPlayers           *int `json:"maxPlayers"`
	NumTrendsPerPlayer   *int `json:"numTrendsPerPlayer"`
	NumProblemsPerPlayer *int `json:"numProblemsPerPlayer"`
	NumTechPerPlayer     *int `json:"numTechPerPlayer"`
	NumConceptsPerPlayer *int `json:"numConceptsPerPlayer"`

	TrendsDealtPerPlayer   *int `json:"trendsDealtPerPlayer"`
	ProblemsDealtPerPlayer *int `json:"problemsDealtPerPlayer"`
	TechDealtPerPlayer     *int `json:"techDealtPerPlayer"`
}

func (o *SettingsOverride) apply(s *domain.Settings) {
	if o == nil {
		return
	}
	if o.MaxPlayers != nil {
		s.MaxPlayers = *o.MaxPlayers
	}
	if o.NumTrendsPerPlayer != nil {
		s.NumTrendsPerPlayer = *o.NumTrendsPerPlayer
	}
	if o.NumProblemsPerPlayer != nil {
		s.NumProblemsPerPlayer = *o.NumProblemsPerPlayer
	}
	if o.NumTechPerPlayer != nil {
		s.NumTechPerPlayer = *o.NumTechPerPlayer
	}
	if o.NumConceptsPerPlayer != nil {
		s.NumConceptsPerPlayer = *o.NumConceptsPerPlayer
	}
	if o.TrendsDealtPerPlayer != nil {
		s.TrendsDealtPerPlayer = *o.TrendsDealtPerPlayer
	}
	if o.ProblemsDealtPerPlayer != nil {
		s.ProblemsDealtPerPlayer = *o.ProblemsDealtPerPlayer
	}
	if o.TechDealtPerPlayer != nil {
		s.TechDealtPerPlayer = *o.TechDealtPerPlayer
	}
}

func newPlayer(name string, host bool) domain.Player {
	return domain.Player{
		ID:              NewID(),
		Name:            name,
		IsHost:          host,
		IsConnected:     true,
		Hand:            []string{},
		DraftedTrends:   []string{},
		DraftedProblems: []string{},
		DraftedTech:     []string{},
	}
}

// CreateGame builds a fresh session in LOBBY with the host as the only
// player and the full card pool copied from the deck, all available.
// The deck must be able to serve every draft round at max players; a short
// catalog is rejected here rather than producing truncated hands mid-game.
func CreateGame(hostName string, override *SettingsOverride, deck *domain.CardDeck) (*domain.Game, error) {
	settings := domain.DefaultSettings()
	override.apply(&settings)

	drafters := settings.MaxPlayers - 1 // host never drafts
	for _, t := range []domain.CardType{domain.CardTrend, domain.CardProblem, domain.CardTech} {
		if deck.Count(t) < drafters*settings.DealtPerPlayer(t) {
			return nil, ErrCatalogTooSmall
		}
	}

	cards := deck.All()
	for i := range cards {
		cards[i].Status = domain.CardAvailable
		cards[i].OwnerPlayerID = ""
	}

	host := newPlayer(hostName, true)

	return &domain.Game{
		ID:              NewID(),
		RoomCode:        NewRoomCode(),
		CreatedAt:       time.Now().UTC(),
		Phase:           domain.PhaseLobby,
		HostPlayerID:    host.ID,
		Players:         []domain.Player{host},
		Settings:        settings,
		Cards:           cards,
		Concepts:        []domain.StartupConcept{},
		ScoringComplete: []string{},
		Version:         1,
	}, nil
}

// AddPlayer appends a non-host player and returns the new player's id.
// Joining closes once problem drafting has begun; late joiners cannot catch
// up on missed rounds.
func AddPlayer(g *domain.Game, name string) (string, error) {
	if len(g.Players) >= g.Settings.MaxPlayers {
		return "", ErrGameFull
	}
	if g.Phase != domain.PhaseLobby && g.Phase != domain.PhaseTrendDraft {
		return "", ErrJoinWindowClosed
	}

	p := newPlayer(name, false)
	g.Players = append(g.Players, p)
	return p.ID, nil
}

// RemovePlayer soft-deletes a player. Their drafted cards, concepts and
// scores are kept so aggregate results stay intact.
func RemovePlayer(g *domain.Game, playerID string) error {
	p := g.Player(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	p.IsConnected = false
	return nil
}

// SetPlayerReady flips the lobby ready flag.
func SetPlayerReady(g *domain.Game, playerID string, ready bool) error {
	p := g.Player(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	p.IsReady = ready
	return nil
}
