package game

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"signaldraft/internal/domain"
)

func intp(v int) *int { return &v }

// testDeck builds a synthetic catalog with the given number of cards per
// draftable type plus a handful of assets and markets.
func testDeck(trends, problems, tech int) *domain.CardDeck {
	deck := &domain.CardDeck{}
	for i := 0; i < trends; i++ {
		deck.Trends = append(deck.Trends, domain.Card{
			ID: fmt.Sprintf("t-%02d", i), Type: domain.CardTrend, Title: fmt.Sprintf("Trend %d", i),
		})
	}
	for i := 0; i < problems; i++ {
		deck.Problems = append(deck.Problems, domain.Card{
			ID: fmt.Sprintf("p-%02d", i), Type: domain.CardProblem, Title: fmt.Sprintf("Problem %d", i),
		})
	}
	for i := 0; i < tech; i++ {
		deck.Tech = append(deck.Tech, domain.Card{
			ID: fmt.Sprintf("x-%02d", i), Type: domain.CardTech, Title: fmt.Sprintf("Tech %d", i),
		})
	}
	for i := 0; i < 3; i++ {
		deck.Assets = append(deck.Assets, domain.Card{
			ID: fmt.Sprintf("a-%02d", i), Type: domain.CardAsset, Title: fmt.Sprintf("Asset %d", i),
		})
		deck.Markets = append(deck.Markets, domain.Card{
			ID: fmt.Sprintf("m-%02d", i), Type: domain.CardMarket, Title: fmt.Sprintf("Market %d", i),
		})
	}
	return deck
}

// smallGame creates a 4-seat game with tiny hands so tests stay readable:
// 2 cards dealt, 1 pick required per draft round.
func smallGame(t *testing.T, guests int) *domain.Game {
	t.Helper()
	override := &SettingsOverride{
		MaxPlayers:             intp(4),
		NumTrendsPerPlayer:     intp(1),
		NumProblemsPerPlayer:   intp(1),
		NumTechPerPlayer:       intp(1),
		TrendsDealtPerPlayer:   intp(2),
		ProblemsDealtPerPlayer: intp(2),
		TechDealtPerPlayer:     intp(2),
	}
	g, err := CreateGame("Host", override, testDeck(6, 6, 6))
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	for i := 0; i < guests; i++ {
		if _, err := AddPlayer(g, fmt.Sprintf("Guest%d", i+1)); err != nil {
			t.Fatalf("AddPlayer: %v", err)
		}
	}
	return g
}

func TestCreateGameDefaults(t *testing.T) {
	g, err := CreateGame("Ada", nil, testDeck(30, 30, 25))
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	if g.Phase != domain.PhaseLobby {
		t.Errorf("phase = %s; want %s", g.Phase, domain.PhaseLobby)
	}
	if g.Version != 1 {
		t.Errorf("version = %d; want 1", g.Version)
	}
	if len(g.Players) != 1 || !g.Players[0].IsHost {
		t.Fatalf("expected exactly one host player, got %+v", g.Players)
	}
	if g.HostPlayerID != g.Players[0].ID {
		t.Errorf("hostPlayerId not the host's id")
	}
	if g.Settings.MaxPlayers != 6 || g.Settings.NumTrendsPerPlayer != 3 ||
		g.Settings.NumTechPerPlayer != 1 || g.Settings.NumConceptsPerPlayer != 2 {
		t.Errorf("unexpected default settings: %+v", g.Settings)
	}
	for _, c := range g.Cards {
		if c.Status != domain.CardAvailable || c.OwnerPlayerID != "" {
			t.Fatalf("card %s not reset to available: %+v", c.ID, c)
		}
	}
}

func TestCreateGameSettingsOverride(t *testing.T) {
	g, err := CreateGame("Ada", &SettingsOverride{
		MaxPlayers:           intp(3),
		NumConceptsPerPlayer: intp(1),
	}, testDeck(30, 30, 25))
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	if g.Settings.MaxPlayers != 3 {
		t.Errorf("maxPlayers = %d; want 3", g.Settings.MaxPlayers)
	}
	if g.Settings.NumConceptsPerPlayer != 1 {
		t.Errorf("numConceptsPerPlayer = %d; want 1", g.Settings.NumConceptsPerPlayer)
	}
	// untouched fields keep defaults
	if g.Settings.NumTrendsPerPlayer != 3 {
		t.Errorf("numTrendsPerPlayer = %d; want default 3", g.Settings.NumTrendsPerPlayer)
	}
}

func TestCreateGameCatalogTooSmall(t *testing.T) {
	// 5 drafters at 6 trends each need 30 trend cards
	_, err := CreateGame("Ada", nil, testDeck(29, 30, 25))
	if !errors.Is(err, ErrCatalogTooSmall) {
		t.Fatalf("err = %v; want ErrCatalogTooSmall", err)
	}

	// shrinking the table makes the same deck sufficient
	if _, err := CreateGame("Ada", &SettingsOverride{MaxPlayers: intp(5)}, testDeck(29, 30, 25)); err != nil {
		t.Fatalf("CreateGame with smaller table: %v", err)
	}
}

func TestNewRoomCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code := NewRoomCode()
		if len(code) != 6 {
			t.Fatalf("len(%q) = %d; want 6", code, len(code))
		}
		for _, r := range code {
			if !strings.ContainsRune(roomCodeAlphabet, r) {
				t.Fatalf("code %q has rune %q outside the alphabet", code, r)
			}
		}
		seen[code] = true
	}
	// ambiguous glyphs are excluded from the alphabet entirely
	for _, banned := range "01IO" {
		if strings.ContainsRune(roomCodeAlphabet, banned) {
			t.Errorf("alphabet contains ambiguous rune %q", banned)
		}
	}
	if len(seen) < 100 {
		t.Errorf("only %d distinct codes out of 200", len(seen))
	}
}

func TestAddPlayerGameFull(t *testing.T) {
	g := smallGame(t, 3) // host + 3 guests fills 4 seats

	if _, err := AddPlayer(g, "Late"); !errors.Is(err, ErrGameFull) {
		t.Fatalf("err = %v; want ErrGameFull", err)
	}
}

func TestAddPlayerJoinWindow(t *testing.T) {
	g := smallGame(t, 1)

	if err := Transition(g, domain.PhaseTrendDraft); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	// trend draft still accepts joiners
	if _, err := AddPlayer(g, "JustInTime"); err != nil {
		t.Fatalf("join during trend draft: %v", err)
	}

	if err := Transition(g, domain.PhaseProblemDraft); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if _, err := AddPlayer(g, "TooLate"); !errors.Is(err, ErrJoinWindowClosed) {
		t.Fatalf("err = %v; want ErrJoinWindowClosed", err)
	}
}

func TestLateJoinerGetsDealtIn(t *testing.T) {
	g := smallGame(t, 1)
	if err := Transition(g, domain.PhaseTrendDraft); err != nil {
		t.Fatalf("Transition: %v", err)
	}

	id, err := AddPlayer(g, "JustInTime")
	if err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}

	// the late joiner missed the trend deal; they catch up at the next round
	if err := Transition(g, domain.PhaseProblemDraft); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	p := g.Player(id)
	if len(p.Hand) == 0 {
		t.Fatalf("late joiner has no problem hand")
	}
}

func TestRemovePlayerSoftDelete(t *testing.T) {
	g := smallGame(t, 2)
	id := g.Players[1].ID

	if err := RemovePlayer(g, id); err != nil {
		t.Fatalf("RemovePlayer: %v", err)
	}
	if len(g.Players) != 3 {
		t.Fatalf("player hard-deleted; want soft delete")
	}
	if g.Player(id).IsConnected {
		t.Errorf("player still marked connected")
	}

	if err := RemovePlayer(g, "nope"); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("err = %v; want ErrPlayerNotFound", err)
	}
}

func TestSetPlayerReady(t *testing.T) {
	g := smallGame(t, 1)
	id := g.Players[1].ID

	if err := SetPlayerReady(g, id, true); err != nil {
		t.Fatalf("SetPlayerReady: %v", err)
	}
	if !g.Player(id).IsReady {
		t.Errorf("ready flag not set")
	}
	if err := SetPlayerReady(g, id, false); err != nil {
		t.Fatalf("SetPlayerReady: %v", err)
	}
	if g.Player(id).IsReady {
		t.Errorf("ready flag not cleared")
	}

	if err := SetPlayerReady(g, "nope", true); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("err = %v; want ErrPlayerNotFound", err)
	}
}
