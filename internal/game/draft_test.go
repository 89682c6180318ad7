package game

import (
	"errors"
	"testing"

	"signaldraft/internal/domain"
)

// draftGame is a smallGame already advanced into the trend draft.
func draftGame(t *testing.T, guests int) *domain.Game {
	t.Helper()
	g := smallGame(t, guests)
	if err := Transition(g, domain.PhaseTrendDraft); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	return g
}

func TestDealCardsHandsAreDisjoint(t *testing.T) {
	g := draftGame(t, 3)

	seen := map[string]string{}
	for _, p := range g.ConnectedGuests() {
		for _, id := range p.Hand {
			if owner, dup := seen[id]; dup {
				t.Fatalf("card %s dealt to both %s and %s", id, owner, p.ID)
			}
			seen[id] = p.ID

			c := g.Card(id)
			if c == nil {
				t.Fatalf("hand references unknown card %s", id)
			}
			if c.Status != domain.CardInHand || c.OwnerPlayerID != p.ID {
				t.Errorf("card %s status=%s owner=%s; want in_hand owned by %s", id, c.Status, c.OwnerPlayerID, p.ID)
			}
			if c.Type != domain.CardTrend {
				t.Errorf("card %s is %s in a trend round", id, c.Type)
			}
		}
	}
	if len(seen) != 3*2 {
		t.Errorf("dealt %d cards total; want 6", len(seen))
	}

	// cards never dealt stay in the pool
	for _, c := range g.Cards {
		if c.Type == domain.CardTrend && seen[c.ID] == "" && c.Status != domain.CardAvailable {
			t.Errorf("undealt card %s has status %s", c.ID, c.Status)
		}
	}
}

func TestSelectCardValidation(t *testing.T) {
	g := draftGame(t, 2)
	p := g.ConnectedGuests()[0]

	// not in the lobby
	lobby := smallGame(t, 2)
	if err := SelectCard(lobby, lobby.Players[1].ID, "t-00", true); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("err = %v; want ErrWrongPhase", err)
	}

	// card must be in the player's own hand
	other := g.ConnectedGuests()[1].Hand[0]
	if err := SelectCard(g, p.ID, other, true); !errors.Is(err, ErrCardNotInHand) {
		t.Fatalf("err = %v; want ErrCardNotInHand", err)
	}

	if err := SelectCard(g, p.ID, p.Hand[0], true); err != nil {
		t.Fatalf("SelectCard: %v", err)
	}
	// the round allows a single trend pick; a second one is over the limit
	if err := SelectCard(g, p.ID, p.Hand[1], true); !errors.Is(err, ErrPickLimitExceeded) {
		t.Fatalf("err = %v; want ErrPickLimitExceeded", err)
	}
	// re-selecting the same card is a no-op, not a limit violation
	if err := SelectCard(g, p.ID, p.Hand[0], true); err != nil {
		t.Fatalf("duplicate select: %v", err)
	}
	if len(p.DraftedTrends) != 1 {
		t.Fatalf("picks = %v; want exactly one", p.DraftedTrends)
	}

	if err := SelectCard(g, "nope", p.Hand[0], true); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("err = %v; want ErrPlayerNotFound", err)
	}
}

func TestSelectCardDeselectIdempotent(t *testing.T) {
	g := draftGame(t, 1)
	p := g.ConnectedGuests()[0]

	if err := SelectCard(g, p.ID, p.Hand[0], true); err != nil {
		t.Fatalf("SelectCard: %v", err)
	}
	if err := SelectCard(g, p.ID, p.Hand[0], false); err != nil {
		t.Fatalf("deselect: %v", err)
	}
	if len(p.DraftedTrends) != 0 {
		t.Fatalf("picks = %v; want empty", p.DraftedTrends)
	}
	// deselecting again, or deselecting a card never picked, still succeeds
	if err := SelectCard(g, p.ID, p.Hand[0], false); err != nil {
		t.Fatalf("repeat deselect: %v", err)
	}
	if err := SelectCard(g, p.ID, "never-picked", false); err != nil {
		t.Fatalf("deselect unknown: %v", err)
	}

	// swap: after deselecting, a different card fits under the limit
	if err := SelectCard(g, p.ID, p.Hand[1], true); err != nil {
		t.Fatalf("swap select: %v", err)
	}
}

func TestLockPicks(t *testing.T) {
	g := draftGame(t, 2)
	p := g.ConnectedGuests()[0]

	if err := LockPicks(g, p.ID); !errors.Is(err, ErrPicksIncomplete) {
		t.Fatalf("err = %v; want ErrPicksIncomplete", err)
	}

	if err := SelectCard(g, p.ID, p.Hand[0], true); err != nil {
		t.Fatalf("SelectCard: %v", err)
	}
	if err := LockPicks(g, p.ID); err != nil {
		t.Fatalf("LockPicks: %v", err)
	}

	if !p.HasLockedPicks {
		t.Errorf("lock flag not set")
	}
	c := g.Card(p.Hand[0])
	if c.Status != domain.CardDrafted || c.OwnerPlayerID != p.ID {
		t.Errorf("locked card status=%s owner=%s; want drafted owned by %s", c.Status, c.OwnerPlayerID, p.ID)
	}
	// the unpicked card stays in hand, not drafted
	if g.Card(p.Hand[1]).Status != domain.CardInHand {
		t.Errorf("unpicked card marked %s", g.Card(p.Hand[1]).Status)
	}
}

func TestLockPicksWrongPhase(t *testing.T) {
	g := smallGame(t, 1)
	if err := LockPicks(g, g.Players[1].ID); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("err = %v; want ErrWrongPhase", err)
	}
}

func TestAllPlayersLocked(t *testing.T) {
	g := draftGame(t, 3)

	if AllPlayersLocked(g) {
		t.Fatalf("nobody locked yet")
	}

	guests := g.ConnectedGuests()
	for _, p := range guests[:2] {
		if err := SelectCard(g, p.ID, p.Hand[0], true); err != nil {
			t.Fatalf("SelectCard: %v", err)
		}
		if err := LockPicks(g, p.ID); err != nil {
			t.Fatalf("LockPicks: %v", err)
		}
	}
	if AllPlayersLocked(g) {
		t.Fatalf("one unlocked guest should block")
	}

	// a disconnected straggler no longer counts
	if err := RemovePlayer(g, guests[2].ID); err != nil {
		t.Fatalf("RemovePlayer: %v", err)
	}
	if !AllPlayersLocked(g) {
		t.Fatalf("disconnected player still blocking the round")
	}
}

func TestAllPlayersLockedVacuous(t *testing.T) {
	g := draftGame(t, 1)
	if err := RemovePlayer(g, g.Players[1].ID); err != nil {
		t.Fatalf("RemovePlayer: %v", err)
	}
	if !AllPlayersLocked(g) {
		t.Fatalf("no connected guests; want vacuously locked")
	}
}
