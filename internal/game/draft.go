package game

import (
	"math/rand"

	"signaldraft/internal/domain"
)

// dealCards hands out fresh cards for a draft round. Available cards of the
// round's type are shuffled and split into contiguous chunks, one per
// non-host player in join order. The host gets an empty hand and is
// force-locked since they never draft.
func dealCards(g *domain.Game, cardType domain.CardType) {
	var available []*domain.Card
	for i := range g.Cards {
		c := &g.Cards[i]
		if c.Type == cardType && c.Status == domain.CardAvailable {
			available = append(available, c)
		}
	}

	rand.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	perPlayer := g.Settings.DealtPerPlayer(cardType)

	next := 0
	for i := range g.Players {
		p := &g.Players[i]
		if p.IsHost {
			p.Hand = []string{}
			p.HasLockedPicks = true
			continue
		}

		hand := []string{}
		for n := 0; n < perPlayer && next < len(available); n++ {
			card := available[next]
			card.Status = domain.CardInHand
			card.OwnerPlayerID = p.ID
			hand = append(hand, card.ID)
			next++
		}
		p.Hand = hand
	}
}

// draftedFor returns the drafted-card slice for the round's card type.
func draftedFor(p *domain.Player, t domain.CardType) *[]string {
	switch t {
	case domain.CardTrend:
		return &p.DraftedTrends
	case domain.CardProblem:
		return &p.DraftedProblems
	case domain.CardTech:
		return &p.DraftedTech
	}
	return nil
}

// SelectCard toggles a card's membership in the player's current-round
// drafted set. Adding requires the card in hand and room under the round's
// pick limit; removing is always permitted and idempotent. Card status is
// untouched until LockPicks.
func SelectCard(g *domain.Game, playerID, cardID string, selected bool) error {
	cardType, ok := g.Phase.DraftType()
	if !ok {
		return ErrWrongPhase
	}

	p := g.Player(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}

	picks := draftedFor(p, cardType)

	if !selected {
		out := (*picks)[:0]
		for _, id := range *picks {
			if id != cardID {
				out = append(out, id)
			}
		}
		*picks = out
		return nil
	}

	if len(*picks) >= g.Settings.PicksRequired(cardType) {
		return ErrPickLimitExceeded
	}
	inHand := false
	for _, id := range p.Hand {
		if id == cardID {
			inHand = true
			break
		}
	}
	if !inHand {
		return ErrCardNotInHand
	}
	for _, id := range *picks {
		if id == cardID {
			return nil // already selected
		}
	}

	*picks = append(*picks, cardID)
	return nil
}

// LockPicks marks the player's current-round selections as drafted and sets
// the lock flag. Locking with fewer than the required picks is rejected;
// clients cannot be trusted to disable the lock button.
func LockPicks(g *domain.Game, playerID string) error {
	cardType, ok := g.Phase.DraftType()
	if !ok {
		return ErrWrongPhase
	}

	p := g.Player(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}

	picks := *draftedFor(p, cardType)
	if len(picks) < g.Settings.PicksRequired(cardType) {
		return ErrPicksIncomplete
	}

	for _, id := range picks {
		if c := g.Card(id); c != nil {
			c.Status = domain.CardDrafted
			c.OwnerPlayerID = playerID
		}
	}
	p.HasLockedPicks = true
	return nil
}

// AllPlayersLocked reports whether every connected non-host player has
// locked. Disconnected players never block the round; vacuously true with
// no connected guests.
func AllPlayersLocked(g *domain.Game) bool {
	for _, p := range g.ConnectedGuests() {
		if !p.HasLockedPicks {
			return false
		}
	}
	return true
}
