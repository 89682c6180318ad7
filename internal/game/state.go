package game

import "signaldraft/internal/domain"

// The lifecycle is a strict linear chain; no skipping, no going back.
var validTransitions = map[domain.Phase]domain.Phase{
	domain.PhaseLobby:          domain.PhaseTrendDraft,
	domain.PhaseTrendDraft:     domain.PhaseProblemDraft,
	domain.PhaseProblemDraft:   domain.PhaseTechAssetDraft,
	domain.PhaseTechAssetDraft: domain.PhaseBuildConcepts,
	domain.PhaseBuildConcepts:  domain.PhaseScoring,
	domain.PhaseScoring:        domain.PhaseSummary,
	domain.PhaseSummary:        domain.PhaseEnded,
}

// CanTransition reports whether moving from one phase to another is allowed.
func CanTransition(from, to domain.Phase) bool {
	next, ok := validTransitions[from]
	return ok && next == to
}

// NextPhase returns the phase that follows the given one, if any.
func NextPhase(from domain.Phase) (domain.Phase, bool) {
	next, ok := validTransitions[from]
	return next, ok
}

// Transition moves the game to the target phase and runs phase-entry side
// effects. The game is left untouched on error. Entering SUMMARY does not
// compute results; the caller invokes CalculateResults separately.
func Transition(g *domain.Game, target domain.Phase) error {
	if !CanTransition(g.Phase, target) {
		return ErrInvalidTransition
	}

	g.Phase = target

	switch {
	case target.IsDraft():
		for i := range g.Players {
			g.Players[i].HasLockedPicks = false
		}
		cardType, _ := target.DraftType()
		dealCards(g, cardType)
	case target == domain.PhaseBuildConcepts:
		for i := range g.Players {
			g.Players[i].HasLockedPicks = false
			g.Players[i].Hand = nil
		}
	case target == domain.PhaseScoring:
		g.ScoringComplete = nil
	}

	return nil
}
