package game

import (
	"math"
	"testing"

	"signaldraft/internal/domain"
)

func score(player string, pain, market, fit int, invest bool) domain.ConceptScore {
	return domain.ConceptScore{
		PlayerID: player, Pain: pain, MarketSize: market, FounderFit: fit, WouldInvest: invest,
	}
}

func TestAggregate(t *testing.T) {
	c := &domain.StartupConcept{Scores: []domain.ConceptScore{
		score("alice", 5, 4, 2, true),
		score("bob", 4, 3, 3, false),
		score("carol", 3, 3, 4, false),
	}}

	agg := Aggregate(c)
	if agg == nil {
		t.Fatal("Aggregate returned nil for a scored concept")
	}

	if agg.AvgPain != 4.0 {
		t.Errorf("avgPain = %v; want 4.0", agg.AvgPain)
	}
	if agg.AvgMarketSize != round1(10.0/3) {
		t.Errorf("avgMarketSize = %v; want %v", agg.AvgMarketSize, round1(10.0/3))
	}
	if agg.AvgFounderFit != 3.0 {
		t.Errorf("avgFounderFit = %v; want 3.0", agg.AvgFounderFit)
	}
	if agg.InvestYesRate != 0.33 {
		t.Errorf("investYesRate = %v; want 0.33", agg.InvestYesRate)
	}
	// the total averages the raw sums before rounding
	want := round1((12.0 + 10.0 + 9.0) / 3)
	if agg.TotalScore != want {
		t.Errorf("totalScore = %v; want %v", agg.TotalScore, want)
	}
	if agg.TotalScore < 3 || agg.TotalScore > 15 {
		t.Errorf("totalScore %v out of the 3-15 range", agg.TotalScore)
	}
}

func TestAggregateNoScores(t *testing.T) {
	if agg := Aggregate(&domain.StartupConcept{}); agg != nil {
		t.Fatalf("Aggregate = %+v; want nil", agg)
	}
}

func TestCalculateResultsSuperlatives(t *testing.T) {
	g := smallGame(t, 2)
	g.Phase = domain.PhaseSummary
	g.Concepts = []domain.StartupConcept{
		{ID: "x", OwnerPlayerID: "p1", Name: "X", Scores: []domain.ConceptScore{
			score("alice", 5, 5, 1, false),
			score("bob", 5, 5, 1, false),
		}},
		{ID: "y", OwnerPlayerID: "p2", Name: "Y", Scores: []domain.ConceptScore{
			score("alice", 1, 1, 5, false),
			score("bob", 1, 1, 5, false),
		}},
	}

	CalculateResults(g)

	x, y := g.Concept("x"), g.Concept("y")
	if x.AggregatedScore.TotalScore != 11.0 {
		t.Errorf("X totalScore = %v; want 11.0", x.AggregatedScore.TotalScore)
	}
	if y.AggregatedScore.TotalScore != 7.0 {
		t.Errorf("Y totalScore = %v; want 7.0", y.AggregatedScore.TotalScore)
	}

	wantX := []string{domain.SuperlativeSeed, domain.SuperlativeOutrageous}
	if !sameStrings(x.Superlatives, wantX) {
		t.Errorf("X superlatives = %v; want %v", x.Superlatives, wantX)
	}
	wantY := []string{domain.SuperlativeFounderFit}
	if !sameStrings(y.Superlatives, wantY) {
		t.Errorf("Y superlatives = %v; want %v", y.Superlatives, wantY)
	}
}

func sameStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestCalculateResultsSeedTiebreak(t *testing.T) {
	g := smallGame(t, 2)
	g.Phase = domain.PhaseSummary
	// same pain+market sum; B has the higher invest rate and takes Seed
	g.Concepts = []domain.StartupConcept{
		{ID: "a", Name: "A", Scores: []domain.ConceptScore{
			score("alice", 4, 4, 2, false),
			score("bob", 4, 4, 2, false),
		}},
		{ID: "b", Name: "B", Scores: []domain.ConceptScore{
			score("alice", 4, 4, 2, true),
			score("bob", 4, 4, 2, false),
		}},
	}

	CalculateResults(g)

	if !sameStrings(g.Concept("b").Superlatives, []string{domain.SuperlativeSeed}) {
		t.Errorf("B superlatives = %v; want Seed via invest tiebreak", g.Concept("b").Superlatives)
	}
	for _, s := range g.Concept("a").Superlatives {
		if s == domain.SuperlativeSeed {
			t.Errorf("A won Seed despite the lower invest rate")
		}
	}
}

func TestCalculateResultsSkipsUnscored(t *testing.T) {
	g := smallGame(t, 2)
	g.Phase = domain.PhaseSummary
	g.Concepts = []domain.StartupConcept{
		{ID: "scored", Name: "Scored", Scores: []domain.ConceptScore{score("alice", 3, 3, 3, true)}},
		{ID: "silent", Name: "Silent"},
	}

	CalculateResults(g)

	if g.Concept("silent").AggregatedScore != nil {
		t.Errorf("unscored concept got an aggregate")
	}
	if len(g.Concept("silent").Superlatives) != 0 {
		t.Errorf("unscored concept won %v", g.Concept("silent").Superlatives)
	}
	// with a single scored concept it sweeps every award
	if len(g.Concept("scored").Superlatives) != 3 {
		t.Errorf("scored concept superlatives = %v; want all three", g.Concept("scored").Superlatives)
	}
}

func TestCalculateResultsIdempotent(t *testing.T) {
	g := smallGame(t, 2)
	g.Phase = domain.PhaseSummary
	g.Concepts = []domain.StartupConcept{
		{ID: "x", Name: "X", Scores: []domain.ConceptScore{score("alice", 5, 5, 1, false)}},
		{ID: "y", Name: "Y", Scores: []domain.ConceptScore{score("alice", 1, 1, 5, false)}},
	}

	CalculateResults(g)
	first := append([]string(nil), g.Concept("x").Superlatives...)
	total := g.Concept("x").AggregatedScore.TotalScore

	CalculateResults(g)
	if !sameStrings(g.Concept("x").Superlatives, first) {
		t.Errorf("superlatives changed on recompute: %v -> %v", first, g.Concept("x").Superlatives)
	}
	if g.Concept("x").AggregatedScore.TotalScore != total {
		t.Errorf("totalScore drifted on recompute")
	}
}

func TestRankedConcepts(t *testing.T) {
	g := smallGame(t, 2)
	g.Concepts = []domain.StartupConcept{
		{ID: "low", Scores: []domain.ConceptScore{score("a", 1, 1, 1, false)}},
		{ID: "unscored"},
		{ID: "high", Scores: []domain.ConceptScore{score("a", 5, 5, 5, true)}},
		{ID: "mid", Scores: []domain.ConceptScore{score("a", 3, 3, 3, false)}},
	}
	CalculateResults(g)

	ranked := RankedConcepts(g)
	if len(ranked) != 3 {
		t.Fatalf("ranked %d concepts; want 3 (unscored excluded)", len(ranked))
	}
	wantOrder := []string{"high", "mid", "low"}
	for i, id := range wantOrder {
		if ranked[i].ID != id {
			t.Errorf("ranked[%d] = %s; want %s", i, ranked[i].ID, id)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].AggregatedScore.TotalScore > ranked[i-1].AggregatedScore.TotalScore {
			t.Errorf("ranking not descending at %d", i)
		}
	}
}

func TestRoundingHelpers(t *testing.T) {
	if got := round1(3.14159); got != 3.1 {
		t.Errorf("round1 = %v; want 3.1", got)
	}
	if got := round1(3.15); got != 3.2 {
		t.Errorf("round1 = %v; want 3.2", got)
	}
	if got := round2(1.0 / 3); math.Abs(got-0.33) > 1e-9 {
		t.Errorf("round2 = %v; want 0.33", got)
	}
}
