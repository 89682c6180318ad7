package game

import (
	"math"
	"sort"

	"signaldraft/internal/domain"
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Aggregate computes the cached score projection for one concept, or nil if
// it has no scores yet.
func Aggregate(c *domain.StartupConcept) *domain.AggregatedScore {
	if len(c.Scores) == 0 {
		return nil
	}

	var pain, market, fit, invest float64
	for _, s := range c.Scores {
		pain += float64(s.Pain)
		market += float64(s.MarketSize)
		fit += float64(s.FounderFit)
		if s.WouldInvest {
			invest++
		}
	}
	n := float64(len(c.Scores))

	return &domain.AggregatedScore{
		AvgPain:       round1(pain / n),
		AvgMarketSize: round1(market / n),
		AvgFounderFit: round1(fit / n),
		InvestYesRate: round2(invest / n),
		TotalScore:    round1(pain/n + market/n + fit/n),
	}
}

// CalculateResults recomputes every concept's aggregated score and assigns
// superlatives across the scored set. Idempotent: the output depends only on
// the recorded scores. Concepts without scores keep no aggregate and win
// nothing.
func CalculateResults(g *domain.Game) {
	var scored []*domain.StartupConcept
	for i := range g.Concepts {
		c := &g.Concepts[i]
		c.AggregatedScore = Aggregate(c)
		c.Superlatives = []string{}
		if c.AggregatedScore != nil {
			scored = append(scored, c)
		}
	}
	if len(scored) == 0 {
		return
	}

	// Each award sorts independently; ties fall back to submission order,
	// so the sorts must be stable.
	seed := append([]*domain.StartupConcept(nil), scored...)
	sort.SliceStable(seed, func(i, j int) bool {
		a, b := seed[i].AggregatedScore, seed[j].AggregatedScore
		as, bs := a.AvgPain+a.AvgMarketSize, b.AvgPain+b.AvgMarketSize
		if as != bs {
			return as > bs
		}
		return a.InvestYesRate > b.InvestYesRate
	})

	fit := append([]*domain.StartupConcept(nil), scored...)
	sort.SliceStable(fit, func(i, j int) bool {
		return fit[i].AggregatedScore.AvgFounderFit > fit[j].AggregatedScore.AvgFounderFit
	})

	outrageous := append([]*domain.StartupConcept(nil), scored...)
	sort.SliceStable(outrageous, func(i, j int) bool {
		a, b := outrageous[i].AggregatedScore, outrageous[j].AggregatedScore
		return a.AvgPain+a.AvgMarketSize-a.AvgFounderFit > b.AvgPain+b.AvgMarketSize-b.AvgFounderFit
	})

	seed[0].Superlatives = append(seed[0].Superlatives, domain.SuperlativeSeed)
	fit[0].Superlatives = append(fit[0].Superlatives, domain.SuperlativeFounderFit)
	outrageous[0].Superlatives = append(outrageous[0].Superlatives, domain.SuperlativeOutrageous)
}

// RankedConcepts returns all scored concepts descending by total score.
// Unscored concepts are excluded entirely.
func RankedConcepts(g *domain.Game) []domain.StartupConcept {
	var out []domain.StartupConcept
	for i := range g.Concepts {
		if g.Concepts[i].AggregatedScore != nil {
			out = append(out, g.Concepts[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AggregatedScore.TotalScore > out[j].AggregatedScore.TotalScore
	})
	return out
}
