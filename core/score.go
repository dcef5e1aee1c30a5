package core

import (
	"math"
	"sort"

	"fplassist/schema"
)

// signalRange tracks the observed min/max of one raw signal across the
// scored population, for min-max normalization.
type signalRange struct {
	min, max float64
}

func newSignalRange() signalRange {
	return signalRange{min: math.Inf(1), max: math.Inf(-1)}
}

func (r *signalRange) observe(v float64) {
	r.min = math.Min(r.min, v)
	r.max = math.Max(r.max, v)
}

// normalize maps v into [0,1] within the observed range. A degenerate range
// (single player, or all values equal) maps to 0 so no signal can dominate
// on noise alone.
func (r signalRange) normalize(v float64) float64 {
	if math.IsInf(r.min, 1) || math.IsInf(r.max, -1) || r.min == r.max {
		return 0
	}
	return (v - r.min) / (r.max - r.min)
}

// fixtureEase inverts an aggregated difficulty into an ease signal where
// higher is better. The sentinel difficulty maps to 0, a full window of
// max-FDR fixtures maps above it, and an all-1s run maps highest.
func fixtureEase(avgDifficulty float64) float64 {
	return schema.SentinelDifficulty - avgDifficulty
}

// ScorePlayers computes the composite score for every player against the
// aggregated team difficulties. Each signal (form, fixture ease, season
// points) is min-max normalized over the whole population before weighting,
// so points totals cannot dominate purely on scale. The result is ordered by
// score descending with player id as the stable tie-break, forming a total
// order suitable for ranking.
//
// Scoring is deterministic: the same snapshot and weights always produce the
// same scores and the same order.
func ScorePlayers(players []schema.Player, difficulty map[int]schema.TeamDifficulty, weights map[schema.SignalKey]float64) []schema.PlayerScore {
	formRange := newSignalRange()
	easeRange := newSignalRange()
	pointsRange := newSignalRange()

	scored := make([]schema.PlayerScore, 0, len(players))
	for _, p := range players {
		diff, ok := difficulty[p.TeamID]
		if !ok {
			diff = schema.TeamDifficulty{TeamID: p.TeamID, AvgDifficulty: schema.SentinelDifficulty}
		}
		formRange.observe(p.Form)
		easeRange.observe(fixtureEase(diff.AvgDifficulty))
		pointsRange.observe(float64(p.TotalPoints))
		scored = append(scored, schema.PlayerScore{
			Player:        p,
			AvgDifficulty: diff.AvgDifficulty,
		})
	}

	for i := range scored {
		s := &scored[i]
		breakdown := map[schema.SignalKey]float64{
			schema.SignalForm:     weights[schema.SignalForm] * formRange.normalize(s.Form),
			schema.SignalFixtures: weights[schema.SignalFixtures] * easeRange.normalize(fixtureEase(s.AvgDifficulty)),
			schema.SignalPoints:   weights[schema.SignalPoints] * pointsRange.normalize(float64(s.TotalPoints)),
		}
		var raw float64
		for _, v := range breakdown {
			raw += v
		}
		s.Score = raw * 100.0
		s.Breakdown = make(map[schema.SignalKey]float64, len(breakdown))
		for k, v := range breakdown {
			s.Breakdown[k] = v * 100.0
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].ID < scored[j].ID
	})
	return scored
}
