package core

import (
	"fmt"

	"fplassist/schema"
)

// fixtureCalendar indexes fixtures by team and gameweek for the chip
// heuristics. When a team has more than one fixture in a gameweek (a double
// gameweek), the easier one is kept: chips care about the best single
// opportunity that week.
type fixtureCalendar struct {
	byTeamGW map[int]map[int]schema.Fixture
	first    int // first gameweek of the window
	last     int // last gameweek of the window, inclusive
}

func buildCalendar(teams map[int]schema.Team, firstGW int, lookahead int) fixtureCalendar {
	cal := fixtureCalendar{
		byTeamGW: make(map[int]map[int]schema.Fixture, len(teams)),
		first:    firstGW,
		last:     firstGW + lookahead - 1,
	}
	for id, team := range teams {
		for _, f := range team.Fixtures {
			if f.Gameweek < cal.first || f.Gameweek > cal.last {
				continue
			}
			gwMap := cal.byTeamGW[id]
			if gwMap == nil {
				gwMap = make(map[int]schema.Fixture)
				cal.byTeamGW[id] = gwMap
			}
			if existing, ok := gwMap[f.Gameweek]; !ok || f.Difficulty < existing.Difficulty {
				gwMap[f.Gameweek] = f
			}
		}
	}
	return cal
}

// difficultyFor returns the difficulty a team faces in a gameweek, or the
// sentinel when the team has no fixture (a blank gameweek).
func (c fixtureCalendar) difficultyFor(teamID, gw int) (float64, bool) {
	if f, ok := c.byTeamGW[teamID][gw]; ok {
		return float64(f.Difficulty), true
	}
	return schema.SentinelDifficulty, false
}

// RecommendChips produces at most one recommendation per chip type over the
// lookahead window starting at the snapshot's next gameweek. Each heuristic
// is independent and degrades by omitting its recommendation when the window
// holds too little fixture data to judge. Ties between gameweeks resolve to
// the earliest.
func RecommendChips(snap schema.Snapshot, scored []schema.PlayerScore, lookahead int) []schema.ChipRecommendation {
	cal := buildCalendar(snap.Teams, snap.NextGameweek, lookahead)
	squad := ownedScores(scored)

	var recs []schema.ChipRecommendation
	if r, ok := recommendBenchBoost(cal, squad); ok {
		recs = append(recs, r)
	}
	if r, ok := recommendTripleCaptain(cal, squad); ok {
		recs = append(recs, r)
	}
	if r, ok := recommendFreeHit(cal, snap, squad); ok {
		recs = append(recs, r)
	}
	if r, ok := recommendWildcard(snap, lookahead); ok {
		recs = append(recs, r)
	}
	return recs
}

func ownedScores(scored []schema.PlayerScore) []schema.PlayerScore {
	var squad []schema.PlayerScore
	for _, s := range scored {
		if s.Owned {
			squad = append(squad, s)
		}
	}
	return squad
}

// squadMeanDifficulty averages the difficulty the whole squad faces in one
// gameweek. Players whose team has no fixture contribute the sentinel, so a
// partially blank week is penalized rather than ignored. The second return
// counts squad players with a real fixture.
func squadMeanDifficulty(cal fixtureCalendar, squad []schema.PlayerScore, gw int) (float64, int) {
	if len(squad) == 0 {
		return 0, 0
	}
	var sum float64
	withFixture := 0
	for _, s := range squad {
		d, ok := cal.difficultyFor(s.TeamID, gw)
		if ok {
			withFixture++
		}
		sum += d
	}
	return sum / float64(len(squad)), withFixture
}

// recommendBenchBoost seeks the gameweek where all owned players, bench
// included, collectively face the easiest fixtures: every squad member's
// points count that week.
func recommendBenchBoost(cal fixtureCalendar, squad []schema.PlayerScore) (schema.ChipRecommendation, bool) {
	bestGW, bestMean := 0, schema.SentinelDifficulty+1
	for gw := cal.first; gw <= cal.last; gw++ {
		mean, withFixture := squadMeanDifficulty(cal, squad, gw)
		if withFixture == 0 {
			continue
		}
		if mean < bestMean {
			bestGW, bestMean = gw, mean
		}
	}
	if bestGW == 0 {
		return schema.ChipRecommendation{}, false
	}
	return schema.ChipRecommendation{
		Chip:     schema.BenchBoost,
		Gameweek: bestGW,
		Score:    schema.SentinelDifficulty - bestMean,
		Reason:   fmt.Sprintf("squad-wide mean difficulty %.2f", bestMean),
	}, true
}

// recommendTripleCaptain is spike-seeking: it pairs the single
// highest-scoring owned player with their single easiest fixture in the
// window.
func recommendTripleCaptain(cal fixtureCalendar, squad []schema.PlayerScore) (schema.ChipRecommendation, bool) {
	if len(squad) == 0 {
		return schema.ChipRecommendation{}, false
	}
	captain := squad[0]
	for _, s := range squad[1:] {
		if s.Score > captain.Score || (s.Score == captain.Score && s.ID < captain.ID) {
			captain = s
		}
	}

	bestGW, bestDiff := 0, schema.SentinelDifficulty
	for gw := cal.first; gw <= cal.last; gw++ {
		d, ok := cal.difficultyFor(captain.TeamID, gw)
		if !ok {
			continue
		}
		if d < bestDiff {
			bestGW, bestDiff = gw, d
		}
	}
	if bestGW == 0 {
		return schema.ChipRecommendation{}, false
	}
	return schema.ChipRecommendation{
		Chip:     schema.TripleCaptain,
		Gameweek: bestGW,
		Score:    schema.SentinelDifficulty - bestDiff,
		Reason:   fmt.Sprintf("%s faces difficulty %.0f", captain.Name, bestDiff),
	}, true
}

// poolMeanDifficulty averages the difficulty across every team with a real
// fixture in the gameweek. Teams on a blank are excluded here: the pool
// average describes what is available to switch into.
func poolMeanDifficulty(cal fixtureCalendar, teams map[int]schema.Team, gw int) (float64, int) {
	var sum float64
	n := 0
	for id := range teams {
		if d, ok := cal.difficultyFor(id, gw); ok {
			sum += d
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

// recommendFreeHit looks for the gameweek where the current squad's fixtures
// are disproportionately worse than the wider pool's: the week a one-week
// squad swap buys the most.
func recommendFreeHit(cal fixtureCalendar, snap schema.Snapshot, squad []schema.PlayerScore) (schema.ChipRecommendation, bool) {
	if len(squad) == 0 {
		return schema.ChipRecommendation{}, false
	}
	bestGW := 0
	bestGap := 0.0
	for gw := cal.first; gw <= cal.last; gw++ {
		poolMean, teams := poolMeanDifficulty(cal, snap.Teams, gw)
		if teams == 0 {
			continue
		}
		squadMean, _ := squadMeanDifficulty(cal, squad, gw)
		gap := squadMean - poolMean
		if bestGW == 0 || gap > bestGap {
			bestGW, bestGap = gw, gap
		}
	}
	if bestGW == 0 {
		return schema.ChipRecommendation{}, false
	}
	return schema.ChipRecommendation{
		Chip:     schema.FreeHit,
		Gameweek: bestGW,
		Score:    bestGap,
		Reason:   fmt.Sprintf("squad trails the pool by %.2f difficulty", bestGap),
	}, true
}

// recommendWildcard favors the gameweek that opens the easiest pool-wide
// run of `lookahead` fixtures: the point to restructure ahead of a
// favorable stretch.
func recommendWildcard(snap schema.Snapshot, lookahead int) (schema.ChipRecommendation, bool) {
	bestGW := 0
	bestMean := 0.0
	for gw := snap.NextGameweek; gw < snap.NextGameweek+lookahead; gw++ {
		var sum float64
		n := 0
		for _, team := range snap.Teams {
			for _, f := range team.Fixtures {
				if f.Gameweek >= gw && f.Gameweek < gw+lookahead {
					sum += float64(f.Difficulty)
					n++
				}
			}
		}
		if n == 0 {
			continue
		}
		mean := sum / float64(n)
		if bestGW == 0 || mean < bestMean {
			bestGW, bestMean = gw, mean
		}
	}
	if bestGW == 0 {
		return schema.ChipRecommendation{}, false
	}
	return schema.ChipRecommendation{
		Chip:     schema.Wildcard,
		Gameweek: bestGW,
		Score:    schema.SentinelDifficulty - bestMean,
		Reason:   fmt.Sprintf("pool mean difficulty %.2f over the following run", bestMean),
	}, true
}
