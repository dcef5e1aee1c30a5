package core

import "fplassist/schema"

// AggregateDifficulty computes the mean FDR of a team's first `lookahead`
// fixtures in gameweek order. Teams with fewer scheduled fixtures are
// averaged over what exists; a team with none in range gets the sentinel
// difficulty so downstream scoring treats "no known fixtures" as strictly
// worse than any real run.
func AggregateDifficulty(team schema.Team, lookahead int) schema.TeamDifficulty {
	if lookahead > len(team.Fixtures) {
		lookahead = len(team.Fixtures)
	}
	if lookahead <= 0 {
		return schema.TeamDifficulty{
			TeamID:        team.ID,
			AvgDifficulty: schema.SentinelDifficulty,
		}
	}

	var sum int
	for _, f := range team.Fixtures[:lookahead] {
		sum += f.Difficulty
	}
	return schema.TeamDifficulty{
		TeamID:        team.ID,
		AvgDifficulty: float64(sum) / float64(lookahead),
		Fixtures:      lookahead,
	}
}

// AggregateAllTeams runs the fixture difficulty aggregation for every team
// in the snapshot. Scoring depends on this completing first.
func AggregateAllTeams(teams map[int]schema.Team, lookahead int) map[int]schema.TeamDifficulty {
	out := make(map[int]schema.TeamDifficulty, len(teams))
	for id, team := range teams {
		out[id] = AggregateDifficulty(team, lookahead)
	}
	return out
}
