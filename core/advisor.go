package core

import (
	"fmt"
	"sort"

	"fplassist/schema"
)

// RecommendPicks returns the top transfer-in candidates from an already
// scored population. Owned and unavailable players are filtered out before
// the cut so the caller always gets up to `limit` genuine candidates, never
// a list shortened by post-hoc removal. An empty eligible pool yields an
// empty slice, not an error.
func RecommendPicks(scored []schema.PlayerScore, limit int) []schema.PlayerScore {
	picks := make([]schema.PlayerScore, 0, limit)
	for _, s := range scored {
		if s.Owned || !s.Available() {
			continue
		}
		picks = append(picks, s)
		if len(picks) == limit {
			break
		}
	}
	return picks
}

// FlagTransfersOut returns the weakest owned players, worst first.
//
// Policy: bottom-K by composite score (K = outCount), using the same scorer
// as RecommendPicks so an out-flag and a pick can never point at the same
// player under identical inputs. Unavailable owned players are additionally
// always flagged, regardless of score, since they cannot return points at
// all. Squads smaller than 15 are handled as-is.
func FlagTransfersOut(scored []schema.PlayerScore, outCount int) []schema.TransferFlag {
	var squad []schema.PlayerScore
	for _, s := range scored {
		if s.Owned {
			squad = append(squad, s)
		}
	}
	sort.Slice(squad, func(i, j int) bool {
		if squad[i].Score != squad[j].Score {
			return squad[i].Score < squad[j].Score
		}
		return squad[i].ID < squad[j].ID
	})

	var flags []schema.TransferFlag
	bottomK := 0
	for _, s := range squad {
		switch {
		case !s.Available():
			flags = append(flags, schema.TransferFlag{
				PlayerScore: s,
				Reason:      fmt.Sprintf("flagged unavailable (status %q)", s.Status),
			})
		case bottomK < outCount:
			flags = append(flags, schema.TransferFlag{
				PlayerScore: s,
				Reason:      "bottom of squad by composite score",
			})
			bottomK++
		}
	}
	return flags
}
