package core

import (
	"testing"

	"fplassist/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredPlayer(id int, score float64, owned bool, status string) schema.PlayerScore {
	return schema.PlayerScore{
		Player: schema.Player{ID: id, Status: status, Owned: owned},
		Score:  score,
	}
}

// TestRecommendPicks covers ranking, the owned/unavailable filter stage and
// the limit cut.
func TestRecommendPicks(t *testing.T) {
	scored := []schema.PlayerScore{
		scoredPlayer(1, 95, false, "a"),
		scoredPlayer(2, 90, true, "a"),  // owned, skipped
		scoredPlayer(3, 85, false, "i"), // injured, skipped
		scoredPlayer(4, 80, false, "a"),
		scoredPlayer(5, 75, false, "a"),
	}

	t.Run("filter stage precedes the cut", func(t *testing.T) {
		picks := RecommendPicks(scored, 2)
		require.Len(t, picks, 2)
		assert.Equal(t, 1, picks[0].ID)
		assert.Equal(t, 4, picks[1].ID, "skipped players must not eat into the limit")
	})

	t.Run("limit exceeds pool", func(t *testing.T) {
		picks := RecommendPicks(scored, 10)
		assert.Len(t, picks, 3)
	})

	t.Run("empty pool yields empty slice", func(t *testing.T) {
		owned := []schema.PlayerScore{scoredPlayer(1, 95, true, "a")}
		assert.Empty(t, RecommendPicks(owned, 5))
		assert.Empty(t, RecommendPicks(nil, 5))
	})
}

// TestFlagTransfersOut covers the bottom-K policy, worst-first ordering and
// the unavailable override.
func TestFlagTransfersOut(t *testing.T) {
	t.Run("bottom K worst first", func(t *testing.T) {
		scored := []schema.PlayerScore{
			scoredPlayer(1, 90, true, "a"),
			scoredPlayer(2, 10, true, "a"),
			scoredPlayer(3, 50, true, "a"),
			scoredPlayer(4, 30, true, "a"),
			scoredPlayer(5, 99, false, "a"), // pool player, ignored
		}
		flags := FlagTransfersOut(scored, 2)
		require.Len(t, flags, 2)
		assert.Equal(t, 2, flags[0].ID)
		assert.Equal(t, 4, flags[1].ID)
	})

	t.Run("unavailable always flagged", func(t *testing.T) {
		scored := []schema.PlayerScore{
			scoredPlayer(1, 95, true, "i"), // top score but injured
			scoredPlayer(2, 20, true, "a"),
			scoredPlayer(3, 40, true, "a"),
		}
		flags := FlagTransfersOut(scored, 1)
		require.Len(t, flags, 2)
		assert.Equal(t, 2, flags[0].ID, "worst score leads")
		assert.Equal(t, 1, flags[1].ID, "injured player flagged regardless of score")
		assert.Contains(t, flags[1].Reason, "unavailable")
	})

	t.Run("incomplete squad", func(t *testing.T) {
		scored := []schema.PlayerScore{scoredPlayer(1, 40, true, "a")}
		flags := FlagTransfersOut(scored, 3)
		assert.Len(t, flags, 1)
	})

	t.Run("empty squad", func(t *testing.T) {
		assert.Empty(t, FlagTransfersOut(nil, 3))
	})
}

// TestWeakOwnedPlayerIsFlagged reproduces the canonical scenario: an owned
// player with form 0.5, 10 points and a [5,5,5] run must land in the
// bottom-3 flags of a 15-player squad of mid-to-high scorers.
func TestWeakOwnedPlayerIsFlagged(t *testing.T) {
	teams := map[int]schema.Team{
		1: teamWithDifficulties(1, 10, 5, 5, 5),
		2: teamWithDifficulties(2, 10, 2, 3, 2),
	}
	players := []schema.Player{
		{ID: 1, Name: "Passenger", TeamID: 1, Form: 0.5, TotalPoints: 10, Status: "a", Owned: true},
	}
	for i := 2; i <= 15; i++ {
		players = append(players, schema.Player{
			ID: i, TeamID: 2, Form: 5.0 + float64(i%4), TotalPoints: 80 + i, Status: "a", Owned: true,
		})
	}

	scored := ScorePlayers(players, AggregateAllTeams(teams, 3), schema.DefaultWeights())
	flags := FlagTransfersOut(scored, 3)

	require.Len(t, flags, 3)
	assert.Equal(t, 1, flags[0].ID, "the passenger must be the worst flag")
}

// TestPicksAndFlagsDisjoint: under identical inputs, no player may be both
// recommended in and flagged out.
func TestPicksAndFlagsDisjoint(t *testing.T) {
	teams := map[int]schema.Team{
		1: teamWithDifficulties(1, 10, 1, 2, 1),
		2: teamWithDifficulties(2, 10, 4, 4, 5),
	}
	var players []schema.Player
	for i := 1; i <= 30; i++ {
		players = append(players, schema.Player{
			ID:          i,
			TeamID:      1 + i%2,
			Form:        float64(i%10) + 0.5,
			TotalPoints: i * 7,
			Status:      "a",
			Owned:       i <= 15,
		})
	}

	scored := ScorePlayers(players, AggregateAllTeams(teams, 3), schema.DefaultWeights())
	picks := RecommendPicks(scored, 10)
	flags := FlagTransfersOut(scored, 5)

	picked := make(map[int]bool)
	for _, p := range picks {
		picked[p.ID] = true
	}
	for _, f := range flags {
		assert.False(t, picked[f.ID], "player %d both picked and flagged", f.ID)
	}
}
