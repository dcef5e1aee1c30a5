package schema

import "time"

// TeamDifficulty is the aggregated fixture difficulty for one team over the
// lookahead window. Lower AvgDifficulty means an easier run. Fixtures counts
// how many real fixtures fed the aggregate; zero means AvgDifficulty holds
// the sentinel value, not a measurement.
type TeamDifficulty struct {
	TeamID        int     `json:"team_id"`
	AvgDifficulty float64 `json:"avg_difficulty"`
	Fixtures      int     `json:"fixtures"`
}

// HasFixtures reports whether any real fixture fed the aggregate.
func (d TeamDifficulty) HasFixtures() bool {
	return d.Fixtures > 0
}

// PlayerScore is a player together with their computed composite score
// (0-100) and the per-signal weighted contributions behind it.
type PlayerScore struct {
	Player
	AvgDifficulty float64               `json:"avg_difficulty"`
	Score         float64               `json:"score"`
	Breakdown     map[SignalKey]float64 `json:"breakdown,omitempty"`
}

// TransferFlag marks an owned player as a transfer-out candidate.
type TransferFlag struct {
	PlayerScore
	Reason string `json:"reason"`
}

// ChipRecommendation suggests a gameweek for one chip. Computed fresh per
// run and never persisted by the engine.
type ChipRecommendation struct {
	Chip     ChipType `json:"chip"`
	Gameweek int      `json:"gameweek"`
	Score    float64  `json:"score"`
	Reason   string   `json:"reason"`
}

// Advice is the full output contract of one engine run. Exporters, the
// terminal renderer and the mailer all consume this read-only.
type Advice struct {
	GeneratedAt  time.Time            `json:"generated_at"`
	NextGameweek int                  `json:"next_gameweek"`
	Lookahead    int                  `json:"lookahead"`
	Picks        []PlayerScore        `json:"picks"`
	TransfersOut []TransferFlag       `json:"transfers_out"`
	Chips        []ChipRecommendation `json:"chips"`
}
