// Package schema has configs, models and shared constants for all parts of fplassist.
package schema

import "time"

// Player represents one player in the league-wide pool, with the
// current-season aggregates used by the scoring engine. Values are
// immutable within a single run; a fresh snapshot is fetched per invocation.
type Player struct {
	ID          int     `json:"id"`           // FPL element id
	Name        string  `json:"name"`         // Display name (web_name)
	TeamID      int     `json:"team_id"`      // Owning club id
	TeamName    string  `json:"team_name"`    // Owning club short name, for display
	Position    int     `json:"position"`     // 1=GK 2=DEF 3=MID 4=FWD
	Cost        float64 `json:"cost"`         // Price in millions
	Form        float64 `json:"form"`         // Short-window rolling performance metric
	TotalPoints int     `json:"total_points"` // Season total points
	Status      string  `json:"status"`       // FPL availability flag ("a" = available)
	Owned       bool    `json:"owned"`        // Whether the player is in the user's squad
}

// Available reports whether the player is flagged as fit and selectable.
// Anything other than "a" (doubtful, injured, suspended, unavailable) is
// excluded from pick recommendations before ranking.
func (p Player) Available() bool {
	return p.Status == StatusAvailable
}

// Fixture is one upcoming match from a team's point of view.
type Fixture struct {
	Gameweek   int `json:"gameweek"`
	OpponentID int `json:"opponent_id"`
	Difficulty int `json:"difficulty"` // FDR, 1 (easiest) to 5 (hardest)
}

// Team represents one club and its ordered upcoming fixtures.
// Fixtures are sorted by gameweek ascending at ingestion time; the engine
// relies on that ordering for the lookahead window.
type Team struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	Fixtures  []Fixture `json:"fixtures"`
}

// Snapshot is the single in-memory dataset the engine runs over.
// It is assembled once per invocation by the fetch collaborator and is
// never mutated by the engine.
type Snapshot struct {
	Players      []Player     `json:"players"`
	Teams        map[int]Team `json:"teams"`
	NextGameweek int          `json:"next_gameweek"`
	FetchedAt    time.Time    `json:"fetched_at"`
}

// Squad returns the owned players in the snapshot. The result may hold
// fewer than the full 15 if the upstream picks payload was incomplete;
// the advisor never assumes a fixed squad size.
func (s Snapshot) Squad() []Player {
	var squad []Player
	for _, p := range s.Players {
		if p.Owned {
			squad = append(squad, p)
		}
	}
	return squad
}
