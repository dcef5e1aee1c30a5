package fplclient

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"fplassist/schema"
)

// bootstrapResponse mirrors the fields of /bootstrap-static/ the snapshot
// needs. Form arrives as a decimal string in the FPL API.
type bootstrapResponse struct {
	Elements []struct {
		ID          int    `json:"id"`
		WebName     string `json:"web_name"`
		Team        int    `json:"team"`
		ElementType int    `json:"element_type"`
		NowCost     int    `json:"now_cost"` // tenths of a million
		Form        string `json:"form"`
		TotalPoints int    `json:"total_points"`
		Status      string `json:"status"`
	} `json:"elements"`
	Teams []struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		ShortName string `json:"short_name"`
	} `json:"teams"`
	Events []struct {
		ID     int  `json:"id"`
		IsNext bool `json:"is_next"`
	} `json:"events"`
}

// apiFixture mirrors one entry of /fixtures/. Event is null for unscheduled
// fixtures.
type apiFixture struct {
	Event           *int `json:"event"`
	Finished        bool `json:"finished"`
	TeamH           int  `json:"team_h"`
	TeamA           int  `json:"team_a"`
	TeamHDifficulty int  `json:"team_h_difficulty"`
	TeamADifficulty int  `json:"team_a_difficulty"`
}

// myTeamResponse mirrors the picks list of /my-team/{id}/.
type myTeamResponse struct {
	Picks []struct {
		Element int `json:"element"`
	} `json:"picks"`
}

// Snapshot fetches bootstrap data, fixtures and (when a team id is set) the
// user's squad, and assembles the engine's input. Malformed upstream data
// fails here, at the ingestion boundary, never inside scoring.
func (c *Client) Snapshot(ctx context.Context) (schema.Snapshot, error) {
	rawBootstrap, err := c.fetchRaw(ctx, "/bootstrap-static/", false)
	if err != nil {
		return schema.Snapshot{}, err
	}
	var bootstrap bootstrapResponse
	if err := json.Unmarshal(rawBootstrap, &bootstrap); err != nil {
		return schema.Snapshot{}, fmt.Errorf("malformed bootstrap payload: %w", err)
	}

	rawFixtures, err := c.fetchRaw(ctx, "/fixtures/", false)
	if err != nil {
		return schema.Snapshot{}, err
	}
	var fixtures []apiFixture
	if err := json.Unmarshal(rawFixtures, &fixtures); err != nil {
		return schema.Snapshot{}, fmt.Errorf("malformed fixtures payload: %w", err)
	}

	owned := make(map[int]bool)
	if c.TeamID > 0 {
		rawTeam, err := c.fetchRaw(ctx, fmt.Sprintf("/my-team/%d/", c.TeamID), true)
		if err != nil {
			return schema.Snapshot{}, err
		}
		var myTeam myTeamResponse
		if err := json.Unmarshal(rawTeam, &myTeam); err != nil {
			return schema.Snapshot{}, fmt.Errorf("malformed my-team payload: %w", err)
		}
		for _, p := range myTeam.Picks {
			owned[p.Element] = true
		}
	}

	return assembleSnapshot(bootstrap, fixtures, owned, time.Now())
}

// assembleSnapshot validates and converts the raw payloads into the typed
// snapshot. Finished and unscheduled fixtures are dropped; each team's
// remaining fixtures are sorted by gameweek ascending, the ordering the
// lookahead window depends on.
func assembleSnapshot(bootstrap bootstrapResponse, fixtures []apiFixture, owned map[int]bool, fetchedAt time.Time) (schema.Snapshot, error) {
	teams := make(map[int]schema.Team, len(bootstrap.Teams))
	for _, t := range bootstrap.Teams {
		if t.ID <= 0 {
			return schema.Snapshot{}, fmt.Errorf("team %q has invalid id %d", t.Name, t.ID)
		}
		teams[t.ID] = schema.Team{ID: t.ID, Name: t.Name, ShortName: t.ShortName}
	}

	for _, f := range fixtures {
		if f.Finished || f.Event == nil {
			continue
		}
		home, okH := teams[f.TeamH]
		away, okA := teams[f.TeamA]
		if !okH || !okA {
			return schema.Snapshot{}, fmt.Errorf("fixture references unknown team (home=%d away=%d)", f.TeamH, f.TeamA)
		}
		if err := validDifficulty(f.TeamHDifficulty); err != nil {
			return schema.Snapshot{}, fmt.Errorf("fixture %d vs %d: %w", f.TeamH, f.TeamA, err)
		}
		if err := validDifficulty(f.TeamADifficulty); err != nil {
			return schema.Snapshot{}, fmt.Errorf("fixture %d vs %d: %w", f.TeamH, f.TeamA, err)
		}
		home.Fixtures = append(home.Fixtures, schema.Fixture{
			Gameweek:   *f.Event,
			OpponentID: f.TeamA,
			Difficulty: f.TeamHDifficulty,
		})
		away.Fixtures = append(away.Fixtures, schema.Fixture{
			Gameweek:   *f.Event,
			OpponentID: f.TeamH,
			Difficulty: f.TeamADifficulty,
		})
		teams[f.TeamH] = home
		teams[f.TeamA] = away
	}
	for id, team := range teams {
		sort.SliceStable(team.Fixtures, func(i, j int) bool {
			return team.Fixtures[i].Gameweek < team.Fixtures[j].Gameweek
		})
		teams[id] = team
	}

	players := make([]schema.Player, 0, len(bootstrap.Elements))
	for _, e := range bootstrap.Elements {
		if e.ID <= 0 {
			return schema.Snapshot{}, fmt.Errorf("player %q has invalid id %d", e.WebName, e.ID)
		}
		if _, ok := teams[e.Team]; !ok {
			return schema.Snapshot{}, fmt.Errorf("player %q references unknown team %d", e.WebName, e.Team)
		}
		form, err := parseForm(e.Form)
		if err != nil {
			return schema.Snapshot{}, fmt.Errorf("player %q: %w", e.WebName, err)
		}
		players = append(players, schema.Player{
			ID:          e.ID,
			Name:        e.WebName,
			TeamID:      e.Team,
			TeamName:    teams[e.Team].ShortName,
			Position:    e.ElementType,
			Cost:        float64(e.NowCost) / 10.0,
			Form:        form,
			TotalPoints: e.TotalPoints,
			Status:      e.Status,
			Owned:       owned[e.ID],
		})
	}

	return schema.Snapshot{
		Players:      players,
		Teams:        teams,
		NextGameweek: nextGameweek(bootstrap, teams),
		FetchedAt:    fetchedAt,
	}, nil
}

func validDifficulty(d int) error {
	if d < schema.MinFDR || d > schema.MaxFDR {
		return fmt.Errorf("difficulty %d outside %d..%d", d, schema.MinFDR, schema.MaxFDR)
	}
	return nil
}

// parseForm handles the API's decimal-string form field. An empty string
// (pre-season) is zero form, not an error.
func parseForm(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	form, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable form %q", s)
	}
	return form, nil
}

// nextGameweek prefers the bootstrap events marker and falls back to the
// earliest remaining fixture.
func nextGameweek(bootstrap bootstrapResponse, teams map[int]schema.Team) int {
	for _, e := range bootstrap.Events {
		if e.IsNext {
			return e.ID
		}
	}
	next := 0
	for _, team := range teams {
		for _, f := range team.Fixtures {
			if next == 0 || f.Gameweek < next {
				next = f.Gameweek
			}
		}
	}
	return next
}
