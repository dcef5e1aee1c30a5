package fplclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBootstrap = `{
	"elements": [
		{"id": 1, "web_name": "Salah", "team": 1, "element_type": 3, "now_cost": 128, "form": "8.2", "total_points": 140, "status": "a"},
		{"id": 2, "web_name": "Haaland", "team": 2, "element_type": 4, "now_cost": 151, "form": "9.1", "total_points": 155, "status": "a"},
		{"id": 3, "web_name": "Benchwarmer", "team": 2, "element_type": 2, "now_cost": 40, "form": "", "total_points": 4, "status": "i"}
	],
	"teams": [
		{"id": 1, "name": "Liverpool", "short_name": "LIV"},
		{"id": 2, "name": "Man City", "short_name": "MCI"}
	],
	"events": [
		{"id": 9, "is_next": false},
		{"id": 10, "is_next": true}
	]
}`

const testFixtures = `[
	{"event": 10, "finished": false, "team_h": 1, "team_a": 2, "team_h_difficulty": 4, "team_a_difficulty": 3},
	{"event": 11, "finished": false, "team_h": 2, "team_a": 1, "team_h_difficulty": 2, "team_a_difficulty": 5},
	{"event": 9, "finished": true, "team_h": 1, "team_a": 2, "team_h_difficulty": 1, "team_a_difficulty": 1},
	{"event": null, "finished": false, "team_h": 1, "team_a": 2, "team_h_difficulty": 1, "team_a_difficulty": 1}
]`

const testMyTeam = `{"picks": [{"element": 1}, {"element": 3}]}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/bootstrap-static/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, testBootstrap)
	})
	mux.HandleFunc("/fixtures/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, testFixtures)
	})
	mux.HandleFunc("/my-team/42/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cookie") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, testMyTeam)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// TestSnapshotAssembly exercises the full fetch-and-assemble path against a
// stub API.
func TestSnapshotAssembly(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, 42, "pl_profile=abc")

	snap, err := client.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, snap.NextGameweek)
	require.Len(t, snap.Players, 3)
	require.Len(t, snap.Teams, 2)

	salah := snap.Players[0]
	assert.Equal(t, "Salah", salah.Name)
	assert.Equal(t, "LIV", salah.TeamName)
	assert.InDelta(t, 12.8, salah.Cost, 0.001)
	assert.InDelta(t, 8.2, salah.Form, 0.001)
	assert.True(t, salah.Owned)
	assert.False(t, snap.Players[1].Owned)
	assert.True(t, snap.Players[2].Owned)

	// Finished and unscheduled fixtures are dropped; the rest are ordered
	// by gameweek with per-side difficulties.
	liv := snap.Teams[1]
	require.Len(t, liv.Fixtures, 2)
	assert.Equal(t, 10, liv.Fixtures[0].Gameweek)
	assert.Equal(t, 4, liv.Fixtures[0].Difficulty)
	assert.Equal(t, 11, liv.Fixtures[1].Gameweek)
	assert.Equal(t, 5, liv.Fixtures[1].Difficulty)
}

// TestSnapshotWithoutTeamID skips the authenticated endpoint entirely.
func TestSnapshotWithoutTeamID(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, 0, "")

	snap, err := client.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Squad())
}

// TestSnapshotMissingCookie fails before hitting the authenticated endpoint.
func TestSnapshotMissingCookie(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, 42, "")

	_, err := client.Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session cookie")
}

// TestSnapshotUpstreamError surfaces HTTP failures with context.
func TestSnapshotUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, "")
	_, err := client.Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

// memCache is a test double for the payload cache.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	hits int
}

func (m *memCache) Get(key string, _ time.Duration) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.data[key]
	if ok {
		m.hits++
	}
	return body, ok
}

func (m *memCache) Put(key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = payload
	return nil
}

// TestSnapshotUsesCache: the second run of unauthenticated fetches comes
// from the cache.
func TestSnapshotUsesCache(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, 0, "")
	cache := &memCache{}
	client.Cache = cache

	_, err := client.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Zero(t, cache.hits)

	_, err = client.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cache.hits, "bootstrap and fixtures should both hit the cache")
}

// TestAssembleSnapshotValidation rejects malformed upstream data at the
// ingestion boundary.
func TestAssembleSnapshotValidation(t *testing.T) {
	gw := 10
	goodTeams := []struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		ShortName string `json:"short_name"`
	}{{ID: 1, Name: "A", ShortName: "AAA"}, {ID: 2, Name: "B", ShortName: "BBB"}}

	t.Run("unknown team in fixture", func(t *testing.T) {
		var b bootstrapResponse
		b.Teams = goodTeams
		_, err := assembleSnapshot(b, []apiFixture{{Event: &gw, TeamH: 1, TeamA: 99, TeamHDifficulty: 2, TeamADifficulty: 2}}, nil, time.Now())
		assert.Error(t, err)
	})

	t.Run("difficulty out of range", func(t *testing.T) {
		var b bootstrapResponse
		b.Teams = goodTeams
		_, err := assembleSnapshot(b, []apiFixture{{Event: &gw, TeamH: 1, TeamA: 2, TeamHDifficulty: 7, TeamADifficulty: 2}}, nil, time.Now())
		assert.Error(t, err)
	})

	t.Run("unparseable form", func(t *testing.T) {
		var b bootstrapResponse
		b.Teams = goodTeams
		b.Elements = append(b.Elements, struct {
			ID          int    `json:"id"`
			WebName     string `json:"web_name"`
			Team        int    `json:"team"`
			ElementType int    `json:"element_type"`
			NowCost     int    `json:"now_cost"`
			Form        string `json:"form"`
			TotalPoints int    `json:"total_points"`
			Status      string `json:"status"`
		}{ID: 1, WebName: "X", Team: 1, Form: "n/a"})
		_, err := assembleSnapshot(b, nil, nil, time.Now())
		assert.Error(t, err)
	})
}
