package core

import (
	"context"
	"testing"

	"fplassist/internal/contract"
	"fplassist/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineConfig() *contract.Config {
	return &contract.Config{
		Lookahead: 2,
		PickLimit: 5,
		OutCount:  2,
		Weights:   schema.DefaultWeights(),
	}
}

// TestBuildAdvice runs the whole pipeline over a snapshot and checks the
// output contract end to end.
func TestBuildAdvice(t *testing.T) {
	snap := snapshotForChips()
	advice, err := BuildAdvice(snap, engineConfig())
	require.NoError(t, err)

	assert.Equal(t, 10, advice.NextGameweek)
	assert.Equal(t, 2, advice.Lookahead)
	assert.NotEmpty(t, advice.Picks)
	assert.NotEmpty(t, advice.TransfersOut)
	assert.NotEmpty(t, advice.Chips)
	for _, p := range advice.Picks {
		assert.False(t, p.Owned)
	}
}

// TestBuildAdviceIdempotent: two runs over the same snapshot and config
// produce identical output.
func TestBuildAdviceIdempotent(t *testing.T) {
	snap := snapshotForChips()
	cfg := engineConfig()

	first, err := BuildAdvice(snap, cfg)
	require.NoError(t, err)
	second, err := BuildAdvice(snap, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestBuildAdviceInvalidConfiguration: misconfiguration fails fast before
// any scoring.
func TestBuildAdviceInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*contract.Config)
	}{
		{"zero lookahead", func(c *contract.Config) { c.Lookahead = 0 }},
		{"negative lookahead", func(c *contract.Config) { c.Lookahead = -1 }},
		{"zero pick limit", func(c *contract.Config) { c.PickLimit = 0 }},
		{"zero out count", func(c *contract.Config) { c.OutCount = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := engineConfig()
			tt.mutate(cfg)
			_, err := BuildAdvice(snapshotForChips(), cfg)
			assert.Error(t, err)
		})
	}
}

// staticSource serves a fixed snapshot for entrypoint tests.
type staticSource struct {
	snap schema.Snapshot
	err  error
}

func (s staticSource) Snapshot(context.Context) (schema.Snapshot, error) {
	return s.snap, s.err
}

// TestGetAdvice exercises the fetch-then-advise path through the
// SnapshotSource contract.
func TestGetAdvice(t *testing.T) {
	advice, err := GetAdvice(context.Background(), engineConfig(), staticSource{snap: snapshotForChips()})
	require.NoError(t, err)
	assert.NotEmpty(t, advice.Picks)

	_, err = GetAdvice(context.Background(), engineConfig(), staticSource{err: assert.AnError})
	assert.ErrorIs(t, err, assert.AnError)
}
