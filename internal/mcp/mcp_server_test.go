package mcp_test

import (
	"context"
	"testing"
	"time"

	"fplassist/internal/contract"
	mcp_internal "fplassist/internal/mcp"
	"fplassist/schema"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	snap schema.Snapshot
	err  error
}

func (s staticSource) Snapshot(context.Context) (schema.Snapshot, error) {
	return s.snap, s.err
}

func baseConfig() *contract.Config {
	return &contract.Config{
		Lookahead: contract.DefaultLookahead,
		PickLimit: contract.DefaultPickLimit,
		OutCount:  contract.DefaultOutCount,
		Weights:   schema.DefaultWeights(),
	}
}

func testSnapshot() schema.Snapshot {
	return schema.Snapshot{
		Players: []schema.Player{
			{ID: 1, Name: "OwnedMid", TeamID: 1, TeamName: "LIV", Position: 3, Form: 5.0, TotalPoints: 80, Status: schema.StatusAvailable, Owned: true},
			{ID: 2, Name: "PoolStar", TeamID: 2, TeamName: "ARS", Position: 4, Form: 9.0, TotalPoints: 120, Status: schema.StatusAvailable},
			{ID: 3, Name: "PoolDud", TeamID: 2, TeamName: "ARS", Position: 2, Form: 1.0, TotalPoints: 20, Status: schema.StatusAvailable},
		},
		Teams: map[int]schema.Team{
			1: {ID: 1, Name: "Liverpool", ShortName: "LIV", Fixtures: []schema.Fixture{{Gameweek: 10, OpponentID: 2, Difficulty: 3}}},
			2: {ID: 2, Name: "Arsenal", ShortName: "ARS", Fixtures: []schema.Fixture{{Gameweek: 10, OpponentID: 1, Difficulty: 2}}},
		},
		NextGameweek: 10,
		FetchedAt:    time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestMCPServerTools(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig(), staticSource{snap: testSnapshot()})
	ctx := context.Background()

	t.Run("get_transfer_picks returns pool players", func(t *testing.T) {
		tool := s.GetTool("get_transfer_picks")
		require.NotNil(t, tool, "Tool get_transfer_picks should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_transfer_picks",
				Arguments: map[string]any{"limit": 5.0},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "PoolStar")
		assert.NotContains(t, text, "OwnedMid")
	})

	t.Run("get_transfers_out returns owned players", func(t *testing.T) {
		tool := s.GetTool("get_transfers_out")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_transfers_out"},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "OwnedMid")
		assert.NotContains(t, text, "PoolStar")
	})

	t.Run("get_chip_plan returns chip recommendations", func(t *testing.T) {
		tool := s.GetTool("get_chip_plan")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_chip_plan",
				Arguments: map[string]any{"lookahead": 2.0},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "wildcard")
	})

	t.Run("get_transfer_picks rejects excessive limit", func(t *testing.T) {
		tool := s.GetTool("get_transfer_picks")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_transfer_picks",
				Arguments: map[string]any{"limit": 5000.0},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "limit must be at most")
	})
}

func TestMCPServerFetchFailure(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig(), staticSource{err: assert.AnError})

	tool := s.GetTool("get_transfer_picks")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: "get_transfer_picks"},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "advice failed")
}
