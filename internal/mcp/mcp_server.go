// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"fplassist/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the fplassist MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, src contract.SnapshotSource) *server.MCPServer {
	s := server.NewMCPServer(
		"FPL Assist Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		src:     src,
	}

	// --- 1. Tool: get_transfer_picks ---
	s.AddTool(mcp.NewTool("get_transfer_picks",
		mcp.WithDescription("Rank the best transfer-in targets outside the current squad by form, fixtures and season points."),
		mcp.WithNumber("limit", mcp.Description("Number of picks to return. Defaults to 10.")),
		mcp.WithNumber("lookahead", mcp.Description("Gameweeks of upcoming fixtures to weigh. Defaults to 5.")),
	), h.handleGetTransferPicks)

	// --- 2. Tool: get_transfers_out ---
	s.AddTool(mcp.NewTool("get_transfers_out",
		mcp.WithDescription("Flag the weakest players in the current squad as transfer-out candidates."),
		mcp.WithNumber("out_count", mcp.Description("Number of squad players to flag. Defaults to 3.")),
		mcp.WithNumber("lookahead", mcp.Description("Gameweeks of upcoming fixtures to weigh. Defaults to 5.")),
	), h.handleGetTransfersOut)

	// --- 3. Tool: get_chip_plan ---
	s.AddTool(mcp.NewTool("get_chip_plan",
		mcp.WithDescription("Suggest which gameweek to play each FPL chip (Bench Boost, Triple Captain, Free Hit, Wildcard)."),
		mcp.WithNumber("lookahead", mcp.Description("Gameweeks of upcoming fixtures to plan over. Defaults to 5.")),
	), h.handleGetChipPlan)

	return s
}

// StartMCPServer starts the fplassist MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, src contract.SnapshotSource) error {
	s := NewMCPServer(baseCfg, src)
	return server.ServeStdio(s)
}
