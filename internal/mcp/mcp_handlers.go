package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"fplassist/core"
	"fplassist/internal/contract"

	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	src     contract.SnapshotSource
}

// applyAdviceArgs overlays request arguments onto a cloned config. Values
// that are absent or non-positive keep the base config's settings.
func (h *toolHandler) applyAdviceArgs(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("lookahead", 0); l > 0 {
		cfg.Lookahead = l
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.PickLimit = l
	}
	if c := request.GetInt("out_count", 0); c > 0 {
		cfg.OutCount = c
	}
	if cfg.PickLimit > contract.MaxPickLimit {
		return nil, fmt.Errorf("limit must be at most %d", contract.MaxPickLimit)
	}
	return cfg, nil
}

func (h *toolHandler) handleGetTransferPicks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyAdviceArgs(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid pick parameters: %v", err)), nil
	}

	advice, err := core.GetAdvice(ctx, cfg, h.src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("advice failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(advice.Picks, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTransfersOut(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyAdviceArgs(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid transfer parameters: %v", err)), nil
	}

	advice, err := core.GetAdvice(ctx, cfg, h.src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("advice failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(advice.TransfersOut, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetChipPlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyAdviceArgs(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid chip parameters: %v", err)), nil
	}

	advice, err := core.GetAdvice(ctx, cfg, h.src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("advice failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(advice.Chips, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
