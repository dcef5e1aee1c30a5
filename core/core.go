// Package core has the recommendation engine: fixture difficulty
// aggregation, player scoring, squad advice and chip timing.
package core

import (
	"context"
	"fmt"
	"time"

	"fplassist/internal/contract"
	"fplassist/internal/outwriter"
	"fplassist/schema"
)

// BuildAdvice runs the whole engine over one snapshot: difficulty
// aggregation for every team, then scoring, then the squad and chip
// advisors. The snapshot is read-only throughout and the result depends on
// nothing but the snapshot and the config.
func BuildAdvice(snap schema.Snapshot, cfg *contract.Config) (schema.Advice, error) {
	if cfg.Lookahead < 1 {
		return schema.Advice{}, fmt.Errorf("lookahead must be positive, got %d", cfg.Lookahead)
	}
	if cfg.PickLimit < 1 {
		return schema.Advice{}, fmt.Errorf("pick limit must be positive, got %d", cfg.PickLimit)
	}
	if cfg.OutCount < 1 {
		return schema.Advice{}, fmt.Errorf("out count must be positive, got %d", cfg.OutCount)
	}

	difficulty := AggregateAllTeams(snap.Teams, cfg.Lookahead)
	scored := ScorePlayers(snap.Players, difficulty, cfg.Weights)

	return schema.Advice{
		GeneratedAt:  snap.FetchedAt,
		NextGameweek: snap.NextGameweek,
		Lookahead:    cfg.Lookahead,
		Picks:        RecommendPicks(scored, cfg.PickLimit),
		TransfersOut: FlagTransfersOut(scored, cfg.OutCount),
		Chips:        RecommendChips(snap, scored, cfg.Lookahead),
	}, nil
}

// ExecutePicks fetches a snapshot and prints the top transfer-in
// recommendations. It serves as the entry point for the 'picks' command.
func ExecutePicks(ctx context.Context, cfg *contract.Config, src contract.SnapshotSource) error {
	start := time.Now()
	advice, err := fetchAndAdvise(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.WritePicks(advice, cfg, time.Since(start))
}

// ExecuteTransfersOut fetches a snapshot and prints the transfer-out flags.
func ExecuteTransfersOut(ctx context.Context, cfg *contract.Config, src contract.SnapshotSource) error {
	start := time.Now()
	advice, err := fetchAndAdvise(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.WriteTransfersOut(advice, cfg, time.Since(start))
}

// ExecuteChips fetches a snapshot and prints the chip timing plan.
func ExecuteChips(ctx context.Context, cfg *contract.Config, src contract.SnapshotSource) error {
	start := time.Now()
	advice, err := fetchAndAdvise(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.WriteChips(advice, cfg, time.Since(start))
}

// GetAdvice fetches a snapshot and returns the full advice structure.
// Exposed for the report command and the MCP handlers, which render the
// same data through their own collaborators.
func GetAdvice(ctx context.Context, cfg *contract.Config, src contract.SnapshotSource) (schema.Advice, error) {
	return fetchAndAdvise(ctx, cfg, src)
}

func fetchAndAdvise(ctx context.Context, cfg *contract.Config, src contract.SnapshotSource) (schema.Advice, error) {
	snap, err := src.Snapshot(ctx)
	if err != nil {
		return schema.Advice{}, fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	return BuildAdvice(snap, cfg)
}
