package cmd

import (
	"fplassist/core"
	"fplassist/internal/contract"
	"github.com/spf13/cobra"
)

// picksCmd ranks the best transfer-in targets.
var picksCmd = &cobra.Command{
	Use:   "picks",
	Short: "Show the best transfer-in targets outside your squad.",
	Long: `Rank every player you do not own by a composite of current form,
upcoming fixture ease and season points, and show the top targets.

Players who are injured, suspended or otherwise unavailable are excluded
before ranking, so a weak fit never displaces a genuine candidate.

Examples:
  # Top 10 picks with default weights
  fplassist picks --team-id 1234567

  # Widen the fixture window and show more candidates
  fplassist picks --lookahead 8 --limit 20

  # Include per-signal score breakdown
  fplassist picks --detail --explain

  # Export findings to CSV for tracking
  fplassist picks --output csv --output-file picks.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePicks(rootCtx, cfg, source); err != nil {
			contract.LogFatal("Cannot run picks advice", err)
		}
	},
}
