package cmd

import (
	"fplassist/core"
	"fplassist/internal/contract"
	"github.com/spf13/cobra"
)

// transfersCmd flags the weakest owned players.
var transfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "Flag the weakest players in your squad for transfer out.",
	Long: `Score your current squad with the same composite used for picks and
flag the bottom of the list as transfer-out candidates.

Unavailable players (injured, suspended) are always flagged regardless of
score, since holding them costs you a starting slot.

Requires --team-id so your squad can be resolved; the my-team endpoint
also needs a session cookie via --cookie or FPLASSIST_COOKIE.

Examples:
  # Flag the bottom three of your squad
  fplassist transfers --team-id 1234567 --cookie "$FPL_SESSION"

  # Flag more candidates over a longer fixture window
  fplassist transfers --out-count 5 --lookahead 8`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTransfersOut(rootCtx, cfg, source); err != nil {
			contract.LogFatal("Cannot run transfers advice", err)
		}
	},
}
