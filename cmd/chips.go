package cmd

import (
	"fplassist/core"
	"fplassist/internal/contract"
	"github.com/spf13/cobra"
)

// chipsCmd suggests when to play each chip.
var chipsCmd = &cobra.Command{
	Use:   "chips",
	Short: "Suggest which gameweek to play each chip.",
	Long: `Scan the fixture calendar over the lookahead window and suggest a
gameweek for each chip:

  Bench Boost    - the week your whole squad has the easiest fixtures
  Triple Captain - the week your best player has their easiest fixture
  Free Hit       - the week your squad's fixtures are hardest relative to
                   the rest of the market
  Wildcard       - the start of the easiest sustained run of fixtures

Chips with no sensible window in the lookahead are simply omitted.

Examples:
  # Chip plan over the next five gameweeks
  fplassist chips --team-id 1234567 --cookie "$FPL_SESSION"

  # Plan over a longer horizon
  fplassist chips --lookahead 10`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChips(rootCtx, cfg, source); err != nil {
			contract.LogFatal("Cannot run chips advice", err)
		}
	},
}
