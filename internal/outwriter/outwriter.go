// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"fplassist/internal/contract"
	"golang.org/x/term"
)

// getMaxTableNameWidth calculates the maximum width for player names in table
// output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 40 // Rank + Team + Pos + Cost + Score + Label with borders/padding

	if cfg.Detail {
		baseWidth += 25 // Form + Points + FDR columns
	}
	if cfg.Explain {
		baseWidth += 40 // Breakdown column
	}

	available := termWidth - baseWidth
	if available < 8 {
		return 8
	}
	if available > 30 {
		return 30
	}
	return available
}
