package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"fplassist/internal/contract"
	"fplassist/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up. It accepts a writer function that takes an io.Writer and
// returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// createFormatters creates the common formatter closures used across multiple
// output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// formatAvgDifficulty renders the aggregated fixture difficulty, with a
// placeholder where the team had no fixtures in the window.
func formatAvgDifficulty(s schema.PlayerScore, fmtFloat func(float64) string) string {
	if s.AvgDifficulty >= schema.SentinelDifficulty {
		return "n/a"
	}
	return fmtFloat(s.AvgDifficulty)
}

// formatBreakdown renders the weighted per-signal contributions in a fixed
// order for the explain column.
func formatBreakdown(s schema.PlayerScore, fmtFloat func(float64) string) string {
	if len(s.Breakdown) == 0 {
		return ""
	}
	parts := []string{
		fmt.Sprintf("form %s", fmtFloat(s.Breakdown[schema.SignalForm])),
		fmt.Sprintf("fix %s", fmtFloat(s.Breakdown[schema.SignalFixtures])),
		fmt.Sprintf("pts %s", fmtFloat(s.Breakdown[schema.SignalPoints])),
	}
	return strings.Join(parts, " | ")
}
