package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Verdict label constants.
const (
	StrongBuyValue = "Strong Buy"
	BuyValue       = "Buy"
	HoldValue      = "Hold"
	AvoidValue     = "Avoid"
)

// Color variables for console output.
var (
	StrongBuyColor = color.New(color.FgGreen, color.Bold) // clear-cut pick
	BuyColor       = color.New(color.FgGreen)             // solid pick
	HoldColor      = color.New(color.FgYellow)            // nothing urgent
	AvoidColor     = color.New(color.FgRed)               // weak or risky
)

// GetPlainLabel returns a plain text verdict for a composite score.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 75:
		return StrongBuyValue
	case score >= 55:
		return BuyValue
	case score >= 35:
		return HoldValue
	default:
		return AvoidValue
	}
}

// GetColorLabel returns a colored verdict for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(score float64, useColors bool) string {
	text := GetPlainLabel(score)
	if !useColors {
		return text
	}
	switch text {
	case StrongBuyValue:
		return StrongBuyColor.Sprint(text)
	case BuyValue:
		return BuyColor.Sprint(text)
	case HoldValue:
		return HoldColor.Sprint(text)
	default:
		return AvoidColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName shortens a player name to maxWidth with an ellipsis suffix.
func TruncateName(name string, maxWidth int) string {
	if maxWidth < 4 || len(name) <= maxWidth {
		return name
	}
	return name[:maxWidth-1] + "…"
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
}
