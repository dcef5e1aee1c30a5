package schema

import "fmt"

// PositionLabel maps an FPL element type to its short label.
func PositionLabel(pos int) string {
	switch pos {
	case 1:
		return "GK"
	case 2:
		return "DEF"
	case 3:
		return "MID"
	case 4:
		return "FWD"
	default:
		return "UNK"
	}
}

// ChipLabel returns the display name for a chip.
func ChipLabel(c ChipType) string {
	switch c {
	case BenchBoost:
		return "Bench Boost"
	case TripleCaptain:
		return "Triple Captain"
	case FreeHit:
		return "Free Hit"
	case Wildcard:
		return "Wildcard"
	default:
		return string(c)
	}
}

// FormatCost renders a price in millions the way the FPL site does.
func FormatCost(cost float64) string {
	return fmt.Sprintf("£%.1fm", cost)
}
