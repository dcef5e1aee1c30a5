// Package parquet provides data structures and functions for exporting
// advice data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"fplassist/internal/contract"
	"fplassist/schema"

	"github.com/parquet-go/parquet-go"
)

// PickRow is one transfer pick recommendation in the parquet export schema.
type PickRow struct {
	// GeneratedAt is when the advice run produced this row
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// NextGameweek is the gameweek the advice targets
	NextGameweek int32 `parquet:"next_gameweek,snappy"`

	// Rank is the 1-based position in the ranked pick list
	Rank int32 `parquet:"rank,snappy"`

	// PlayerID is the FPL element id
	PlayerID int64 `parquet:"player_id,snappy"`

	// PlayerName is the display name
	PlayerName string `parquet:"player_name,snappy"`

	// TeamName is the owning club short name
	TeamName string `parquet:"team_name,snappy"`

	// Position is the short position label
	Position string `parquet:"position,snappy"`

	// Cost is the current price in millions
	Cost float64 `parquet:"cost,snappy"`

	// Form is the rolling form metric
	Form float64 `parquet:"form,snappy"`

	// TotalPoints is the season points total
	TotalPoints int32 `parquet:"total_points,snappy"`

	// AvgDifficulty is the aggregated fixture difficulty over the window
	AvgDifficulty float64 `parquet:"avg_difficulty,snappy"`

	// Score is the composite score (0-100)
	Score float64 `parquet:"score,snappy"`

	// Label is the plain verdict for the score
	Label string `parquet:"label,snappy"`
}

// FlagRow is one transfer-out flag in the parquet export schema.
type FlagRow struct {
	GeneratedAt   time.Time `parquet:"generated_at,snappy"`
	NextGameweek  int32     `parquet:"next_gameweek,snappy"`
	Rank          int32     `parquet:"rank,snappy"`
	PlayerID      int64     `parquet:"player_id,snappy"`
	PlayerName    string    `parquet:"player_name,snappy"`
	TeamName      string    `parquet:"team_name,snappy"`
	Position      string    `parquet:"position,snappy"`
	Cost          float64   `parquet:"cost,snappy"`
	AvgDifficulty float64   `parquet:"avg_difficulty,snappy"`
	Score         float64   `parquet:"score,snappy"`
	Reason        string    `parquet:"reason,snappy"`
}

// ChipRow is one chip timing recommendation in the parquet export schema.
type ChipRow struct {
	GeneratedAt  time.Time `parquet:"generated_at,snappy"`
	NextGameweek int32     `parquet:"next_gameweek,snappy"`
	Chip         string    `parquet:"chip,snappy"`
	Gameweek     int32     `parquet:"gameweek,snappy"`
	Score        float64   `parquet:"score,snappy"`
	Reason       string    `parquet:"reason,snappy"`
}

// ConvertPickRows maps advice picks into parquet rows.
func ConvertPickRows(advice schema.Advice) []PickRow {
	rows := make([]PickRow, len(advice.Picks))
	for i, s := range advice.Picks {
		rows[i] = PickRow{
			GeneratedAt:   advice.GeneratedAt,
			NextGameweek:  int32(advice.NextGameweek),
			Rank:          int32(i + 1),
			PlayerID:      int64(s.ID),
			PlayerName:    s.Name,
			TeamName:      s.TeamName,
			Position:      schema.PositionLabel(s.Position),
			Cost:          s.Cost,
			Form:          s.Form,
			TotalPoints:   int32(s.TotalPoints),
			AvgDifficulty: s.AvgDifficulty,
			Score:         s.Score,
			Label:         contract.GetPlainLabel(s.Score),
		}
	}
	return rows
}

// ConvertFlagRows maps transfer-out flags into parquet rows.
func ConvertFlagRows(advice schema.Advice) []FlagRow {
	rows := make([]FlagRow, len(advice.TransfersOut))
	for i, f := range advice.TransfersOut {
		rows[i] = FlagRow{
			GeneratedAt:   advice.GeneratedAt,
			NextGameweek:  int32(advice.NextGameweek),
			Rank:          int32(i + 1),
			PlayerID:      int64(f.ID),
			PlayerName:    f.Name,
			TeamName:      f.TeamName,
			Position:      schema.PositionLabel(f.Position),
			Cost:          f.Cost,
			AvgDifficulty: f.AvgDifficulty,
			Score:         f.Score,
			Reason:        f.Reason,
		}
	}
	return rows
}

// ConvertChipRows maps chip recommendations into parquet rows.
func ConvertChipRows(advice schema.Advice) []ChipRow {
	rows := make([]ChipRow, len(advice.Chips))
	for i, c := range advice.Chips {
		rows[i] = ChipRow{
			GeneratedAt:  advice.GeneratedAt,
			NextGameweek: int32(advice.NextGameweek),
			Chip:         string(c.Chip),
			Gameweek:     int32(c.Gameweek),
			Score:        c.Score,
			Reason:       c.Reason,
		}
	}
	return rows
}

// WritePicksParquet writes the advice picks to a Parquet file.
func WritePicksParquet(advice schema.Advice, outputPath string) error {
	return writeParquet(ConvertPickRows(advice), outputPath)
}

// WriteTransfersOutParquet writes the transfer-out flags to a Parquet file.
func WriteTransfersOutParquet(advice schema.Advice, outputPath string) error {
	return writeParquet(ConvertFlagRows(advice), outputPath)
}

// WriteChipsParquet writes the chip recommendations to a Parquet file.
func WriteChipsParquet(advice schema.Advice, outputPath string) error {
	return writeParquet(ConvertChipRows(advice), outputPath)
}

// writeParquet writes a slice of row structs to a Parquet file, with the
// schema inferred from the struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
