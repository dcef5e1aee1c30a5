// Package excel exports a full advice run as a two-sheet XLSX workbook,
// mirroring the CSV export columns.
package excel

import (
	"fmt"

	"fplassist/internal/contract"
	"fplassist/schema"

	"github.com/xuri/excelize/v2"
)

const (
	picksSheet     = "Picks"
	transfersSheet = "Transfers Out"
	chipsSheet     = "Chips"
)

// WriteAdviceWorkbook writes picks, transfer-out flags and chip
// recommendations to an XLSX file at outputPath.
func WriteAdviceWorkbook(advice schema.Advice, outputPath string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// The default sheet becomes the picks sheet.
	if err := f.SetSheetName("Sheet1", picksSheet); err != nil {
		return fmt.Errorf("failed to rename picks sheet: %w", err)
	}
	if err := writePicksSheet(f, advice); err != nil {
		return err
	}

	if _, err := f.NewSheet(transfersSheet); err != nil {
		return fmt.Errorf("failed to create transfers sheet: %w", err)
	}
	if err := writeTransfersSheet(f, advice); err != nil {
		return err
	}

	if _, err := f.NewSheet(chipsSheet); err != nil {
		return fmt.Errorf("failed to create chips sheet: %w", err)
	}
	if err := writeChipsSheet(f, advice); err != nil {
		return err
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writePicksSheet(f *excelize.File, advice schema.Advice) error {
	header := []any{"Rank", "Player", "Team", "Position", "Cost", "Form", "Total Points", "Avg Difficulty", "Score", "Label"}
	if err := f.SetSheetRow(picksSheet, "A1", &header); err != nil {
		return err
	}
	for i, s := range advice.Picks {
		row := []any{
			i + 1,
			s.Name,
			s.TeamName,
			schema.PositionLabel(s.Position),
			s.Cost,
			s.Form,
			s.TotalPoints,
			difficultyCell(s),
			s.Score,
			contract.GetPlainLabel(s.Score),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(picksSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeTransfersSheet(f *excelize.File, advice schema.Advice) error {
	header := []any{"Rank", "Player", "Team", "Position", "Cost", "Form", "Total Points", "Avg Difficulty", "Score", "Reason"}
	if err := f.SetSheetRow(transfersSheet, "A1", &header); err != nil {
		return err
	}
	for i, fl := range advice.TransfersOut {
		row := []any{
			i + 1,
			fl.Name,
			fl.TeamName,
			schema.PositionLabel(fl.Position),
			fl.Cost,
			fl.Form,
			fl.TotalPoints,
			difficultyCell(fl.PlayerScore),
			fl.Score,
			fl.Reason,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(transfersSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeChipsSheet(f *excelize.File, advice schema.Advice) error {
	header := []any{"Chip", "Gameweek", "Score", "Reason"}
	if err := f.SetSheetRow(chipsSheet, "A1", &header); err != nil {
		return err
	}
	for i, c := range advice.Chips {
		row := []any{
			schema.ChipLabel(c.Chip),
			c.Gameweek,
			c.Score,
			c.Reason,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(chipsSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// difficultyCell keeps the sentinel out of spreadsheets where it would read
// like a real measurement.
func difficultyCell(s schema.PlayerScore) any {
	if s.AvgDifficulty >= schema.SentinelDifficulty {
		return "n/a"
	}
	return s.AvgDifficulty
}
