package excel

import (
	"path/filepath"
	"testing"
	"time"

	"fplassist/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookAdvice() schema.Advice {
	return schema.Advice{
		GeneratedAt:  time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		NextGameweek: 21,
		Lookahead:    5,
		Picks: []schema.PlayerScore{
			{
				Player: schema.Player{
					ID: 301, Name: "Haaland", TeamID: 11, TeamName: "MCI",
					Position: 4, Cost: 14.1, Form: 9.0, TotalPoints: 140,
				},
				AvgDifficulty: 2.4,
				Score:         91.5,
			},
		},
		TransfersOut: []schema.TransferFlag{
			{
				PlayerScore: schema.PlayerScore{
					Player: schema.Player{
						ID: 88, Name: "Benchwarmer", TeamID: 3, TeamName: "BOU",
						Position: 2, Cost: 4.0, Owned: true,
					},
					AvgDifficulty: schema.SentinelDifficulty,
					Score:         11.0,
				},
				Reason: "bottom of squad by composite score",
			},
		},
		Chips: []schema.ChipRecommendation{
			{Chip: schema.Wildcard, Gameweek: 24, Score: 2.2, Reason: "easiest sustained run of fixtures"},
		},
	}
}

func TestWriteAdviceWorkbook(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteAdviceWorkbook(workbookAdvice(), outputPath))

	f, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"Picks", "Transfers Out", "Chips"}, f.GetSheetList())

	name, err := f.GetCellValue("Picks", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Haaland", name)

	label, err := f.GetCellValue("Picks", "J2")
	require.NoError(t, err)
	assert.Equal(t, "Strong Buy", label)

	// Sentinel difficulty renders as a placeholder, not a number.
	diff, err := f.GetCellValue("Transfers Out", "H2")
	require.NoError(t, err)
	assert.Equal(t, "n/a", diff)

	chip, err := f.GetCellValue("Chips", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Wildcard", chip)
}

func TestWriteAdviceWorkbookEmptyAdvice(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteAdviceWorkbook(schema.Advice{}, outputPath))

	f, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	header, err := f.GetCellValue("Picks", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Rank", header)
}
