package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"fplassist/internal/contract"
	"fplassist/internal/parquet"
	"fplassist/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// errParquetNeedsFile is returned when parquet output is requested without a
// destination path, since parquet cannot stream to stdout.
var errParquetNeedsFile = errors.New("parquet output requires --output-file")

// WritePicks outputs transfer pick recommendations, dispatching based on the
// output format configured.
func WritePicks(advice schema.Advice, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writePicksJSON(advice, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writePicksCSV(advice, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errParquetNeedsFile
		}
		if err := parquet.WritePicksParquet(advice, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePicksTable(advice, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writePicksJSON handles opening the file and calling the JSON writer.
func writePicksJSON(advice schema.Advice, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForPicks(w, advice.Picks)
	}, "Wrote JSON")
}

// writePicksCSV handles opening the file and calling the CSV writer.
func writePicksCSV(advice schema.Advice, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForPicks(csvWriter, advice.Picks, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writePicksTable generates and writes the human-readable table.
func writePicksTable(advice schema.Advice, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Player", "Team", "Pos", "Cost", "Score", "Label"}
	if cfg.Detail {
		headers = append(headers, "Form", "Points", "FDR")
	}
	if cfg.Explain {
		headers = append(headers, "Breakdown")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, s := range advice.Picks {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(s.Name, getMaxTableNameWidth(cfg)),
			s.TeamName,
			schema.PositionLabel(s.Position),
			schema.FormatCost(s.Cost),
			fmtFloat(s.Score),
			contract.GetColorLabel(s.Score, cfg.UseColors),
		}
		if cfg.Detail {
			row = append(
				row,
				fmtFloat(s.Form),
				fmt.Sprintf(intFmt, s.TotalPoints),
				formatAvgDifficulty(s, fmtFloat),
			)
		}
		if cfg.Explain {
			row = append(row, formatBreakdown(s, fmtFloat))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing top %d picks for GW%d (next %d gameweeks)\n",
		len(advice.Picks), advice.NextGameweek, advice.Lookahead); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Advice generated in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForPicks writes pick recommendations in CSV format.
func writeCSVResultsForPicks(w *csv.Writer, picks []schema.PlayerScore, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"player",
		"team",
		"position",
		"cost",
		"form",
		"total_points",
		"avg_difficulty",
		"score",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, s := range picks {
		rec := []string{
			strconv.Itoa(i + 1),
			s.Name,
			s.TeamName,
			schema.PositionLabel(s.Position),
			fmtFloat(s.Cost),
			fmtFloat(s.Form),
			fmt.Sprintf(intFmt, s.TotalPoints),
			formatAvgDifficulty(s, fmtFloat),
			fmtFloat(s.Score),
			contract.GetPlainLabel(s.Score),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForPicks writes pick recommendations in JSON format.
func writeJSONResultsForPicks(w io.Writer, picks []schema.PlayerScore) error {
	type JSONPick struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.PlayerScore
	}

	output := make([]JSONPick, len(picks))
	for i, s := range picks {
		output[i] = JSONPick{
			Rank:        i + 1,
			Label:       contract.GetPlainLabel(s.Score),
			PlayerScore: s,
		}
	}

	return writeJSON(w, output)
}
