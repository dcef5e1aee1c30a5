package outwriter

import (
	"encoding/csv"
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

// WriteTransfersOut outputs transfer-out flags, dispatching based on the
// output format configured.
func WriteTransfersOut(advice schema.Advice, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeTransfersJSON(advice, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeTransfersCSV(advice, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errParquetNeedsFile
		}
		if err := parquet.WriteTransfersOutParquet(advice, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTransfersTable(advice, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

func writeTransfersJSON(advice schema.Advice, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForTransfers(w, advice.TransfersOut)
	}, "Wrote JSON")
}

func writeTransfersCSV(advice schema.Advice, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForTransfers(csvWriter, advice.TransfersOut, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeTransfersTable generates and writes the human-readable table.
func writeTransfersTable(advice schema.Advice, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	if len(advice.TransfersOut) == 0 {
		if _, err := fmt.Fprintln(writer, "No transfer-out candidates in the current squad."); err != nil {
			return err
		}
		_, err := fmt.Fprintf(writer, "Advice generated in %v. Cache backend: %s\n", duration, cfg.CacheBackend)
		return err
	}

	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Player", "Team", "Pos", "Cost", "Score", "Reason"}
	if cfg.Detail {
		headers = append(headers, "Form", "Points", "FDR")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, f := range advice.TransfersOut {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(f.Name, getMaxTableNameWidth(cfg)),
			f.TeamName,
			schema.PositionLabel(f.Position),
			schema.FormatCost(f.Cost),
			fmtFloat(f.Score),
			f.Reason,
		}
		if cfg.Detail {
			row = append(
				row,
				fmtFloat(f.Form),
				fmt.Sprintf(intFmt, f.TotalPoints),
				formatAvgDifficulty(f.PlayerScore, fmtFloat),
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Flagged %d of the squad for GW%d (next %d gameweeks)\n",
		len(advice.TransfersOut), advice.NextGameweek, advice.Lookahead); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Advice generated in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForTransfers writes transfer-out flags in CSV format.
func writeCSVResultsForTransfers(w *csv.Writer, flags []schema.TransferFlag, fmtFloat func(float64) string, intFmt string) error {
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
		"reason",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, f := range flags {
		rec := []string{
			strconv.Itoa(i + 1),
			f.Name,
			f.TeamName,
			schema.PositionLabel(f.Position),
			fmtFloat(f.Cost),
			fmtFloat(f.Form),
			fmt.Sprintf(intFmt, f.TotalPoints),
			formatAvgDifficulty(f.PlayerScore, fmtFloat),
			fmtFloat(f.Score),
			f.Reason,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForTransfers writes transfer-out flags in JSON format.
func writeJSONResultsForTransfers(w io.Writer, flags []schema.TransferFlag) error {
	type JSONFlag struct {
		Rank int `json:"rank"`
		schema.TransferFlag
	}

	output := make([]JSONFlag, len(flags))
	for i, f := range flags {
		output[i] = JSONFlag{
			Rank:         i + 1,
			TransferFlag: f,
		}
	}

	return writeJSON(w, output)
}
