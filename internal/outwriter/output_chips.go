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

// WriteChips outputs chip timing recommendations, dispatching based on the
// output format configured.
func WriteChips(advice schema.Advice, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeChipsJSON(advice, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeChipsCSV(advice, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errParquetNeedsFile
		}
		if err := parquet.WriteChipsParquet(advice, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChipsTable(advice, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

func writeChipsJSON(advice schema.Advice, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, advice.Chips)
	}, "Wrote JSON")
}

func writeChipsCSV(advice schema.Advice, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForChips(csvWriter, advice.Chips, fmtFloat)
	}, "Wrote CSV")
}

// writeChipsTable generates and writes the human-readable table.
func writeChipsTable(advice schema.Advice, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if len(advice.Chips) == 0 {
		if _, err := fmt.Fprintln(writer, "No chip recommendations for the current window."); err != nil {
			return err
		}
		_, err := fmt.Fprintf(writer, "Advice generated in %v. Cache backend: %s\n", duration, cfg.CacheBackend)
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Chip", "Gameweek", "Score", "Reason"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, c := range advice.Chips {
		data = append(data, []string{
			schema.ChipLabel(c.Chip),
			fmt.Sprintf("GW%d", c.Gameweek),
			fmtFloat(c.Score),
			c.Reason,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Chip plan from GW%d over %d gameweeks\n",
		advice.NextGameweek, advice.Lookahead); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Advice generated in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForChips writes chip recommendations in CSV format.
func writeCSVResultsForChips(w *csv.Writer, chips []schema.ChipRecommendation, fmtFloat func(float64) string) error {
	header := []string{"chip", "gameweek", "score", "reason"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, c := range chips {
		rec := []string{
			string(c.Chip),
			strconv.Itoa(c.Gameweek),
			fmtFloat(c.Score),
			c.Reason,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
