package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"fplassist/core"
	"fplassist/internal/contract"
	"fplassist/internal/excel"
	"fplassist/internal/mailer"
	"fplassist/internal/outwriter"
	"fplassist/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// reportCmd runs the full advice pipeline and exports it.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a full advice run as timestamped CSV and XLSX files.",
	Long: `Run picks, transfers and chip advice in one pass and export the
results as a timestamped CSV plus a three-sheet XLSX workbook.

When --email-to, --email-from and --smtp-host are set, the same advice is
also delivered as an HTML email. The SMTP password is read from the
FPLASSIST_SMTP_PASSWORD environment variable.

Examples:
  # Export to the current directory
  fplassist report --team-id 1234567 --cookie "$FPL_SESSION"

  # Export elsewhere and email the result
  fplassist report --export-dir ~/fpl \
    --email-to me@example.com --email-from bot@example.com \
    --smtp-host smtp.example.com`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runReport(); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}

func runReport() error {
	advice, err := core.GetAdvice(rootCtx, cfg, source)
	if err != nil {
		return err
	}

	exportDir := viper.GetString("export-dir")
	stamp := advice.GeneratedAt.Format(contract.FileTimestampFormat)

	// Picks CSV reuses the dispatching writer with a file-bound config.
	csvCfg := cfg.Clone()
	csvCfg.Output = schema.CSVOut
	csvCfg.OutputFile = filepath.Join(exportDir, fmt.Sprintf("fpl_advice_%s.csv", stamp))
	if err := outwriter.WritePicks(advice, csvCfg, time.Duration(0)); err != nil {
		return err
	}

	xlsxPath := filepath.Join(exportDir, fmt.Sprintf("fpl_advice_%s.xlsx", stamp))
	if err := excel.WriteAdviceWorkbook(advice, xlsxPath); err != nil {
		return err
	}
	fmt.Printf("Exported advice workbook to: %s\n", xlsxPath)

	if cfg.Email.To != "" {
		if err := mailer.Send(rootCtx, advice, cfg.Email); err != nil {
			return err
		}
		fmt.Printf("Emailed advice to: %s\n", cfg.Email.To)
	}

	return nil
}
