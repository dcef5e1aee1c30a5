// Package cmd defines the command-line interface for fplassist.
package cmd

import (
	"fplassist/internal/contract"
	"fplassist/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(picksCmd)
	rootCmd.AddCommand(transfersCmd)
	rootCmd.AddCommand(chipsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Int("team-id", 0, "FPL team id used to resolve the current squad (0 = no squad)")
	rootCmd.PersistentFlags().String("cookie", "", "Session cookie for the authenticated my-team endpoint")
	rootCmd.PersistentFlags().String("base-url", "", "Override the FPL API base URL")
	rootCmd.PersistentFlags().Int("lookahead", contract.DefaultLookahead, "Number of upcoming gameweeks to weigh per team")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultPickLimit, "Number of pick recommendations to display")
	rootCmd.PersistentFlags().Int("out-count", contract.DefaultOutCount, "Number of squad players to flag for transfer out")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-player metadata (form, points, fixture difficulty)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Path to the SQLite cache database (default: user cache dir)")
	rootCmd.PersistentFlags().String("cache-ttl", "", "How long cached API payloads stay fresh (e.g. 30m, 2h)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of picksCmd to Viper
	picksCmd.Flags().Bool("explain", false, "Print per-player component score breakdown")
	if err := viper.BindPFlags(picksCmd.Flags()); err != nil {
		contract.LogFatal("Error binding picks flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().String("email-to", "", "Recipient address for the advice email")
	reportCmd.Flags().String("email-from", "", "Sender address for the advice email")
	reportCmd.Flags().String("smtp-host", "", "SMTP server for the advice email")
	reportCmd.Flags().Int("smtp-port", 587, "SMTP port for the advice email")
	reportCmd.Flags().String("export-dir", ".", "Directory for the timestamped CSV and XLSX exports")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}
}
