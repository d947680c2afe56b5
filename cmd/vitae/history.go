package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vitae-hq/vitae/pkg/cli"
	"vitae-hq/vitae/pkg/config"
	"vitae-hq/vitae/pkg/history"
)

var historyFlags struct {
	limit  int
	prune  string
	format string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past validation runs",
	Long: `Show the recorded outcomes of past validation runs.

History requires the SQLite backend (history.backend: sqlite in the
config file, or VITAE_HISTORY_BACKEND=sqlite): one-shot commands cannot
read back memory-backed records.

Examples:
  # Show the last 20 runs
  vitae history --limit 20

  # Remove runs older than 30 days
  vitae history --prune 720h

  # JSON output
  vitae history --format json`,
	RunE: showHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "maximum number of runs to show")
	historyCmd.Flags().StringVar(&historyFlags.prune, "prune", "", "remove runs older than this duration (e.g. 720h)")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
}

func showHistory(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return cli.NewConfigError("", err.Error())
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if cfg.History.Backend != "sqlite" {
		return cli.NewConfigError("history.backend",
			"history requires the sqlite backend; set history.backend: sqlite and history.sqlite.path")
	}

	store, err := history.NewSQLiteStoreWithConfig(history.SQLiteStoreConfig{
		DBPath:      cfg.History.SQLite.Path,
		BusyTimeout: cfg.History.SQLite.BusyTimeout,
	})
	if err != nil {
		return cli.NewCommandError("history", err)
	}
	defer store.Close()

	if historyFlags.prune != "" {
		maxAge, err := time.ParseDuration(historyFlags.prune)
		if err != nil {
			return fmt.Errorf("invalid prune duration: %w", err)
		}
		removed, err := store.Prune(cmd.Context(), time.Now().UTC().Add(-maxAge))
		if err != nil {
			return cli.NewCommandError("history", err)
		}
		fmt.Printf("Pruned %d run(s)\n", removed)
		return nil
	}

	records, err := store.List(cmd.Context(), historyFlags.limit)
	if err != nil {
		return cli.NewCommandError("history", err)
	}

	if historyFlags.format == "json" {
		return outputJSON(records)
	}

	if len(records) == 0 {
		fmt.Println("No validation runs recorded.")
		return nil
	}

	for _, record := range records {
		status := "valid"
		if !record.Valid {
			status = "INVALID"
		}
		fmt.Printf("%s  %-7s  %s  errors=%d warnings=%d unknown=%d\n",
			record.CreatedAt.Format(time.RFC3339),
			status,
			record.Source,
			record.Errors, record.Warnings, record.UnknownFields,
		)
	}

	return nil
}
