package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vitae-hq/vitae/pkg/cli"
	"vitae-hq/vitae/pkg/config"
	"vitae-hq/vitae/pkg/history"
	"vitae-hq/vitae/pkg/telemetry/logging"
	"vitae-hq/vitae/pkg/telemetry/metrics"
	"vitae-hq/vitae/pkg/validation"
	"vitae-hq/vitae/pkg/watcher"
)

var watchFlags struct {
	path        string
	schedule    string
	metricsAddr string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Revalidate résumé files on change",
	Long: `Watch a résumé file or directory and revalidate on every change.

File events are debounced so editor write bursts trigger a single run.
An optional cron schedule adds periodic sweeps of the watched path, and
an optional metrics address exposes Prometheus metrics for the session.

Examples:
  # Watch a single file
  vitae watch --schema schema.yml --path resume.yml

  # Watch a directory with hourly sweeps
  vitae watch --schema schema.yml --path resumes/ --schedule "0 * * * *"

  # Expose Prometheus metrics
  vitae watch --schema schema.yml --path resumes/ --metrics-addr :9090`,
	RunE: watchResumes,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.path, "path", "p", "", "file or directory to watch")
	watchCmd.Flags().StringVar(&watchFlags.schedule, "schedule", "", "cron expression for periodic sweeps")
	watchCmd.Flags().StringVar(&watchFlags.metricsAddr, "metrics-addr", "", "address to serve /metrics on")
}

func watchResumes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}
	if watchFlags.path == "" {
		return fmt.Errorf("--path must be specified")
	}
	if watchFlags.schedule != "" {
		cfg.Watch.Schedule = watchFlags.schedule
	}
	if watchFlags.metricsAddr != "" {
		cfg.Metrics.ListenAddress = watchFlags.metricsAddr
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	logger, err := logging.New(logging.Config{
		Level:  logLevel,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return cli.NewConfigError("logging", err.Error())
	}

	v, err := validation.New(cfg.Schema.Path, validation.WithThreshold(cfg.Suggestions.Threshold))
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	store, err := openWatchStore(cfg)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer store.Close()

	observed := metrics.NewValidation()
	if cfg.Metrics.ListenAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", observed.Handler())
		go func() {
			logger.Info("Metrics endpoint listening", "addr", cfg.Metrics.ListenAddress)
			if err := http.ListenAndServe(cfg.Metrics.ListenAddress, mux); err != nil {
				logger.Error("Metrics endpoint failed", "error", err)
			}
		}()
	}

	w, err := watcher.New(&watcher.Config{
		Path:             watchFlags.path,
		DebounceInterval: cfg.Watch.DebounceInterval,
		Extensions:       cfg.Watch.Extensions,
		Schedule:         cfg.Watch.Schedule,
		SkipHidden:       true,
	}, logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	ctx := cli.SetupSignalHandler()

	revalidate := func(changed string) {
		files := []string{changed}
		if info, err := os.Stat(changed); err == nil && info.IsDir() {
			files, err = collectFiles("", changed)
			if err != nil {
				logger.Warn("Sweep found no files", "path", changed, "error", err)
				return
			}
		}

		for _, file := range files {
			start := time.Now()
			result := v.ValidateFile(file)
			observed.Observe(result, time.Since(start))

			if err := store.Save(ctx, history.NewRecord(file, result)); err != nil {
				logger.Warn("Failed to record run", "file", file, "error", err)
			}

			if result.Valid && !result.HasWarnings() {
				logger.Info("Validation passed", "file", file)
				continue
			}
			logger.Warn("Validation findings",
				"file", file,
				"valid", result.Valid,
				"summary", result.Summary(),
			)
			fmt.Println(result.Detailed())
		}
	}

	// Validate once up front so the session starts from a known state
	revalidate(watchFlags.path)

	return w.Watch(ctx, revalidate)
}

// openWatchStore opens the configured history store. Watch sessions are
// long-lived, so the memory store is a useful default here.
func openWatchStore(cfg *config.Config) (history.Store, error) {
	if cfg.History.Backend == "sqlite" {
		return history.NewSQLiteStoreWithConfig(history.SQLiteStoreConfig{
			DBPath:      cfg.History.SQLite.Path,
			BusyTimeout: cfg.History.SQLite.BusyTimeout,
		})
	}
	return history.NewMemoryStore(), nil
}
