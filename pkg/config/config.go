package config

import "time"

// Config is the top-level configuration for vitae.
type Config struct {
	// Schema configures where the validation schema is loaded from.
	Schema SchemaConfig `yaml:"schema"`

	// Suggestions configures the field-name suggestion engine.
	Suggestions SuggestionsConfig `yaml:"suggestions"`

	// History configures persistence of validation run records.
	History HistoryConfig `yaml:"history"`

	// Watch configures watch-mode behavior.
	Watch WatchConfig `yaml:"watch"`

	// Logging configures structured log output.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures the Prometheus metrics endpoint.
	Metrics MetricsConfig `yaml:"metrics"`
}

// SchemaConfig configures schema loading.
type SchemaConfig struct {
	// Path is the YAML schema file describing acceptable documents.
	Path string `yaml:"path"`
}

// SuggestionsConfig configures the suggestion engine.
type SuggestionsConfig struct {
	// Threshold is the minimum similarity score (0-100) before an unknown
	// field gets a "did you mean" suggestion.
	Threshold int `yaml:"threshold"`
}

// HistoryConfig configures validation history persistence.
type HistoryConfig struct {
	// Backend selects the history store: "memory" or "sqlite".
	Backend string `yaml:"backend"`

	// SQLite configures the SQLite backend.
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// SQLiteConfig configures the SQLite history store.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string `yaml:"path"`

	// BusyTimeout is how long to wait for database locks.
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	// DebounceInterval is how long to wait after a file event before
	// revalidating, so editor write bursts trigger one run.
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// Extensions is the list of file extensions to watch.
	Extensions []string `yaml:"extensions"`

	// Schedule is an optional cron expression for periodic sweeps in
	// addition to event-driven revalidation.
	Schedule string `yaml:"schedule"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is the log output format: json or text.
	Format string `yaml:"format"`
}

// MetricsConfig configures the metrics endpoint.
type MetricsConfig struct {
	// ListenAddress is the address to serve /metrics on during watch
	// sessions. Empty disables the endpoint.
	ListenAddress string `yaml:"listen_address"`
}
