package config

import "fmt"

// Validate checks the configuration for invalid values.
func Validate(cfg *Config) error {
	if cfg.Suggestions.Threshold < 0 || cfg.Suggestions.Threshold > 100 {
		return fmt.Errorf("suggestions.threshold must be between 0 and 100, got %d", cfg.Suggestions.Threshold)
	}

	switch cfg.History.Backend {
	case "memory":
	case "sqlite":
		if cfg.History.SQLite.Path == "" {
			return fmt.Errorf("history.sqlite.path is required when history.backend is sqlite")
		}
	default:
		return fmt.Errorf("history.backend must be memory or sqlite, got %q", cfg.History.Backend)
	}

	if cfg.Watch.DebounceInterval < 0 {
		return fmt.Errorf("watch.debounce_interval cannot be negative")
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", cfg.Logging.Format)
	}

	return nil
}
