package config

import (
	"time"

	"vitae-hq/vitae/pkg/suggest"
)

// Default returns a configuration populated with default values.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for any unset fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Suggestions.Threshold == 0 {
		cfg.Suggestions.Threshold = suggest.DefaultThreshold
	}

	if cfg.History.Backend == "" {
		cfg.History.Backend = "memory"
	}
	if cfg.History.SQLite.BusyTimeout == 0 {
		cfg.History.SQLite.BusyTimeout = 5 * time.Second
	}

	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = 100 * time.Millisecond
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = []string{".yaml", ".yml"}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
