package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Suggestions.Threshold != 60 {
		t.Errorf("Suggestions.Threshold = %d, want 60", cfg.Suggestions.Threshold)
	}
	if cfg.History.Backend != "memory" {
		t.Errorf("History.Backend = %q, want memory", cfg.History.Backend)
	}
	if cfg.History.SQLite.BusyTimeout != 5*time.Second {
		t.Errorf("History.SQLite.BusyTimeout = %v, want 5s", cfg.History.SQLite.BusyTimeout)
	}
	if cfg.Watch.DebounceInterval != 100*time.Millisecond {
		t.Errorf("Watch.DebounceInterval = %v, want 100ms", cfg.Watch.DebounceInterval)
	}
	if len(cfg.Watch.Extensions) != 2 {
		t.Errorf("Watch.Extensions = %v", cfg.Watch.Extensions)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("default configuration should validate: %v", err)
	}
}

func TestApplyDefaultsPreservesSetValues(t *testing.T) {
	cfg := &Config{}
	cfg.Suggestions.Threshold = 80
	cfg.Logging.Level = "debug"

	ApplyDefaults(cfg)

	if cfg.Suggestions.Threshold != 80 {
		t.Errorf("Suggestions.Threshold = %d, want 80", cfg.Suggestions.Threshold)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.History.Backend != "memory" {
		t.Errorf("unset fields should still default: Backend = %q", cfg.History.Backend)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
schema:
  path: schema.yaml
suggestions:
  threshold: 70
history:
  backend: sqlite
  sqlite:
    path: history.db
watch:
  debounce_interval: 250ms
  schedule: "@hourly"
logging:
  level: warn
  format: json
metrics:
  listen_address: ":9464"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Schema.Path != "schema.yaml" {
		t.Errorf("Schema.Path = %q", cfg.Schema.Path)
	}
	if cfg.Suggestions.Threshold != 70 {
		t.Errorf("Suggestions.Threshold = %d", cfg.Suggestions.Threshold)
	}
	if cfg.History.Backend != "sqlite" || cfg.History.SQLite.Path != "history.db" {
		t.Errorf("History = %+v", cfg.History)
	}
	if cfg.Watch.DebounceInterval != 250*time.Millisecond {
		t.Errorf("Watch.DebounceInterval = %v", cfg.Watch.DebounceInterval)
	}
	if cfg.Watch.Schedule != "@hourly" {
		t.Errorf("Watch.Schedule = %q", cfg.Watch.Schedule)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Metrics.ListenAddress != ":9464" {
		t.Errorf("Metrics.ListenAddress = %q", cfg.Metrics.ListenAddress)
	}

	// Unset fields still pick up defaults
	if cfg.History.SQLite.BusyTimeout != 5*time.Second {
		t.Errorf("History.SQLite.BusyTimeout = %v, want default", cfg.History.SQLite.BusyTimeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfigFile(t, "schema: [broken")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
schema:
  path: from-file.yaml
logging:
  level: info
`)

	t.Setenv("VITAE_SCHEMA_PATH", "from-env.yaml")
	t.Setenv("VITAE_SUGGESTIONS_THRESHOLD", "85")
	t.Setenv("VITAE_LOGGING_LEVEL", "error")
	t.Setenv("VITAE_WATCH_DEBOUNCE_INTERVAL", "1s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Schema.Path != "from-env.yaml" {
		t.Errorf("Schema.Path = %q, env should win over file", cfg.Schema.Path)
	}
	if cfg.Suggestions.Threshold != 85 {
		t.Errorf("Suggestions.Threshold = %d, want 85", cfg.Suggestions.Threshold)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error", cfg.Logging.Level)
	}
	if cfg.Watch.DebounceInterval != time.Second {
		t.Errorf("Watch.DebounceInterval = %v, want 1s", cfg.Watch.DebounceInterval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "threshold too high",
			mutate:  func(c *Config) { c.Suggestions.Threshold = 150 },
			wantErr: "suggestions.threshold",
		},
		{
			name:    "threshold negative",
			mutate:  func(c *Config) { c.Suggestions.Threshold = -1 },
			wantErr: "suggestions.threshold",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.History.Backend = "postgres" },
			wantErr: "history.backend",
		},
		{
			name:    "sqlite without path",
			mutate:  func(c *Config) { c.History.Backend = "sqlite" },
			wantErr: "history.sqlite.path",
		},
		{
			name: "sqlite with path",
			mutate: func(c *Config) {
				c.History.Backend = "sqlite"
				c.History.SQLite.Path = "history.db"
			},
		},
		{
			name:    "negative debounce",
			mutate:  func(c *Config) { c.Watch.DebounceInterval = -time.Second },
			wantErr: "watch.debounce_interval",
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want to contain %q", err, tt.wantErr)
			}
		})
	}
}
