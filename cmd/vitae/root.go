package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vitae-hq/vitae/pkg/config"
)

var (
	// Global flags
	cfgFile    string
	schemaFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "vitae",
	Short: "Vitae - schema-driven résumé validation",
	Long: `Vitae validates structured résumé data against a declarative schema and
reports actionable errors, warnings, and field-name suggestions before
downstream document generation.

It checks:
  - Structural violations (missing required fields, wrong types,
    pattern/enum/length violations, malformed formats)
  - Unknown fields at any nesting depth, with "did you mean" suggestions
    for likely misspellings`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&schemaFile, "schema", "s", "", "schema file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file when one is given, the defaults
// otherwise, and resolves the schema path against the --schema flag.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if schemaFile != "" {
		cfg.Schema.Path = schemaFile
	}
	if cfg.Schema.Path == "" {
		return nil, fmt.Errorf("no schema configured: pass --schema or set schema.path in the config file")
	}
	return cfg, nil
}
