package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"vitae-hq/vitae/pkg/cli"
	"vitae-hq/vitae/pkg/config"
	"vitae-hq/vitae/pkg/history"
	"vitae-hq/vitae/pkg/report"
	"vitae-hq/vitae/pkg/validation"
)

var validateFlags struct {
	file   string
	dir    string
	strict bool
	format string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate résumé files",
	Long: `Validate résumé YAML files against the configured schema.

The validate command performs comprehensive validation:
  - Structural validation (required fields, types, patterns, enums,
    length and size bounds, value formats)
  - Unknown-field detection at every nesting depth
  - "Did you mean" suggestions for likely misspelled field names

Unknown fields are advisory warnings and never fail validation on their
own; use --strict to treat them as failures.

Examples:
  # Validate single file
  vitae validate --schema schema.yml --file resume.yml

  # Validate directory
  vitae validate --schema schema.yml --dir resumes/

  # Strict mode (warnings as errors)
  vitae validate --schema schema.yml --file resume.yml --strict

  # JSON output for CI/CD
  vitae validate --schema schema.yml --file resume.yml --format json`,
	RunE: validateResumes,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.file, "file", "f", "", "résumé file to validate")
	validateCmd.Flags().StringVarP(&validateFlags.dir, "dir", "d", "", "directory of résumé files")
	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false, "treat warnings as errors")
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
}

// FileResult is the validation outcome for a single résumé file.
type FileResult struct {
	File          string           `json:"file"`
	Valid         bool             `json:"valid"`
	Summary       string           `json:"summary"`
	Messages      []report.Message `json:"messages,omitempty"`
	UnknownFields []string         `json:"unknown_fields,omitempty"`
}

func validateResumes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	files, err := collectFiles(validateFlags.file, validateFlags.dir)
	if err != nil {
		return err
	}

	v, err := validation.New(cfg.Schema.Path, validation.WithThreshold(cfg.Suggestions.Threshold))
	if err != nil {
		return cli.NewCommandError("validate", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return cli.NewCommandError("validate", err)
	}
	if store != nil {
		defer store.Close()
	}

	results := make([]FileResult, 0, len(files))
	for _, file := range files {
		result := v.ValidateFile(file)
		results = append(results, FileResult{
			File:          file,
			Valid:         result.Valid,
			Summary:       result.Summary(),
			Messages:      result.Messages,
			UnknownFields: result.UnknownFields,
		})

		if store != nil {
			if err := store.Save(cmd.Context(), history.NewRecord(file, result)); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to record run: %v\n", err)
			}
		}
	}

	if validateFlags.format == "json" {
		if err := outputJSON(results); err != nil {
			return err
		}
	} else {
		outputText(results, validateFlags.strict)
	}

	// The exit contract holds for every output format: errors always
	// fail the command, warnings fail it under --strict.
	return exitStatus(results, validateFlags.strict)
}

// collectFiles resolves the --file/--dir flags into the list of résumé
// files to validate.
func collectFiles(file, dir string) ([]string, error) {
	if file == "" && dir == "" {
		return nil, fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string
	if file != "" {
		files = append(files, file)
	}

	if dir != "" {
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				return nil, fmt.Errorf("failed to list résumé files: %w", err)
			}
			files = append(files, matches...)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no résumé files found")
	}
	return files, nil
}

// openStore opens the configured history store. Memory-backed history is
// pointless for a one-shot command, so only SQLite is opened here.
func openStore(cfg *config.Config) (history.Store, error) {
	if cfg.History.Backend != "sqlite" {
		return nil, nil
	}
	return history.NewSQLiteStoreWithConfig(history.SQLiteStoreConfig{
		DBPath:      cfg.History.SQLite.Path,
		BusyTimeout: cfg.History.SQLite.BusyTimeout,
	})
}

// tally counts the error and warning messages across all file results.
func tally(results []FileResult) (totalErrors, totalWarnings int) {
	for _, result := range results {
		for _, msg := range result.Messages {
			switch msg.Level {
			case report.LevelError:
				totalErrors++
			case report.LevelWarning:
				totalWarnings++
			}
		}
	}
	return totalErrors, totalWarnings
}

// exitStatus maps the aggregated counts to the command outcome.
func exitStatus(results []FileResult, strict bool) error {
	totalErrors, totalWarnings := tally(results)
	if totalErrors > 0 || (strict && totalWarnings > 0) {
		return cli.NewCommandError("validate", fmt.Errorf("validation failed"))
	}
	return nil
}

func outputText(results []FileResult, strict bool) {
	for _, result := range results {
		fmt.Printf("Validating %s...\n", result.File)

		if result.Valid && len(result.UnknownFields) == 0 {
			fmt.Println("✓ " + result.Summary)
			fmt.Println()
			continue
		}

		for _, msg := range result.Messages {
			switch msg.Level {
			case report.LevelError:
				fmt.Printf("✗ %s\n", formatMessage(msg))
			case report.LevelWarning:
				fmt.Printf("⚠  %s\n", formatMessage(msg))
			default:
				fmt.Printf("   %s\n", formatMessage(msg))
			}
		}

		fmt.Println()
	}

	totalErrors, totalWarnings := tally(results)

	fmt.Println("Summary:")
	fmt.Printf("  %d error(s), %d warning(s)\n", totalErrors, totalWarnings)

	if strict && totalWarnings > 0 {
		fmt.Println("  Strict mode enabled: treating warnings as errors")
	}
}

func formatMessage(msg report.Message) string {
	out := msg.Message
	if msg.FieldPath != "" {
		out = fmt.Sprintf("%s (at %s)", out, msg.FieldPath)
	}
	if msg.Suggestion != "" {
		out = fmt.Sprintf("%s - %s", out, msg.Suggestion)
	}
	return out
}

func outputJSON(data interface{}) error {
	formatter, err := cli.NewFormatter("json")
	if err != nil {
		return err
	}
	return formatter.FormatTo(os.Stdout, data)
}
