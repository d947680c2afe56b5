// Package cli provides shared plumbing for the vitae command line:
// typed command errors, text/JSON output formatting, and signal-aware
// context setup for long-running commands.
package cli
