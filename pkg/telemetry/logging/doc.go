// Package logging configures structured logging on top of log/slog.
//
// Level and format are parsed from plain configuration strings so the CLI
// and config file can drive them directly. JSON output is the default;
// text output suits interactive watch sessions.
package logging
