// Package config loads and validates the vitae configuration file.
//
// Configuration comes from three layers, later layers winning:
//
//  1. Built-in defaults (ApplyDefaults)
//  2. The YAML configuration file
//  3. VITAE_* environment variables
//
// All commands work without a configuration file; Default() provides a
// fully usable configuration for schema-path-on-the-command-line usage.
package config
