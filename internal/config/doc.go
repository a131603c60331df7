// Package config loads, normalizes, and validates prompter configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, and honours environment overrides such as
// PROMPTER_SPEED. Command-line flags are applied on top by the caller.
package config
