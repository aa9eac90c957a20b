// Package errdoc provides public constants and utilities for external tools
// integrating with errdoc.
package errdoc

// Exit codes returned by the errdoc CLI.
// These constants allow external tools (CI scripts, git hooks) to check exit
// codes symbolically rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (file unreadable, stale listing
	// detected by check, etc.).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid config,
	// validation failure, bad extraction pattern, etc.).
	ExitConfigError = 2
)
