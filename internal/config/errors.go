package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoTarget is returned when no target directory is specified.
	// The target directory is the required positional argument.
	ErrNoTarget = errors.New("no target directory specified: provide a directory path as an argument")

	// ErrNoOutputDir is returned when the output directory is empty.
	// The report artifact needs a destination directory.
	ErrNoOutputDir = errors.New("no output directory specified")

	// ErrConflictingFormats is returned when more than one format flag is
	// given. Only one report format can be used per run.
	ErrConflictingFormats = errors.New("conflicting report formats: --tree and --markdown cannot be used together")
)
