package scanner

import "errors"

// Validation errors.
// These errors are returned by Scanner.Validate and provide specific
// information about why a target directory cannot be scanned.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNotFound is returned when the target path does not exist.
	ErrNotFound = errors.New("directory not found")

	// ErrNotDirectory is returned when the target path exists but is not
	// a directory.
	ErrNotDirectory = errors.New("path is not a directory")

	// ErrPermission is returned when the target directory exists but is
	// not readable.
	ErrPermission = errors.New("directory is not readable")
)
