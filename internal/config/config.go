package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/OmarJxH/tree-lister/internal/model"
)

// AppName is the application name used for XDG directory paths.
const AppName = "treelister"

// Config holds all configuration options for one treelister run.
// This struct is populated from CLI flags and the optional config file
// and passed through the application via dependency injection rather
// than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// TargetArg is the target directory exactly as the caller supplied
	// it on the command line. It is required; a missing target is a
	// fatal validation error.
	TargetArg string

	// Format is the report body format (list, tree, or markdown).
	Format model.Format

	// ExternalTree enables delegation to an installed tree(1) binary for
	// tree-format bodies. The built-in renderer is always the fallback,
	// so output nesting is identical either way.
	ExternalTree bool

	// OutputDir is the directory that receives the report artifact.
	// It defaults to the process's current working directory, not the
	// target directory.
	OutputDir string

	// ExcludeNames are extra base names skipped during traversal, on top
	// of the invoking executable's own name.
	ExcludeNames []string

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .treelister in the current directory and
	// then in the user's home directory.
	ConfigFilePath string

	// FileConfig holds settings loaded from the configuration file.
	FileConfig *File

	// SaveHistory controls whether the run is recorded in the history
	// database.
	SaveHistory bool

	// DBDir is the directory holding the history database. Defaults to
	// the XDG data directory.
	DBDir string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format:      model.FormatList,
		OutputDir:   ".",
		SaveHistory: true,
		DBDir:       XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for treelister.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/treelister
// On macOS: ~/Library/Application Support/treelister
// On Windows: %LOCALAPPDATA%\treelister
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any scanning begins.
func (c *Config) Validate() error {
	if c.TargetArg == "" {
		return ErrNoTarget
	}
	if c.OutputDir == "" {
		return ErrNoOutputDir
	}
	return nil
}
