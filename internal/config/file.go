package config

// TargetConfig holds per-directory configuration.
// This allows customizing scan behavior for frequently-scanned paths.
type TargetConfig struct {
	// Format is the report format for this target ("list", "tree", or
	// "markdown"). If empty, the default format is used.
	Format string `yaml:"format,omitempty"`

	// Exclude lists extra base names to skip during traversal.
	Exclude []string `yaml:"exclude,omitempty"`

	// ExternalTree enables delegation to an installed tree(1) binary
	// for tree-format reports.
	ExternalTree *bool `yaml:"externalTree,omitempty"`

	// OutputDir overrides the report output directory.
	OutputDir string `yaml:"outputDir,omitempty"`

	// SaveHistory controls recording the run in the history database.
	SaveHistory *bool `yaml:"saveHistory,omitempty"`
}

// File represents the structure of the .treelister configuration file.
type File struct {
	// Targets maps directory paths to their target-specific
	// configurations. Keys are matched against the target argument as
	// given on the command line.
	Targets map[string]TargetConfig `yaml:"targets,omitempty"`

	// Defaults contains the configuration applied to every target unless
	// overridden in a target-specific block.
	Defaults TargetConfig `yaml:"defaults,omitempty"`
}

// GetTargetConfig returns the configuration for a specific target path.
// It merges the target-specific configuration with the defaults.
func (cf *File) GetTargetConfig(target string) TargetConfig {
	result := cf.Defaults

	if tc, ok := cf.Targets[target]; ok {
		if tc.Format != "" {
			result.Format = tc.Format
		}
		if len(tc.Exclude) > 0 {
			result.Exclude = tc.Exclude
		}
		if tc.ExternalTree != nil {
			result.ExternalTree = tc.ExternalTree
		}
		if tc.OutputDir != "" {
			result.OutputDir = tc.OutputDir
		}
		if tc.SaveHistory != nil {
			result.SaveHistory = tc.SaveHistory
		}
	}

	return result
}
