package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/OmarJxH/tree-lister/internal/model"
)

// TestNewConfig tests default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.Format != model.FormatList {
		t.Errorf("expected list format default, got %v", cfg.Format)
	}
	if cfg.OutputDir != "." {
		t.Errorf("expected current directory output default, got %q", cfg.OutputDir)
	}
	if !cfg.SaveHistory {
		t.Error("expected history saving enabled by default")
	}
	if cfg.DBDir == "" {
		t.Error("expected non-empty database directory default")
	}
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) { c.TargetArg = "." },
		},
		{
			name:    "missing target",
			mutate:  func(*Config) {},
			wantErr: ErrNoTarget,
		},
		{
			name: "empty output directory",
			mutate: func(c *Config) {
				c.TargetArg = "."
				c.OutputDir = ""
			},
			wantErr: ErrNoOutputDir,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestLoadConfigFile tests YAML config file loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads defaults and targets", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		content := `
defaults:
  format: list
  exclude:
    - .git
targets:
  /var/log:
    format: tree
    exclude:
      - journal
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cf.Defaults.Format != "list" {
			t.Errorf("expected default format list, got %q", cf.Defaults.Format)
		}

		tc := cf.GetTargetConfig("/var/log")
		if tc.Format != "tree" {
			t.Errorf("expected tree format for /var/log, got %q", tc.Format)
		}
		if len(tc.Exclude) != 1 || tc.Exclude[0] != "journal" {
			t.Errorf("expected journal exclusion, got %v", tc.Exclude)
		}
	})

	t.Run("unknown target falls back to defaults", func(t *testing.T) {
		t.Parallel()

		cf := &File{
			Defaults: TargetConfig{Format: "tree"},
			Targets:  map[string]TargetConfig{},
		}

		tc := cf.GetTargetConfig("/elsewhere")
		if tc.Format != "tree" {
			t.Errorf("expected default format, got %q", tc.Format)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid yaml returns error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(path, []byte("defaults: [broken"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})
}

// TestFindConfigFile tests config file discovery.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(path, []byte("defaults: {}"), 0600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope")); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

// TestXDGDataDir tests the data directory path.
func TestXDGDataDir(t *testing.T) {
	t.Parallel()

	dir := XDGDataDir()
	if dir == "" {
		t.Fatal("expected non-empty data directory")
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("expected directory ending in %q, got %q", AppName, dir)
	}
}
