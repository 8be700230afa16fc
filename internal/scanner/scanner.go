package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/OmarJxH/tree-lister/internal/model"
)

// Scanner enumerates the contents of a directory tree.
type Scanner struct {
	// logger receives per-entry traversal warnings.
	logger *slog.Logger

	// excludeNames holds base names that are skipped during traversal.
	// The invoking executable's own name always belongs here so that the
	// tool never appears in its own listing or counts.
	excludeNames map[string]bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger used for traversal warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// WithExcludeNames adds base names to skip during traversal.
func WithExcludeNames(names ...string) Option {
	return func(s *Scanner) {
		for _, name := range names {
			if name != "" {
				s.excludeNames[name] = true
			}
		}
	}
}

// New creates a Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		logger:       slog.Default(),
		excludeNames: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate checks that path names an existing, readable directory and
// returns its resolved absolute path.
//
// It returns ErrNotFound if the path does not exist, ErrNotDirectory if
// it exists but is not a directory, and ErrPermission if it cannot be
// opened for reading. All three are fatal; the caller exits non-zero
// without producing an artifact.
func (s *Scanner) Validate(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotFound)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("%w: %s", ErrPermission, path)
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	// Readability check: opening the directory is the same operation the
	// traversal will perform, so a failure here means the walk would fail.
	f, err := os.Open(path) //nolint:gosec // User-provided target path is intentional
	if err != nil {
		if os.IsPermission(err) {
			return "", fmt.Errorf("%w: %s", ErrPermission, path)
		}
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// Scan recursively enumerates all entries under root, including hidden
// ones, at unlimited depth. The root itself is not included. Entries
// whose base name is excluded are skipped (excluded directories are not
// descended into).
//
// The returned slice is sorted lexicographically by the byte order of
// the relative path, which is stable, deterministic, and independent of
// the locale.
func (s *Scanner) Scan(ctx context.Context, root string) ([]model.Entry, error) {
	var entries []model.Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			// Per-entry failures (e.g. an unreadable subdirectory) are
			// logged and skipped; the target itself was validated before
			// the walk started.
			s.logger.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}

		if path == root {
			return nil
		}

		if s.excludeNames[d.Name()] {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			s.logger.Warn("skipping entry without relative path", "path", path, "error", err)
			return nil
		}
		rel = filepath.ToSlash(rel)

		entries = append(entries, model.Entry{
			RelPath: rel,
			Name:    d.Name(),
			IsDir:   d.IsDir(),
			Depth:   strings.Count(rel, "/") + 1,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("traversal of %s failed: %w", root, err)
	}

	// WalkDir visits in directory-local order; the report requires a
	// global byte-order sort over the full relative path.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RelPath < entries[j].RelPath
	})

	return entries, nil
}

// SelfName returns the base name of the running executable, used to
// exclude the tool's own file from traversal results. It returns an
// empty string if the executable path cannot be determined.
func SelfName() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Base(exe)
}
