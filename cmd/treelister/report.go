package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/OmarJxH/tree-lister/internal/config"
	"github.com/OmarJxH/tree-lister/internal/database"
	intlog "github.com/OmarJxH/tree-lister/internal/log"
	"github.com/OmarJxH/tree-lister/internal/model"
	"github.com/OmarJxH/tree-lister/internal/report"
	"github.com/OmarJxH/tree-lister/internal/scanner"
)

// runRootCmd executes the default scan-and-report behavior.
func runRootCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags and the optional config file
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Unknown options warn but never abort
	warnUnknownFlags(cmd, rawArgs)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Set up structured logging
	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runReport(ctx, cmd.OutOrStdout(), cfg, logger)
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Precedence: CLI flags over per-target file config
// over file defaults over built-in defaults.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if len(args) > 0 {
		cfg.TargetArg = args[0]
	} else if t := recoverTarget(cmd.Flags(), rawArgs); t != "" {
		// The target may have been stripped as an unknown option's value.
		cfg.TargetArg = t
	}

	var err error

	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load per-target configuration from the config file.
	// If the user explicitly specified a config file path, a missing file
	// is an error. An absent implicit config file is fine.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.FileConfig, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.FileConfig = &config.File{
			Targets: make(map[string]config.TargetConfig),
		}
	}

	// Apply the file configuration for this target first, then let CLI
	// flags override it below.
	tc := cfg.FileConfig.GetTargetConfig(cfg.TargetArg)
	if tc.Format != "" {
		cfg.Format, err = model.ParseFormat(tc.Format)
		if err != nil {
			return nil, fmt.Errorf("invalid format in config file: %w", err)
		}
	}
	cfg.ExcludeNames = append(cfg.ExcludeNames, tc.Exclude...)
	if tc.ExternalTree != nil {
		cfg.ExternalTree = *tc.ExternalTree
	}
	if tc.OutputDir != "" {
		cfg.OutputDir = tc.OutputDir
	}
	if tc.SaveHistory != nil {
		cfg.SaveHistory = *tc.SaveHistory
	}

	tree, err := cmd.Flags().GetBool("tree")
	if err != nil {
		return nil, err
	}
	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	if tree && markdown {
		return nil, config.ErrConflictingFormats
	}
	if tree {
		cfg.Format = model.FormatTree
	} else if markdown {
		cfg.Format = model.FormatMarkdown
	}

	if cmd.Flags().Changed("external-tree") {
		cfg.ExternalTree, err = cmd.Flags().GetBool("external-tree")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, err = cmd.Flags().GetString("output-dir")
		if err != nil {
			return nil, err
		}
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	if noHistory {
		cfg.SaveHistory = false
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
// Paths under the user's home directory are redacted so that verbose
// logs are safe to share.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(intlog.NewRedactHomeHandler(handler))
}

// runReport executes the scan and writes the report artifact.
func runReport(ctx context.Context, out io.Writer, cfg *config.Config, logger *slog.Logger) error {
	excludes := append([]string{scanner.SelfName()}, cfg.ExcludeNames...)
	sc := scanner.New(
		scanner.WithLogger(logger),
		scanner.WithExcludeNames(excludes...),
	)

	// Validation failures are fatal: no artifact is produced.
	target, err := sc.Validate(cfg.TargetArg)
	if err != nil {
		return err
	}

	logger.Info("starting scan",
		"target", target,
		"format", cfg.Format.String(),
		"saveHistory", cfg.SaveHistory,
	)

	entries, err := sc.Scan(ctx, target)
	if err != nil {
		return err
	}

	rep := model.NewReport(cfg.TargetArg, target, cfg.Format)
	for _, e := range entries {
		rep.AddEntry(e)
	}

	outPath, err := writeArtifact(cfg, rep, excludes)
	if err != nil {
		return err
	}

	// Console summary
	fmt.Fprintf(out, "Scan complete: %d items (%d files, %d directories)\n",
		rep.TotalItems, rep.FileCount, rep.DirCount)
	fmt.Fprintf(out, "Report written to %s (%s)\n", rep.FileName(), outPath)

	// History recording failures must not fail the run: the artifact is
	// the primary output and has already been written.
	if cfg.SaveHistory {
		if err := saveScanRecord(ctx, cfg, rep, outPath); err != nil {
			logger.Error("failed to record scan history", "error", err)
		}
	}

	return nil
}

// writeArtifact writes the report file and returns its absolute path.
// A second invocation within the same second overwrites the first; this
// is an accepted limitation of the second-granularity file name.
func writeArtifact(cfg *config.Config, rep *model.Report, excludes []string) (string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outPath := filepath.Join(cfg.OutputDir, rep.FileName())
	f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // Path is derived from flags
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}

	w := report.NewWriter(f, cfg.Format,
		report.WithExternalTree(cfg.ExternalTree),
		report.WithTreeExcludes(excludes...),
	)
	if _, err := w.Write(rep); err != nil {
		_ = f.Close() //nolint:errcheck // Best effort cleanup
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close report: %w", err)
	}

	abs, err := filepath.Abs(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve report path: %w", err)
	}
	return abs, nil
}

// saveScanRecord records the run in the history database.
func saveScanRecord(ctx context.Context, cfg *config.Config, rep *model.Report, reportPath string) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close() //nolint:errcheck // Best effort cleanup

	if _, err := db.SaveScan(ctx, rep, reportPath); err != nil {
		return err
	}
	return nil
}
