package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OmarJxH/tree-lister/internal/config"
	"github.com/OmarJxH/tree-lister/internal/database"
)

// NewHistoryCmd creates the history command.
// This command lists past scans recorded in the history database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [directory]",
		Short: "List past scans recorded in the history database",
		Long: `History lists previous scans of a directory from the local database.

Each run of treelister records the target, timestamp, format, item
counts, and artifact path (unless --no-history was given). This command
shows those records, newest first.

Examples:
  # Show scan history for a directory
  treelister history /var/log

  # List all directories present in the database
  treelister history --list-targets`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().BoolP("list-targets", "L", false,
		"List all targets present in the history database")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	listTargets, err := cmd.Flags().GetBool("list-targets")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database
	var target string
	if !listTargets {
		if len(args) == 0 {
			return errors.New("directory is required (use --list-targets to see recorded targets)")
		}
		// History rows store resolved absolute paths
		target, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", args[0], err)
		}
	}

	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close() //nolint:errcheck // Best effort cleanup

	ctx := cmd.Context()

	if listTargets {
		return printTargets(ctx, cmd.OutOrStdout(), db)
	}
	return printHistory(ctx, cmd.OutOrStdout(), db, target)
}

// printTargets lists every target recorded in the database.
func printTargets(ctx context.Context, out io.Writer, db *database.HistoryDB) error {
	targets, err := db.ListTargets(ctx)
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		fmt.Fprintln(out, "No scans recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "Recorded targets (%d):\n", len(targets))
	for _, t := range targets {
		fmt.Fprintf(out, "  %s\n", t)
	}
	return nil
}

// printHistory lists the recorded scans of one target, newest first.
func printHistory(ctx context.Context, out io.Writer, db *database.HistoryDB, target string) error {
	records, err := db.ScanHistory(ctx, target)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(out, "No scans recorded for %s.\n", target)
		return nil
	}

	fmt.Fprintf(out, "Scan history for %s (%d runs):\n\n", target, len(records))
	for _, r := range records {
		fmt.Fprintf(out, "  [%d] %s  format=%s  items=%d (files=%d, dirs=%d)\n",
			r.ID, r.ScannedAt.Format("2006-01-02 15:04:05"), r.Format,
			r.TotalItems, r.FileCount, r.DirCount)
		if r.ReportPath != "" {
			fmt.Fprintf(out, "      report: %s\n", r.ReportPath)
		}
	}
	return nil
}
