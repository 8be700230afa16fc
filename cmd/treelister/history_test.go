package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/OmarJxH/tree-lister/internal/database"
	"github.com/OmarJxH/tree-lister/internal/model"
)

// TestNewHistoryCmd tests the history command metadata.
func TestNewHistoryCmd(t *testing.T) {
	t.Parallel()

	cmd := NewHistoryCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "history [directory]" {
			t.Errorf("expected use 'history [directory]', got %q", cmd.Use)
		}
	})

	t.Run("has list-targets flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("list-targets")
		if flag == nil {
			t.Fatal("expected list-targets flag")
		}
		if flag.Shorthand != "L" {
			t.Errorf("expected shorthand 'L', got %q", flag.Shorthand)
		}
	})

	t.Run("requires a directory without list-targets", func(t *testing.T) {
		t.Parallel()

		cmd := NewHistoryCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error without arguments")
		}
		if !strings.Contains(err.Error(), "directory is required") {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// TestHistoryPrinters tests history output against a temporary database.
func TestHistoryPrinters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := database.Open(t.TempDir(), database.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	t.Run("empty database reports no scans", func(t *testing.T) {
		var buf bytes.Buffer
		if err := printTargets(ctx, &buf, db); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No scans recorded yet.") {
			t.Errorf("unexpected output: %q", buf.String())
		}

		buf.Reset()
		if err := printHistory(ctx, &buf, db, "/srv/data"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No scans recorded for /srv/data.") {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})

	t.Run("lists recorded scans and targets", func(t *testing.T) {
		rep := model.NewReport("/srv/data", "/srv/data", model.FormatTree)
		rep.AddEntry(model.Entry{RelPath: "a.txt", Name: "a.txt", Depth: 1})
		rep.AddEntry(model.Entry{RelPath: "b", Name: "b", IsDir: true, Depth: 1})
		if _, err := db.SaveScan(ctx, rep, "/tmp/report.txt"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var buf bytes.Buffer
		if err := printHistory(ctx, &buf, db, "/srv/data"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		for _, want := range []string{"Scan history for /srv/data", "format=tree", "items=2 (files=1, dirs=1)", "/tmp/report.txt"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got %q", want, output)
			}
		}

		buf.Reset()
		if err := printTargets(ctx, &buf, db); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "/srv/data") {
			t.Errorf("expected target listing, got %q", buf.String())
		}
	})
}
