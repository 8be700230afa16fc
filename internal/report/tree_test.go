package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/OmarJxH/tree-lister/internal/model"
)

// TestTreeWriter tests the built-in tree renderer.
func TestTreeWriter(t *testing.T) {
	t.Parallel()

	t.Run("root is the unindented first body line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTreeWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		body := bodyLines(t, buf.String())
		if len(body) == 0 {
			t.Fatal("expected body lines")
		}
		if body[0] != "testdata" {
			t.Errorf("expected root as first line, got %q", body[0])
		}
	})

	t.Run("child indentation is one guide unit deeper than its parent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTreeWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		body := bodyLines(t, buf.String())
		want := []string{
			"testdata",
			treeBranch + "a.txt",
			treeBranch + "b",
			treeGuide + treeBranch + "c.txt",
		}
		if len(body) != len(want) {
			t.Fatalf("expected %d lines, got %d: %v", len(want), len(body), body)
		}
		for i := range want {
			if body[i] != want[i] {
				t.Errorf("line %d: expected %q, got %q", i, want[i], body[i])
			}
		}
	})

	t.Run("parents precede children", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTreeWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		parent := strings.Index(output, treeBranch+"b\n")
		child := strings.Index(output, treeGuide+treeBranch+"c.txt\n")
		if parent == -1 || child == -1 || parent > child {
			t.Errorf("expected parent before child, got parent=%d child=%d", parent, child)
		}
	})

	t.Run("footer counts come from the scanner", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTreeWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "Total items: 3") {
			t.Error("expected footer to contain scanner counts")
		}
	})

	t.Run("children follow their parent despite byte-order siblings", func(t *testing.T) {
		t.Parallel()

		// In the report's flat byte order, b.txt sits between b and
		// b/c.txt ('.' sorts below '/'). The rendered tree must still
		// place c.txt directly under b.
		r := model.NewReport("testdata", "/home/user/testdata", model.FormatTree)
		r.AddEntry(model.Entry{RelPath: "b", Name: "b", IsDir: true, Depth: 1})
		r.AddEntry(model.Entry{RelPath: "b.txt", Name: "b.txt", Depth: 1})
		r.AddEntry(model.Entry{RelPath: "b/c.txt", Name: "c.txt", Depth: 2})

		var buf bytes.Buffer
		if _, err := NewTreeWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		body := bodyLines(t, buf.String())
		want := []string{
			"testdata",
			treeBranch + "b",
			treeGuide + treeBranch + "c.txt",
			treeBranch + "b.txt",
		}
		if len(body) != len(want) {
			t.Fatalf("expected %d lines, got %d: %v", len(want), len(body), body)
		}
		for i := range want {
			if body[i] != want[i] {
				t.Errorf("line %d: expected %q, got %q", i, want[i], body[i])
			}
		}
	})
}

// TestTreeLess tests the tree-mode path comparison.
func TestTreeLess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want bool
	}{
		{"b/c.txt", "b.txt", true},
		{"b.txt", "b/c.txt", false},
		{"b", "b/c.txt", true},
		{"a.txt", "b", true},
		{"b", "b", false},
	}

	for _, tt := range tests {
		if got := treeLess(tt.a, tt.b); got != tt.want {
			t.Errorf("treeLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestTreeWriterExternal tests delegation to an external tree binary.
func TestTreeWriterExternal(t *testing.T) {
	t.Parallel()

	t.Run("uses external output when available", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTreeWriter(&buf, WithExternalTree(true))
		w.lookPath = func(string) (string, error) { return "/usr/bin/tree", nil }
		w.runTree = func(_, target, _ string) ([]byte, error) {
			return []byte(target + "\n├── a.txt\n└── b\n    └── c.txt\n"), nil
		}

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "└── c.txt") {
			t.Error("expected external tree body in output")
		}
		if !strings.Contains(output, "Total items: 3") {
			t.Error("expected footer counts even with external body")
		}
	})

	t.Run("falls back when the binary is missing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTreeWriter(&buf, WithExternalTree(true))
		w.lookPath = func(string) (string, error) { return "", errors.New("not found") }

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), treeBranch+"a.txt") {
			t.Error("expected built-in renderer output")
		}
	})

	t.Run("falls back when the binary fails", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTreeWriter(&buf, WithExternalTree(true))
		w.lookPath = func(string) (string, error) { return "/usr/bin/tree", nil }
		w.runTree = func(string, string, string) ([]byte, error) { return nil, errors.New("exec failed") }

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), treeBranch+"a.txt") {
			t.Error("expected built-in renderer output")
		}
	})

	t.Run("excluded names reach the external binary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTreeWriter(&buf,
			WithExternalTree(true),
			WithTreeExcludes("treelister", ".git", ""),
		)
		w.lookPath = func(string) (string, error) { return "/usr/bin/tree", nil }

		var gotPattern string
		w.runTree = func(_, target, excludePattern string) ([]byte, error) {
			gotPattern = excludePattern
			return []byte(target + "\n├── a.txt\n"), nil
		}

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Empty names are dropped; the rest form the -I pattern, so the
		// delegated body hides the same entries the scanner skipped.
		if gotPattern != "treelister|.git" {
			t.Errorf("expected exclude pattern %q, got %q", "treelister|.git", gotPattern)
		}
	})

	t.Run("disabled delegation never consults the binary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTreeWriter(&buf)
		w.lookPath = func(string) (string, error) {
			t.Error("lookPath should not be called")
			return "", nil
		}

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
