package report

import (
	"io"
	"os/exec"
	"sort"
	"strings"

	"github.com/OmarJxH/tree-lister/internal/model"
)

// Tree rendering glyphs for the built-in renderer. The guide is a fixed
// four-character unit repeated once per indentation level.
const (
	treeGuide  = "│   "
	treeBranch = "├── "
)

// TreeWriter renders the report body as a depth-indented tree.
//
// The built-in renderer prints the target as the first body line, then
// each entry with depth-1 guide units followed by a branch glyph and the
// entry's base name. When delegation is enabled and a tree(1) binary is
// installed, the body comes from the external tool instead; glyphs may
// differ but nesting matches. The external tool never influences the
// counts in the footer.
type TreeWriter struct {
	baseWriter

	// useExternal enables delegation to an installed tree binary.
	useExternal bool

	// excludeNames are base names hidden from the external tree binary,
	// keeping delegated bodies consistent with the scanner's exclusions.
	excludeNames []string

	// lookPath and runTree are replaceable for tests.
	lookPath func(file string) (string, error)
	runTree  func(bin, target, excludePattern string) ([]byte, error)
}

// TreeWriterOption configures a TreeWriter.
type TreeWriterOption func(*TreeWriter)

// WithExternalTree enables delegation to an installed tree(1) binary,
// falling back to the built-in renderer when it is missing or fails.
func WithExternalTree(enable bool) TreeWriterOption {
	return func(w *TreeWriter) {
		w.useExternal = enable
	}
}

// WithTreeExcludes passes excluded base names through to the external
// tree binary, so a delegated body hides the same entries the scanner
// skipped.
func WithTreeExcludes(names ...string) TreeWriterOption {
	return func(w *TreeWriter) {
		for _, name := range names {
			if name != "" {
				w.excludeNames = append(w.excludeNames, name)
			}
		}
	}
}

// NewTreeWriter creates a TreeWriter that outputs to the given writer.
func NewTreeWriter(output io.Writer, opts ...TreeWriterOption) *TreeWriter {
	w := &TreeWriter{
		baseWriter: newBaseWriter(output),
		lookPath:   exec.LookPath,
		runTree: func(bin, target, excludePattern string) ([]byte, error) {
			// -a includes hidden entries, matching the scanner;
			// --noreport drops tree's own count line, since the footer
			// counts come from the scanner; -I hides the excluded names.
			args := []string{"-a", "--noreport"}
			if excludePattern != "" {
				args = append(args, "-I", excludePattern)
			}
			args = append(args, target)
			return exec.Command(bin, args...).Output() //nolint:gosec // bin comes from LookPath
		},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write renders the full report in tree format.
func (w *TreeWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)

	if body, ok := w.externalBody(report); ok {
		sb.WriteString(body)
	} else {
		w.writeBody(&sb, report)
	}

	w.writeFooter(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeBody renders the built-in depth-indented tree.
func (w *TreeWriter) writeBody(sb *strings.Builder, report *model.Report) {
	root := report.TargetArg
	if root == "" {
		root = report.Target
	}
	sb.WriteString(root)
	sb.WriteString("\n")

	for _, e := range hierarchical(report.Entries) {
		sb.WriteString(strings.Repeat(treeGuide, e.Depth-1))
		sb.WriteString(treeBranch)
		sb.WriteString(e.Name)
		sb.WriteString("\n")
	}
}

// hierarchical returns the entries in depth-first order, so a
// directory's children directly follow it before any later sibling.
// The report's flat byte-order sort puts a sibling such as "b.txt"
// between "b" and "b/c.txt" ('.' sorts below '/'), which would detach
// children from their parent line in the rendered tree.
func hierarchical(entries []model.Entry) []model.Entry {
	sorted := make([]model.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return treeLess(sorted[i].RelPath, sorted[j].RelPath)
	})
	return sorted
}

// treeLess compares relative paths with the separator ranked below
// every other byte, keeping descendants adjacent to their ancestor.
func treeLess(a, b string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		return treeRank(a[i]) < treeRank(b[i])
	}
	return len(a) < len(b)
}

// treeRank orders bytes for tree-mode comparison.
func treeRank(c byte) int {
	if c == '/' {
		return -1
	}
	return int(c)
}

// externalBody runs the external tree binary if delegation is enabled
// and the binary is available. It reports ok=false on any failure so the
// caller falls back to the built-in renderer.
func (w *TreeWriter) externalBody(report *model.Report) (string, bool) {
	if !w.useExternal {
		return "", false
	}

	bin, err := w.lookPath("tree")
	if err != nil {
		return "", false
	}

	out, err := w.runTree(bin, report.Target, strings.Join(w.excludeNames, "|"))
	if err != nil || len(out) == 0 {
		return "", false
	}

	body := string(out)
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return body, true
}
