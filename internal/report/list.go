package report

import (
	"io"
	"strings"

	"github.com/OmarJxH/tree-lister/internal/model"
)

// ListWriter renders the report body as a flat listing: one entry per
// line, no indentation, in the scanner's sorted order.
type ListWriter struct {
	baseWriter
}

// NewListWriter creates a ListWriter that outputs to the given writer.
func NewListWriter(output io.Writer) *ListWriter {
	return &ListWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the full report in list format.
func (w *ListWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)

	for _, e := range report.Entries {
		sb.WriteString(displayPath(report, e.RelPath))
		sb.WriteString("\n")
	}

	w.writeFooter(&sb, report)

	return w.output.Write([]byte(sb.String()))
}
