package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/OmarJxH/tree-lister/internal/model"
)

// ToolName identifies the generator in report headers and footers.
const ToolName = "tree-lister"

// timestampLayout is the human-readable timestamp format used in report
// headers.
const timestampLayout = "2006-01-02 15:04:05 MST"

// Writer defines the interface for report output.
// Implementations render a scanned report in a specific format.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or test
// buffers with the same API.
type Writer interface {
	// Write renders the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// NewWriter returns the writer matching the report format of cfg.
func NewWriter(output io.Writer, format model.Format, opts ...TreeWriterOption) Writer {
	switch format {
	case model.FormatTree:
		return NewTreeWriter(output, opts...)
	case model.FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewListWriter(output)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// writeHeader writes the shared report header block.
func (b baseWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                    DIRECTORY CONTENTS REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Tool:      %s\n", ToolName))
	sb.WriteString(fmt.Sprintf("Generated: %s\n", report.GeneratedAt.Format(timestampLayout)))
	sb.WriteString(fmt.Sprintf("Target:    %s\n", report.Target))
	sb.WriteString(fmt.Sprintf("Format:    %s\n", report.Format))
	sb.WriteString("\n")
}

// writeFooter writes the shared summary footer block.
func (b baseWriter) writeFooter(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Total items: %d\n", report.TotalItems))
	sb.WriteString(fmt.Sprintf("Files:       %d\n", report.FileCount))
	sb.WriteString(fmt.Sprintf("Directories: %d\n", report.DirCount))
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Report generated by %s\n", ToolName))
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// displayPath joins the target argument as given with the entry's
// relative path, so relative arguments yield relative lines and absolute
// arguments yield absolute lines.
func displayPath(report *model.Report, rel string) string {
	base := report.TargetArg
	if base == "" {
		base = report.Target
	}
	if base == "." {
		return rel
	}
	return strings.TrimSuffix(base, "/") + "/" + rel
}
