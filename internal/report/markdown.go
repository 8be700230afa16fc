package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/OmarJxH/tree-lister/internal/model"
)

// MarkdownWriter renders reports as Markdown documents.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown output
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the full report as a markdown document.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeaderSection(md, report)
	w.writeContents(md, report)
	w.writeSummary(md, report)
	w.writeFooterSection(md)

	return len(md.String()), md.Build()
}

// writeHeaderSection writes the title and scan information table.
func (w *MarkdownWriter) writeHeaderSection(md *markdown.Markdown, report *model.Report) {
	md.H1("Directory Contents Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Tool", ToolName},
			{"Generated", report.GeneratedAt.Format(timestampLayout)},
			{"Target", "`" + report.Target + "`"},
			{"Format", report.Format.String()},
		},
	})
	md.PlainText("")
}

// writeContents writes the listing body as a fenced code block so that
// path names with markdown metacharacters render verbatim.
func (w *MarkdownWriter) writeContents(md *markdown.Markdown, report *model.Report) {
	md.H2("Contents")
	md.PlainText("")

	if len(report.Entries) == 0 {
		md.PlainText("The target directory is empty.")
		md.PlainText("")
		return
	}

	var body strings.Builder
	for i, e := range report.Entries {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(displayPath(report, e.RelPath))
	}

	md.CodeBlocks(markdown.SyntaxHighlightText, body.String())
	md.PlainText("")
}

// writeSummary writes the item count table.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Count", "Value"},
		Rows: [][]string{
			{"Total items", strconv.Itoa(report.TotalItems)},
			{"Files", strconv.Itoa(report.FileCount)},
			{"Directories", strconv.Itoa(report.DirCount)},
		},
	})
	md.PlainText("")
}

// writeFooterSection writes the identity footer.
func (w *MarkdownWriter) writeFooterSection(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("Report generated by " + ToolName)
}
