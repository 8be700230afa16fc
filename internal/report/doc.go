// Package report renders scan results as report artifacts.
//
// This package contains writers for the supported output formats:
//   - ListWriter: One sorted path per line (the default)
//   - TreeWriter: Depth-indented tree, optionally delegating to an
//     installed tree(1) binary for nicer glyphs
//   - MarkdownWriter: Markdown document with summary tables
//
// Design decision: We separate report writing from report data
// structures (which are in the model package) to follow the single
// responsibility principle. This allows adding new output formats
// without modifying the core data structures.
//
// All writers emit the same header block (tool identity, generation
// timestamp, resolved target, format) and footer block (item counts plus
// a restated identity line) around their format-specific body.
package report
