package model

import "fmt"

// Format selects the report body rendering.
type Format int

// Report body formats.
const (
	// FormatList renders one sorted path per line. This is the default.
	FormatList Format = iota

	// FormatTree renders a depth-indented tree.
	FormatTree

	// FormatMarkdown renders a markdown document with summary tables.
	FormatMarkdown
)

// String returns the format name as used in config files and report headers.
func (f Format) String() string {
	switch f {
	case FormatList:
		return "list"
	case FormatTree:
		return "tree"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// Extension returns the file extension for report artifacts of this format.
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return ".md"
	}
	return ".txt"
}

// ParseFormat converts a format name into a Format.
// It returns an error for unrecognized names.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "list", "":
		return FormatList, nil
	case "tree":
		return FormatTree, nil
	case "markdown":
		return FormatMarkdown, nil
	default:
		return FormatList, fmt.Errorf("unknown report format %q (expected list, tree, or markdown)", s)
	}
}
