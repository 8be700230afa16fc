package model

// Entry represents one filesystem node (file or directory) discovered
// during traversal of the target directory.
//
// Entries are transient: they exist only for the duration of a run.
// Only their formatted text and the aggregate counts survive in the
// report artifact.
type Entry struct {
	// RelPath is the slash-separated path relative to the target directory.
	RelPath string

	// Name is the base name of the entry.
	Name string

	// IsDir is true if the entry is a directory.
	IsDir bool

	// Depth is the number of path segments below the target directory.
	// A direct child of the target has depth 1.
	Depth int
}
