// Package main provides the entry point for the treelister CLI.
//
// treelister enumerates the contents of a directory tree and writes a
// timestamped report (flat listing, tree view, or markdown) plus item
// counts to the current working directory.
//
// Usage:
//
//	treelister <directory>
//	treelister <directory> --tree
//
// See --help for all available options.
package main

// main is the entry point for treelister.
func main() {
	Execute()
}
