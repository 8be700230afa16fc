// Package scanner validates target directories and enumerates their
// contents.
//
// The scanner performs exactly one synchronous traversal per run. It
// includes hidden entries, descends to unlimited depth, excludes entries
// by base name (the invoking executable is always excluded), and returns
// entries sorted lexicographically by the byte order of their relative
// paths so that report output is deterministic and locale-independent.
package scanner
