package model

import (
	"fmt"
	"time"
)

// FileNamePrefix is the fixed prefix of report artifact file names.
const FileNamePrefix = "directory_contents_"

// fileNameTimestamp is the time layout embedded in artifact file names.
// Second granularity: two runs within the same second overwrite each
// other, which is an accepted limitation.
const fileNameTimestamp = "20060102_150405"

// Report is the result of one directory scan.
// It is created once per run and never mutated after the scan completes.
//
// Design decision: We keep the counters on the report and maintain them
// in AddEntry rather than recounting entries at output time. This keeps
// the invariant TotalItems == FileCount + DirCount in one place and lets
// writers trust the numbers.
type Report struct {
	// TargetArg is the target directory exactly as the caller supplied it.
	// Display paths in the report body are derived from this, so a
	// relative argument yields relative lines and an absolute argument
	// yields absolute lines.
	TargetArg string

	// Target is the resolved absolute path of the target directory.
	Target string

	// GeneratedAt is the timestamp of report generation. It determines
	// the artifact file name.
	GeneratedAt time.Time

	// Format is the body rendering selected for this run.
	Format Format

	// Entries holds every node visited, in lexicographic byte order of
	// RelPath.
	Entries []Entry

	// TotalItems is the number of entries visited.
	TotalItems int

	// FileCount is the number of non-directory entries.
	FileCount int

	// DirCount is the number of directory entries.
	DirCount int
}

// NewReport creates a report for the given target with the generation
// timestamp set to now.
func NewReport(targetArg, target string, format Format) *Report {
	return &Report{
		TargetArg:   targetArg,
		Target:      target,
		GeneratedAt: time.Now(),
		Format:      format,
	}
}

// AddEntry appends an entry and updates the counters.
func (r *Report) AddEntry(e Entry) {
	r.Entries = append(r.Entries, e)
	r.TotalItems++
	if e.IsDir {
		r.DirCount++
	} else {
		r.FileCount++
	}
}

// FileName returns the artifact file name for this report, derived from
// the generation timestamp at second granularity.
func (r *Report) FileName() string {
	return fmt.Sprintf("%s%s%s", FileNamePrefix, r.GeneratedAt.Format(fileNameTimestamp), r.Format.Extension())
}
