package model

import "time"

// MergeOutcome summarizes one element's attribute merge.
type MergeOutcome struct {
	Added   []string `json:"added,omitempty"`
	Updated []string `json:"updated,omitempty"`
	Skipped []string `json:"skipped,omitempty"`
	Changed bool     `json:"changed"`
}

// FileStatus classifies the outcome of processing a single file.
type FileStatus string

const (
	// FileModified means at least one element changed and the file was
	// rewritten (or would be, under dry run).
	FileModified FileStatus = "modified"
	// FileUnmodified means the file was scanned and left untouched.
	FileUnmodified FileStatus = "unmodified"
	// FileErrored means the file could not be processed. The run continues.
	FileErrored FileStatus = "errored"
	// FileSkipped means an ignore directive excluded the whole file.
	FileSkipped FileStatus = "skipped"
)

// FileOutcome holds the per-file result of an apply run.
type FileOutcome struct {
	Path    Path       `json:"path"`
	Status  FileStatus `json:"status"`
	Matches int        `json:"matches"`
	Added   int        `json:"added"`
	Updated int        `json:"updated"`
	Skipped int        `json:"skipped"`
	Diff    string     `json:"-"` // unified diff, populated on dry runs only
	Err     string     `json:"error,omitempty"`
}

// RunReport aggregates an apply run across all scanned files.
type RunReport struct {
	Files        []FileOutcome `json:"files"`
	Modified     int           `json:"modified"`
	Unmodified   int           `json:"unmodified"`
	Errored      int           `json:"errored"`
	SkippedFiles int           `json:"skipped_files"`
	BytesScanned int64         `json:"bytes_scanned"`
	ElapsedMS    int64         `json:"elapsed_ms"`
	StartedAt    time.Time     `json:"started_at"`
	DryRun       bool          `json:"dry_run"`
}

// TotalFiles returns the number of files the run visited.
func (r RunReport) TotalFiles() int {
	return len(r.Files)
}
