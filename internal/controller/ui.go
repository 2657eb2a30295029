// Package controller provides output frontends for run reports and usage
// statistics.
package controller

import (
	"github.com/red-newt/propsmith/internal/domain"
	m "github.com/red-newt/propsmith/internal/model"
)

// UI renders workflow results. Implementations differ in output style
// (plain text vs interactive terminal); none of them mutate the models.
type UI interface {
	// DisplayRunReport renders the outcome of an apply run, including
	// dry-run diffs when present.
	DisplayRunReport(report m.RunReport) error
	// DisplayStats renders aggregated component usage.
	DisplayStats(stats m.UsageStats) error
	// DisplayFileList renders per-file element and match counts.
	DisplayFileList(scans []domain.FileScan) error
}
