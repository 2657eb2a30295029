package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/red-newt/propsmith/internal/model"
)

// File names used inside the reports directory.
const (
	usageReportFile = "usage.json"
	runReportFile   = "run.json"
)

const reportDirPerm = 0o750

const reportFilePerm = 0o600

// ReportStore persists and retrieves run and usage reports as JSON documents
// under a reports directory.
type ReportStore interface {
	SaveStats(dir m.Path, stats m.UsageStats) error
	LoadStats(dir m.Path) (m.UsageStats, error)
	SaveRun(dir m.Path, report m.RunReport) error
	LoadRun(dir m.Path) (m.RunReport, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveStats(dir m.Path, stats m.UsageStats) error {
	return writeReport(dir, usageReportFile, stats)
}

func (rs *reportStore) LoadStats(dir m.Path) (m.UsageStats, error) {
	var stats m.UsageStats

	err := readReport(dir, usageReportFile, &stats)

	return stats, err
}

func (rs *reportStore) SaveRun(dir m.Path, report m.RunReport) error {
	return writeReport(dir, runReportFile, report)
}

func (rs *reportStore) LoadRun(dir m.Path) (m.RunReport, error) {
	var report m.RunReport

	err := readReport(dir, runReportFile, &report)

	return report, err
}

func writeReport(dir m.Path, name string, v any) error {
	if err := os.MkdirAll(string(dir), reportDirPerm); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	data = append(data, '\n')

	path := filepath.Join(string(dir), name)
	if err := os.WriteFile(path, data, reportFilePerm); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func readReport(dir m.Path, name string, v any) error {
	path := filepath.Join(string(dir), name)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode report %s: %w", path, err)
	}

	return nil
}
