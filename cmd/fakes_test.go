package cmd

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"

	"github.com/red-newt/propsmith/internal/domain"
	m "github.com/red-newt/propsmith/internal/model"
)

// fakeWorkflow records the arguments it was driven with and returns canned
// results, so command tests exercise flag parsing and wiring only.
type fakeWorkflow struct {
	applyArgs *domain.ApplyArgs
	statsArgs *domain.StatsArgs
	listArgs  *domain.ListArgs

	report m.RunReport
	stats  m.UsageStats
	scans  []domain.FileScan
	err    error
}

func (f *fakeWorkflow) Apply(_ context.Context, args domain.ApplyArgs) (m.RunReport, error) {
	f.applyArgs = &args

	return f.report, f.err
}

func (f *fakeWorkflow) Stats(_ context.Context, args domain.StatsArgs) (m.UsageStats, error) {
	f.statsArgs = &args

	return f.stats, f.err
}

func (f *fakeWorkflow) List(_ context.Context, args domain.ListArgs) ([]domain.FileScan, error) {
	f.listArgs = &args

	return f.scans, f.err
}

// fakeUI records what the command asked it to display.
type fakeUI struct {
	report *m.RunReport
	stats  *m.UsageStats
	scans  []domain.FileScan
}

func (f *fakeUI) DisplayRunReport(report m.RunReport) error {
	f.report = &report

	return nil
}

func (f *fakeUI) DisplayStats(stats m.UsageStats) error {
	f.stats = &stats

	return nil
}

func (f *fakeUI) DisplayFileList(scans []domain.FileScan) error {
	f.scans = scans

	return nil
}

// newTestCLI builds a fresh command tree wired to fakes, swapping the package
// vars for the duration of the test.
func newTestCLI(fw *fakeWorkflow, fui *fakeUI) (*cobra.Command, *bytes.Buffer, func()) {
	originalWorkflow, originalUI, originalCfg := workflow, ui, cfg
	workflow, ui, cfg = fw, fui, nil

	root := newRootCmd()
	root.AddCommand(newApplyCmd(), newStatsCmd(), newListCmd())

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})

	cleanup := func() {
		workflow, ui, cfg = originalWorkflow, originalUI, originalCfg
	}

	return root, &out, cleanup
}
