package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/red-newt/propsmith/internal/adapter"
	"github.com/red-newt/propsmith/internal/config"
	m "github.com/red-newt/propsmith/internal/model"
)

func newTestWorkflow(t *testing.T, cfg *config.Config) Workflow {
	t.Helper()

	fs := adapter.NewLocalSourceFSAdapter()
	orch := NewOrchestrator(fs, adapter.NewTreeSitterParser(), cfg, nil)

	return NewWorkflow(fs, orch, adapter.NewReportStore(), cfg, nil)
}

func writeFixtureTree(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	files := map[string]string{
		"a.jsx": "import { Field } from \"./field\";\n" +
			"export const A = () => (\n" +
			"  <div>\n" +
			"    <Field />\n" +
			"    <Field name=\"x\" />\n" +
			"  </div>\n" +
			");\n",
		"b.jsx":      "export const B = () => <Field />;\n",
		"broken.jsx": "export function Broken() { return (<Field name=\n}\n",
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func TestWorkflow_Apply_ToleratesMalformedFile(t *testing.T) {
	dir := writeFixtureTree(t)
	wf := newTestWorkflow(t, testConfig())

	report, err := wf.Apply(context.Background(), ApplyArgs{
		Paths: []m.Path{m.Path(dir + "/...")},
	})

	require.NoError(t, err)
	require.Equal(t, 3, report.TotalFiles())
	require.Equal(t, 2, report.Modified)
	require.Equal(t, 1, report.Errored)
	require.Zero(t, report.Unmodified)

	for _, f := range report.Files {
		if f.Status == m.FileErrored {
			require.Contains(t, string(f.Path), "broken.jsx")
			require.NotEmpty(t, f.Err)
		}
	}
}

func TestWorkflow_Apply_ParallelMatchesSequential(t *testing.T) {
	cfg := testConfig()

	sequentialDir := writeFixtureTree(t)
	parallelDir := writeFixtureTree(t)

	wf := newTestWorkflow(t, cfg)

	seq, err := wf.Apply(context.Background(), ApplyArgs{Paths: []m.Path{m.Path(sequentialDir + "/...")}})
	require.NoError(t, err)

	par, err := wf.Apply(context.Background(), ApplyArgs{
		Paths:   []m.Path{m.Path(parallelDir + "/...")},
		Threads: 4,
	})
	require.NoError(t, err)

	require.Equal(t, seq.Modified, par.Modified)
	require.Equal(t, seq.Errored, par.Errored)
	require.Equal(t, len(seq.Files), len(par.Files))
}

func TestWorkflow_Apply_UnreadableRootIsFatal(t *testing.T) {
	wf := newTestWorkflow(t, testConfig())

	_, err := wf.Apply(context.Background(), ApplyArgs{
		Paths: []m.Path{"/does/not/exist/..."},
	})

	require.Error(t, err)
}

func TestWorkflow_Apply_SavesRunReport(t *testing.T) {
	dir := writeFixtureTree(t)
	reports := m.Path(filepath.Join(t.TempDir(), "reports"))

	wf := newTestWorkflow(t, testConfig())

	_, err := wf.Apply(context.Background(), ApplyArgs{
		Paths:   []m.Path{m.Path(dir + "/...")},
		Reports: reports,
	})
	require.NoError(t, err)

	store := adapter.NewReportStore()
	saved, err := store.LoadRun(reports)
	require.NoError(t, err)
	require.Equal(t, 3, saved.TotalFiles())
}

func TestWorkflow_Stats_AggregatesAcrossFiles(t *testing.T) {
	dir := writeFixtureTree(t)
	wf := newTestWorkflow(t, testConfig())

	stats, err := wf.Stats(context.Background(), StatsArgs{
		Paths: []m.Path{m.Path(dir + "/...")},
	})

	require.NoError(t, err)
	require.Equal(t, 2, stats.FilesScanned)
	require.Equal(t, 1, stats.FilesErrored)
	require.Len(t, stats.Components, 1)

	field := stats.Components[0]
	require.Equal(t, "Field", field.Name)
	require.Equal(t, 3, field.Total)
	require.Len(t, field.Files, 2)
	require.Equal(t, m.PriorityMedium, field.Priority)
}

func TestWorkflow_Stats_SaveAndLoadRoundTrip(t *testing.T) {
	dir := writeFixtureTree(t)
	reports := m.Path(filepath.Join(t.TempDir(), "reports"))

	wf := newTestWorkflow(t, testConfig())

	computed, err := wf.Stats(context.Background(), StatsArgs{
		Paths:   []m.Path{m.Path(dir + "/...")},
		Save:    true,
		Reports: reports,
	})
	require.NoError(t, err)

	loaded, err := wf.Stats(context.Background(), StatsArgs{
		FromReport: true,
		Reports:    reports,
	})
	require.NoError(t, err)
	require.Equal(t, computed.Components, loaded.Components)
}

func TestWorkflow_List_ReportsPerFileCounts(t *testing.T) {
	dir := writeFixtureTree(t)
	wf := newTestWorkflow(t, testConfig())

	scans, err := wf.List(context.Background(), ListArgs{
		Paths: []m.Path{m.Path(dir + "/...")},
	})

	require.NoError(t, err)
	require.Len(t, scans, 3)

	matchesByFile := map[string]int{}
	for _, scan := range scans {
		matchesByFile[filepath.Base(string(scan.Path))] = len(scan.Sightings)
	}

	require.Equal(t, 2, matchesByFile["a.jsx"])
	require.Equal(t, 1, matchesByFile["b.jsx"])
	require.Equal(t, 0, matchesByFile["broken.jsx"])
}
