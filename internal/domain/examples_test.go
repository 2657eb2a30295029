package domain

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/red-newt/propsmith/internal/model"
)

// The examples/ tree at the repository root doubles as an integration
// fixture: direct-name and provenance matches, aliased imports, ignore
// directives, and one deliberately malformed file.
func examplesRoot(t *testing.T) string {
	t.Helper()

	abs, err := filepath.Abs(filepath.Join("..", "..", "examples"))
	require.NoError(t, err)

	return abs
}

func TestWorkflow_Stats_OverExampleProjects(t *testing.T) {
	wf := newTestWorkflow(t, testConfig())

	stats, err := wf.Stats(context.Background(), StatsArgs{
		Paths: []m.Path{m.Path(examplesRoot(t) + "/...")},
	})
	require.NoError(t, err)

	require.Equal(t, 3, stats.FilesScanned, "legacy.jsx is skipped, broken.jsx errored")
	require.Equal(t, 1, stats.FilesErrored)

	byName := map[string]m.ComponentUsage{}
	for _, c := range stats.Components {
		byName[c.Name] = c
	}

	field := byName["Field"]
	require.Equal(t, 4, field.Total, "3 in basic/app.jsx, 1 visible in ignore/page.jsx")
	require.Len(t, field.Files, 2)
	require.Equal(t, m.PriorityMedium, field.Priority)

	input := byName["Input"]
	require.Equal(t, 2, input.Total)
	require.Equal(t, []string{"@acme/kit"}, input.Modules)
	require.Equal(t, m.PriorityLow, input.Priority)

	// Aliased named import binds the local name.
	picker := byName["Picker"]
	require.Equal(t, 1, picker.Total)
	require.Equal(t, []string{"@acme/kit"}, picker.Modules)

	// Button comes from an untracked module and must not appear.
	_, tracked := byName["Button"]
	require.False(t, tracked)
}

func TestWorkflow_List_OverExampleProjects(t *testing.T) {
	wf := newTestWorkflow(t, testConfig())

	scans, err := wf.List(context.Background(), ListArgs{
		Paths: []m.Path{m.Path(examplesRoot(t) + "/...")},
	})
	require.NoError(t, err)
	require.Len(t, scans, 5)

	var skipped, errored int

	for _, scan := range scans {
		if scan.Skipped {
			skipped++
		}

		if scan.Err != nil {
			errored++
		}
	}

	require.Equal(t, 1, skipped)
	require.Equal(t, 1, errored)
}
