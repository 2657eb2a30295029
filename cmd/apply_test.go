package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/red-newt/propsmith/internal/model"
)

func TestApplyCmd_PassesFlags(t *testing.T) {
	fw := &fakeWorkflow{report: m.RunReport{Modified: 1}}
	fui := &fakeUI{}

	root, _, cleanup := newTestCLI(fw, fui)
	defer cleanup()

	root.SetArgs([]string{"apply", "--dry-run", "--parallel", "4", "--reports", "out", "./src/..."})
	require.NoError(t, root.Execute())

	require.NotNil(t, fw.applyArgs)
	require.True(t, fw.applyArgs.DryRun)
	require.Equal(t, 4, fw.applyArgs.Threads)
	require.Equal(t, m.Path("out"), fw.applyArgs.Reports)
	require.Equal(t, []m.Path{"./src/..."}, fw.applyArgs.Paths)

	require.NotNil(t, fui.report)
	require.Equal(t, 1, fui.report.Modified)
}

func TestApplyCmd_DefaultReportsDir(t *testing.T) {
	fw := &fakeWorkflow{}
	fui := &fakeUI{}

	root, _, cleanup := newTestCLI(fw, fui)
	defer cleanup()

	root.SetArgs([]string{"apply"})
	require.NoError(t, root.Execute())

	require.NotNil(t, fw.applyArgs)
	require.Equal(t, m.Path(".propsmith-reports"), fw.applyArgs.Reports)
	require.Empty(t, fw.applyArgs.Paths)
}
