package cmd

import (
	"github.com/spf13/cobra"

	"github.com/red-newt/propsmith/internal/domain"
)

const applyLongDescription = `Apply merges the configured attribute directives into every target element
found under the given paths. Missing attributes are inserted; existing ones
are overwritten only with --update. Changed attribute lists are re-sorted
into canonical name order. Repeated runs converge: a second apply over the
same tree reports no modifications.`

var (
	applyDryRunFlag   bool
	applyUpdateFlag   bool
	applyParallelFlag int
	applyReportsFlag  string
)

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [paths...]",
		Short: "Insert or update attributes on target components",
		Long:  applyLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("update") && cfg != nil {
				cfg.UpdateExisting = applyUpdateFlag
			}

			report, err := workflow.Apply(cmd.Context(), domain.ApplyArgs{
				Paths:   parsePaths(args),
				DryRun:  applyDryRunFlag,
				Threads: applyParallelFlag,
				Reports: reportsDir(applyReportsFlag),
			})
			if err != nil {
				return err
			}

			return ui.DisplayRunReport(report)
		},
	}

	cmd.Flags().BoolVarP(&applyDryRunFlag, "dry-run", "n", false, "print diffs without writing any file")
	cmd.Flags().BoolVarP(&applyUpdateFlag, "update", "u", false, "overwrite attributes that are already present")
	cmd.Flags().IntVarP(&applyParallelFlag, "parallel", "p", 1, "number of parallel file workers")
	cmd.Flags().StringVarP(&applyReportsFlag, "reports", "r", "", "directory for the run report (default from config)")

	return cmd
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
