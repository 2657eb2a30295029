package cmd

import (
	"github.com/spf13/cobra"

	"github.com/red-newt/propsmith/internal/domain"
)

const listLongDescription = `List scans the given paths and prints one row per discovered source file
with its element and target match counts. Files that fail to parse are
listed with their error; they never abort the scan.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files and target match counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			scans, err := workflow.List(cmd.Context(), domain.ListArgs{Paths: parsePaths(args)})
			if err != nil {
				return err
			}

			return ui.DisplayFileList(scans)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
