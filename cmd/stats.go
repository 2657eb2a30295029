package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/red-newt/propsmith/internal/domain"
	m "github.com/red-newt/propsmith/internal/model"
	"github.com/red-newt/propsmith/internal/report"
)

const statsLongDescription = `Stats aggregates usage of the configured target components across the given
paths: total sightings, per-file counts, originating modules, and a priority
tier derived from the configured thresholds. Results render as a table by
default; --format selects json or yaml, --html writes a chart page.`

const statsFilePerm os.FileMode = 0o600

var (
	statsFormatFlag     string
	statsOutputFlag     string
	statsHTMLFlag       string
	statsSaveFlag       bool
	statsFromReportFlag bool
	statsParallelFlag   int
	statsReportsFlag    string
)

// statsCmd represents the stats command.
var statsCmd = newStatsCmd()

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [paths...]",
		Short: "Aggregate target component usage statistics",
		Long:  statsLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := workflow.Stats(cmd.Context(), domain.StatsArgs{
				Paths:      parsePaths(args),
				Threads:    statsParallelFlag,
				Save:       statsSaveFlag,
				Reports:    reportsDir(statsReportsFlag),
				FromReport: statsFromReportFlag,
			})
			if err != nil {
				return err
			}

			if statsHTMLFlag != "" {
				if err := writeHTMLReport(statsHTMLFlag, stats); err != nil {
					return err
				}
			}

			return renderStats(cmd, stats)
		},
	}

	cmd.Flags().StringVarP(&statsFormatFlag, "format", "f", "table", "output format: table, json or yaml")
	cmd.Flags().StringVarP(&statsOutputFlag, "output", "o", "", "write json/yaml output to a file instead of stdout")
	cmd.Flags().StringVar(&statsHTMLFlag, "html", "", "write an HTML chart report to the given file")
	cmd.Flags().BoolVar(&statsSaveFlag, "save", false, "persist the statistics under the reports directory")
	cmd.Flags().BoolVar(&statsFromReportFlag, "from-report", false, "load previously saved statistics instead of scanning")
	cmd.Flags().IntVarP(&statsParallelFlag, "parallel", "p", 1, "number of parallel file workers")
	cmd.Flags().StringVarP(&statsReportsFlag, "reports", "r", "", "reports directory (default from config)")

	return cmd
}

func renderStats(cmd *cobra.Command, stats m.UsageStats) error {
	switch statsFormatFlag {
	case "table", "":
		if statsOutputFlag != "" {
			return fmt.Errorf("--output requires --format json or yaml")
		}

		return ui.DisplayStats(stats)
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", statsFormatFlag)
	}

	out := cmd.OutOrStdout()

	if statsOutputFlag != "" {
		f, err := os.OpenFile(statsOutputFlag, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, statsFilePerm)
		if err != nil {
			return fmt.Errorf("open output file: %w", err)
		}

		defer func() {
			_ = f.Close()
		}()

		out = f
	}

	if statsFormatFlag == "json" {
		return report.WriteJSON(out, stats)
	}

	return report.WriteYAML(out, stats)
}

func writeHTMLReport(path string, stats m.UsageStats) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, statsFilePerm)
	if err != nil {
		return fmt.Errorf("open html file: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	return report.WriteHTML(f, stats)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
