package controller

import (
	"bytes"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/red-newt/propsmith/internal/domain"
	m "github.com/red-newt/propsmith/internal/model"
)

// SimpleUI implements UI using plain text written to the cobra command's
// output. It is the frontend for pipes, CI, and --no-color terminals.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRunReport prints dry-run diffs, the per-file outcome table, and a
// one-line summary.
func (s *SimpleUI) DisplayRunReport(report m.RunReport) error {
	for _, f := range report.Files {
		if f.Diff != "" {
			s.printf("%s\n", f.Diff)
		}
	}

	table, buf := newTable()
	table.SetHeader([]string{"Path", "Status", "Matches", "Added", "Updated", "Skipped"})

	for _, f := range report.Files {
		status := string(f.Status)
		if f.Err != "" {
			status = fmt.Sprintf("%s: %s", f.Status, f.Err)
		}

		table.Append([]string{
			string(f.Path),
			colorStatus(f.Status, status),
			fmt.Sprintf("%d", f.Matches),
			fmt.Sprintf("%d", f.Added),
			fmt.Sprintf("%d", f.Updated),
			fmt.Sprintf("%d", f.Skipped),
		})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	verb := "modified"
	if report.DryRun {
		verb = "would modify"
	}

	s.printf("\n%s %d of %d files (%d unchanged, %d skipped, %d errored), %s scanned in %dms\n",
		verb, report.Modified, report.TotalFiles(),
		report.Unmodified, report.SkippedFiles, report.Errored,
		humanize.Bytes(uint64(report.BytesScanned)), report.ElapsedMS) //nolint:gosec // byte counts are non-negative

	return nil
}

// DisplayStats prints the component usage table sorted by total descending.
func (s *SimpleUI) DisplayStats(stats m.UsageStats) error {
	if len(stats.Components) == 0 {
		s.printf("No target components found in %d scanned files\n", stats.FilesScanned)

		return nil
	}

	table, buf := newTable()
	table.SetHeader([]string{"Component", "Usages", "Files", "Priority", "Modules"})

	for _, c := range stats.Components {
		table.Append([]string{
			c.Name,
			fmt.Sprintf("%d", c.Total),
			fmt.Sprintf("%d", len(c.Files)),
			colorPriority(c.Priority),
			joinModules(c.Modules),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Components %d", len(stats.Components)),
		fmt.Sprintf("%d", totalUsages(stats)),
		fmt.Sprintf("%d files", stats.FilesScanned),
		"", "",
	})

	table.Render()
	s.printf("\n%s", buf.String())
	s.printf("\nScanned %d elements across %d files (%s), %d errored\n",
		stats.ElementsSeen, stats.FilesScanned,
		humanize.Bytes(uint64(stats.BytesScanned)), stats.FilesErrored) //nolint:gosec // byte counts are non-negative

	return nil
}

// DisplayFileList prints one row per scanned file with its element and match
// counts.
func (s *SimpleUI) DisplayFileList(scans []domain.FileScan) error {
	if len(scans) == 0 {
		s.printf("No source files found\n")

		return nil
	}

	table, buf := newTable()
	table.SetHeader([]string{"Path", "Elements", "Matches"})

	totalMatches := 0

	for _, scan := range scans {
		if scan.Err != nil {
			table.Append([]string{string(scan.Path), "-", colorStatus(m.FileErrored, scan.Err.Error())})
			continue
		}

		if scan.Skipped {
			table.Append([]string{string(scan.Path), "-", "skipped"})
			continue
		}

		totalMatches += len(scan.Sightings)
		table.Append([]string{
			string(scan.Path),
			fmt.Sprintf("%d", scan.Elements),
			fmt.Sprintf("%d", len(scan.Sightings)),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(scans)),
		"",
		fmt.Sprintf("%d", totalMatches),
	})

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable() (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table, &buf
}

func colorStatus(status m.FileStatus, text string) string {
	switch status {
	case m.FileModified:
		return color.GreenString(text)
	case m.FileErrored:
		return color.RedString(text)
	case m.FileSkipped:
		return color.YellowString(text)
	default:
		return text
	}
}

func colorPriority(p m.Priority) string {
	switch p {
	case m.PriorityHigh:
		return color.RedString(string(p))
	case m.PriorityMedium:
		return color.YellowString(string(p))
	default:
		return color.GreenString(string(p))
	}
}

func joinModules(modules []string) string {
	out := ""

	for i, mod := range modules {
		if i > 0 {
			out += ", "
		}

		out += mod
	}

	return out
}

func totalUsages(stats m.UsageStats) int {
	total := 0
	for _, c := range stats.Components {
		total += c.Total
	}

	return total
}
