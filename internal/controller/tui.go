package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/red-newt/propsmith/internal/domain"
	m "github.com/red-newt/propsmith/internal/model"
)

// TUI implements UI with an interactive Bubble Tea browser for usage
// statistics. Run reports and file lists render as static tables even on a
// TTY; only the stats view benefits from scrolling and filtering.
type TUI struct {
	simple *SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI bound to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{simple: NewSimpleUI(cmd), output: cmd.OutOrStdout()}
}

// DisplayRunReport renders the apply outcome as a static table.
func (t *TUI) DisplayRunReport(report m.RunReport) error {
	return t.simple.DisplayRunReport(report)
}

// DisplayFileList renders the file list as a static table.
func (t *TUI) DisplayFileList(scans []domain.FileScan) error {
	return t.simple.DisplayFileList(scans)
}

// DisplayStats opens the interactive component browser. On an empty result
// set it falls back to the plain summary.
func (t *TUI) DisplayStats(stats m.UsageStats) error {
	if len(stats.Components) == 0 {
		return t.simple.DisplayStats(stats)
	}

	program := tea.NewProgram(newStatsModel(stats), tea.WithOutput(t.output))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("stats browser: %w", err)
	}

	return nil
}

// componentItem adapts a ComponentUsage for the bubbles list.
type componentItem struct {
	usage m.ComponentUsage
}

func (c componentItem) FilterValue() string { return c.usage.Name }

type componentDelegate struct{}

func (d componentDelegate) Height() int  { return 1 }
func (d componentDelegate) Spacing() int { return 0 }
func (d componentDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d componentDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	ci, ok := item.(componentItem)
	if !ok {
		return
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle := lipgloss.NewStyle().Bold(true).Width(6).Align(lipgloss.Right)

	if index == lm.Index() {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	line := fmt.Sprintf("%s  %s %s",
		countStyle.Render(fmt.Sprintf("%d", ci.usage.Total)),
		nameStyle.Render(ci.usage.Name),
		priorityBadge(ci.usage.Priority),
	)
	_, _ = fmt.Fprint(w, line)
}

func priorityBadge(p m.Priority) string {
	style := lipgloss.NewStyle().Bold(true)

	switch p {
	case m.PriorityHigh:
		style = style.Foreground(lipgloss.Color("9"))
	case m.PriorityMedium:
		style = style.Foreground(lipgloss.Color("11"))
	default:
		style = style.Foreground(lipgloss.Color("10"))
	}

	return style.Render(string(p))
}

// statsModel is the Bubble Tea model for the component browser.
type statsModel struct {
	stats         m.UsageStats
	componentList list.Model
	width         int
	height        int
}

func newStatsModel(stats m.UsageStats) statsModel {
	items := make([]list.Item, 0, len(stats.Components))
	for _, c := range stats.Components {
		items = append(items, componentItem{usage: c})
	}

	componentList := list.New(items, componentDelegate{}, 80, 20)
	componentList.SetShowPagination(false)
	componentList.SetShowFilter(true)
	componentList.SetShowHelp(false)
	componentList.SetShowTitle(false)
	componentList.SetShowStatusBar(false)
	componentList.FilterInput.Placeholder = "Filter by component…"

	return statsModel{stats: stats, componentList: componentList}
}

func (sm statsModel) Init() tea.Cmd {
	return nil
}

func (sm statsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height
		sm.componentList.SetWidth(sm.width)
		sm.componentList.SetHeight(max(sm.height-6, 5))

		return sm, nil

	case tea.KeyMsg:
		if sm.componentList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return sm, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	sm.componentList, cmd = sm.componentList.Update(msg)

	return sm, cmd
}

func (sm statsModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("propsmith · %d components · %d elements in %d files",
			len(sm.stats.Components), sm.stats.ElementsSeen, sm.stats.FilesScanned))

	detail := ""
	if item, ok := sm.componentList.SelectedItem().(componentItem); ok {
		detail = detailView(item.usage)
	}

	help := lipgloss.NewStyle().Faint(true).Render("↑/↓ move · / filter · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, sm.componentList.View(), detail, help)
}

// detailView shows the selected component's per-file counts and modules.
func detailView(usage m.ComponentUsage) string {
	line := fmt.Sprintf("%s: %d usages in %d files", usage.Name, usage.Total, len(usage.Files))
	if len(usage.Modules) > 0 {
		line += " · from " + joinModules(usage.Modules)
	}

	return lipgloss.NewStyle().Faint(true).Render(line)
}
