package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	m "github.com/red-newt/propsmith/internal/model"
)

// Priority tier colors used for chart bars.
const (
	colorHigh   = "#e74c3c"
	colorMedium = "#f1c40f"
	colorLow    = "#2ecc71"
)

const maxChartedComponents = 30

// WriteHTML renders the statistics as a self-contained HTML page with a
// component usage chart and a per-module breakdown.
func WriteHTML(w io.Writer, stats m.UsageStats) error {
	page := components.NewPage()
	page.PageTitle = "propsmith usage report"
	page.AddCharts(buildComponentChart(stats))

	if moduleChart := buildModuleChart(stats); moduleChart != nil {
		page.AddCharts(moduleChart)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}

	return nil
}

// buildComponentChart charts the top components by usage, one bar each,
// colored by priority tier.
func buildComponentChart(stats m.UsageStats) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Component Usage",
			Subtitle: fmt.Sprintf("%d components across %d files",
				len(stats.Components), stats.FilesScanned),
		}),
	)

	charted := stats.Components
	if len(charted) > maxChartedComponents {
		charted = charted[:maxChartedComponents]
	}

	names := make([]string, 0, len(charted))
	values := make([]opts.BarData, 0, len(charted))

	for _, c := range charted {
		names = append(names, c.Name)
		values = append(values, opts.BarData{
			Value:     c.Total,
			ItemStyle: &opts.ItemStyle{Color: priorityColor(c.Priority)},
		})
	}

	bar.SetXAxis(names).AddSeries("usages", values)

	return bar
}

// buildModuleChart charts usage totals of components grouped by the import
// module they came from. Runs without provenance matches produce no chart.
func buildModuleChart(stats m.UsageStats) *charts.Bar {
	totals := make(map[string]int)

	for _, c := range stats.Components {
		for _, module := range c.Modules {
			totals[module] += c.Total
		}
	}

	if len(totals) == 0 {
		return nil
	}

	modules := make([]string, 0, len(totals))
	for module := range totals {
		modules = append(modules, module)
	}

	sort.Slice(modules, func(i, j int) bool {
		if totals[modules[i]] != totals[modules[j]] {
			return totals[modules[i]] > totals[modules[j]]
		}

		return modules[i] < modules[j]
	})

	values := make([]opts.BarData, 0, len(modules))
	for _, module := range modules {
		values = append(values, opts.BarData{Value: totals[module]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Usage by Module",
			Subtitle: "usages of components imported from tracked modules",
		}),
	)
	bar.SetXAxis(modules).AddSeries("usages", values)

	return bar
}

func priorityColor(p m.Priority) string {
	switch p {
	case m.PriorityHigh:
		return colorHigh
	case m.PriorityMedium:
		return colorMedium
	default:
		return colorLow
	}
}
