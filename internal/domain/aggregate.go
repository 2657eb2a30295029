package domain

import (
	"sort"
	"time"

	m "github.com/red-newt/propsmith/internal/model"
)

// Sighting is one in-scope element occurrence reported by a file scan.
type Sighting struct {
	Name  string
	Match m.Match
}

// FileScan is the pure per-file result of an analysis pass. Workers produce
// FileScans; the orchestrating goroutine folds them into the accumulator, so
// aggregate sums are exact regardless of file processing order.
type FileScan struct {
	Path      m.Path
	Bytes     int64
	Elements  int
	Sightings []Sighting
	Skipped   bool
	Err       error
}

// UsageAccumulator collects component usage across files. It is an explicit
// object rather than shared global state; it is not safe for concurrent use
// and is only ever touched by the folding goroutine.
type UsageAccumulator struct {
	components map[string]*componentTally

	filesScanned int
	filesErrored int
	elementsSeen int
	bytesScanned int64
}

type componentTally struct {
	total   int
	files   map[string]int
	modules map[string]struct{}
}

// NewUsageAccumulator returns an empty accumulator.
func NewUsageAccumulator() *UsageAccumulator {
	return &UsageAccumulator{components: make(map[string]*componentTally)}
}

// Fold merges one file's scan into the running tallies.
func (ua *UsageAccumulator) Fold(scan FileScan) {
	if scan.Err != nil {
		ua.filesErrored++
		return
	}

	if scan.Skipped {
		return
	}

	ua.filesScanned++
	ua.bytesScanned += scan.Bytes
	ua.elementsSeen += scan.Elements

	for _, s := range scan.Sightings {
		tally, ok := ua.components[s.Name]
		if !ok {
			tally = &componentTally{
				files:   make(map[string]int),
				modules: make(map[string]struct{}),
			}
			ua.components[s.Name] = tally
		}

		tally.total++
		tally.files[string(scan.Path)]++

		if s.Match.Kind == m.MatchProvenance && s.Match.Module != "" {
			tally.modules[s.Match.Module] = struct{}{}
		}
	}
}

// Finalize computes priority tiers and returns the ordered statistics.
// Components are sorted by total usage descending, then name ascending.
func (ua *UsageAccumulator) Finalize(high, medium int) m.UsageStats {
	stats := m.UsageStats{
		Components:   make([]m.ComponentUsage, 0, len(ua.components)),
		FilesScanned: ua.filesScanned,
		FilesErrored: ua.filesErrored,
		ElementsSeen: ua.elementsSeen,
		BytesScanned: ua.bytesScanned,
		GeneratedAt:  time.Now().UTC(),
	}

	for name, tally := range ua.components {
		usage := m.ComponentUsage{
			Name:     name,
			Total:    tally.total,
			Files:    tally.files,
			Priority: priorityFor(tally.total, high, medium),
		}

		for module := range tally.modules {
			usage.Modules = append(usage.Modules, module)
		}

		sort.Strings(usage.Modules)

		stats.Components = append(stats.Components, usage)
	}

	sort.Slice(stats.Components, func(i, j int) bool {
		if stats.Components[i].Total != stats.Components[j].Total {
			return stats.Components[i].Total > stats.Components[j].Total
		}

		return stats.Components[i].Name < stats.Components[j].Name
	})

	return stats
}

// priorityFor buckets a usage total against the configured thresholds.
func priorityFor(total, high, medium int) m.Priority {
	switch {
	case total >= high:
		return m.PriorityHigh
	case total >= medium:
		return m.PriorityMedium
	default:
		return m.PriorityLow
	}
}
