package model

import "time"

// Priority is the attention tier derived from total usage counts.
type Priority string

const (
	// PriorityHigh marks components at or above the high threshold.
	PriorityHigh Priority = "high"
	// PriorityMedium marks components at or above the medium threshold.
	PriorityMedium Priority = "medium"
	// PriorityLow marks everything below the medium threshold.
	PriorityLow Priority = "low"
)

// ComponentUsage aggregates sightings of one target component across a run.
type ComponentUsage struct {
	Name  string `json:"name" yaml:"name"`
	Total int    `json:"total" yaml:"total"`
	// Files maps file path to the number of sightings in that file.
	Files map[string]int `json:"files" yaml:"files"`
	// Modules lists the import sources seen for provenance matches, sorted.
	Modules  []string `json:"modules,omitempty" yaml:"modules,omitempty"`
	Priority Priority `json:"priority" yaml:"priority"`
}

// UsageStats is the full analysis-mode result.
type UsageStats struct {
	// Components is sorted by total descending, then name ascending.
	Components   []ComponentUsage `json:"components" yaml:"components"`
	FilesScanned int              `json:"files_scanned" yaml:"files_scanned"`
	FilesErrored int              `json:"files_errored" yaml:"files_errored"`
	ElementsSeen int              `json:"elements_seen" yaml:"elements_seen"`
	BytesScanned int64            `json:"bytes_scanned" yaml:"bytes_scanned"`
	GeneratedAt  time.Time        `json:"generated_at" yaml:"generated_at"`
}

// ByPriority returns the usage entries in the given tier, preserving order.
func (s UsageStats) ByPriority(p Priority) []ComponentUsage {
	var out []ComponentUsage

	for _, c := range s.Components {
		if c.Priority == p {
			out = append(out, c)
		}
	}

	return out
}
