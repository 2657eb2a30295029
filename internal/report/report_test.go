package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/red-newt/propsmith/internal/model"
)

func sampleStats() m.UsageStats {
	return m.UsageStats{
		Components: []m.ComponentUsage{
			{Name: "Field", Total: 12, Files: map[string]int{"a.jsx": 12}, Priority: m.PriorityHigh},
			{Name: "Input", Total: 2, Files: map[string]int{"b.tsx": 2}, Modules: []string{"@acme/kit"}, Priority: m.PriorityLow},
		},
		FilesScanned: 2,
		ElementsSeen: 20,
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, sampleStats()))

	var decoded m.UsageStats
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, sampleStats().Components, decoded.Components)
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteYAML(&buf, sampleStats()))

	var decoded m.UsageStats
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, sampleStats().Components, decoded.Components)
}

func TestWriteHTML_RendersCharts(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteHTML(&buf, sampleStats()))

	out := buf.String()
	require.Contains(t, out, "Component Usage")
	require.Contains(t, out, "Usage by Module")
	require.Contains(t, out, "Field")
	require.Contains(t, out, "@acme/kit")
}

func TestWriteHTML_NoProvenanceOmitsModuleChart(t *testing.T) {
	stats := sampleStats()
	stats.Components[1].Modules = nil

	var buf bytes.Buffer

	require.NoError(t, WriteHTML(&buf, stats))
	require.NotContains(t, buf.String(), "Usage by Module")
}

func TestPriorityColor_Tiers(t *testing.T) {
	require.Equal(t, colorHigh, priorityColor(m.PriorityHigh))
	require.Equal(t, colorMedium, priorityColor(m.PriorityMedium))
	require.Equal(t, colorLow, priorityColor(m.PriorityLow))
}
