// Package report renders usage statistics into machine-readable documents.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "github.com/red-newt/propsmith/internal/model"
)

// WriteJSON writes the statistics as an indented JSON document.
func WriteJSON(w io.Writer, stats m.UsageStats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(stats); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}

	return nil
}

// WriteYAML writes the statistics as a YAML document.
func WriteYAML(w io.Writer, stats m.UsageStats) error {
	enc := yaml.NewEncoder(w)

	if err := enc.Encode(stats); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	return enc.Close()
}
