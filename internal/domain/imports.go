// Package domain implements the classification, merge and aggregation core.
package domain

import (
	m "github.com/red-newt/propsmith/internal/model"
)

// ImportTable maps local identifiers to the import declaration that bound
// them. It is built fresh for each file and discarded afterwards.
type ImportTable struct {
	byName map[string]m.ImportRecord
}

// BuildImportTable indexes the named bindings of a file's import records.
// Default and namespace bindings carry no named specifier and are not
// indexed. When the same local name is bound by multiple declarations, the
// earliest declaration wins.
func BuildImportTable(records []m.ImportRecord) ImportTable {
	t := ImportTable{byName: make(map[string]m.ImportRecord)}

	for _, rec := range records {
		for _, name := range rec.Names {
			if name == "" {
				continue
			}

			if _, exists := t.byName[name]; !exists {
				t.byName[name] = rec
			}
		}
	}

	return t
}

// Lookup returns the import record binding the given local name.
func (t ImportTable) Lookup(name string) (m.ImportRecord, bool) {
	rec, ok := t.byName[name]

	return rec, ok
}

// Len returns the number of indexed local names.
func (t ImportTable) Len() int {
	return len(t.byName)
}
