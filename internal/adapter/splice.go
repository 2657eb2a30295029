package adapter

import (
	"sort"
	"strings"

	m "github.com/red-newt/propsmith/internal/model"
)

// ElementEdit is one attribute-region rewrite, produced by the merge and
// consumed by SpliceEdits.
type ElementEdit struct {
	Span        m.Span
	Attrs       []m.Attribute
	SelfClosing bool
}

// SpliceEdits applies all edits to content and returns the new bytes. Edits
// are applied back to front so earlier spans stay valid; every byte outside
// the edited regions is preserved verbatim.
func SpliceEdits(content []byte, edits []ElementEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	ordered := make([]ElementEdit, len(edits))
	copy(ordered, edits)

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Span.Start > ordered[j].Span.Start
	})

	out := content
	for _, edit := range ordered {
		out = replaceRange(out, int(edit.Span.Start), int(edit.Span.End), renderAttrRegion(edit.Attrs, edit.SelfClosing))
	}

	return out
}

// renderAttrRegion produces the text between the tag name and the closing
// token: a leading space, attributes joined by single spaces, and a trailing
// space before the "/" of self-closing tags.
func renderAttrRegion(attrs []m.Attribute, selfClosing bool) string {
	if len(attrs) == 0 {
		if selfClosing {
			return " "
		}

		return ""
	}

	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		parts = append(parts, a.Raw)
	}

	region := " " + strings.Join(parts, " ")
	if selfClosing {
		region += " "
	}

	return region
}

func replaceRange(content []byte, start, end int, replacement string) []byte {
	if start < 0 || end < start || end > len(content) {
		return content
	}

	out := make([]byte, 0, len(content)-(end-start)+len(replacement))
	out = append(out, content[:start]...)
	out = append(out, []byte(replacement)...)
	out = append(out, content[end:]...)

	return out
}
