package domain

import (
	"fmt"
	"sort"
	"strings"

	m "github.com/red-newt/propsmith/internal/model"
)

// MergeAttributes applies the configured directives to an element's
// attribute list and returns the new list plus the outcome. The input slice
// is never modified.
//
// A directive whose name is absent is appended as a synthesized attribute.
// A present directive is skipped unless updateExisting is true, in which
// case the value is replaced while mirroring the existing representation.
// A replacement that would not change the rendered value is recorded as
// skipped, which is what makes repeated runs converge.
//
// When anything was added or updated, the whole list is re-sorted by name
// (stable, lexicographic) and later duplicates of a name are dropped.
// Elements carrying spread attributes are the exception: their relative
// attribute order encodes override semantics at runtime, so the merged list
// keeps its original order and appends go to the end.
func MergeAttributes(attrs []m.Attribute, directives []m.Directive, updateExisting bool) ([]m.Attribute, m.MergeOutcome) {
	out := make([]m.Attribute, len(attrs))
	copy(out, attrs)

	firstIdx := make(map[string]int, len(attrs))

	hasSpread := false

	for i, a := range attrs {
		if a.Kind == m.AttrSpread {
			hasSpread = true
			continue
		}

		if _, seen := firstIdx[a.Name]; !seen {
			firstIdx[a.Name] = i
		}
	}

	var outcome m.MergeOutcome

	for _, d := range directives {
		idx, present := firstIdx[d.Name]

		switch {
		case !present:
			out = append(out, synthesizeAttribute(d))
			firstIdx[d.Name] = len(out) - 1
			outcome.Added = append(outcome.Added, d.Name)

		case !updateExisting:
			outcome.Skipped = append(outcome.Skipped, d.Name)

		case out[idx].Value == d.Value:
			outcome.Skipped = append(outcome.Skipped, d.Name)

		default:
			out[idx] = replaceValue(out[idx], d)
			outcome.Updated = append(outcome.Updated, d.Name)
		}
	}

	outcome.Changed = len(outcome.Added) > 0 || len(outcome.Updated) > 0

	if outcome.Changed && !hasSpread {
		out = sortAndDedupe(out)
	}

	if !outcome.Changed {
		out = attrs
	}

	sort.Strings(outcome.Added)
	sort.Strings(outcome.Updated)
	sort.Strings(outcome.Skipped)

	return out, outcome
}

// synthesizeAttribute renders a directive as a fresh attribute.
func synthesizeAttribute(d m.Directive) m.Attribute {
	if d.Kind == m.ValueExpression {
		return m.Attribute{
			Name:  d.Name,
			Raw:   fmt.Sprintf("%s={%s}", d.Name, d.Value),
			Value: d.Value,
			Kind:  m.AttrExpression,
		}
	}

	return m.Attribute{
		Name:  d.Name,
		Raw:   d.Name + "=" + quoteValue(d.Value),
		Value: d.Value,
		Kind:  m.AttrString,
	}
}

// replaceValue rewrites an existing attribute with the directive's value.
// String literals stay string literals and expressions stay expressions;
// bare attributes take the directive's declared kind.
func replaceValue(existing m.Attribute, d m.Directive) m.Attribute {
	switch existing.Kind {
	case m.AttrString:
		existing.Raw = existing.Name + "=" + quoteValue(d.Value)
		existing.Value = d.Value
	case m.AttrExpression:
		existing.Raw = fmt.Sprintf("%s={%s}", existing.Name, d.Value)
		existing.Value = d.Value
	default:
		synthesized := synthesizeAttribute(d)
		synthesized.Span = existing.Span

		return synthesized
	}

	return existing
}

// quoteValue wraps a directive value in quotes, switching to single quotes
// when the value itself contains a double quote.
func quoteValue(value string) string {
	if strings.Contains(value, `"`) {
		return "'" + value + "'"
	}

	return `"` + value + `"`
}

// sortAndDedupe orders attributes by name and drops later duplicates. The
// sort is stable, so the surviving duplicate is always the earliest one.
func sortAndDedupe(attrs []m.Attribute) []m.Attribute {
	sorted := make([]m.Attribute, len(attrs))
	copy(sorted, attrs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	seen := make(map[string]struct{}, len(sorted))
	out := sorted[:0]

	for _, a := range sorted {
		if _, dup := seen[a.Name]; dup {
			continue
		}

		seen[a.Name] = struct{}{}
		out = append(out, a)
	}

	return out
}
