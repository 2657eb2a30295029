package domain

import (
	"strings"
	"unicode"

	m "github.com/red-newt/propsmith/internal/model"
)

// Ruleset is the classification configuration, normalized into sets.
type Ruleset struct {
	components map[string]struct{}
	modules    map[string]struct{}
	include    map[string]struct{}
	exclude    map[string]struct{}
}

// NewRuleset builds a Ruleset from configured name lists.
func NewRuleset(components, modules, include, exclude []string) Ruleset {
	return Ruleset{
		components: toSet(components),
		modules:    toSet(modules),
		include:    toSet(include),
		exclude:    toSet(exclude),
	}
}

func startsUppercase(tag string) bool {
	for _, r := range tag {
		return unicode.IsUpper(r)
	}

	return false
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	return set
}

// Classify decides whether a tag is a target. It is a pure function of
// (tag, table, rules): the same inputs always yield the same verdict.
//
// Precedence, first match wins: built-in vocabulary, include filter,
// exclude filter, direct name, import provenance. Provenance requires the
// binding's module path to exactly equal a tracked module; substring
// containment is deliberately not supported.
//
// Markup discriminates built-ins from components by casing as written: a
// tag starting with an uppercase letter is always a component, even when its
// lowercase form is in the vocabulary (Input, Button, Table). Tags starting
// lowercase are checked against the vocabulary case-insensitively so that
// camel-cased SVG tags like clipPath still count as built-in.
func Classify(tag string, table ImportTable, rules Ruleset) (m.Match, m.Verdict) {
	if !startsUppercase(tag) && IsBuiltinTag(strings.ToLower(tag)) {
		return m.Match{}, m.VerdictBuiltin
	}

	if len(rules.include) > 0 {
		if _, ok := rules.include[tag]; !ok {
			return m.Match{}, m.VerdictOutOfScope
		}
	}

	if _, ok := rules.exclude[tag]; ok {
		return m.Match{}, m.VerdictOutOfScope
	}

	if _, ok := rules.components[tag]; ok {
		return m.Match{Kind: m.MatchName}, m.VerdictInScope
	}

	if rec, ok := table.Lookup(tag); ok {
		if _, tracked := rules.modules[rec.Module]; tracked {
			return m.Match{Kind: m.MatchProvenance, Module: rec.Module}, m.VerdictInScope
		}
	}

	return m.Match{}, m.VerdictOutOfScope
}
