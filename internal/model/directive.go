package model

// ValueKind tells the rewriter how to render a directive value.
type ValueKind string

const (
	// ValueString renders the value as a quoted string literal.
	ValueString ValueKind = "string"
	// ValueExpression renders the value inside a brace container.
	ValueExpression ValueKind = "expression"
)

// Directive is one configured attribute to enforce on matched elements.
// Values are opaque text; nothing is validated against component contracts.
type Directive struct {
	Name  string    `mapstructure:"name" json:"name" yaml:"name"`
	Value string    `mapstructure:"value" json:"value" yaml:"value"`
	Kind  ValueKind `mapstructure:"kind" json:"kind" yaml:"kind"`
}

// MatchKind records why a tag was classified as a target.
type MatchKind string

const (
	// MatchName means the tag equals a configured component name.
	MatchName MatchKind = "name"
	// MatchProvenance means the tag is imported from a tracked module.
	MatchProvenance MatchKind = "provenance"
)

// Match is the classifier result for one target element.
type Match struct {
	Kind MatchKind
	// Module is set for provenance matches: the import source that produced
	// the binding.
	Module string
}

// Verdict says why a tag is or is not a target.
type Verdict string

const (
	// VerdictBuiltin marks standard markup tags; always ignored.
	VerdictBuiltin Verdict = "builtin"
	// VerdictOutOfScope marks tags no rule matched or a filter removed.
	VerdictOutOfScope Verdict = "out-of-scope"
	// VerdictInScope marks targets; the accompanying Match carries the reason.
	VerdictInScope Verdict = "in-scope"
)
