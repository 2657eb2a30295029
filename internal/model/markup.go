// Package model defines the data structures for markup scanning and rewriting.
package model

// AttrKind describes how an attribute value is written in source.
type AttrKind string

const (
	// AttrString represents name="value" attributes.
	AttrString AttrKind = "string"
	// AttrExpression represents name={expr} attributes.
	AttrExpression AttrKind = "expression"
	// AttrBare represents valueless attributes like `disabled`.
	AttrBare AttrKind = "bare"
	// AttrSpread represents {...expr} attributes. They bind no single name.
	AttrSpread AttrKind = "spread"
)

// Attribute is a single attribute of an opening element.
type Attribute struct {
	Name string
	// Raw is the verbatim source text of the whole attribute. Attributes the
	// merge leaves untouched are re-emitted from Raw byte for byte.
	Raw   string
	Value string // unquoted string content or brace-stripped expression text
	Kind  AttrKind
	Span  Span
}

// Element is one element occurrence in a parsed file, in document order.
type Element struct {
	// Tag is the full tag text, including member expressions like Theme.Button.
	Tag         string
	Attrs       []Attribute
	SelfClosing bool
	// AttrSpan covers the byte region between the tag name and the closing
	// bracket. Rewrites splice exactly this region.
	AttrSpan Span
	Line     int
}

// HasSpread reports whether any attribute is a spread expression.
func (e Element) HasSpread() bool {
	for _, a := range e.Attrs {
		if a.Kind == AttrSpread {
			return true
		}
	}

	return false
}

// Comment is a source comment with its position, kept for ignore directives.
type Comment struct {
	Text   string
	Line   int
	Offset uint
}
