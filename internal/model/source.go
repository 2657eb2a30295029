package model

// Path represents a file system path.
type Path string

// Dialect selects the grammar used to parse a markup source file.
type Dialect string

const (
	// DialectTSX covers TypeScript sources (.ts, .tsx).
	DialectTSX Dialect = "tsx"

	// DialectJSX covers JavaScript sources (.js, .jsx, .mjs, .cjs).
	DialectJSX Dialect = "jsx"
)

// DialectForExt maps a file extension to the grammar that parses it.
func DialectForExt(ext string) Dialect {
	switch ext {
	case ".ts", ".tsx":
		return DialectTSX
	default:
		return DialectJSX
	}
}

// SourceFile represents a scanned markup source file.
type SourceFile struct {
	Hash    string
	Origin  Path
	Dialect Dialect
	Size    int64
}

// Span is a half-open byte range [Start, End) into a file's content.
type Span struct {
	Start uint
	End   uint
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}

	return int(s.End - s.Start)
}

// ImportRecord captures the bindings introduced by one import declaration.
type ImportRecord struct {
	Module string // import source, e.g. "@acme/kit" or "./local"
	// Names holds local identifiers bound by named specifiers. For aliased
	// specifiers the alias is recorded, not the exported name.
	Names []string
	// Default and Namespace flag bindings that carry no usable named
	// specifier. They are kept so callers can decide to skip the record.
	Default   bool
	Namespace bool
	Line      int
}
