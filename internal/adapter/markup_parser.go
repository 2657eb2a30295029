package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	m "github.com/red-newt/propsmith/internal/model"
)

// Grammar node types shared by the javascript and tsx grammars.
const (
	nodeImportStatement = "import_statement"
	nodeImportClause    = "import_clause"
	nodeNamedImports    = "named_imports"
	nodeImportSpecifier = "import_specifier"
	nodeNamespaceImport = "namespace_import"
	nodeIdentifier      = "identifier"
	nodeString          = "string"
	nodeStringFragment  = "string_fragment"
	nodeComment         = "comment"
	nodeOpeningElement  = "jsx_opening_element"
	nodeSelfClosing     = "jsx_self_closing_element"
	nodeAttribute       = "jsx_attribute"
	nodeExpression      = "jsx_expression"
	nodeTypeArguments   = "type_arguments"
	nodeError           = "ERROR"
)

// Parser errors.
var (
	// ErrMalformedSource indicates the grammar could not produce a clean
	// tree for the file. The file is reported and the run continues.
	ErrMalformedSource = errors.New("source contains syntax errors")
	// ErrUnsupportedDialect indicates a file extension outside the scan set.
	ErrUnsupportedDialect = errors.New("unsupported dialect")
)

// ParsedFile is the tree abstraction handed to the domain layer: import
// bindings, element occurrences in document order, and raw comments.
type ParsedFile struct {
	Imports  []m.ImportRecord
	Elements []m.Element
	Comments []m.Comment
}

// MarkupParser turns raw file bytes into a ParsedFile.
type MarkupParser interface {
	Parse(ctx context.Context, path m.Path, content []byte, dialect m.Dialect) (*ParsedFile, error)
}

// TreeSitterParser implements MarkupParser on top of tree-sitter grammars.
// Parser instances are pooled per dialect; a TreeSitterParser is safe for
// concurrent use.
type TreeSitterParser struct {
	pools map[m.Dialect]*sync.Pool
}

// NewTreeSitterParser constructs a parser covering both supported dialects.
func NewTreeSitterParser() *TreeSitterParser {
	tsxLang := sitter.NewLanguage(tsx.GetLanguage())
	jsLang := sitter.NewLanguage(javascript.GetLanguage())

	newPool := func(lang *sitter.Language) *sync.Pool {
		return &sync.Pool{
			New: func() any {
				p := sitter.NewParser()
				p.SetLanguage(lang)

				return p
			},
		}
	}

	return &TreeSitterParser{
		pools: map[m.Dialect]*sync.Pool{
			m.DialectTSX: newPool(tsxLang),
			m.DialectJSX: newPool(jsLang),
		},
	}
}

// Parse produces the ParsedFile for one source file. A tree containing ERROR
// nodes fails with ErrMalformedSource wrapped with the file path.
func (tp *TreeSitterParser) Parse(ctx context.Context, path m.Path, content []byte, dialect m.Dialect) (*ParsedFile, error) {
	pool, ok := tp.pools[dialect]
	if !ok {
		return nil, fmt.Errorf("parse %s: %w", path, ErrUnsupportedDialect)
	}

	parser, ok := pool.Get().(*sitter.Parser)
	if !ok {
		parser = sitter.NewParser()
	}

	defer pool.Put(parser)

	tree, err := parser.ParseString(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, fmt.Errorf("parse %s: %w", path, ErrMalformedSource)
	}

	if hasErrorNode(root) {
		return nil, fmt.Errorf("parse %s: %w", path, ErrMalformedSource)
	}

	pf := &ParsedFile{}
	collectNodes(root, content, pf)

	return pf, nil
}

// hasErrorNode walks the tree and stops at the first ERROR node.
func hasErrorNode(n sitter.Node) bool {
	if n.Type() == nodeError {
		return true
	}

	for i := range n.NamedChildCount() {
		if hasErrorNode(n.NamedChild(i)) {
			return true
		}
	}

	return false
}

// collectNodes gathers imports, elements and comments in document order.
func collectNodes(n sitter.Node, content []byte, pf *ParsedFile) {
	switch n.Type() {
	case nodeImportStatement:
		if rec, ok := extractImport(n, content); ok {
			pf.Imports = append(pf.Imports, rec)
		}

		return

	case nodeComment:
		pf.Comments = append(pf.Comments, extractComment(n, content))

		return

	case nodeOpeningElement, nodeSelfClosing:
		if el, ok := extractElement(n, content); ok {
			pf.Elements = append(pf.Elements, el)
		}
		// Attribute expressions may nest further elements; keep walking.
	}

	for i := range n.NamedChildCount() {
		collectNodes(n.NamedChild(i), content, pf)
	}
}

// extractComment records a comment's text and position. Inside element
// children a comment can only appear wrapped in a brace container
// ({/* ... */}); the container's start is used as the position so such a
// comment alone on its line still counts as leading.
func extractComment(n sitter.Node, content []byte) m.Comment {
	pos := n
	if parent := n.Parent(); !parent.IsNull() && parent.Type() == nodeExpression {
		pos = parent
	}

	return m.Comment{
		Text:   nodeText(n, content),
		Line:   int(pos.StartPoint().Row) + 1,
		Offset: pos.StartByte(),
	}
}

// extractImport reads one import declaration. Declarations without a source
// string are dropped without failing the file.
func extractImport(n sitter.Node, content []byte) (m.ImportRecord, bool) {
	rec := m.ImportRecord{Line: int(n.StartPoint().Row) + 1}

	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)

		switch child.Type() {
		case nodeString:
			rec.Module = stringContent(child, content)
		case nodeImportClause:
			extractImportClause(child, content, &rec)
		}
	}

	if rec.Module == "" {
		return m.ImportRecord{}, false
	}

	return rec, true
}

func extractImportClause(n sitter.Node, content []byte, rec *m.ImportRecord) {
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)

		switch child.Type() {
		case nodeIdentifier:
			rec.Default = true
		case nodeNamespaceImport:
			rec.Namespace = true
		case nodeNamedImports:
			for j := range child.NamedChildCount() {
				spec := child.NamedChild(j)
				if spec.Type() != nodeImportSpecifier {
					continue
				}

				if name := localBinding(spec, content); name != "" {
					rec.Names = append(rec.Names, name)
				}
			}
		}
	}
}

// localBinding returns the identifier an import specifier binds locally: the
// alias when one is present, the exported name otherwise.
func localBinding(spec sitter.Node, content []byte) string {
	if alias := spec.ChildByFieldName("alias"); !alias.IsNull() {
		return nodeText(alias, content)
	}

	if name := spec.ChildByFieldName("name"); !name.IsNull() {
		return nodeText(name, content)
	}

	return ""
}

// extractElement reads one opening or self-closing element. Fragments have no
// name node and are skipped.
func extractElement(n sitter.Node, content []byte) (m.Element, bool) {
	nameNode := n.ChildByFieldName("name")
	if nameNode.IsNull() {
		return m.Element{}, false
	}

	selfClosing := n.Type() == nodeSelfClosing

	el := m.Element{
		Tag:         nodeText(nameNode, content),
		SelfClosing: selfClosing,
		Line:        int(n.StartPoint().Row) + 1,
	}

	attrStart := nameNode.EndByte()
	attrEnd := elementCloserStart(n, selfClosing)

	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)

		switch child.Type() {
		case nodeTypeArguments:
			if child.EndByte() > attrStart {
				attrStart = child.EndByte()
			}
		case nodeAttribute:
			el.Attrs = append(el.Attrs, extractAttribute(child, content))
		case nodeExpression:
			el.Attrs = append(el.Attrs, m.Attribute{
				Raw:  nodeText(child, content),
				Kind: m.AttrSpread,
				Span: m.Span{Start: child.StartByte(), End: child.EndByte()},
			})
		}
	}

	if attrEnd < attrStart {
		attrEnd = attrStart
	}

	el.AttrSpan = m.Span{Start: attrStart, End: attrEnd}

	return el, true
}

// elementCloserStart locates the byte where the closing token sequence of the
// tag begins: "/" for self-closing elements, ">" otherwise.
func elementCloserStart(n sitter.Node, selfClosing bool) uint {
	closer := ">"
	if selfClosing {
		closer = "/"
	}

	for i := range n.ChildCount() {
		child := n.Child(i)
		if child.Type() == closer {
			return child.StartByte()
		}
	}

	if selfClosing && n.EndByte() >= 2 {
		return n.EndByte() - 2
	}

	if n.EndByte() >= 1 {
		return n.EndByte() - 1
	}

	return n.EndByte()
}

func extractAttribute(n sitter.Node, content []byte) m.Attribute {
	attr := m.Attribute{
		Raw:  nodeText(n, content),
		Kind: m.AttrBare,
		Span: m.Span{Start: n.StartByte(), End: n.EndByte()},
	}

	if n.NamedChildCount() == 0 {
		return attr
	}

	attr.Name = nodeText(n.NamedChild(0), content)

	if n.NamedChildCount() < 2 {
		return attr
	}

	value := n.NamedChild(1)

	switch value.Type() {
	case nodeString:
		attr.Kind = m.AttrString
		attr.Value = stringContent(value, content)
	case nodeExpression:
		attr.Kind = m.AttrExpression
		attr.Value = expressionContent(value, content)
	default:
		attr.Kind = m.AttrExpression
		attr.Value = nodeText(value, content)
	}

	return attr
}

// stringContent returns the text of a string node without quotes.
func stringContent(n sitter.Node, content []byte) string {
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if child.Type() == nodeStringFragment {
			return nodeText(child, content)
		}
	}

	text := nodeText(n, content)
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}

	return text
}

// expressionContent returns the text inside a brace container.
func expressionContent(n sitter.Node, content []byte) string {
	text := nodeText(n, content)

	text = strings.TrimPrefix(text, "{")
	text = strings.TrimSuffix(text, "}")

	return strings.TrimSpace(text)
}

func nodeText(n sitter.Node, content []byte) string {
	start, end := n.StartByte(), n.EndByte()
	if end > uint(len(content)) || start > end {
		return ""
	}

	return string(content[start:end])
}
