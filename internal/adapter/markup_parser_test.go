package adapter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/red-newt/propsmith/internal/model"
)

func parseSource(t *testing.T, dialect m.Dialect, source string) *ParsedFile {
	t.Helper()

	pf, err := NewTreeSitterParser().Parse(context.Background(), "test.src", []byte(source), dialect)
	require.NoError(t, err)

	return pf
}

func TestTreeSitterParser_ImportExtraction(t *testing.T) {
	pf := parseSource(t, m.DialectTSX,
		"import React from \"react\";\n"+
			"import * as Theme from \"./theme\";\n"+
			"import { Input, Select as Picker } from \"@acme/kit\";\n"+
			"import \"./side-effect\";\n")

	require.Len(t, pf.Imports, 4)

	require.Equal(t, "react", pf.Imports[0].Module)
	require.True(t, pf.Imports[0].Default)
	require.Empty(t, pf.Imports[0].Names)

	require.True(t, pf.Imports[1].Namespace)

	kit := pf.Imports[2]
	require.Equal(t, "@acme/kit", kit.Module)
	require.Equal(t, []string{"Input", "Picker"}, kit.Names)

	// Side-effect imports bind nothing but keep their module path.
	require.Equal(t, "./side-effect", pf.Imports[3].Module)
	require.Empty(t, pf.Imports[3].Names)
}

func TestTreeSitterParser_ElementAttributes(t *testing.T) {
	pf := parseSource(t, m.DialectJSX,
		"const el = <Field name=\"email\" rows={2} disabled {...rest} />;\n")

	require.Len(t, pf.Elements, 1)

	el := pf.Elements[0]
	require.Equal(t, "Field", el.Tag)
	require.True(t, el.SelfClosing)
	require.Len(t, el.Attrs, 4)

	require.Equal(t, m.AttrString, el.Attrs[0].Kind)
	require.Equal(t, "email", el.Attrs[0].Value)
	require.Equal(t, `name="email"`, el.Attrs[0].Raw)

	require.Equal(t, m.AttrExpression, el.Attrs[1].Kind)
	require.Equal(t, "2", el.Attrs[1].Value)

	require.Equal(t, m.AttrBare, el.Attrs[2].Kind)
	require.Equal(t, "disabled", el.Attrs[2].Name)

	require.Equal(t, m.AttrSpread, el.Attrs[3].Kind)
	require.Equal(t, "{...rest}", el.Attrs[3].Raw)
}

func TestTreeSitterParser_AttrSpanCoversAttributeRegion(t *testing.T) {
	source := "const el = <Field name=\"email\" />;\n"
	pf := parseSource(t, m.DialectJSX, source)

	el := pf.Elements[0]
	region := source[el.AttrSpan.Start:el.AttrSpan.End]
	require.Equal(t, " name=\"email\" ", region)
}

func TestTreeSitterParser_DocumentOrderAndNesting(t *testing.T) {
	pf := parseSource(t, m.DialectJSX,
		"const el = (\n"+
			"  <div>\n"+
			"    <Field />\n"+
			"    <span render={<Inner />} />\n"+
			"  </div>\n"+
			");\n")

	tags := make([]string, 0, len(pf.Elements))
	for _, el := range pf.Elements {
		tags = append(tags, el.Tag)
	}

	require.Equal(t, []string{"div", "Field", "span", "Inner"}, tags)
}

func TestTreeSitterParser_MemberExpressionTag(t *testing.T) {
	pf := parseSource(t, m.DialectJSX, "const el = <Theme.Button kind=\"ghost\" />;\n")

	require.Len(t, pf.Elements, 1)
	require.Equal(t, "Theme.Button", pf.Elements[0].Tag)
}

func TestTreeSitterParser_CommentsCollected(t *testing.T) {
	pf := parseSource(t, m.DialectJSX,
		"// propsmith:ignore-file\nconst x = 1;\n")

	require.Len(t, pf.Comments, 1)
	require.Equal(t, "// propsmith:ignore-file", pf.Comments[0].Text)
	require.Equal(t, 1, pf.Comments[0].Line)
}

func TestTreeSitterParser_BraceWrappedCommentPositionedAtBrace(t *testing.T) {
	source := "const x = (\n" +
		"  <div>\n" +
		"    {/* propsmith:ignore */}\n" +
		"    <Field name=\"hidden\" />\n" +
		"  </div>\n" +
		");\n"

	pf := parseSource(t, m.DialectJSX, source)

	require.Len(t, pf.Comments, 1)

	comment := pf.Comments[0]
	require.Equal(t, "/* propsmith:ignore */", comment.Text)
	require.Equal(t, 3, comment.Line)

	// The position is the brace container's start, so only whitespace
	// precedes the comment on its line.
	require.Equal(t, uint(strings.Index(source, "{/*")), comment.Offset)
}

func TestTreeSitterParser_MalformedSource(t *testing.T) {
	parser := NewTreeSitterParser()

	_, err := parser.Parse(context.Background(), "broken.jsx",
		[]byte("export function Broken() { return (<Field name=\n}\n"), m.DialectJSX)

	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedSource))
	require.Contains(t, err.Error(), "broken.jsx")
}

func TestTreeSitterParser_UnsupportedDialect(t *testing.T) {
	parser := NewTreeSitterParser()

	_, err := parser.Parse(context.Background(), "x.vue", []byte(""), m.Dialect("vue"))

	require.True(t, errors.Is(err, ErrUnsupportedDialect))
}

func TestTreeSitterParser_TypeScriptSyntax(t *testing.T) {
	pf := parseSource(t, m.DialectTSX,
		"import { Input } from \"@acme/kit\";\n"+
			"export function Form(props: { id: string }): JSX.Element {\n"+
			"  return <Input id={props.id} />;\n"+
			"}\n")

	require.Len(t, pf.Elements, 1)
	require.Equal(t, "Input", pf.Elements[0].Tag)
}
