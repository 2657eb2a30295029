package adapter

import (
	"strings"
	"testing"

	m "github.com/red-newt/propsmith/internal/model"
)

func spanOf(content, needle string) m.Span {
	start := strings.Index(content, needle)

	return m.Span{Start: uint(start), End: uint(start + len(needle))}
}

func TestSpliceEdits_NoEditsReturnsInput(t *testing.T) {
	content := []byte("<Field />")

	out := SpliceEdits(content, nil)
	if string(out) != string(content) {
		t.Fatalf("content changed without edits: %q", out)
	}
}

func TestSpliceEdits_SingleEdit(t *testing.T) {
	content := "<Field a=\"1\" />"

	edits := []ElementEdit{{
		Span:        spanOf(content, " a=\"1\" "),
		Attrs:       []m.Attribute{{Name: "a", Raw: `a="1"`}, {Name: "b", Raw: `b="2"`}},
		SelfClosing: true,
	}}

	out := SpliceEdits([]byte(content), edits)
	if string(out) != `<Field a="1" b="2" />` {
		t.Fatalf("unexpected splice result: %q", out)
	}
}

func TestSpliceEdits_MultipleEditsBackToFront(t *testing.T) {
	content := "<A x=\"1\" /> mid <B y=\"2\" />"

	edits := []ElementEdit{
		{
			Span:        spanOf(content, " x=\"1\" "),
			Attrs:       []m.Attribute{{Name: "q", Raw: `q="9"`}, {Name: "x", Raw: `x="1"`}},
			SelfClosing: true,
		},
		{
			Span:        spanOf(content, " y=\"2\" "),
			Attrs:       []m.Attribute{{Name: "y", Raw: `y="2"`}, {Name: "z", Raw: `z="3"`}},
			SelfClosing: true,
		},
	}

	out := SpliceEdits([]byte(content), edits)

	want := `<A q="9" x="1" /> mid <B y="2" z="3" />`
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestSpliceEdits_EmptyAttrList(t *testing.T) {
	content := "<Field a=\"1\">text</Field>"

	edits := []ElementEdit{{
		Span:  spanOf(content, " a=\"1\""),
		Attrs: nil,
	}}

	out := SpliceEdits([]byte(content), edits)
	if string(out) != "<Field>text</Field>" {
		t.Fatalf("unexpected result: %q", out)
	}
}

func TestRenderAttrRegion_SelfClosingSpacing(t *testing.T) {
	region := renderAttrRegion([]m.Attribute{{Name: "a", Raw: `a="1"`}}, true)
	if region != ` a="1" ` {
		t.Fatalf("unexpected region %q", region)
	}

	region = renderAttrRegion(nil, true)
	if region != " " {
		t.Fatalf("empty self-closing region must keep a space, got %q", region)
	}

	region = renderAttrRegion(nil, false)
	if region != "" {
		t.Fatalf("empty region must be empty, got %q", region)
	}
}
