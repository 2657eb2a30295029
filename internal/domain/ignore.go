package domain

import (
	"strings"
	"unicode"

	m "github.com/red-newt/propsmith/internal/model"
)

const (
	ignoreFileDirective = "propsmith:ignore-file"
	ignoreDirective     = "propsmith:ignore"
)

// ignoreIndex records which parts of a file are excluded by comment
// directives: the whole file, or individual element lines.
type ignoreIndex struct {
	file  bool
	lines map[int]struct{}
}

func (idx ignoreIndex) ignores(line int) bool {
	_, ok := idx.lines[line]

	return ok
}

// buildIgnoreIndex scans a file's comments for directives.
//
// "propsmith:ignore-file" skips the whole file when it appears before the
// first element. "propsmith:ignore" suppresses the element on the following
// line when the comment leads its line, or on its own line when it trails
// other content.
func buildIgnoreIndex(comments []m.Comment, elements []m.Element, content []byte) ignoreIndex {
	idx := ignoreIndex{lines: make(map[int]struct{})}

	firstElementOffset := uint(len(content))
	if len(elements) > 0 {
		firstElementOffset = elements[0].AttrSpan.Start
	}

	lineStarts := computeLineStarts(content)

	for _, c := range comments {
		directive, ok := parseIgnoreDirective(c.Text)
		if !ok {
			continue
		}

		if directive == ignoreFileDirective {
			if c.Offset < firstElementOffset {
				idx.file = true
			}

			continue
		}

		targetLine := c.Line
		if isLeadingComment(c.Line, int(c.Offset), lineStarts, content) {
			targetLine = c.Line + 1
		}

		idx.lines[targetLine] = struct{}{}
	}

	return idx
}

// parseIgnoreDirective extracts a directive from comment text. It returns
// the directive name and whether one was found.
func parseIgnoreDirective(commentText string) (string, bool) {
	s := strings.TrimSpace(commentText)

	switch {
	case strings.HasPrefix(s, "//"):
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	case strings.HasPrefix(s, "/*"):
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	case strings.HasPrefix(s, "{/*"):
		s = strings.TrimSpace(strings.TrimPrefix(s, "{/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/}"))
	}

	if !strings.HasPrefix(s, ignoreDirective) {
		return "", false
	}

	rest := strings.TrimPrefix(s, ignoreDirective)
	if strings.HasPrefix(rest, "-file") {
		return ignoreFileDirective, true
	}

	if rest == "" || unicode.IsSpace(rune(rest[0])) {
		return ignoreDirective, true
	}

	return "", false
}

func computeLineStarts(content []byte) []int {
	starts := []int{0}

	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

func isLeadingComment(line int, offset int, lineStarts []int, content []byte) bool {
	if line <= 0 || line > len(lineStarts) {
		return false
	}

	start := lineStarts[line-1]
	if offset < start || offset > len(content) {
		return false
	}

	for _, b := range content[start:offset] {
		if !unicode.IsSpace(rune(b)) {
			return false
		}
	}

	return true
}
