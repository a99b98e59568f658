package renderer

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/wonderfulspam/confdiff/pkg/document"
)

type LineOp int

const (
	LineEqual LineOp = iota
	LineInserted
	LineDeleted
)

// DiffLine is one line of a line-level diff between two strings.
type DiffLine struct {
	Op   LineOp
	Text string
}

func (l DiffLine) Prefix() string {
	switch l.Op {
	case LineInserted:
		return "+ "
	case LineDeleted:
		return "- "
	default:
		return "  "
	}
}

// LineDiff compares two texts line by line.
func LineDiff(oldText, newText string) []DiffLine {
	dmp := diffmatchpatch.New()
	oldChars, newChars, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(oldChars, newChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []DiffLine
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}

		op := LineEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = LineInserted
		case diffmatchpatch.DiffDelete:
			op = LineDeleted
		}

		for _, text := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			lines = append(lines, DiffLine{Op: op, Text: text})
		}
	}
	return lines
}

// stringLineDiff diffs two leaves when both are strings and at least one
// spans several lines.
func stringLineDiff(oldValue, newValue *document.Value) ([]DiffLine, bool) {
	if oldValue == nil || newValue == nil {
		return nil, false
	}
	if oldValue.Kind != document.KindString || newValue.Kind != document.KindString {
		return nil, false
	}
	if !strings.Contains(oldValue.Str, "\n") && !strings.Contains(newValue.Str, "\n") {
		return nil, false
	}
	return LineDiff(oldValue.Str, newValue.Str), true
}
