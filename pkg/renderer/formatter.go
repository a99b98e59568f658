package renderer

import (
	"bytes"
	"fmt"

	"github.com/wonderfulspam/confdiff/pkg/differ"
	"github.com/wonderfulspam/confdiff/pkg/document"
)

// formatText renders the human readable report. Empty sections are left
// out entirely.
func (r *Renderer) formatText(result *differ.DiffResult) string {
	var buf bytes.Buffer
	s := r.style

	buf.WriteString(s.Title("=== Configuration Diff Report ==="))
	buf.WriteString("\n\n")

	buf.WriteString(s.Heading("Summary:"))
	buf.WriteString("\n")
	buf.WriteString(fmt.Sprintf("  Added: %s\n", s.Added(len(result.Added))))
	buf.WriteString(fmt.Sprintf("  Removed: %s\n", s.Removed(len(result.Removed))))
	buf.WriteString(fmt.Sprintf("  Modified: %s\n", s.Modified(len(result.Modified))))
	buf.WriteString("\n")

	if len(result.Added) > 0 {
		buf.WriteString(s.Heading("Added:"))
		buf.WriteString("\n")
		for _, d := range result.Added {
			buf.WriteString("  ")
			buf.WriteString(s.Added(fmt.Sprintf("+ %s: %s", d.Path, document.Render(d.NewValue))))
			buf.WriteString("\n")
		}
		buf.WriteString("\n")
	}

	if len(result.Removed) > 0 {
		buf.WriteString(s.Heading("Removed:"))
		buf.WriteString("\n")
		for _, d := range result.Removed {
			buf.WriteString("  ")
			buf.WriteString(s.Removed(fmt.Sprintf("- %s: %s", d.Path, document.Render(d.OldValue))))
			buf.WriteString("\n")
		}
		buf.WriteString("\n")
	}

	if len(result.Modified) > 0 {
		buf.WriteString(s.Heading("Modified:"))
		buf.WriteString("\n")
		for _, d := range result.Modified {
			r.formatModified(&buf, d)
		}
		buf.WriteString("\n")
	}

	if !result.HasChanges() {
		buf.WriteString(s.Success("No differences found"))
		buf.WriteString("\n")
	}

	return buf.String()
}

func (r *Renderer) formatModified(buf *bytes.Buffer, d differ.ConfigDiff) {
	s := r.style

	buf.WriteString("  ")
	buf.WriteString(s.Modified("~ " + d.Path))
	buf.WriteString("\n")
	buf.WriteString(fmt.Sprintf("    old: %s\n", s.Removed(document.Render(d.OldValue))))
	buf.WriteString(fmt.Sprintf("    new: %s\n", s.Added(document.Render(d.NewValue))))

	if !r.stringDiff {
		return
	}

	lines, ok := stringLineDiff(d.OldValue, d.NewValue)
	if !ok {
		return
	}

	buf.WriteString("    diff:\n")
	for _, l := range lines {
		text := l.Prefix() + l.Text
		switch l.Op {
		case LineInserted:
			text = s.Added(text)
		case LineDeleted:
			text = s.Removed(text)
		}
		buf.WriteString("      ")
		buf.WriteString(text)
		buf.WriteString("\n")
	}
}
