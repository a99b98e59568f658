package renderer

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wonderfulspam/confdiff/pkg/differ"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type Options struct {
	Style Style
	// StringDiff adds a line diff under modified entries whose old and
	// new values are both multi-line strings.
	StringDiff bool
}

// Renderer turns diff results into reports
type Renderer struct {
	style      Style
	stringDiff bool
}

// New creates a renderer. A nil opts renders plain text.
func New(opts *Options) *Renderer {
	r := &Renderer{style: PlainStyle()}
	if opts == nil {
		return r
	}

	if opts.Style.Title != nil {
		r.style = opts.Style
	}
	r.stringDiff = opts.StringDiff
	return r
}

// FormatResult formats a diff result for display
func (r *Renderer) FormatResult(result *differ.DiffResult, format Format) (string, error) {
	switch format {
	case FormatText, "":
		return r.formatText(result), nil

	case FormatJSON:
		data, err := json.MarshalIndent(NewReport(result), "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding JSON report: %w", err)
		}
		return string(data) + "\n", nil

	case FormatYAML:
		data, err := yaml.Marshal(NewReport(result))
		if err != nil {
			return "", fmt.Errorf("encoding YAML report: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", format)
	}
}

// Write formats the result and writes it to w.
func (r *Renderer) Write(w io.Writer, result *differ.DiffResult, format Format) error {
	out, err := r.FormatResult(result, format)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
