package renderer

import (
	"github.com/wonderfulspam/confdiff/pkg/differ"
	"github.com/wonderfulspam/confdiff/pkg/document"
)

// Report is the machine readable form of a diff result. Values are the
// rendered strings shown in the text report, not structured data.
type Report struct {
	Summary  ReportSummary  `json:"summary" yaml:"summary"`
	Added    []ReportEntry  `json:"added" yaml:"added"`
	Removed  []ReportEntry  `json:"removed" yaml:"removed"`
	Modified []ReportChange `json:"modified" yaml:"modified"`
}

type ReportSummary struct {
	Added      int  `json:"added" yaml:"added"`
	Removed    int  `json:"removed" yaml:"removed"`
	Modified   int  `json:"modified" yaml:"modified"`
	HasChanges bool `json:"has_changes" yaml:"has_changes"`
}

type ReportEntry struct {
	Path  string `json:"path" yaml:"path"`
	Value string `json:"value" yaml:"value"`
}

type ReportChange struct {
	Path string `json:"path" yaml:"path"`
	Old  string `json:"old" yaml:"old"`
	New  string `json:"new" yaml:"new"`
}

// NewReport converts a diff result, keeping the result's ordering.
func NewReport(result *differ.DiffResult) *Report {
	report := &Report{
		Summary: ReportSummary{
			Added:      len(result.Added),
			Removed:    len(result.Removed),
			Modified:   len(result.Modified),
			HasChanges: result.HasChanges(),
		},
		Added:    make([]ReportEntry, 0, len(result.Added)),
		Removed:  make([]ReportEntry, 0, len(result.Removed)),
		Modified: make([]ReportChange, 0, len(result.Modified)),
	}

	for _, d := range result.Added {
		report.Added = append(report.Added, ReportEntry{Path: d.Path, Value: document.Render(d.NewValue)})
	}
	for _, d := range result.Removed {
		report.Removed = append(report.Removed, ReportEntry{Path: d.Path, Value: document.Render(d.OldValue)})
	}
	for _, d := range result.Modified {
		report.Modified = append(report.Modified, ReportChange{
			Path: d.Path,
			Old:  document.Render(d.OldValue),
			New:  document.Render(d.NewValue),
		})
	}

	return report
}
