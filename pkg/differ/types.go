package differ

import "github.com/wonderfulspam/confdiff/pkg/document"

type DiffType string

const (
	DiffTypeAdded    DiffType = "added"
	DiffTypeRemoved  DiffType = "removed"
	DiffTypeModified DiffType = "modified"
)

// ConfigDiff is one changed leaf. Added entries only carry NewValue and
// removed entries only carry OldValue. Both point into the compared
// documents rather than holding copies.
type ConfigDiff struct {
	Type     DiffType
	Path     string
	OldValue *document.Value
	NewValue *document.Value
}

// DiffResult holds every change between two documents, each slice sorted by
// the path ordering the comparison ran with.
type DiffResult struct {
	Added    []ConfigDiff
	Removed  []ConfigDiff
	Modified []ConfigDiff
}

func (r *DiffResult) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0 || len(r.Modified) > 0
}

func (r *DiffResult) Total() int {
	return len(r.Added) + len(r.Removed) + len(r.Modified)
}
