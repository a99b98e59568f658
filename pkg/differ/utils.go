package differ

import (
	"fmt"
)

// Summary describes the result in one line for logs and stderr.
func (r *DiffResult) Summary() string {
	if !r.HasChanges() {
		return "No differences found"
	}

	return fmt.Sprintf("%d added, %d removed, %d modified (%d total changes)",
		len(r.Added), len(r.Removed), len(r.Modified), r.Total())
}

// Paths lists the changed paths of one kind in result order.
func (r *DiffResult) Paths(kind DiffType) []string {
	var diffs []ConfigDiff
	switch kind {
	case DiffTypeAdded:
		diffs = r.Added
	case DiffTypeRemoved:
		diffs = r.Removed
	case DiffTypeModified:
		diffs = r.Modified
	}

	paths := make([]string, len(diffs))
	for i, d := range diffs {
		paths[i] = d.Path
	}
	return paths
}
