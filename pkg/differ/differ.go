package differ

import (
	"github.com/wonderfulspam/confdiff/pkg/document"
)

type Options struct {
	// Order sorts the result; nil means ComparePaths.
	Order Ordering
}

// Compare diffs two documents with the default hierarchical ordering.
func Compare(oldDoc, newDoc *document.Value) *DiffResult {
	return CompareWith(oldDoc, newDoc, Options{})
}

// CompareWith flattens both documents and classifies every path: present
// only in the new document (added), only in the old one (removed), or in
// both with values that are not structurally equal (modified).
func CompareWith(oldDoc, newDoc *document.Value, opts Options) *DiffResult {
	return CompareFlattened(Flatten(oldDoc), Flatten(newDoc), opts)
}

// CompareFlattened diffs two already flattened documents.
func CompareFlattened(oldLeaves, newLeaves map[string]*document.Value, opts Options) *DiffResult {
	result := &DiffResult{
		Added:    []ConfigDiff{},
		Removed:  []ConfigDiff{},
		Modified: []ConfigDiff{},
	}

	for _, path := range sortedKeys(newLeaves, opts.Order) {
		if _, exists := oldLeaves[path]; !exists {
			result.Added = append(result.Added, ConfigDiff{
				Type:     DiffTypeAdded,
				Path:     path,
				NewValue: newLeaves[path],
			})
		}
	}

	for _, path := range sortedKeys(oldLeaves, opts.Order) {
		oldVal := oldLeaves[path]
		newVal, exists := newLeaves[path]

		if !exists {
			result.Removed = append(result.Removed, ConfigDiff{
				Type:     DiffTypeRemoved,
				Path:     path,
				OldValue: oldVal,
			})
		} else if !document.Equal(oldVal, newVal) {
			result.Modified = append(result.Modified, ConfigDiff{
				Type:     DiffTypeModified,
				Path:     path,
				OldValue: oldVal,
				NewValue: newVal,
			})
		}
	}

	return result
}

func sortedKeys(leaves map[string]*document.Value, order Ordering) []string {
	paths := make([]string, 0, len(leaves))
	for path := range leaves {
		paths = append(paths, path)
	}
	SortPaths(paths, order)
	return paths
}
