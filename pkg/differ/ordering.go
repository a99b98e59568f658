package differ

import (
	"fmt"
	"sort"
	"strings"
)

// Ordering compares two paths, returning a negative number when a sorts
// before b, zero when they are equal and a positive number otherwise.
type Ordering func(a, b string) int

const (
	OrderHierarchical = "hierarchical"
	OrderLexical      = "lexical"
)

// ComparePaths orders paths so that related keys stay together: an ancestor
// sorts before its descendants, siblings under a shared prefix sort by depth
// and then by the first differing segment, and paths with nothing in common
// fall back to plain string order.
func ComparePaths(a, b string) int {
	if a == b {
		return 0
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	common := 0
	for common < len(as) && common < len(bs) && as[common] == bs[common] {
		common++
	}

	if common == 0 {
		return strings.Compare(a, b)
	}

	// An ancestor is always the shorter path, so depth settles both the
	// ancestor case and siblings of different depth.
	if len(as) != len(bs) {
		return compareInts(len(as), len(bs))
	}
	return strings.Compare(as[common], bs[common])
}

// CompareLexical is plain byte-wise string order.
func CompareLexical(a, b string) int {
	return strings.Compare(a, b)
}

// OrderingByName resolves a configured ordering name; empty means
// hierarchical.
func OrderingByName(name string) (Ordering, error) {
	switch name {
	case "", OrderHierarchical:
		return ComparePaths, nil
	case OrderLexical:
		return CompareLexical, nil
	default:
		return nil, fmt.Errorf("unknown path ordering: %s", name)
	}
}

// SortPaths sorts paths in place using order, defaulting to ComparePaths.
func SortPaths(paths []string, order Ordering) {
	if order == nil {
		order = ComparePaths
	}
	sort.SliceStable(paths, func(i, j int) bool {
		return order(paths[i], paths[j]) < 0
	})
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
