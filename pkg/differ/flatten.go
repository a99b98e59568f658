package differ

import "github.com/wonderfulspam/confdiff/pkg/document"

// Flatten walks a document and returns its leaves keyed by dotted path.
// Mappings are descended into and never recorded themselves; every other
// value is a leaf. Keys that are not plain strings are skipped together with
// their subtree, and a root that is not a mapping yields an empty map. An
// empty key at the root adds no segment, so its leaves sit at the top level
// and a scalar stored under it has no path at all.
func Flatten(v *document.Value) map[string]*document.Value {
	leaves := make(map[string]*document.Value)
	flattenInto(v, "", leaves)
	return leaves
}

func flattenInto(v *document.Value, prefix string, leaves map[string]*document.Value) {
	if v == nil || v.Kind != document.KindMapping {
		if prefix != "" {
			leaves[prefix] = v
		}
		return
	}

	for _, e := range v.Entries {
		key, ok := e.Key.StringKey()
		if !ok {
			continue
		}

		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		flattenInto(e.Value, path, leaves)
	}
}
