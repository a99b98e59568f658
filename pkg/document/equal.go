package document

import "math"

// Equal reports deep structural equality. Mapping entries are matched by key
// regardless of their order; sequences must match element by element.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindNumber:
		return equalNumbers(a.Number, b.Number)
	case KindString:
		return a.Str == b.Str
	case KindSequence:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		return equalMappings(a.Entries, b.Entries)
	case KindTagged:
		return a.Tag == b.Tag && Equal(a.Inner, b.Inner)
	}
	return false
}

func equalNumbers(a, b Number) bool {
	switch {
	case a.Kind == NumberFloat && b.Kind == NumberFloat:
		if math.IsNaN(a.Float) && math.IsNaN(b.Float) {
			return true
		}
		return a.Float == b.Float
	case a.Kind == NumberFloat || b.Kind == NumberFloat:
		return false
	case a.Kind == NumberInt && b.Kind == NumberInt:
		return a.Int == b.Int
	case a.Kind == NumberUint && b.Kind == NumberUint:
		return a.Uint == b.Uint
	case a.Kind == NumberInt:
		return a.Int >= 0 && uint64(a.Int) == b.Uint
	default:
		return b.Int >= 0 && uint64(b.Int) == a.Uint
	}
}

func equalMappings(a, b []Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for _, ea := range a {
		found := false
		for _, eb := range b {
			if Equal(ea.Key, eb.Key) {
				if !Equal(ea.Value, eb.Value) {
					return false
				}
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
