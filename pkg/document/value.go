package document

import (
	"math"
	"strconv"
	"strings"
)

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
	KindTagged
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindTagged:
		return "tagged"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed configuration document. Values are never
// modified after decoding, so trees can be shared freely.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  Number
	Str     string
	Items   []*Value
	Entries []Entry
	Tag     string
	Inner   *Value
}

// Entry is a single key/value pair of a mapping, kept in source order.
type Entry struct {
	Key   *Value
	Value *Value
}

type NumberKind int

const (
	NumberInt NumberKind = iota
	NumberUint
	NumberFloat
)

// Number keeps both the text it was written as and its parsed form.
type Number struct {
	Kind  NumberKind
	Int   int64
	Uint  uint64
	Float float64
	Text  string
}

func Null() *Value {
	return &Value{Kind: KindNull}
}

func Bool(b bool) *Value {
	return &Value{Kind: KindBool, Bool: b}
}

func String(s string) *Value {
	return &Value{Kind: KindString, Str: s}
}

func Int(i int64) *Value {
	return &Value{Kind: KindNumber, Number: Number{Kind: NumberInt, Int: i, Text: strconv.FormatInt(i, 10)}}
}

func Float(f float64) *Value {
	return &Value{Kind: KindNumber, Number: Number{Kind: NumberFloat, Float: f, Text: strconv.FormatFloat(f, 'g', -1, 64)}}
}

func Sequence(items ...*Value) *Value {
	return &Value{Kind: KindSequence, Items: items}
}

func Mapping(entries ...Entry) *Value {
	return &Value{Kind: KindMapping, Entries: entries}
}

func Tagged(tag string, inner *Value) *Value {
	return &Value{Kind: KindTagged, Tag: tag, Inner: inner}
}

// Pair builds a mapping entry with a string key.
func Pair(key string, value *Value) Entry {
	return Entry{Key: String(key), Value: value}
}

// ParseNumber interprets text as a YAML 1.2 core-schema number. Integers
// that overflow int64 fall back to uint64 and then to float64.
func ParseNumber(text string) (Number, bool) {
	clean := strings.ReplaceAll(text, "_", "")
	if i, err := strconv.ParseInt(clean, 0, 64); err == nil {
		return Number{Kind: NumberInt, Int: i, Text: text}, true
	}
	if u, err := strconv.ParseUint(strings.TrimPrefix(clean, "+"), 0, 64); err == nil {
		return Number{Kind: NumberUint, Uint: u, Text: text}, true
	}

	switch strings.ToLower(clean) {
	case ".inf", "+.inf":
		return Number{Kind: NumberFloat, Float: math.Inf(1), Text: text}, true
	case "-.inf":
		return Number{Kind: NumberFloat, Float: math.Inf(-1), Text: text}, true
	case ".nan":
		return Number{Kind: NumberFloat, Float: math.NaN(), Text: text}, true
	}

	if f, err := strconv.ParseFloat(clean, 64); err == nil {
		return Number{Kind: NumberFloat, Float: f, Text: text}, true
	}
	return Number{}, false
}

// Get looks up a string key in a mapping value.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != KindMapping {
		return nil, false
	}
	for _, e := range v.Entries {
		if e.Key.Kind == KindString && e.Key.Str == key {
			return e.Value, true
		}
	}
	return nil, false
}

// StringKey reports whether the value is usable as a path segment.
func (v *Value) StringKey() (string, bool) {
	if v == nil || v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}
