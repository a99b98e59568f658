package document

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Render converts a value into the display form used in reports. Scalars
// print their plain text, sequences print as [a, b] and mappings as a
// key-sorted {"k": "v"} dump so the output is stable between runs.
func Render(v *Value) string {
	if v == nil {
		return "null"
	}

	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNumber:
		return v.Number.Canonical()
	case KindString:
		return v.Str
	case KindSequence:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = Render(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		return renderMapping(v.Entries)
	case KindTagged:
		return v.Tag + ":" + Render(v.Inner)
	}
	return ""
}

func renderMapping(entries []Entry) string {
	rendered := make(map[string]string, len(entries))
	for _, e := range entries {
		rendered[Render(e.Key)] = Render(e.Value)
	}

	keys := make([]string, 0, len(rendered))
	for k := range rendered {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(k))
		b.WriteString(": ")
		b.WriteString(strconv.Quote(rendered[k]))
	}
	b.WriteByte('}')
	return b.String()
}

// Canonical returns the decimal form of the number: integers in base 10
// whatever base they were written in, floats in shortest round-trip form
// with a trailing ".0" when they have no fractional part.
func (n Number) Canonical() string {
	switch n.Kind {
	case NumberInt:
		return strconv.FormatInt(n.Int, 10)
	case NumberUint:
		return strconv.FormatUint(n.Uint, 10)
	}

	switch {
	case math.IsNaN(n.Float):
		return ".nan"
	case math.IsInf(n.Float, 1):
		return ".inf"
	case math.IsInf(n.Float, -1):
		return "-.inf"
	}

	abs := math.Abs(n.Float)
	if abs != 0 && (abs < 1e-5 || abs >= 1e16) {
		s := strconv.FormatFloat(n.Float, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := ""
		if strings.HasPrefix(exp, "-") {
			sign = "-"
		}
		exp = strings.TrimLeft(exp, "+-0")
		return mantissa + "e" + sign + exp
	}

	s := strconv.FormatFloat(n.Float, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
