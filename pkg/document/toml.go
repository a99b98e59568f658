package document

import (
	"fmt"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ParseTOML decodes a TOML document. go-toml does not report table order
// when decoding into maps, so keys come out sorted.
func ParseTOML(data []byte) (*Value, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling TOML: %w", err)
	}
	return fromTOML(raw), nil
}

func fromTOML(raw interface{}) *Value {
	switch v := raw.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(v)
	case int64:
		return Int(v)
	case float64:
		return Float(v)
	case string:
		return String(v)
	case time.Time:
		return String(v.Format(time.RFC3339Nano))
	case toml.LocalDate:
		return String(v.String())
	case toml.LocalTime:
		return String(v.String())
	case toml.LocalDateTime:
		return String(v.String())
	case []interface{}:
		items := make([]*Value, len(v))
		for i, item := range v {
			items[i] = fromTOML(item)
		}
		return Sequence(items...)
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		entries := make([]Entry, len(keys))
		for i, k := range keys {
			entries[i] = Pair(k, fromTOML(v[k]))
		}
		return Mapping(entries...)
	}
	return String(fmt.Sprint(raw))
}
