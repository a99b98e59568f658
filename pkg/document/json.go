package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ParseJSON decodes a JSON document keeping object member order and the
// literal text of numbers.
func ParseJSON(data []byte) (*Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Null(), nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSON(dec, 0)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("unmarshaling JSON: %w", err)
	}

	if tok, err := dec.Token(); err == nil {
		return nil, fmt.Errorf("unmarshaling JSON: unexpected %v after top-level value", tok)
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshaling JSON: %w", err)
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder, depth int) (*Value, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		num, ok := ParseNumber(t.String())
		if !ok {
			return nil, fmt.Errorf("invalid number %q", t.String())
		}
		return &Value{Kind: KindNumber, Number: num}, nil
	case json.Delim:
		if t == '[' {
			return decodeJSONArray(dec, depth)
		}
		return decodeJSONObject(dec, depth)
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeJSONArray(dec *json.Decoder, depth int) (*Value, error) {
	var items []*Value
	for dec.More() {
		item, err := decodeJSON(dec, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return Sequence(items...), nil
}

func decodeJSONObject(dec *json.Decoder, depth int) (*Value, error) {
	var entries []Entry
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		if seen[key] {
			return nil, fmt.Errorf("%w %q", ErrDuplicateKey, key)
		}
		seen[key] = true

		val, err := decodeJSON(dec, depth+1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Pair(key, val))
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return Mapping(entries...), nil
}
