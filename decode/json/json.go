package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/0xalexb/cfgmap"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNotObject is returned when the top-level JSON value is not an object.
// A configuration tree must be keyed at the root.
var ErrNotObject = errors.New("top-level JSON value is not an object")

// Decode parses JSON data into a configuration tree. Numbers are decoded as
// Int when they are exact 64-bit integers and Float otherwise; null becomes
// the Null value.
func Decode(data []byte) (*cfgmap.Map, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	return decodeObject(obj)
}

func decodeObject(obj map[string]any) (*cfgmap.Map, error) {
	entries := make(map[string]*cfgmap.Value, len(obj))
	for key, raw := range obj {
		value, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		entries[key] = value
	}
	return cfgmap.NewFrom(entries), nil
}

func decodeValue(raw any) (*cfgmap.Value, error) {
	switch t := raw.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return cfgmap.Int(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", t, err)
		}
		return cfgmap.Float(f), nil
	case map[string]any:
		sub, err := decodeObject(t)
		if err != nil {
			return nil, err
		}
		return sub.Value(), nil
	case []any:
		elems := make([]*cfgmap.Value, 0, len(t))
		for _, el := range t {
			value, err := decodeValue(el)
			if err != nil {
				return nil, err
			}
			elems = append(elems, value)
		}
		return cfgmap.List(elems...), nil
	default:
		// Strings, booleans and null.
		return cfgmap.FromAny(t)
	}
}
