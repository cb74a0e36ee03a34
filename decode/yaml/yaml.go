package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/cfgmap"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNotMapping is returned when the top-level YAML node is not a mapping.
// A configuration tree must be keyed at the root.
var ErrNotMapping = errors.New("top-level YAML node is not a mapping")

// ErrNonStringKey is returned when a mapping uses a key that is not a
// string; cfgmap trees are keyed by strings only.
var ErrNonStringKey = errors.New("mapping key is not a string")

// Decode parses YAML data into a configuration tree. Anchors and aliases
// are resolved during parsing, so the decoded tree never contains Alias or
// BadValue nodes; malformed documents fail with a parse error instead.
func Decode(data []byte) (*cfgmap.Map, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	switch obj := doc.(type) {
	case map[string]any:
		return decodeMapping(obj)
	case map[any]any:
		return decodeAnyMapping(obj)
	default:
		return nil, ErrNotMapping
	}
}

func decodeMapping(obj map[string]any) (*cfgmap.Map, error) {
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

func decodeAnyMapping(obj map[any]any) (*cfgmap.Map, error) {
	entries := make(map[string]*cfgmap.Value, len(obj))
	for key, raw := range obj {
		name, ok := key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNonStringKey, key)
		}
		value, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", name, err)
		}
		entries[name] = value
	}
	return cfgmap.NewFrom(entries), nil
}

func decodeValue(raw any) (*cfgmap.Value, error) {
	switch t := raw.(type) {
	case map[string]any:
		sub, err := decodeMapping(t)
		if err != nil {
			return nil, err
		}
		return sub.Value(), nil
	case map[any]any:
		sub, err := decodeAnyMapping(t)
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
		// Scalars: strings, booleans, integers of whatever width the
		// parser chose, floats, timestamps, null.
		return cfgmap.FromAny(t)
	}
}
