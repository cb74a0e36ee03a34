package toml

import (
	"errors"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/0xalexb/cfgmap"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Decode parses TOML data into a configuration tree. TOML documents are
// tables at the top level by construction, so unlike the JSON and YAML
// decoders there is no not-a-mapping failure mode. Offset and local
// datetimes, local dates and local times all decode to Datetime values.
func Decode(data []byte) (*cfgmap.Map, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return decodeTable(doc)
}

func decodeTable(table map[string]any) (*cfgmap.Map, error) {
	entries := make(map[string]*cfgmap.Value, len(table))
	for key, raw := range table {
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
	case toml.LocalDateTime:
		return cfgmap.Datetime(t.AsTime(time.Local)), nil
	case toml.LocalDate:
		return cfgmap.Datetime(t.AsTime(time.Local)), nil
	case toml.LocalTime:
		ts := time.Date(0, time.January, 1, t.Hour, t.Minute, t.Second, t.Nanosecond, time.Local)
		return cfgmap.Datetime(ts), nil
	case map[string]any:
		sub, err := decodeTable(t)
		if err != nil {
			return nil, err
		}
		return sub.Value(), nil
	case []map[string]any:
		// Arrays of tables surface with a concrete element type.
		elems := make([]*cfgmap.Value, 0, len(t))
		for _, el := range t {
			sub, err := decodeTable(el)
			if err != nil {
				return nil, err
			}
			elems = append(elems, sub.Value())
		}
		return cfgmap.List(elems...), nil
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
		// Scalars: strings, booleans, int64, float64, time.Time.
		return cfgmap.FromAny(t)
	}
}
