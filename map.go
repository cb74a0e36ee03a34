package cfgmap

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// ErrParentNotMap is returned by Add when the parent segment of the path
// does not resolve to a Map, i.e. the caller asked to insert inside
// something that cannot hold named children.
var ErrParentNotMap = errors.New("parent path does not resolve to a map")

// Map is a path-addressed configuration tree: string keys mapping to values,
// which may themselves be nested Maps or Lists. All path operations split
// the key on "/" and resolve segments left to right with no normalization:
// there is no support for ".", "..", or empty segments, so a leading or
// trailing slash produces a segment that fails to resolve.
//
// A Map is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
type Map struct {
	entries map[string]*Value

	// Default names the default-lookup root consulted by GetOption and
	// UpdateOption. It is concatenated literally in front of the option
	// name, not path-joined, so callers wanting path-style defaults must
	// include the trailing separator themselves, e.g. "default/".
	Default string
}

// New creates an empty Map.
func New() *Map {
	return &Map{entries: make(map[string]*Value)}
}

// NewFrom creates a Map owning the given entries. The map is used as-is,
// not copied; a nil map is replaced with an empty one.
func NewFrom(entries map[string]*Value) *Map {
	if entries == nil {
		entries = make(map[string]*Value)
	}
	return &Map{entries: entries}
}

// Value wraps the map as a Value, for insertion into a parent tree.
func (m *Map) Value() *Value {
	return &Value{kind: KindMap, m: m}
}

// Get resolves a slash-delimited path to the value it addresses, or nil if
// any step fails: a missing key, a non-container in the middle of the path,
// a non-numeric or out-of-range list index. It never panics.
//
// A path segment landing on a List is interpreted as follows: the next
// segment must parse as a non-negative integer index; if further segments
// remain after the index, the indexed element must be a Map and resolution
// continues inside it.
//
// Go has no immutable references, so this single method serves both reads
// and writes: the returned pointer is the live slot in the tree, and
// assigning through it replaces the node in place.
func (m *Map) Get(path string) *Value {
	if m == nil {
		return nil
	}
	head, rest, deeper := strings.Cut(path, "/")
	next, ok := m.entries[head]
	if !ok {
		return nil
	}
	if !deeper {
		return next
	}
	switch next.kind {
	case KindMap:
		return next.m.Get(rest)
	case KindList:
		seg, rest, deeper := strings.Cut(rest, "/")
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= len(next.list) {
			return nil
		}
		elem := next.list[idx]
		if !deeper {
			return elem
		}
		sub, ok := elem.AsMap()
		if !ok {
			return nil
		}
		return sub.Get(rest)
	default:
		return nil
	}
}

// Add inserts value at path, splitting on the last "/" into a parent path
// and a final key. With no parent path the entry goes into this map
// directly, returning whatever value the key previously held. Otherwise the
// parent path must already resolve to a Map (Add never creates
// intermediate maps), and ErrParentNotMap is returned (with nothing
// inserted) when it does not.
func (m *Map) Add(path string, value *Value) (*Value, error) {
	parent, key, nested := rsplitPath(path)
	if !nested {
		if m.entries == nil {
			m.entries = make(map[string]*Value)
		}
		old := m.entries[key]
		m.entries[key] = value
		return old, nil
	}
	subtree := m.Get(parent)
	if !subtree.CheckThat(IsMap) {
		return nil, fmt.Errorf("add %q: %w", path, ErrParentNotMap)
	}
	sub, _ := subtree.AsMap()
	return sub.Add(key, value)
}

// Remove deletes the entry at path and returns its value, or nil when the
// path does not resolve. Like Add, the parent path must resolve to a Map.
func (m *Map) Remove(path string) *Value {
	_, value, _ := m.RemoveEntry(path)
	return value
}

// RemoveEntry deletes the entry at path and returns the final key together
// with its value. The third result is false when nothing was removed.
func (m *Map) RemoveEntry(path string) (string, *Value, bool) {
	parent, key, nested := rsplitPath(path)
	if !nested {
		value, ok := m.entries[key]
		if !ok {
			return "", nil, false
		}
		delete(m.entries, key)
		return key, value, true
	}
	subtree := m.Get(parent)
	if !subtree.CheckThat(IsMap) {
		return "", nil, false
	}
	sub, _ := subtree.AsMap()
	return sub.RemoveEntry(key)
}

// RemoveIf removes the entry at path only when its current value satisfies
// the condition; otherwise the tree is left untouched and nil is returned.
// This guards against deleting a value of an unexpected shape.
func (m *Map) RemoveIf(path string, condition Condition) *Value {
	if m.Get(path).CheckThat(condition) {
		return m.Remove(path)
	}
	return nil
}

// RemoveEntryIf is RemoveEntry gated on the condition, like RemoveIf.
func (m *Map) RemoveEntryIf(path string, condition Condition) (string, *Value, bool) {
	if m.Get(path).CheckThat(condition) {
		return m.RemoveEntry(path)
	}
	return "", nil, false
}

// ContainsKey reports whether path resolves to a value.
func (m *Map) ContainsKey(path string) bool {
	return m.Get(path) != nil
}

// GetOption resolves "category/option", falling back to the default section
// (Default concatenated literally with option) when the qualified path is
// absent. Returns nil when neither resolves.
//
// With an empty Default the fallback reads option from the root of the map.
func (m *Map) GetOption(category, option string) *Value {
	if v := m.Get(category + "/" + option); v != nil {
		return v
	}
	return m.Get(m.Default + option)
}

// UpdateOption replaces an existing option in place, resolving the slot the
// same way GetOption does, and returns the displaced value. Unlike Add it
// never inserts: when neither the qualified path nor the default path
// resolves, no mutation occurs and nil is returned.
func (m *Map) UpdateOption(category, option string, to *Value) *Value {
	slot := m.Get(category + "/" + option)
	if slot == nil {
		slot = m.Get(m.Default + option)
	}
	if slot == nil || to == nil {
		return nil
	}
	old := *slot
	*slot = *to
	return &old
}

// Len returns the number of top-level entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the top-level keys in sorted order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// All iterates over the top-level entries in unspecified order.
func (m *Map) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if m == nil {
			return
		}
		for k, v := range m.entries {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Equal reports deep equality of entries and the Default path.
func (m *Map) Equal(o *Map) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Default != o.Default || len(m.entries) != len(o.entries) {
		return false
	}
	for k, v := range m.entries {
		ov, ok := o.entries[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy sharing no state with the original.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	entries := make(map[string]*Value, len(m.entries))
	for k, v := range m.entries {
		entries[k] = v.Clone()
	}
	return &Map{entries: entries, Default: m.Default}
}

// rsplitPath splits a path on its last "/" into (parent, key). nested is
// false when the path has no separator and the key addresses this map
// directly.
func rsplitPath(path string) (parent, key string, nested bool) {
	idx := strings.LastIndexByte(path, '/')
	if idx < 0 {
		return "", path, false
	}
	return path[:idx], path[idx+1:], true
}
