package cfgmap

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrUnsupportedType is returned by FromAny when the input cannot be
// represented as a Value.
var ErrUnsupportedType = errors.New("unsupported value type")

// Kind identifies the variant held by a Value.
type Kind uint8

// The possible Value variants. KindDatetime, KindNull, KindBadValue and
// KindAlias exist for format adapters; the core traversal treats them as
// opaque leaves.
const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
	KindMap
	KindList
	KindDatetime
	KindNull
	KindBadValue
	KindAlias
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	case KindDatetime:
		return "datetime"
	case KindNull:
		return "null"
	case KindBadValue:
		return "badvalue"
	case KindAlias:
		return "alias"
	default:
		return "unknown"
	}
}

// Value is a single node of a configuration tree: either a scalar leaf, a
// nested Map, or a List of further values. A Value owns its children
// exclusively; Map and List hold them by pointer but the traversal API never
// hands out a way to make a node its own ancestor.
//
// The zero Value is Int(0). Values are built through the constructor
// functions (Int, Float, Str, Bool, List, Datetime, Null, BadValue, Alias),
// through (*Map).Value, or through FromAny.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
	m    *Map
	list []*Value
	ts   time.Time
	id   int
}

// Int creates an integer Value. Any integer type that widens into int64
// without loss is accepted; uint and uint64 are deliberately excluded
// because they can overflow.
func Int[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32](v T) *Value {
	return &Value{kind: KindInt, i: int64(v)}
}

// Float creates a floating point Value.
func Float[T ~float32 | ~float64](v T) *Value {
	return &Value{kind: KindFloat, f: float64(v)}
}

// Str creates a string Value.
func Str(s string) *Value {
	return &Value{kind: KindString, s: s}
}

// Bool creates a boolean Value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// List creates a list Value holding the given elements in order. Elements
// may be of differing kinds.
func List(elems ...*Value) *Value {
	return &Value{kind: KindList, list: elems}
}

// Datetime creates a calendar/time Value. Emitted by the TOML adapter.
func Datetime(t time.Time) *Value {
	return &Value{kind: KindDatetime, ts: t}
}

// Null creates a null Value. Emitted by the JSON and YAML adapters.
func Null() *Value {
	return &Value{kind: KindNull}
}

// BadValue creates a malformed-source marker Value.
func BadValue() *Value {
	return &Value{kind: KindBadValue}
}

// Alias creates an alias Value carrying an integer back-reference id.
func Alias(id int) *Value {
	return &Value{kind: KindAlias, id: id}
}

// FromAny converts a plain Go value into a Value. Supported inputs are
// booleans, strings, integers of any width (uint64 only while it fits in
// int64), floats, time.Time, nil, []any and map[string]any, recursively.
// Returns ErrUnsupportedType for anything else.
func FromAny(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case int:
		return Int(t), nil
	case int8:
		return Int(t), nil
	case int16:
		return Int(t), nil
	case int32:
		return Int(t), nil
	case int64:
		return Int(t), nil
	case uint8:
		return Int(t), nil
	case uint16:
		return Int(t), nil
	case uint32:
		return Int(t), nil
	case uint:
		if uint64(t) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint %d overflows int64", ErrUnsupportedType, t)
		}
		return Int(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint64 %d overflows int64", ErrUnsupportedType, t)
		}
		return Int(int64(t)), nil
	case float32:
		return Float(t), nil
	case float64:
		return Float(t), nil
	case time.Time:
		return Datetime(t), nil
	case []any:
		elems := make([]*Value, 0, len(t))
		for _, raw := range t {
			v, err := FromAny(raw)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return List(elems...), nil
	case map[string]any:
		entries := make(map[string]*Value, len(t))
		for k, raw := range t {
			v, err := FromAny(raw)
			if err != nil {
				return nil, err
			}
			entries[k] = v
		}
		return NewFrom(entries).Value(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}
}

// Kind returns the variant tag of the value.
func (v *Value) Kind() Kind {
	return v.kind
}

// IsInt reports whether the value is an integer. All Is methods are safe on
// a nil receiver, for which they report false.
func (v *Value) IsInt() bool { return v != nil && v.kind == KindInt }

// IsFloat reports whether the value is a float.
func (v *Value) IsFloat() bool { return v != nil && v.kind == KindFloat }

// IsStr reports whether the value is a string.
func (v *Value) IsStr() bool { return v != nil && v.kind == KindString }

// IsBool reports whether the value is a boolean.
func (v *Value) IsBool() bool { return v != nil && v.kind == KindBool }

// IsMap reports whether the value is a nested Map.
func (v *Value) IsMap() bool { return v != nil && v.kind == KindMap }

// IsList reports whether the value is a list.
func (v *Value) IsList() bool { return v != nil && v.kind == KindList }

// IsDatetime reports whether the value is a datetime.
func (v *Value) IsDatetime() bool { return v != nil && v.kind == KindDatetime }

// IsNull reports whether the value is null.
func (v *Value) IsNull() bool { return v != nil && v.kind == KindNull }

// IsBadValue reports whether the value is a malformed-source marker.
func (v *Value) IsBadValue() bool { return v != nil && v.kind == KindBadValue }

// IsAlias reports whether the value is an alias back-reference.
func (v *Value) IsAlias() bool { return v != nil && v.kind == KindAlias }

// AsInt returns the integer contents. The second result is false when the
// value is not an integer.
func (v *Value) AsInt() (int64, bool) {
	if !v.IsInt() {
		return 0, false
	}
	return v.i, true
}

// AsFloat returns the float contents.
func (v *Value) AsFloat() (float64, bool) {
	if !v.IsFloat() {
		return 0, false
	}
	return v.f, true
}

// AsStr returns the string contents.
func (v *Value) AsStr() (string, bool) {
	if !v.IsStr() {
		return "", false
	}
	return v.s, true
}

// AsBool returns the boolean contents.
func (v *Value) AsBool() (bool, bool) {
	if !v.IsBool() {
		return false, false
	}
	return v.b, true
}

// AsMap returns the nested Map. The returned handle is the node itself, not
// a copy; mutations through it are visible in the tree.
func (v *Value) AsMap() (*Map, bool) {
	if !v.IsMap() {
		return nil, false
	}
	return v.m, true
}

// AsList returns the list contents. The returned slice is the node's own
// backing slice; element mutations are visible in the tree.
func (v *Value) AsList() ([]*Value, bool) {
	if !v.IsList() {
		return nil, false
	}
	return v.list, true
}

// AsDatetime returns the datetime contents.
func (v *Value) AsDatetime() (time.Time, bool) {
	if !v.IsDatetime() {
		return time.Time{}, false
	}
	return v.ts, true
}

// AsAlias returns the alias back-reference id.
func (v *Value) AsAlias() (int, bool) {
	if !v.IsAlias() {
		return 0, false
	}
	return v.id, true
}

// ToInt returns the value coerced to an integer: identity for Int, a
// truncating cast toward zero for Float, false for everything else.
func (v *Value) ToInt() (int64, bool) {
	switch {
	case v.IsInt():
		return v.i, true
	case v.IsFloat():
		return int64(v.f), true
	default:
		return 0, false
	}
}

// ToFloat returns the value coerced to a float: identity for Float, a
// widening cast for Int, false for everything else.
func (v *Value) ToFloat() (float64, bool) {
	switch {
	case v.IsFloat():
		return v.f, true
	case v.IsInt():
		return float64(v.i), true
	default:
		return 0, false
	}
}

// Get assumes the value is a Map and resolves path inside it. Returns nil
// when the value is not a Map or the path does not resolve.
func (v *Value) Get(path string) *Value {
	m, ok := v.AsMap()
	if !ok {
		return nil
	}
	return m.Get(path)
}

// Equal reports deep equality. Two nil values are equal; a nil and a
// non-nil value are not. Float comparison follows IEEE semantics, so NaN
// never equals NaN.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindBool:
		return v.b == o.b
	case KindMap:
		return v.m.Equal(o.m)
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindDatetime:
		return v.ts.Equal(o.ts)
	case KindNull, KindBadValue:
		return true
	case KindAlias:
		return v.id == o.id
	default:
		return false
	}
}

// Clone returns a deep copy sharing no state with the original.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := *v
	switch v.kind {
	case KindMap:
		c.m = v.m.Clone()
	case KindList:
		c.list = make([]*Value, len(v.list))
		for i, el := range v.list {
			c.list[i] = el.Clone()
		}
	}
	return &c
}

// String renders the value for debugging. Map keys appear in sorted order so
// the output is deterministic.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindMap:
		keys := v.m.Keys()
		var sb strings.Builder
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			sb.WriteString(v.m.entries[k].String())
		}
		sb.WriteByte('}')
		return sb.String()
	case KindList:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, el := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(el.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case KindDatetime:
		return v.ts.Format(time.RFC3339)
	case KindNull:
		return "null"
	case KindBadValue:
		return "badvalue"
	case KindAlias:
		return fmt.Sprintf("alias(%d)", v.id)
	default:
		return "unknown"
	}
}
