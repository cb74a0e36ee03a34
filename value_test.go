package cfgmap_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/cfgmap"
)

func sampleValues() map[cfgmap.Kind]*cfgmap.Value {
	return map[cfgmap.Kind]*cfgmap.Value{
		cfgmap.KindInt:      cfgmap.Int(5),
		cfgmap.KindFloat:    cfgmap.Float(1.5),
		cfgmap.KindString:   cfgmap.Str("hello"),
		cfgmap.KindBool:     cfgmap.Bool(true),
		cfgmap.KindMap:      cfgmap.New().Value(),
		cfgmap.KindList:     cfgmap.List(cfgmap.Int(1)),
		cfgmap.KindDatetime: cfgmap.Datetime(time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)),
		cfgmap.KindNull:     cfgmap.Null(),
		cfgmap.KindBadValue: cfgmap.BadValue(),
		cfgmap.KindAlias:    cfgmap.Alias(3),
	}
}

func TestValue_KindPredicatesAreMutuallyExclusive(t *testing.T) {
	t.Parallel()

	predicates := map[cfgmap.Kind]func(*cfgmap.Value) bool{
		cfgmap.KindInt:      (*cfgmap.Value).IsInt,
		cfgmap.KindFloat:    (*cfgmap.Value).IsFloat,
		cfgmap.KindString:   (*cfgmap.Value).IsStr,
		cfgmap.KindBool:     (*cfgmap.Value).IsBool,
		cfgmap.KindMap:      (*cfgmap.Value).IsMap,
		cfgmap.KindList:     (*cfgmap.Value).IsList,
		cfgmap.KindDatetime: (*cfgmap.Value).IsDatetime,
		cfgmap.KindNull:     (*cfgmap.Value).IsNull,
		cfgmap.KindBadValue: (*cfgmap.Value).IsBadValue,
		cfgmap.KindAlias:    (*cfgmap.Value).IsAlias,
	}

	for kind, value := range sampleValues() {
		assert.Equal(t, kind, value.Kind())

		for predKind, pred := range predicates {
			assert.Equal(t, kind == predKind, pred(value),
				"value of kind %s against Is%s", kind, predKind)
		}
	}
}

func TestValue_KindPredicatesOnNil(t *testing.T) {
	t.Parallel()

	var v *cfgmap.Value

	assert.False(t, v.IsInt())
	assert.False(t, v.IsMap())
	assert.False(t, v.IsNull())
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	n, ok := cfgmap.Int(5).AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(5), n)

	f, ok := cfgmap.Float(1.5).AsFloat()
	require.True(t, ok)
	assert.InDelta(t, 1.5, f, 0)

	s, ok := cfgmap.Str("hello").AsStr()
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	b, ok := cfgmap.Bool(true).AsBool()
	require.True(t, ok)
	assert.True(t, b)

	list, ok := cfgmap.List(cfgmap.Int(1), cfgmap.Str("x")).AsList()
	require.True(t, ok)
	assert.Len(t, list, 2)

	ts := time.Date(2020, 2, 29, 12, 0, 0, 0, time.UTC)
	got, ok := cfgmap.Datetime(ts).AsDatetime()
	require.True(t, ok)
	assert.True(t, got.Equal(ts))

	id, ok := cfgmap.Alias(7).AsAlias()
	require.True(t, ok)
	assert.Equal(t, 7, id)

	// Wrong-kind access fails without panicking.
	_, ok = cfgmap.Str("5").AsInt()
	assert.False(t, ok)
	_, ok = cfgmap.Int(5).AsMap()
	assert.False(t, ok)
}

func TestValue_ToIntTruncatesTowardZero(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value *cfgmap.Value
		want  int64
		ok    bool
	}{
		{name: "int identity", value: cfgmap.Int(5), want: 5, ok: true},
		{name: "positive float truncates", value: cfgmap.Float(3.7), want: 3, ok: true},
		{name: "negative float truncates toward zero", value: cfgmap.Float(-3.7), want: -3, ok: true},
		{name: "string fails", value: cfgmap.Str("5"), want: 0, ok: false},
		{name: "bool fails", value: cfgmap.Bool(true), want: 0, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tc.value.ToInt()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValue_ToFloat(t *testing.T) {
	t.Parallel()

	f, ok := cfgmap.Float(1.5).ToFloat()
	require.True(t, ok)
	assert.InDelta(t, 1.5, f, 0)

	f, ok = cfgmap.Int(5).ToFloat()
	require.True(t, ok)
	assert.InDelta(t, 5.0, f, 0)

	_, ok = cfgmap.Str("1.5").ToFloat()
	assert.False(t, ok)
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input any
		want  *cfgmap.Value
	}{
		{name: "nil", input: nil, want: cfgmap.Null()},
		{name: "bool", input: true, want: cfgmap.Bool(true)},
		{name: "string", input: "hi", want: cfgmap.Str("hi")},
		{name: "int", input: int(7), want: cfgmap.Int(7)},
		{name: "int8", input: int8(-7), want: cfgmap.Int(-7)},
		{name: "uint32", input: uint32(7), want: cfgmap.Int(7)},
		{name: "uint64 in range", input: uint64(7), want: cfgmap.Int(7)},
		{name: "float32", input: float32(0.5), want: cfgmap.Float(0.5)},
		{name: "float64", input: 1.5, want: cfgmap.Float(1.5)},
		{name: "slice", input: []any{int64(1), "two"}, want: cfgmap.List(cfgmap.Int(1), cfgmap.Str("two"))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := cfgmap.FromAny(tc.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %s, want %s", got, tc.want)
		})
	}
}

func TestFromAny_Map(t *testing.T) {
	t.Parallel()

	got, err := cfgmap.FromAny(map[string]any{
		"port":  int64(8080),
		"hosts": []any{"a", "b"},
	})
	require.NoError(t, err)

	assert.True(t, got.Get("port").CheckThat(cfgmap.IsExactlyInt(8080)))
	assert.True(t, got.Get("hosts").CheckThat(cfgmap.IsListWith(cfgmap.IsStr)))
}

func TestFromAny_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := cfgmap.FromAny(struct{}{})
	require.ErrorIs(t, err, cfgmap.ErrUnsupportedType)

	_, err = cfgmap.FromAny(uint64(1) << 63)
	require.ErrorIs(t, err, cfgmap.ErrUnsupportedType)

	_, err = cfgmap.FromAny([]any{complex(1, 2)})
	require.ErrorIs(t, err, cfgmap.ErrUnsupportedType)
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, cfgmap.Int(5).Equal(cfgmap.Int(5)))
	assert.False(t, cfgmap.Int(5).Equal(cfgmap.Int(6)))
	assert.False(t, cfgmap.Int(5).Equal(cfgmap.Float(5.0)))
	assert.False(t, cfgmap.Int(5).Equal(nil))
	assert.True(t, cfgmap.Null().Equal(cfgmap.Null()))

	a := cfgmap.List(cfgmap.Int(1), cfgmap.Str("x"))
	b := cfgmap.List(cfgmap.Int(1), cfgmap.Str("x"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(cfgmap.List(cfgmap.Int(1))))

	var v *cfgmap.Value
	assert.True(t, v.Equal(nil))
}

func TestValue_CloneIsDeep(t *testing.T) {
	t.Parallel()

	original := cfgmap.New()
	_, err := original.Add("sub", cfgmap.New().Value())
	require.NoError(t, err)
	_, err = original.Add("sub/n", cfgmap.Int(5))
	require.NoError(t, err)
	_, err = original.Add("list", cfgmap.List(cfgmap.Int(1)))
	require.NoError(t, err)

	clone := original.Clone()
	require.True(t, original.Equal(clone))

	_, err = clone.Add("sub/n", cfgmap.Int(99))
	require.NoError(t, err)

	assert.True(t, original.Get("sub/n").CheckThat(cfgmap.IsExactlyInt(5)))
	assert.True(t, clone.Get("sub/n").CheckThat(cfgmap.IsExactlyInt(99)))
}

func TestValue_GetDelegatesToMap(t *testing.T) {
	t.Parallel()

	m := cfgmap.New()
	_, err := m.Add("key", cfgmap.Int(5))
	require.NoError(t, err)

	wrapped := m.Value()
	assert.True(t, wrapped.Get("key").CheckThat(cfgmap.IsExactlyInt(5)))

	assert.Nil(t, cfgmap.Int(5).Get("key"))
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5", cfgmap.Int(5).String())
	assert.Equal(t, `"hi"`, cfgmap.Str("hi").String())
	assert.Equal(t, "[1, true]", cfgmap.List(cfgmap.Int(1), cfgmap.Bool(true)).String())
	assert.Equal(t, "null", cfgmap.Null().String())

	var v *cfgmap.Value
	assert.Equal(t, "<nil>", v.String())
}
