package cfgmap

import "math/rand/v2"

// GenerateInt produces an integer from the value's shape:
//
//   - Int(x) yields x
//   - List([Int(x)]) yields x
//   - List([Int(lo), Int(hi)]) yields a uniform integer in [lo, hi)
//
// Any other shape yields false. A range with hi <= lo yields lo.
func (v *Value) GenerateInt() (int64, bool) {
	if v.CheckThat(IsInt) {
		n, _ := v.AsInt()
		return n, true
	}
	if v.CheckThat(IsListWith(IsInt).And(IsListWithLength(1))) {
		list, _ := v.AsList()
		n, _ := list[0].AsInt()
		return n, true
	}
	if v.CheckThat(IsListWith(IsInt).And(IsListWithLength(2))) {
		list, _ := v.AsList()
		lo, _ := list[0].AsInt()
		hi, _ := list[1].AsInt()
		if hi <= lo {
			return lo, true
		}
		return lo + rand.Int64N(hi-lo), true
	}
	return 0, false
}

// GenerateFloat is the float counterpart of GenerateInt: Float(x) yields x,
// a one-element float list yields its element, a two-element float list
// yields a uniform float in [lo, hi).
func (v *Value) GenerateFloat() (float64, bool) {
	if v.CheckThat(IsFloat) {
		f, _ := v.AsFloat()
		return f, true
	}
	if v.CheckThat(IsListWith(IsFloat).And(IsListWithLength(1))) {
		list, _ := v.AsList()
		f, _ := list[0].AsFloat()
		return f, true
	}
	if v.CheckThat(IsListWith(IsFloat).And(IsListWithLength(2))) {
		list, _ := v.AsList()
		lo, _ := list[0].AsFloat()
		hi, _ := list[1].AsFloat()
		if hi <= lo {
			return lo, true
		}
		return lo + rand.Float64()*(hi-lo), true
	}
	return 0, false
}
