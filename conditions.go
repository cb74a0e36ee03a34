package cfgmap

type condOp uint8

const (
	opTrue condOp = iota
	opFalse
	opIsInt
	opIsFloat
	opIsStr
	opIsBool
	opIsMap
	opIsList
	opIsNull
	opIsDatetime
	opIsTrue
	opIsExactlyInt
	opIsExactlyFloat
	opIsExactlyStr
	opIsExactlyList
	opIsExactlyMap
	opIsListWith
	opIsListWithLength
	opAnd
	opOr
	opNot
)

// Condition is a predicate over a single Value, built as an expression tree:
// type-test and exact-value leaves composed with And, Or and Not. Conditions
// are immutable; the combinators return new trees without touching their
// operands, so a condition can be reused and shared freely.
//
//	isNumber := cfgmap.IsInt.Or(cfgmap.IsFloat)
//	ok := m.Get("retries").CheckThat(isNumber)
//
// Evaluating a condition never fails: a value of the wrong kind simply does
// not satisfy it.
type Condition struct {
	op       condOp
	lhs, rhs *Condition
	inner    *Condition
	wantInt  int64
	wantF    float64
	wantStr  string
	wantList []*Value
	wantMap  *Map
	wantLen  int
}

// Type-test leaves, plus the two constant results. Execute always collapses
// to exactly True or False.
var (
	// True is the condition every value satisfies, and the result of a
	// successful evaluation.
	True = Condition{op: opTrue}

	// False is the condition no value satisfies, and the result of a failed
	// evaluation.
	False = Condition{op: opFalse}

	// IsInt is satisfied by integer values.
	IsInt = Condition{op: opIsInt}

	// IsFloat is satisfied by float values.
	IsFloat = Condition{op: opIsFloat}

	// IsStr is satisfied by string values.
	IsStr = Condition{op: opIsStr}

	// IsBool is satisfied by boolean values.
	IsBool = Condition{op: opIsBool}

	// IsMap is satisfied by nested Map values.
	IsMap = Condition{op: opIsMap}

	// IsList is satisfied by list values.
	IsList = Condition{op: opIsList}

	// IsNull is satisfied by null values.
	IsNull = Condition{op: opIsNull}

	// IsDatetime is satisfied by datetime values.
	IsDatetime = Condition{op: opIsDatetime}

	// IsTrue is satisfied by the boolean value true.
	IsTrue = Condition{op: opIsTrue}
)

// IsExactlyInt is satisfied by an integer equal to want. A value of any
// other kind, including a float that would coerce to want, does not
// satisfy it.
func IsExactlyInt(want int64) Condition {
	return Condition{op: opIsExactlyInt, wantInt: want}
}

// IsExactlyFloat is satisfied by a float equal to want.
func IsExactlyFloat(want float64) Condition {
	return Condition{op: opIsExactlyFloat, wantF: want}
}

// IsExactlyStr is satisfied by a string equal to want.
func IsExactlyStr(want string) Condition {
	return Condition{op: opIsExactlyStr, wantStr: want}
}

// IsExactlyList is satisfied by a list deeply equal to want, element for
// element in order.
func IsExactlyList(want ...*Value) Condition {
	return Condition{op: opIsExactlyList, wantList: want}
}

// IsExactlyMap is satisfied by a nested map deeply equal to want.
func IsExactlyMap(want *Map) Condition {
	return Condition{op: opIsExactlyMap, wantMap: want}
}

// IsListWith is satisfied by a list whose every element satisfies inner.
// An empty list satisfies it vacuously.
func IsListWith(inner Condition) Condition {
	return Condition{op: opIsListWith, inner: &inner}
}

// IsListWithLength is satisfied by a list of exactly n elements.
func IsListWithLength(n int) Condition {
	return Condition{op: opIsListWithLength, wantLen: n}
}

// And combines two conditions; the result is satisfied only when both are.
func (c Condition) And(other Condition) Condition {
	return Condition{op: opAnd, lhs: &c, rhs: &other}
}

// Or combines two conditions; the result is satisfied when either is.
func (c Condition) Or(other Condition) Condition {
	return Condition{op: opOr, lhs: &c, rhs: &other}
}

// Not inverts the condition.
func (c Condition) Not() Condition {
	return Condition{op: opNot, inner: &c}
}

// Execute evaluates the condition against input and returns exactly True or
// False. Both operands of And and Or are always evaluated, with no
// short circuit, so evaluation cost is proportional to the size of the
// tree regardless of the input.
func (c Condition) Execute(input *Value) Condition {
	switch c.op {
	case opTrue:
		return True
	case opFalse:
		return False
	case opIsInt:
		return fromBool(input.IsInt())
	case opIsFloat:
		return fromBool(input.IsFloat())
	case opIsStr:
		return fromBool(input.IsStr())
	case opIsBool:
		return fromBool(input.IsBool())
	case opIsMap:
		return fromBool(input.IsMap())
	case opIsList:
		return fromBool(input.IsList())
	case opIsNull:
		return fromBool(input.IsNull())
	case opIsDatetime:
		return fromBool(input.IsDatetime())
	case opIsTrue:
		b, ok := input.AsBool()
		return fromBool(ok && b)
	case opIsExactlyInt:
		got, ok := input.AsInt()
		return fromBool(ok && got == c.wantInt)
	case opIsExactlyFloat:
		got, ok := input.AsFloat()
		return fromBool(ok && got == c.wantF)
	case opIsExactlyStr:
		got, ok := input.AsStr()
		return fromBool(ok && got == c.wantStr)
	case opIsExactlyList:
		got, ok := input.AsList()
		if !ok || len(got) != len(c.wantList) {
			return False
		}
		for i := range got {
			if !got[i].Equal(c.wantList[i]) {
				return False
			}
		}
		return True
	case opIsExactlyMap:
		got, ok := input.AsMap()
		return fromBool(ok && got.Equal(c.wantMap))
	case opIsListWith:
		got, ok := input.AsList()
		if !ok {
			return False
		}
		for _, el := range got {
			if !el.CheckThat(*c.inner) {
				return False
			}
		}
		return True
	case opIsListWithLength:
		got, ok := input.AsList()
		return fromBool(ok && len(got) == c.wantLen)
	case opAnd:
		lhs := c.lhs.Execute(input)
		rhs := c.rhs.Execute(input)
		return fromBool(lhs.ToBool() && rhs.ToBool())
	case opOr:
		lhs := c.lhs.Execute(input)
		rhs := c.rhs.Execute(input)
		return fromBool(lhs.ToBool() || rhs.ToBool())
	case opNot:
		return fromBool(!c.inner.Execute(input).ToBool())
	default:
		return False
	}
}

// ToBool collapses a condition to a boolean: True maps to true, anything
// else, including an unevaluated condition, to false. Absence of proof
// of truth is falsity, never an error.
func (c Condition) ToBool() bool {
	return c.op == opTrue
}

func fromBool(b bool) Condition {
	if b {
		return True
	}
	return False
}

// CheckThat reports whether the value satisfies the condition. A nil
// receiver satisfies nothing, not even True, so the result of any lookup
// can be checked inline without testing for presence first:
//
//	if m.Get("server/port").CheckThat(cfgmap.IsInt) { ... }
func (v *Value) CheckThat(condition Condition) bool {
	if v == nil {
		return false
	}
	return condition.Execute(v).ToBool()
}
