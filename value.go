// value.go — the Rurtle runtime value model.
//
// Rurtle is dynamically typed with four kinds of values: Number (a
// 32-bit float, there is no separate integer type), String, List
// (heterogeneous, possibly nested) and Nothing (the result of
// everything that does not produce anything else).
//
// Arithmetic and ordering are partial: combinations that are not
// listed on the operator methods simply do not exist, and the
// evaluator turns them into runtime errors naming both types.
package rurtle

import (
	"strconv"
	"strings"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VNothing ValueTag = iota
	VNumber
	VString
	VList
)

// Value is the universal runtime carrier. The tag determines which of
// the payload fields is valid.
type Value struct {
	Tag  ValueTag
	Num  float32
	Str  string
	List []Value
}

// Nothing is the empty value.
var Nothing = Value{Tag: VNothing}

// NumberValue wraps a float as a runtime Number.
func NumberValue(f float32) Value { return Value{Tag: VNumber, Num: f} }

// StringValue wraps a string as a runtime String.
func StringValue(s string) Value { return Value{Tag: VString, Str: s} }

// ListValue wraps a slice as a runtime List. The slice is not copied.
func ListValue(elems ...Value) Value { return Value{Tag: VList, List: elems} }

// Boolean returns the value's truthiness: Numbers different from 0 and
// nonempty Strings and Lists are true, everything else is false.
func (v Value) Boolean() bool {
	switch v.Tag {
	case VNumber:
		return v.Num != 0
	case VString:
		return v.Str != ""
	case VList:
		return len(v.List) > 0
	default:
		return false
	}
}

// TypeString returns the user-facing name of the value's type.
func (v Value) TypeString() string {
	switch v.Tag {
	case VNumber:
		return "number"
	case VString:
		return "string"
	case VList:
		return "list"
	default:
		return "nothing"
	}
}

// formatNumber renders a Number the way users wrote it: no exponent,
// no trailing zeros, "5" instead of "5.000000".
func formatNumber(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// String renders the value for PRINT and TOSTRING. Strings render as
// their raw text, lists as their space-separated elements in brackets.
func (v Value) String() string {
	switch v.Tag {
	case VNumber:
		return formatNumber(v.Num)
	case VString:
		return v.Str
	case VList:
		var b strings.Builder
		b.WriteByte('[')
		for i, e := range v.List {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(e.String())
		}
		b.WriteByte(']')
		return b.String()
	default:
		return "nothing"
	}
}

// ordering is the result of a successful comparison.
type ordering int

const (
	orderLess ordering = iota
	orderEqual
	orderGreater
)

// Compare attempts a partial ordering of two values. Only equal-type
// comparisons are defined: Numbers compare numerically (NaN compares
// with nothing), Strings lexicographically, Lists elementwise with
// length as the tie-breaker, Nothing equals Nothing. The second return
// is false when the comparison is undefined.
func (v Value) Compare(other Value) (ordering, bool) {
	if v.Tag != other.Tag {
		return 0, false
	}
	switch v.Tag {
	case VNothing:
		return orderEqual, true
	case VNumber:
		a, b := v.Num, other.Num
		if a != a || b != b { // NaN
			return 0, false
		}
		switch {
		case a < b:
			return orderLess, true
		case a > b:
			return orderGreater, true
		default:
			return orderEqual, true
		}
	case VString:
		switch strings.Compare(v.Str, other.Str) {
		case -1:
			return orderLess, true
		case 1:
			return orderGreater, true
		default:
			return orderEqual, true
		}
	default:
		a, b := v.List, other.List
		for i := 0; i < len(a) && i < len(b); i++ {
			o, ok := a[i].Compare(b[i])
			if !ok {
				return 0, false
			}
			if o != orderEqual {
				return o, true
			}
		}
		switch {
		case len(a) < len(b):
			return orderLess, true
		case len(a) > len(b):
			return orderGreater, true
		default:
			return orderEqual, true
		}
	}
}

// Equal is structural equality. Unlike Compare it is total: values of
// different types are simply unequal.
func (v Value) Equal(other Value) bool {
	if v.Tag != other.Tag {
		return false
	}
	switch v.Tag {
	case VNothing:
		return true
	case VNumber:
		return v.Num == other.Num
	case VString:
		return v.Str == other.Str
	default:
		if len(v.List) != len(other.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(other.List[i]) {
				return false
			}
		}
		return true
	}
}

// Add combines two values. Defined combinations:
//
//	Number + Number  normal addition
//	String + String  concatenation
//	String + Number  append the stringified number
//	List + List      list concatenation
//	List + other     append the element
//
// The second return is false for every other combination.
func (v Value) Add(other Value) (Value, bool) {
	switch v.Tag {
	case VNumber:
		if other.Tag == VNumber {
			return NumberValue(v.Num + other.Num), true
		}
	case VString:
		switch other.Tag {
		case VString:
			return StringValue(v.Str + other.Str), true
		case VNumber:
			return StringValue(v.Str + formatNumber(other.Num)), true
		}
	case VList:
		if other.Tag == VList {
			joined := make([]Value, 0, len(v.List)+len(other.List))
			joined = append(joined, v.List...)
			joined = append(joined, other.List...)
			return ListValue(joined...), true
		}
		appended := make([]Value, 0, len(v.List)+1)
		appended = append(appended, v.List...)
		appended = append(appended, other)
		return ListValue(appended...), true
	}
	return Nothing, false
}

// Sub subtracts. Only Number - Number is defined.
func (v Value) Sub(other Value) (Value, bool) {
	if v.Tag == VNumber && other.Tag == VNumber {
		return NumberValue(v.Num - other.Num), true
	}
	return Nothing, false
}

// Mul multiplies. Defined combinations:
//
//	Number * Number  normal multiplication
//	String * Number  repeat the string n times
//	List * Number    repeat the list n times
func (v Value) Mul(other Value) (Value, bool) {
	switch v.Tag {
	case VNumber:
		if other.Tag == VNumber {
			return NumberValue(v.Num * other.Num), true
		}
	case VString:
		if other.Tag == VNumber {
			n := int(other.Num)
			var b strings.Builder
			b.Grow(max(n, 0) * len(v.Str))
			for i := 0; i < n; i++ {
				b.WriteString(v.Str)
			}
			return StringValue(b.String()), true
		}
	case VList:
		if other.Tag == VNumber {
			n := int(other.Num)
			out := make([]Value, 0, max(n, 0)*len(v.List))
			for i := 0; i < n; i++ {
				out = append(out, v.List...)
			}
			return ListValue(out...), true
		}
	}
	return Nothing, false
}

// Div divides. Only Number / Number is defined; division by zero
// follows IEEE float semantics.
func (v Value) Div(other Value) (Value, bool) {
	if v.Tag == VNumber && other.Tag == VNumber {
		return NumberValue(v.Num / other.Num), true
	}
	return Nothing, false
}
