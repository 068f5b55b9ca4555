// Package compare contains the comparison and equality functions used by the
// containers of this module to order and search the values they hold.
package compare

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Strings is the default ordering of list elements: values are converted to
// their string form with ToString and compared byte-wise.
//
// Byte-wise comparison of UTF-8 strings orders them by code point, so the
// order is total for every element type, including mixed dynamic types held
// in a List[any].
func Strings[T any](a, b T) int {
	return strings.Compare(ToString(a), ToString(b))
}

// Numeric compares values after converting them to numbers with ToNumber, so
// that "10" sorts after "9".
//
// Values that do not convert to a number (NaN) compare equal to each other
// and are ordered after every number.
func Numeric[T any](a, b T) int {
	x, y := ToNumber(a), ToNumber(b)
	switch xnan, ynan := math.IsNaN(x), math.IsNaN(y); {
	case xnan && ynan:
		return 0
	case xnan:
		return +1
	case ynan:
		return -1
	}
	return Function(x, y)
}

// SameValue reports whether a and b are the same value.
//
// Unlike the == operator, two NaN floating point values are the same, while
// positive and negative zeros are not. Slices, maps and functions are compared
// by identity rather than content. Values of non-comparable types never match.
func SameValue[T any](a, b T) bool {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == nil && y == nil
	}

	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if vx.Type() != vy.Type() {
		return false
	}

	switch vx.Kind() {
	case reflect.Float32, reflect.Float64:
		return sameFloat(vx.Float(), vy.Float())
	case reflect.Slice:
		return vx.Len() == vy.Len() && vx.UnsafePointer() == vy.UnsafePointer()
	case reflect.Map, reflect.Func:
		return vx.UnsafePointer() == vy.UnsafePointer()
	}

	if !vx.Comparable() || !vy.Comparable() {
		return false
	}
	return x == y
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b && math.Signbit(a) == math.Signbit(b)
}

// ToString returns the string form of v used when joining or sorting list
// elements. A nil value converts to the empty string.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	}
	return utils.ToString(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, +1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		i := strings.IndexByte(s, 'e')
		exp, _ := strconv.Atoi(s[i+1:])
		sign := "+"
		if exp < 0 {
			sign, exp = "-", -exp
		}
		return s[:i] + "e" + sign + strconv.Itoa(exp)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToNumber converts v to a float64.
//
// Integers, floats and booleans convert to their numeric value, nil converts
// to zero, and strings are parsed after trimming surrounding white space (the
// empty string converts to zero). Every other value converts to NaN.
func ToNumber(v any) float64 {
	if v == nil {
		return 0
	}

	switch x := v.(type) {
	case string:
		return parseNumber(x)
	case bool:
		if x {
			return 1
		}
		return 0
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return parseNumber(rv.String())
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(+1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// strconv accepts spellings like "inf" or "nan" that are not numbers here.
	if strings.ContainsAny(s, "iInN_") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
