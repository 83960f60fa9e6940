package classname

import (
	"reflect"
	"strconv"
)

// Kind identifies the dynamic type held by a Value.
type Kind uint8

const (
	// Undefined is the zero Kind. A key missing from Props reads as Undefined.
	Undefined Kind = iota
	Null
	StringKind
	BoolKind
	NumberKind
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case StringKind:
		return "string"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	default:
		return "undefined"
	}
}

// Value is a scalar property value.
type Value struct {
	kind Kind
	s    string
	b    bool
	n    float64
}

// String returns a string value.
func String(s string) Value { return Value{kind: StringKind, s: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: NumberKind, n: n} }

// Int returns i as a numeric value.
func Int(i int) Value { return Number(float64(i)) }

// NullValue returns the explicit null value. It is distinct from the zero
// Value, which stands for an absent property.
func NullValue() Value { return Value{kind: Null} }

// ValueOf converts a Go scalar into a Value. It reports false for anything
// that is not a string, bool, number or nil.
func ValueOf(v any) (Value, bool) {
	switch x := v.(type) {
	case nil:
		return NullValue(), true
	case Value:
		return x, true
	case string:
		return String(x), true
	case bool:
		return Bool(x), true
	case float64:
		return Number(x), true
	case int:
		return Int(x), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return String(rv.String()), true
	case reflect.Bool:
		return Bool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), true
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), true
	}
	return Value{}, false
}

// Kind reports which kind of value v holds.
func (v Value) Kind() Kind { return v.kind }

// IsDefined reports whether v holds anything other than Undefined.
func (v Value) IsDefined() bool { return v.kind != Undefined }

// Equal reports strict equality: kinds must match and so must the payload.
// NaN is never equal to anything, itself included.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case StringKind:
		return v.s == o.s
	case BoolKind:
		return v.b == o.b
	case NumberKind:
		return v.n == o.n
	default:
		return true
	}
}

// Interface returns the Go representation of v: string, bool, float64 or nil.
func (v Value) Interface() any {
	switch v.kind {
	case StringKind:
		return v.s
	case BoolKind:
		return v.b
	case NumberKind:
		return v.n
	default:
		return nil
	}
}

// String formats v for logs and debugging.
func (v Value) String() string {
	switch v.kind {
	case StringKind:
		return v.s
	case BoolKind:
		return strconv.FormatBool(v.b)
	case NumberKind:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	default:
		return v.kind.String()
	}
}

// key is the type-tagged form used in cache keys, so String("1") and Int(1)
// never collide.
func (v Value) key() string {
	switch v.kind {
	case StringKind:
		return "s" + strconv.Quote(v.s)
	case BoolKind:
		if v.b {
			return "b1"
		}
		return "b0"
	case NumberKind:
		return "n" + strconv.FormatFloat(v.n, 'g', -1, 64)
	case Null:
		return "null"
	default:
		return "undef"
	}
}

// ParseValue interprets text from a query string or command line: "true"
// and "false" become bools, "null" becomes Null, anything strconv can parse
// as a float becomes a number, and everything else stays a string.
func ParseValue(s string) Value {
	switch s {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	case "null":
		return NullValue()
	}
	if looksNumeric(s) {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return Number(n)
		}
	}
	return String(s)
}

// looksNumeric rejects the words ParseFloat accepts, such as "Inf" and "NaN".
func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}
