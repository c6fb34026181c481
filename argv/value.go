package argv

import (
	"strconv"
)

// Kind is the declared type of an option or positional value.
type Kind int

const (
	// KindBool is a presence flag for options and a 0/1/false/true literal for positionals.
	KindBool Kind = iota
	// KindNumber is a float64 value.
	KindNumber
	// KindString is the raw token text.
	KindString
)

// String returns the name used in usage annotations.
func (k Kind) valid() bool { return k >= KindBool && k <= KindString }

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a single coerced scalar. The zero Value is boolean false.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
}

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// NumberValue wraps n.
func NumberValue(n float64) Value { return Value{kind: KindNumber, n: n} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload (false for other kinds).
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Number returns the numeric payload (0 for other kinds).
func (v Value) Number() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.n
}

// Text returns the string payload ("" for other kinds).
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Any returns the payload as a plain Go value: bool, float64 or string.
func (v Value) Any() any {
	switch v.kind {
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	default:
		return v.b
	}
}

// String formats the payload the way it appears in usage text.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return strconv.FormatBool(v.b)
	}
}
