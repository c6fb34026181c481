package argv

import (
	"errors"
	"math"
	"strconv"
)

var (
	errNotNumber = errors.New("not a number")
	errNotBool   = errors.New("expected 0, 1, false or true")
)

// parseNumber accepts decimal and float syntax plus 0x-prefixed hex
// integers. NaN and infinities are rejected.
func parseNumber(raw string) (float64, error) {
	s := raw
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		u, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, errNotNumber
		}
		n := float64(u)
		if neg {
			n = -n
		}
		return n, nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, errNotNumber
	}
	return n, nil
}

// parseBool accepts exactly 0, 1, false and true.
func parseBool(raw string) (bool, error) {
	switch raw {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	default:
		return false, errNotBool
	}
}

// coerceText converts raw text to a Value of the given kind.
func coerceText(kind Kind, raw string) (Value, error) {
	switch kind {
	case KindBool:
		b, err := parseBool(raw)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case KindNumber:
		n, err := parseNumber(raw)
		if err != nil {
			return Value{}, err
		}
		return NumberValue(n), nil
	default:
		return StringValue(raw), nil
	}
}

// coerceOption converts the text bound to an option. spelling is the form
// the user typed ("--port", "-p") and is used in messages only.
func coerceOption(opt *OptionSpec, spelling, raw string) (Value, *ParseError) {
	v, err := coerceText(opt.Kind, raw)
	if err != nil {
		return Value{}, newParseError(ErrorTypeInvalidValue, opt.Name, raw,
			"invalid "+opt.Kind.String()+" value for "+spelling+": "+strconv.Quote(raw))
	}
	return v, nil
}

// coercePositional converts a token bound to a positional.
func coercePositional(spec *PositionalSpec, raw string) (Value, *ParseError) {
	v, err := coerceText(spec.Kind, raw)
	if err != nil {
		return Value{}, newParseError(ErrorTypeInvalidValue, spec.Name, raw,
			"invalid "+spec.Kind.String()+" value for <"+spec.Name+">: "+strconv.Quote(raw))
	}
	return v, nil
}
