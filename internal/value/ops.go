// internal/value/ops.go
//
// Arithmetic and container operations over already-run values. Not every
// operation is defined on every kind; the unhandled cases are TypeErrors at
// runtime, matching the language's dynamic dispatch.
package value

import (
	"strings"

	"knight/internal/errors"
)

// Add dispatches on the lhs kind: integer addition, string concatenation, or
// list concatenation. The rhs is coerced to the lhs kind.
func Add(lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case Integer:
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		return l + r, nil
	case String:
		r, err := rhs.ToString()
		if err != nil {
			return nil, err
		}
		return l + r, nil
	case List:
		r, err := rhs.ToList()
		if err != nil {
			return nil, err
		}
		out := make(List, 0, len(l)+len(r))
		out = append(out, l...)
		out = append(out, r...)
		return out, nil
	default:
		return nil, errors.NewTypeError("cannot add to a %s", lhs.TypeName())
	}
}

// Sub is integer subtraction.
func Sub(lhs, rhs Value) (Value, error) {
	l, ok := lhs.(Integer)
	if !ok {
		return nil, errors.NewTypeError("cannot subtract from a %s", lhs.TypeName())
	}
	r, err := rhs.ToInteger()
	if err != nil {
		return nil, err
	}
	return l - r, nil
}

// Mul dispatches on the lhs kind: integer multiplication, string repetition,
// or list repetition.
func Mul(lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case Integer:
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case String:
		n, err := repeatCount(rhs)
		if err != nil {
			return nil, err
		}
		return String(strings.Repeat(string(l), n)), nil
	case List:
		n, err := repeatCount(rhs)
		if err != nil {
			return nil, err
		}
		out := make(List, 0, len(l)*n)
		for i := 0; i < n; i++ {
			out = append(out, l...)
		}
		return out, nil
	default:
		return nil, errors.NewTypeError("cannot multiply a %s", lhs.TypeName())
	}
}

func repeatCount(rhs Value) (int, error) {
	r, err := rhs.ToInteger()
	if err != nil {
		return 0, err
	}
	if r < 0 {
		return 0, errors.NewDomainError("negative repetition count %d", int64(r))
	}
	return int(r), nil
}

// Div is integer division truncating toward zero. Division by zero errors.
func Div(lhs, rhs Value) (Value, error) {
	l, ok := lhs.(Integer)
	if !ok {
		return nil, errors.NewTypeError("cannot divide a %s", lhs.TypeName())
	}
	r, err := rhs.ToInteger()
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, errors.NewDomainError("division by zero")
	}
	return l / r, nil
}

// Mod is integer remainder truncating toward zero. A zero base errors.
func Mod(lhs, rhs Value) (Value, error) {
	l, ok := lhs.(Integer)
	if !ok {
		return nil, errors.NewTypeError("cannot take remainder of a %s", lhs.TypeName())
	}
	r, err := rhs.ToInteger()
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, errors.NewDomainError("modulo by zero")
	}
	return l % r, nil
}

// Pow dispatches on the lhs kind: integer exponentiation, or joining a list
// with the rhs as separator.
func Pow(lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case Integer:
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		return intPow(l, r)
	case List:
		sep, err := rhs.ToString()
		if err != nil {
			return nil, err
		}
		return l.Join(sep)
	default:
		return nil, errors.NewTypeError("cannot exponentiate a %s", lhs.TypeName())
	}
}

// intPow raises base to exp. Negative exponents truncate the rational result
// toward zero: 1 stays 1, -1 alternates sign, larger magnitudes collapse to 0.
func intPow(base, exp Integer) (Value, error) {
	if exp < 0 {
		switch base {
		case 0:
			return nil, errors.NewDomainError("zero raised to a negative power")
		case 1:
			return Integer(1), nil
		case -1:
			if exp%2 == 0 {
				return Integer(1), nil
			}
			return Integer(-1), nil
		default:
			return Integer(0), nil
		}
	}
	result := Integer(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result, nil
}

// Compare imposes the per-kind total order, coercing rhs to the lhs kind.
// It returns a negative, zero, or positive result.
func Compare(lhs, rhs Value) (int, error) {
	switch l := lhs.(type) {
	case Integer:
		r, err := rhs.ToInteger()
		if err != nil {
			return 0, err
		}
		switch {
		case l < r:
			return -1, nil
		case l > r:
			return 1, nil
		default:
			return 0, nil
		}
	case String:
		r, err := rhs.ToString()
		if err != nil {
			return 0, err
		}
		return strings.Compare(string(l), string(r)), nil
	case Boolean:
		r, err := rhs.ToBoolean()
		if err != nil {
			return 0, err
		}
		switch {
		case !bool(l) && bool(r):
			return -1, nil
		case bool(l) && !bool(r):
			return 1, nil
		default:
			return 0, nil
		}
	case List:
		r, err := rhs.ToList()
		if err != nil {
			return 0, err
		}
		for i := 0; i < len(l) && i < len(r); i++ {
			c, err := Compare(l[i], r[i])
			if err != nil {
				return 0, err
			}
			if c != 0 {
				return c, nil
			}
		}
		return len(l) - len(r), nil
	default:
		return 0, errors.NewTypeError("cannot compare a %s", lhs.TypeName())
	}
}

// Head returns the first character of a string or the first element of a list.
func Head(v Value) (Value, error) {
	switch c := v.(type) {
	case String:
		if len(c) == 0 {
			return nil, errors.NewDomainError("head of empty string")
		}
		return c[:1], nil
	case List:
		if len(c) == 0 {
			return nil, errors.NewDomainError("head of empty list")
		}
		return c[0], nil
	default:
		return nil, errors.NewTypeError("cannot take head of a %s", v.TypeName())
	}
}

// Tail returns everything but the first character or element.
func Tail(v Value) (Value, error) {
	switch c := v.(type) {
	case String:
		if len(c) == 0 {
			return nil, errors.NewDomainError("tail of empty string")
		}
		return c[1:], nil
	case List:
		if len(c) == 0 {
			return nil, errors.NewDomainError("tail of empty list")
		}
		out := make(List, len(c)-1)
		copy(out, c[1:])
		return out, nil
	default:
		return nil, errors.NewTypeError("cannot take tail of a %s", v.TypeName())
	}
}

// Get returns the length-sized subrange of a string or list starting at start.
func Get(v Value, start, length Integer) (Value, error) {
	if err := checkRange(v, start, length); err != nil {
		return nil, err
	}
	switch c := v.(type) {
	case String:
		if int(start+length) > len(c) {
			return nil, errors.NewDomainError("substring [%d, %d) out of range for length %d", int64(start), int64(start+length), len(c))
		}
		return c[start : start+length], nil
	case List:
		if int(start+length) > len(c) {
			return nil, errors.NewDomainError("sublist [%d, %d) out of range for length %d", int64(start), int64(start+length), len(c))
		}
		out := make(List, length)
		copy(out, c[start:start+length])
		return out, nil
	default:
		return nil, errors.NewTypeError("cannot index into a %s", v.TypeName())
	}
}

// Set returns a fresh value with the [start, start+length) range replaced.
// The replacement is coerced to the container's kind; a start past the end
// clamps to append.
func Set(v Value, start, length Integer, repl Value) (Value, error) {
	if err := checkRange(v, start, length); err != nil {
		return nil, err
	}
	switch c := v.(type) {
	case String:
		r, err := repl.ToString()
		if err != nil {
			return nil, err
		}
		if int(start) > len(c) {
			start = Integer(len(c))
		}
		end := start + length
		if int(end) > len(c) {
			end = Integer(len(c))
		}
		return c[:start] + r + c[end:], nil
	case List:
		r, err := repl.ToList()
		if err != nil {
			return nil, err
		}
		if int(start) > len(c) {
			start = Integer(len(c))
		}
		end := start + length
		if int(end) > len(c) {
			end = Integer(len(c))
		}
		out := make(List, 0, int(start)+len(r)+len(c)-int(end))
		out = append(out, c[:start]...)
		out = append(out, r...)
		out = append(out, c[end:]...)
		return out, nil
	default:
		return nil, errors.NewTypeError("cannot index into a %s", v.TypeName())
	}
}

func checkRange(v Value, start, length Integer) error {
	if start < 0 {
		return errors.NewDomainError("negative start index %d", int64(start))
	}
	if length < 0 {
		return errors.NewDomainError("negative range length %d", int64(length))
	}
	return nil
}

// Ascii converts an integer to the one-character string of its low 8 bits, or
// a string to the integer value of its first byte.
func Ascii(v Value) (Value, error) {
	switch c := v.(type) {
	case Integer:
		return String([]byte{byte(c)}), nil
	case String:
		if len(c) == 0 {
			return nil, errors.NewDomainError("ascii of empty string")
		}
		return Integer(c[0]), nil
	default:
		return nil, errors.NewTypeError("cannot take ascii of a %s", v.TypeName())
	}
}
