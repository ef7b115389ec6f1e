package value

import (
	"strconv"
)

// Integer is a signed 64-bit Knight integer.
type Integer int64

func (i Integer) Run() (Value, error) { return i, nil }

func (i Integer) TypeName() string { return "integer" }

func (i Integer) ToInteger() (Integer, error) { return i, nil }

func (i Integer) ToBoolean() (Boolean, error) { return i != 0, nil }

func (i Integer) ToString() (String, error) {
	return String(strconv.FormatInt(int64(i), 10)), nil
}

// ToList yields the decimal digits as one-digit Integers, most significant
// first. Zero yields a one-element list; negative values use the digits of
// the absolute value.
func (i Integer) ToList() (List, error) {
	n := int64(i)
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return List{Integer(0)}, nil
	}
	var digits List
	for ; n > 0; n /= 10 {
		digits = append(List{Integer(n % 10)}, digits...)
	}
	return digits, nil
}

func (i Integer) Dump() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i Integer) Equals(other Value) bool {
	o, ok := other.(Integer)
	return ok && o == i
}
