package value

import (
	"strings"
)

// List is an immutable ordered sequence of values. Operations that produce a
// "modified" list return a fresh one.
type List []Value

func (l List) Run() (Value, error) { return l, nil }

func (l List) TypeName() string { return "list" }

func (l List) ToInteger() (Integer, error) { return Integer(len(l)), nil }

func (l List) ToBoolean() (Boolean, error) { return len(l) != 0, nil }

// ToString joins the elements' string forms with newlines.
func (l List) ToString() (String, error) {
	return l.Join("\n")
}

func (l List) ToList() (List, error) { return l, nil }

// Join string-coerces each element and joins with sep.
func (l List) Join(sep String) (String, error) {
	parts := make([]string, len(l))
	for i, el := range l {
		s, err := el.ToString()
		if err != nil {
			return "", err
		}
		parts[i] = string(s)
	}
	return String(strings.Join(parts, string(sep))), nil
}

func (l List) Dump() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, el := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(el.Dump())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l List) Equals(other Value) bool {
	o, ok := other.(List)
	if !ok || len(o) != len(l) {
		return false
	}
	for i, el := range l {
		if !el.Equals(o[i]) {
			return false
		}
	}
	return true
}
