package value

import (
	"strings"
)

// String is an immutable byte sequence.
type String string

func (s String) Run() (Value, error) { return s, nil }

func (s String) TypeName() string { return "string" }

// ToInteger reads leading whitespace, an optional sign, then a greedy run of
// decimal digits. Input without leading digits yields 0. Scientific notation
// is not recognized: "1e3" reads as 1.
func (s String) ToInteger() (Integer, error) {
	t := strings.TrimLeft(string(s), " \t\r\n")
	var neg bool
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		neg = t[0] == '-'
		t = t[1:]
	}
	var n int64
	var seen bool
	for i := 0; i < len(t) && t[i] >= '0' && t[i] <= '9'; i++ {
		n = n*10 + int64(t[i]-'0')
		seen = true
	}
	if !seen {
		return 0, nil
	}
	if neg {
		n = -n
	}
	return Integer(n), nil
}

func (s String) ToBoolean() (Boolean, error) { return s != "", nil }

func (s String) ToString() (String, error) { return s, nil }

// ToList yields one single-character String per byte.
func (s String) ToList() (List, error) {
	list := make(List, len(s))
	for i := 0; i < len(s); i++ {
		list[i] = s[i : i+1]
	}
	return list, nil
}

var dumpEscaper = strings.NewReplacer(
	"\\", `\\`,
	"\"", `\"`,
	"\r", `\r`,
	"\n", `\n`,
	"\t", `\t`,
)

func (s String) Dump() string {
	return "\"" + dumpEscaper.Replace(string(s)) + "\""
}

func (s String) Equals(other Value) bool {
	o, ok := other.(String)
	return ok && o == s
}
