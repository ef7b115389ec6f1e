package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"knight/internal/errors"
)

// res lets a (Value, error) pair flow through the assertion helpers.
type result struct {
	v   Value
	err error
}

func res(v Value, err error) result { return result{v, err} }

func (r result) must(t *testing.T) Value {
	t.Helper()
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	return r.v
}

func (r result) wantErr(t *testing.T, kind errors.ErrorType) {
	t.Helper()
	if r.err == nil {
		t.Fatalf("expected %s, got %s", kind, r.v.Dump())
	}
	if got := errors.TypeOf(r.err); got != kind {
		t.Fatalf("expected %s, got %s: %v", kind, got, r.err)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		lhs, rhs Value
		want     Value
	}{
		{"integers", Integer(1), Integer(2), Integer(3)},
		{"integer coerces rhs", Integer(1), String("41"), Integer(42)},
		{"integer plus boolean", Integer(1), Boolean(true), Integer(2)},
		{"strings concatenate", String("foo"), String("bar"), String("foobar")},
		{"string coerces rhs", String("n="), Integer(5), String("n=5")},
		{"lists concatenate", List{Integer(1)}, List{Integer(2)}, List{Integer(1), Integer(2)}},
		{"list coerces rhs", List{Integer(1)}, Integer(23), List{Integer(1), Integer(2), Integer(3)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := res(Add(test.lhs, test.rhs)).must(t)
			if !got.Equals(test.want) {
				t.Errorf("Add(%s, %s) = %s, want %s",
					test.lhs.Dump(), test.rhs.Dump(), got.Dump(), test.want.Dump())
			}
		})
	}

	res(Add(Boolean(true), Integer(1))).wantErr(t, errors.TypeError)
	res(Add(Null{}, Integer(1))).wantErr(t, errors.TypeError)
}

func TestSubDivMod(t *testing.T) {
	if got := res(Sub(Integer(10), Integer(3))).must(t); !got.Equals(Integer(7)) {
		t.Errorf("Sub = %s", got.Dump())
	}
	if got := res(Div(Integer(7), Integer(2))).must(t); !got.Equals(Integer(3)) {
		t.Errorf("Div = %s", got.Dump())
	}
	// Truncation toward zero.
	if got := res(Div(Integer(-7), Integer(2))).must(t); !got.Equals(Integer(-3)) {
		t.Errorf("Div(-7, 2) = %s, want -3", got.Dump())
	}
	if got := res(Mod(Integer(7), Integer(3))).must(t); !got.Equals(Integer(1)) {
		t.Errorf("Mod = %s", got.Dump())
	}

	res(Div(Integer(1), Integer(0))).wantErr(t, errors.DomainError)
	res(Mod(Integer(1), Integer(0))).wantErr(t, errors.DomainError)
	res(Sub(String("a"), Integer(1))).wantErr(t, errors.TypeError)
	res(Div(List{}, Integer(1))).wantErr(t, errors.TypeError)
	res(Mod(Boolean(true), Integer(1))).wantErr(t, errors.TypeError)
}

func TestMul(t *testing.T) {
	if got := res(Mul(Integer(6), Integer(7))).must(t); !got.Equals(Integer(42)) {
		t.Errorf("Mul = %s", got.Dump())
	}
	if got := res(Mul(String("ab"), Integer(3))).must(t); !got.Equals(String("ababab")) {
		t.Errorf("string repeat = %s", got.Dump())
	}
	if got := res(Mul(String("ab"), Integer(0))).must(t); !got.Equals(String("")) {
		t.Errorf("zero repeat = %s, want empty", got.Dump())
	}
	got := res(Mul(List{Integer(1), Integer(2)}, Integer(2))).must(t)
	if !got.Equals(List{Integer(1), Integer(2), Integer(1), Integer(2)}) {
		t.Errorf("list repeat = %s", got.Dump())
	}
	if got := res(Mul(List{Integer(1)}, Integer(0))).must(t); !got.Equals(List{}) {
		t.Errorf("zero list repeat = %s", got.Dump())
	}

	res(Mul(String("x"), Integer(-1))).wantErr(t, errors.DomainError)
	res(Mul(List{Integer(1)}, Integer(-1))).wantErr(t, errors.DomainError)
	res(Mul(Null{}, Integer(2))).wantErr(t, errors.TypeError)
}

func TestPow(t *testing.T) {
	tests := []struct {
		name      string
		base, exp Integer
		want      Integer
	}{
		{"square", 5, 2, 25},
		{"exponent zero", 7, 0, 1},
		{"zero to zero", 0, 0, 1},
		{"base one negative exponent", 1, -5, 1},
		{"base minus one even exponent", -1, -4, 1},
		{"base minus one odd exponent", -1, -3, -1},
		{"negative exponent truncates to zero", 2, -1, 0},
		{"negative base", -2, 3, -8},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := res(Pow(test.base, test.exp)).must(t)
			if !got.Equals(test.want) {
				t.Errorf("Pow(%d, %d) = %s, want %d", test.base, test.exp, got.Dump(), test.want)
			}
		})
	}

	res(Pow(Integer(0), Integer(-1))).wantErr(t, errors.DomainError)

	// List ^ separator joins.
	got := res(Pow(List{Integer(1), String("a"), Boolean(true)}, String("-"))).must(t)
	if !got.Equals(String("1-a-true")) {
		t.Errorf("list join = %s", got.Dump())
	}
	got = res(Pow(List{String("a"), String("b")}, String(""))).must(t)
	if !got.Equals(String("ab")) {
		t.Errorf("empty-separator join = %s", got.Dump())
	}

	res(Pow(String("a"), Integer(2))).wantErr(t, errors.TypeError)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		lhs, rhs Value
		want     int // sign only
	}{
		{"integers less", Integer(1), Integer(2), -1},
		{"integers equal", Integer(2), Integer(2), 0},
		{"integer coerces rhs", Integer(10), String("9"), 1},
		{"strings lexicographic", String("abc"), String("abd"), -1},
		{"string prefix", String("ab"), String("abc"), -1},
		{"string coerces rhs", String("10"), Integer(9), -1}, // byte order, not numeric
		{"booleans", Boolean(false), Boolean(true), -1},
		{"lists elementwise", List{Integer(1), Integer(2)}, List{Integer(1), Integer(3)}, -1},
		{"lists length tiebreak", List{Integer(1)}, List{Integer(1), Integer(0)}, -1},
		{"lists equal", List{Integer(1)}, List{Integer(1)}, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Compare(test.lhs, test.rhs)
			if err != nil {
				t.Fatalf("Compare error: %v", err)
			}
			if sign(got) != test.want {
				t.Errorf("Compare(%s, %s) = %d, want sign %d",
					test.lhs.Dump(), test.rhs.Dump(), got, test.want)
			}
		})
	}

	if _, err := Compare(Null{}, Null{}); errors.TypeOf(err) != errors.TypeError {
		t.Errorf("comparing null should be a TypeError, got %v", err)
	}
}

// For every pair within a kind, exactly one of <, =, > holds.
func TestComparisonTotality(t *testing.T) {
	kinds := [][]Value{
		{Integer(-1), Integer(0), Integer(1), Integer(100)},
		{String(""), String("a"), String("ab"), String("b")},
		{Boolean(false), Boolean(true)},
		{List{}, List{Integer(1)}, List{Integer(1), Integer(2)}, List{Integer(2)}},
	}

	for _, values := range kinds {
		for _, a := range values {
			for _, b := range values {
				c1, err := Compare(a, b)
				if err != nil {
					t.Fatalf("Compare(%s, %s): %v", a.Dump(), b.Dump(), err)
				}
				c2, err := Compare(b, a)
				if err != nil {
					t.Fatalf("Compare(%s, %s): %v", b.Dump(), a.Dump(), err)
				}
				eq := a.Equals(b)
				states := 0
				if c1 < 0 {
					states++
				}
				if eq {
					states++
				}
				if c2 < 0 {
					states++
				}
				if states != 1 {
					t.Errorf("totality violated for %s vs %s: cmp=%d, rcmp=%d, eq=%v",
						a.Dump(), b.Dump(), c1, c2, eq)
				}
			}
		}
	}
}

func TestHeadTail(t *testing.T) {
	if got := res(Head(String("abc"))).must(t); !got.Equals(String("a")) {
		t.Errorf("Head string = %s", got.Dump())
	}
	if got := res(Tail(String("abc"))).must(t); !got.Equals(String("bc")) {
		t.Errorf("Tail string = %s", got.Dump())
	}
	if got := res(Head(List{Integer(1), Integer(2)})).must(t); !got.Equals(Integer(1)) {
		t.Errorf("Head list = %s", got.Dump())
	}
	if got := res(Tail(List{Integer(1), Integer(2)})).must(t); !got.Equals(List{Integer(2)}) {
		t.Errorf("Tail list = %s", got.Dump())
	}

	res(Head(String(""))).wantErr(t, errors.DomainError)
	res(Tail(String(""))).wantErr(t, errors.DomainError)
	res(Head(List{})).wantErr(t, errors.DomainError)
	res(Tail(List{})).wantErr(t, errors.DomainError)
	res(Head(Integer(1))).wantErr(t, errors.TypeError)
	res(Tail(Null{})).wantErr(t, errors.TypeError)
}

func TestGet(t *testing.T) {
	if got := res(Get(String("abcdef"), 1, 3)).must(t); !got.Equals(String("bcd")) {
		t.Errorf("Get string = %s", got.Dump())
	}
	if got := res(Get(String("abc"), 0, 0)).must(t); !got.Equals(String("")) {
		t.Errorf("zero-length Get = %s", got.Dump())
	}
	got := res(Get(List{Integer(1), Integer(2), Integer(3)}, 1, 2)).must(t)
	if !got.Equals(List{Integer(2), Integer(3)}) {
		t.Errorf("Get list = %s", got.Dump())
	}

	res(Get(String("abc"), -1, 1)).wantErr(t, errors.DomainError)
	res(Get(String("abc"), 0, -1)).wantErr(t, errors.DomainError)
	res(Get(String("abc"), 2, 5)).wantErr(t, errors.DomainError)
	res(Get(List{Integer(1)}, 0, 2)).wantErr(t, errors.DomainError)
	res(Get(Integer(5), 0, 1)).wantErr(t, errors.TypeError)
}

func TestSet(t *testing.T) {
	if got := res(Set(String("abcdef"), 1, 3, String("XY"))).must(t); !got.Equals(String("aXYef")) {
		t.Errorf("Set string = %s", got.Dump())
	}
	if got := res(Set(String("abc"), 1, 0, String("X"))).must(t); !got.Equals(String("aXbc")) {
		t.Errorf("insertion = %s", got.Dump())
	}
	// Replacement is coerced to the container's kind.
	if got := res(Set(String("abc"), 0, 1, Integer(9))).must(t); !got.Equals(String("9bc")) {
		t.Errorf("coerced replacement = %s", got.Dump())
	}
	// A start past the end clamps to append.
	if got := res(Set(String("ab"), 10, 2, String("c"))).must(t); !got.Equals(String("abc")) {
		t.Errorf("clamped Set = %s", got.Dump())
	}

	orig := List{Integer(1), Integer(2), Integer(3)}
	got := res(Set(orig, 1, 1, List{Integer(8), Integer(9)})).must(t)
	want := List{Integer(1), Integer(8), Integer(9), Integer(3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Set list mismatch (-want +got):\n%s", diff)
	}
	// The original is untouched.
	if !orig.Equals(List{Integer(1), Integer(2), Integer(3)}) {
		t.Errorf("Set mutated its receiver: %s", orig.Dump())
	}

	res(Set(String("abc"), -1, 0, String("x"))).wantErr(t, errors.DomainError)
	res(Set(Boolean(true), 0, 0, String("x"))).wantErr(t, errors.TypeError)
}

func TestAscii(t *testing.T) {
	if got := res(Ascii(Integer(65))).must(t); !got.Equals(String("A")) {
		t.Errorf("Ascii(65) = %s", got.Dump())
	}
	if got := res(Ascii(String("HELLO"))).must(t); !got.Equals(Integer(72)) {
		t.Errorf("Ascii(\"HELLO\") = %s", got.Dump())
	}
	// Only the low 8 bits of an integer are used.
	if got := res(Ascii(Integer(65 + 256))).must(t); !got.Equals(String("A")) {
		t.Errorf("Ascii(321) = %s, want \"A\"", got.Dump())
	}
	if got := res(Ascii(Integer(10))).must(t); !got.Equals(String("\n")) {
		t.Errorf("Ascii(10) = %s", got.Dump())
	}

	res(Ascii(String(""))).wantErr(t, errors.DomainError)
	res(Ascii(List{})).wantErr(t, errors.TypeError)
}

// ===== Algebraic laws =====

func TestArithmeticLaws(t *testing.T) {
	ints := []Integer{-100, -1, 0, 1, 2, 41, 1000}
	for _, a := range ints {
		if got := res(Add(a, Integer(0))).must(t); !got.Equals(a) {
			t.Errorf("+ %d 0 = %s", a, got.Dump())
		}
		if got := res(Mul(a, Integer(1))).must(t); !got.Equals(a) {
			t.Errorf("* %d 1 = %s", a, got.Dump())
		}
		if got := res(Sub(a, a)).must(t); !got.Equals(Integer(0)) {
			t.Errorf("- %d %d = %s", a, a, got.Dump())
		}
		if a != 0 {
			if got := res(Mod(a, a)).must(t); !got.Equals(Integer(0)) {
				t.Errorf("%% %d %d = %s", a, a, got.Dump())
			}
			if got := res(Div(Integer(0), a)).must(t); !got.Equals(Integer(0)) {
				t.Errorf("/ 0 %d = %s", a, got.Dump())
			}
		}
	}
}

// Integer -> digit list -> joined digits -> integer is the identity on
// non-negative integers.
func TestIntegerDigitListRoundTrip(t *testing.T) {
	for _, n := range []Integer{0, 1, 9, 10, 105, 123456789} {
		digits, err := n.ToList()
		if err != nil {
			t.Fatal(err)
		}
		joined := res(Pow(digits, String(""))).must(t)
		back, err := joined.ToInteger()
		if err != nil {
			t.Fatal(err)
		}
		if back != n {
			t.Errorf("round trip of %d gave %d (via %s)", n, back, joined.Dump())
		}
	}
}

// String -> char list -> joined with empty separator is the identity.
func TestStringCharListRoundTrip(t *testing.T) {
	for _, s := range []String{"", "a", "hello world", "line\nline"} {
		chars, err := s.ToList()
		if err != nil {
			t.Fatal(err)
		}
		joined := res(Pow(chars, String(""))).must(t)
		if !joined.Equals(s) {
			t.Errorf("round trip of %q gave %s", s, joined.Dump())
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
