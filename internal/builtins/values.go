// internal/builtins/values.go
package builtins

import (
	"knight/internal/value"
)

func not(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	b, err := v.ToBoolean()
	if err != nil {
		return nil, err
	}
	return !b, nil
}

func negate(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	n, err := v.ToInteger()
	if err != nil {
		return nil, err
	}
	return -n, nil
}

func ascii(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	return value.Ascii(v)
}

// length list-coerces its argument and returns the element count.
func length(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	list, err := v.ToList()
	if err != nil {
		return nil, err
	}
	return value.Integer(len(list)), nil
}

// box wraps its argument's result in a one-element list.
func box(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	return value.List{v}, nil
}

func head(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	return value.Head(v)
}

func tail(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	return value.Tail(v)
}

func less(args []value.Value) (value.Value, error) {
	lhs, rhs, err := runBoth(args)
	if err != nil {
		return nil, err
	}
	c, err := value.Compare(lhs, rhs)
	if err != nil {
		return nil, err
	}
	return value.Boolean(c < 0), nil
}

func greater(args []value.Value) (value.Value, error) {
	lhs, rhs, err := runBoth(args)
	if err != nil {
		return nil, err
	}
	c, err := value.Compare(lhs, rhs)
	if err != nil {
		return nil, err
	}
	return value.Boolean(c > 0), nil
}

func equal(args []value.Value) (value.Value, error) {
	lhs, rhs, err := runBoth(args)
	if err != nil {
		return nil, err
	}
	return value.Boolean(lhs.Equals(rhs)), nil
}

func get(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	start, err := runInteger(args[1])
	if err != nil {
		return nil, err
	}
	length, err := runInteger(args[2])
	if err != nil {
		return nil, err
	}
	return value.Get(v, start, length)
}

func set(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	start, err := runInteger(args[1])
	if err != nil {
		return nil, err
	}
	length, err := runInteger(args[2])
	if err != nil {
		return nil, err
	}
	repl, err := args[3].Run()
	if err != nil {
		return nil, err
	}
	return value.Set(v, start, length, repl)
}

func runInteger(arg value.Value) (value.Integer, error) {
	v, err := arg.Run()
	if err != nil {
		return 0, err
	}
	return v.ToInteger()
}
