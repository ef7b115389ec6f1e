// internal/builtins/flow.go
package builtins

import (
	"knight/internal/env"
	"knight/internal/interp"
	"knight/internal/value"
)

// block returns its argument subtree without evaluating it.
func block(args []value.Value) (value.Value, error) {
	return args[0], nil
}

// call runs its argument, then runs the result again; this is what forces a
// value produced by BLOCK.
func call(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	return v.Run()
}

// eval parses the string form of its argument as a fresh program and runs it
// against the same global environment.
func eval(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	src, err := v.ToString()
	if err != nil {
		return nil, err
	}
	return interp.Run("<eval>", string(src))
}

func and(args []value.Value) (value.Value, error) {
	lhs, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	truthy, err := lhs.ToBoolean()
	if err != nil {
		return nil, err
	}
	if !truthy {
		return lhs, nil
	}
	return args[1].Run()
}

func or(args []value.Value) (value.Value, error) {
	lhs, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	truthy, err := lhs.ToBoolean()
	if err != nil {
		return nil, err
	}
	if truthy {
		return lhs, nil
	}
	return args[1].Run()
}

// then runs both operands in order and yields the second.
func then(args []value.Value) (value.Value, error) {
	if _, err := args[0].Run(); err != nil {
		return nil, err
	}
	return args[1].Run()
}

func while(args []value.Value) (value.Value, error) {
	for {
		cond, err := args[0].Run()
		if err != nil {
			return nil, err
		}
		truthy, err := cond.ToBoolean()
		if err != nil {
			return nil, err
		}
		if !truthy {
			return value.Null{}, nil
		}
		if _, err := args[1].Run(); err != nil {
			return nil, err
		}
	}
}

// assign binds the rhs to a variable. A non-variable lhs is run, string
// coerced, and interned as the target name.
func assign(args []value.Value) (value.Value, error) {
	target, ok := args[0].(*env.Variable)
	if !ok {
		v, err := args[0].Run()
		if err != nil {
			return nil, err
		}
		name, err := v.ToString()
		if err != nil {
			return nil, err
		}
		target = env.Lookup(string(name))
	}
	val, err := args[1].Run()
	if err != nil {
		return nil, err
	}
	target.Assign(val)
	return val, nil
}

func ifThenElse(args []value.Value) (value.Value, error) {
	cond, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	truthy, err := cond.ToBoolean()
	if err != nil {
		return nil, err
	}
	if truthy {
		return args[1].Run()
	}
	return args[2].Run()
}
