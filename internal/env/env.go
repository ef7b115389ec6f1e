// internal/env/env.go
package env

import (
	"fmt"

	"knight/internal/errors"
	"knight/internal/value"
)

// Variable is an interned global name with a mutable binding cell. Every
// textual occurrence of one name shares a single Variable, so identity
// equality doubles as name equality.
type Variable struct {
	name  string
	bound value.Value
}

// The process-global environment. Populated lazily by Lookup, mutated only by
// Assign; single-threaded per the language's execution model.
var variables = map[string]*Variable{}

// Lookup interns name, creating an unbound Variable on first sight.
func Lookup(name string) *Variable {
	if v, ok := variables[name]; ok {
		return v
	}
	v := &Variable{name: name}
	variables[name] = v
	return v
}

// Reset drops every binding and interned name. Used by the test suites to
// isolate programs from one another.
func Reset() {
	variables = map[string]*Variable{}
}

// Name returns the variable's source-text name.
func (v *Variable) Name() string { return v.name }

// Assign replaces the binding in place.
func (v *Variable) Assign(val value.Value) {
	v.bound = val
}

// Run fetches the current binding; reading an unbound variable is an error.
func (v *Variable) Run() (value.Value, error) {
	if v.bound == nil {
		return nil, errors.NewNameError(v.name)
	}
	return v.bound, nil
}

func (v *Variable) TypeName() string { return "variable" }

func (v *Variable) ToInteger() (value.Integer, error) {
	r, err := v.Run()
	if err != nil {
		return 0, err
	}
	return r.ToInteger()
}

func (v *Variable) ToBoolean() (value.Boolean, error) {
	r, err := v.Run()
	if err != nil {
		return false, err
	}
	return r.ToBoolean()
}

func (v *Variable) ToString() (value.String, error) {
	r, err := v.Run()
	if err != nil {
		return "", err
	}
	return r.ToString()
}

func (v *Variable) ToList() (value.List, error) {
	r, err := v.Run()
	if err != nil {
		return nil, err
	}
	return r.ToList()
}

func (v *Variable) Dump() string {
	return fmt.Sprintf("<var %s>", v.name)
}

// Equals is identity: interning guarantees one node per name.
func (v *Variable) Equals(other value.Value) bool {
	o, ok := other.(*Variable)
	return ok && o == v
}
