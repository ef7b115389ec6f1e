// internal/interp/interp.go
package interp

import (
	"knight/internal/errors"
	"knight/internal/parser"
	"knight/internal/stream"
	"knight/internal/value"
)

// Run parses one top-level expression from source and evaluates it. file is
// used in diagnostics only.
func Run(file, source string) (value.Value, error) {
	v, err := parseOne(file, source)
	if err != nil {
		return nil, err
	}
	return v.Run()
}

// Check parses one top-level expression without evaluating it.
func Check(file, source string) error {
	_, err := parseOne(file, source)
	return err
}

func parseOne(file, source string) (value.Value, error) {
	s := stream.New(file, source)
	v, err := parser.Parse(s)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.NewParseError("no expression found", file, s.Line())
	}
	return v, nil
}
