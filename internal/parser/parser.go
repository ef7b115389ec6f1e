// internal/parser/parser.go
package parser

import (
	"fmt"
	"regexp"
	"strconv"

	"knight/internal/env"
	"knight/internal/errors"
	"knight/internal/stream"
	"knight/internal/value"
)

var (
	identPattern   = regexp.MustCompile(`[a-z_][a-z_0-9]*`)
	integerPattern = regexp.MustCompile(`[0-9]+`)
	dquotePattern  = regexp.MustCompile(`(?s)"([^"]*)"`)
	squotePattern  = regexp.MustCompile(`(?s)'([^']*)'`)
	booleanPattern = regexp.MustCompile(`([TF])[A-Z]*`)
	nullPattern    = regexp.MustCompile(`N[A-Z]*`)
	listPattern    = regexp.MustCompile(`@`)
	keywordPattern = regexp.MustCompile(`([A-Z])[A-Z]*`)
	symbolPattern  = regexp.MustCompile(`(?s).`)
)

// Parse strips the stream and reads one value: a literal, an interned
// variable, or a function application whose arguments are parsed recursively.
// An exhausted stream yields (nil, nil); the caller decides whether an absent
// value is acceptable.
func Parse(s *stream.Stream) (value.Value, error) {
	s.Strip()

	if name, ok := s.Match(identPattern, 0); ok {
		return env.Lookup(name), nil
	}

	if digits, ok := s.Match(integerPattern, 0); ok {
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return nil, errors.NewParseError(
				fmt.Sprintf("integer literal %s out of range", digits), s.File(), s.Line())
		}
		return value.Integer(n), nil
	}

	if body, ok := s.Match(dquotePattern, 1); ok {
		return value.String(body), nil
	}
	if body, ok := s.Match(squotePattern, 1); ok {
		return value.String(body), nil
	}
	if q := s.Peek(); q == '"' || q == '\'' {
		return nil, errors.NewParseError("unterminated string literal", s.File(), s.Line())
	}

	if letter, ok := s.Match(booleanPattern, 1); ok {
		return value.Boolean(letter == "T"), nil
	}

	if _, ok := s.Match(nullPattern, 0); ok {
		return value.Null{}, nil
	}

	if _, ok := s.Match(listPattern, 0); ok {
		return value.List{}, nil
	}

	opcode, ok := s.Match(keywordPattern, 1)
	if !ok {
		opcode, ok = s.Match(symbolPattern, 0)
	}
	if !ok {
		return nil, nil
	}
	return parseFunction(s, opcode[0])
}

// parseFunction consults the registry before anything else: an unknown opcode
// is reported without reading arguments.
func parseFunction(s *stream.Stream, opcode byte) (value.Value, error) {
	line := s.Line()
	fn, ok := LookupFunction(opcode)
	if !ok {
		return nil, errors.NewParseError(
			fmt.Sprintf("unknown function '%c'", opcode), s.File(), line)
	}
	args := make([]value.Value, fn.Arity)
	for i := range args {
		arg, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return nil, errors.NewParseError(
				fmt.Sprintf("missing argument %d to '%s'", i+1, fn.Name), s.File(), s.Line())
		}
		args[i] = arg
	}
	return NewNode(fn, args), nil
}
