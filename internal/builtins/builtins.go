// internal/builtins/builtins.go
//
// The built-in functions of the language, registered into the parser's opcode
// table at startup. Importing this package (usually as a blank import) is what
// makes the language's function set available.
package builtins

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"time"

	"knight/internal/parser"
	"knight/internal/value"
)

// Host capabilities. The interpreter proper never touches the process
// directly; tests swap these for in-memory fakes.
var (
	// Stdin feeds PROMPT one line at a time.
	Stdin = bufio.NewReader(os.Stdin)

	// Stdout receives OUTPUT and DUMP writes.
	Stdout io.Writer = os.Stdout

	// Random backs RANDOM.
	Random = rand.New(rand.NewSource(time.Now().UnixNano()))

	// Exit terminates the process for QUIT.
	Exit func(code int) = os.Exit

	// Shell runs a command line and returns its captured stdout.
	Shell func(command string) (string, error) = runShell
)

func init() {
	for _, f := range []*parser.Function{
		// Nullary
		{Opcode: 'P', Name: "PROMPT", Arity: 0, Op: prompt},
		{Opcode: 'R', Name: "RANDOM", Arity: 0, Op: random},

		// Unary
		{Opcode: 'E', Name: "EVAL", Arity: 1, Op: eval},
		{Opcode: 'B', Name: "BLOCK", Arity: 1, Op: block},
		{Opcode: 'C', Name: "CALL", Arity: 1, Op: call},
		{Opcode: '`', Name: "SHELL", Arity: 1, Op: shell},
		{Opcode: 'Q', Name: "QUIT", Arity: 1, Op: quit},
		{Opcode: '!', Name: "!", Arity: 1, Op: not},
		{Opcode: '~', Name: "~", Arity: 1, Op: negate},
		{Opcode: 'A', Name: "ASCII", Arity: 1, Op: ascii},
		{Opcode: 'L', Name: "LENGTH", Arity: 1, Op: length},
		{Opcode: 'D', Name: "DUMP", Arity: 1, Op: dump},
		{Opcode: 'O', Name: "OUTPUT", Arity: 1, Op: output},
		{Opcode: ',', Name: ",", Arity: 1, Op: box},
		{Opcode: '[', Name: "[", Arity: 1, Op: head},
		{Opcode: ']', Name: "]", Arity: 1, Op: tail},

		// Binary
		{Opcode: '+', Name: "+", Arity: 2, Op: arith(value.Add)},
		{Opcode: '-', Name: "-", Arity: 2, Op: arith(value.Sub)},
		{Opcode: '*', Name: "*", Arity: 2, Op: arith(value.Mul)},
		{Opcode: '/', Name: "/", Arity: 2, Op: arith(value.Div)},
		{Opcode: '%', Name: "%", Arity: 2, Op: arith(value.Mod)},
		{Opcode: '^', Name: "^", Arity: 2, Op: arith(value.Pow)},
		{Opcode: '<', Name: "<", Arity: 2, Op: less},
		{Opcode: '>', Name: ">", Arity: 2, Op: greater},
		{Opcode: '?', Name: "?", Arity: 2, Op: equal},
		{Opcode: '&', Name: "&", Arity: 2, Op: and},
		{Opcode: '|', Name: "|", Arity: 2, Op: or},
		{Opcode: ';', Name: ";", Arity: 2, Op: then},
		{Opcode: 'W', Name: "WHILE", Arity: 2, Op: while},
		{Opcode: '=', Name: "=", Arity: 2, Op: assign},

		// Ternary and up
		{Opcode: 'I', Name: "IF", Arity: 3, Op: ifThenElse},
		{Opcode: 'G', Name: "GET", Arity: 3, Op: get},
		{Opcode: 'S', Name: "SET", Arity: 4, Op: set},
	} {
		parser.Register(f)
	}
}

// runBoth evaluates the two operands of a binary opcode.
func runBoth(args []value.Value) (value.Value, value.Value, error) {
	lhs, err := args[0].Run()
	if err != nil {
		return nil, nil, err
	}
	rhs, err := args[1].Run()
	if err != nil {
		return nil, nil, err
	}
	return lhs, rhs, nil
}

// arith adapts a value-level binary operation: run both operands, then
// dispatch on the first with the second inert.
func arith(op func(lhs, rhs value.Value) (value.Value, error)) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		lhs, rhs, err := runBoth(args)
		if err != nil {
			return nil, err
		}
		return op(lhs, rhs)
	}
}
