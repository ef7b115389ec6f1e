// internal/repl/repl.go
package repl

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	_ "knight/internal/builtins" // Register built-in functions
	"knight/internal/interp"
	"knight/internal/value"
)

// Start runs the interactive loop. Each line is one program; the global
// environment persists across lines, so assignments carry over. Unlike file
// execution, an error does not end the session.
func Start(version string) {
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		fmt.Printf("Knight %s REPL | type 'exit' to quit\n", version)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print(">>> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "exit" {
			break
		}
		if line == "" {
			continue
		}

		result, err := interp.Run("<repl>", line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if _, isNull := result.(value.Null); !isNull {
			fmt.Println(result.Dump())
		}
	}
}
