// internal/builtins/io.go
package builtins

import (
	"io"
	"os/exec"
	"strings"

	kerrors "knight/internal/errors"
	"knight/internal/value"
)

// prompt reads one line from standard input, trimming at most one trailing
// carriage return and one newline in either order. End of input yields Null.
func prompt(args []value.Value) (value.Value, error) {
	line, err := Stdin.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return value.Null{}, nil
		}
	} else if err != nil {
		return nil, kerrors.NewIOError("reading standard input: %v", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return value.String(line), nil
}

func random(args []value.Value) (value.Value, error) {
	return value.Integer(Random.Int63n(1 << 32)), nil
}

// output writes the string form of its argument followed by a newline. A
// trailing backslash is removed and suppresses the newline. Yields Null.
func output(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	s, err := v.ToString()
	if err != nil {
		return nil, err
	}
	text := string(s)
	if strings.HasSuffix(text, "\\") {
		text = text[:len(text)-1]
	} else {
		text += "\n"
	}
	if _, err := io.WriteString(Stdout, text); err != nil {
		return nil, kerrors.NewIOError("writing standard output: %v", err)
	}
	return value.Null{}, nil
}

// dump writes the debugging representation of its argument, no newline, and
// yields the value itself.
func dump(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(Stdout, v.Dump()); err != nil {
		return nil, kerrors.NewIOError("writing standard output: %v", err)
	}
	return v, nil
}

// shell runs the argument's string form under the host shell and returns the
// child's captured stdout.
func shell(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	command, err := v.ToString()
	if err != nil {
		return nil, err
	}
	out, err := Shell(string(command))
	if err != nil {
		return nil, kerrors.NewIOError("running shell command: %v", err)
	}
	return value.String(out), nil
}

// runShell is the default Shell hook. Stdout is captured in full; the child's
// exit status is not consulted.
func runShell(command string) (string, error) {
	out, err := exec.Command("sh", "-c", command).Output()
	if err != nil {
		if _, exited := err.(*exec.ExitError); exited {
			return string(out), nil
		}
		return "", err
	}
	return string(out), nil
}

func quit(args []value.Value) (value.Value, error) {
	v, err := args[0].Run()
	if err != nil {
		return nil, err
	}
	code, err := v.ToInteger()
	if err != nil {
		return nil, err
	}
	Exit(int(code))
	return value.Null{}, nil
}
