// cmd/knight/main.go
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	_ "knight/internal/builtins" // Register built-in functions
	"knight/internal/interp"
	"knight/internal/repl"
)

const version = "1.0.0"

// Build variables - can be set during build with ldflags
var (
	buildDate = "unknown"
	gitCommit = "unknown"
)

func main() {
	var expression string

	rootCmd := &cobra.Command{
		Use:           "knight [file]",
		Short:         "Run a Knight program",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if expression != "" {
				if len(args) > 0 {
					return fmt.Errorf("cannot give both -e and a file")
				}
				_, err := interp.Run("<expression>", expression)
				return err
			}
			if len(args) == 0 {
				return cmd.Usage()
			}
			source, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}
			_, err = interp.Run(args[0], string(source))
			return err
		},
	}
	rootCmd.Flags().StringVarP(&expression, "expr", "e", "", "run an inline expression instead of a file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			repl.Start(version)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:           "check <file>",
		Short:         "Parse a program without running it",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}
			if err := interp.Check(args[0], string(source)); err != nil {
				return err
			}
			fmt.Printf("%s: syntax OK\n", args[0])
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("knight %s (built %s, commit %s)\n", version, buildDate, gitCommit)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
