package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"bootplan/internal/cli"
)

// version is stamped by the release build via -ldflags.
var version = "dev"

// main is the entrypoint for the bootplan binary.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command tree against the given writers and arguments.
// It is separated from main so tests can drive the full binary in-process.
func run(outW, errW io.Writer, args []string) error {
	root := cli.NewRootCmd(version, outW, errW)
	root.SetArgs(args)
	return root.Execute()
}
