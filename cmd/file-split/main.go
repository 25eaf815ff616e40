package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/natedelduca/file-split/internal/failure"
)

func main() {
	os.Exit(execute(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}

// execute runs the command tree and returns the process exit status.
func execute(args []string, fsys afero.Fs, stdout, stderr io.Writer) int {
	cmd := newRootCmd(fsys, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return failure.ExitCode(err)
	}
	return failure.ExitOK
}

func flagError(_ *cobra.Command, err error) error {
	return failure.Argumentf("%v", err)
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return failure.Argumentf("unexpected argument %q", args[0])
	}
	return nil
}
