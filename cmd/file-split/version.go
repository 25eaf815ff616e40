package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/natedelduca/file-split/internal/version"
)

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  noArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(stdout, version.Details())
			return err
		},
	}
}
