package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/natedelduca/file-split/internal/config"
	"github.com/natedelduca/file-split/internal/failure"
)

func newInitCmd(o *rootOptions, fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a defaults file with the built-in settings",
		Args:  noArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := config.Save(fsys, o.configPath, config.Default()); err != nil {
				return failure.WrapIO(err, "write config %s", o.configPath)
			}
			o.log.Info("wrote defaults file", "path", o.configPath)
			return nil
		},
	}
}
