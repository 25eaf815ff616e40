package main

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/natedelduca/file-split/internal/chunk"
	"github.com/natedelduca/file-split/internal/config"
	"github.com/natedelduca/file-split/internal/discover"
	"github.com/natedelduca/file-split/internal/failure"
	"github.com/natedelduca/file-split/internal/logger"
	"github.com/natedelduca/file-split/internal/splitter"
	"github.com/natedelduca/file-split/internal/ui"
	"github.com/natedelduca/file-split/internal/version"
)

// isTerminal is swapped in tests so prompts never open.
var isTerminal = ui.Interactive

type rootOptions struct {
	file           string
	newFileName    string
	lineCount      string
	includeHeaders string
	configPath     string
	interactive    bool
	logLevel       string
	logJSON        bool

	log logger.Logger
}

func newRootCmd(fsys afero.Fs, stdout, stderr io.Writer) *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "file-split",
		Short: "Split a text file into numbered files of N lines",
		Long: `file-split writes the lines of a text file into numbered files of at most
N lines each, optionally repeating the first line as a header in every file.

Output goes to <input dir>/<name>/<name>-<index>.<ext>. An existing directory
called <name> is deleted with everything in it before the new files are
written.`,
		Version:       version.Full(),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          noArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level := logger.LogLevel(o.logLevel)
			if !level.Valid() {
				return failure.Argumentf("invalid value %q for '--log-level': expected debug, info, warn or error", o.logLevel)
			}
			o.log = logger.NewLogger(&logger.Config{
				Level:      level,
				Output:     stderr,
				JSON:       o.logJSON,
				TimeFormat: "15:04:05",
			})
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, fsys)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(flagError)

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configPath, "config", config.DefaultFile, "defaults file path")
	pf.StringVar(&o.logLevel, "log-level", string(logger.WarnLevel), "log level: debug, info, warn or error")
	pf.BoolVar(&o.logJSON, "log-json", false, "log in JSON")

	f := cmd.Flags()
	f.StringVarP(&o.file, "file", "f", "", "path to the file to be split (required)")
	f.StringVarP(&o.newFileName, "new-file-name", "n", "",
		"name of the new files, which will be appended with an incremented number (default: '<original file name>-split')")
	f.StringVarP(&o.lineCount, "line-count", "l", "", "number of lines per file (default: 1)")
	f.StringVarP(&o.includeHeaders, "include-headers", "i", "",
		"include the headers from the original file (assumed to be the first line) in all split files, true or false (default: true if the original file is a CSV file, false otherwise)")
	f.BoolVar(&o.interactive, "interactive", false, "review the options in a form and confirm before deleting an existing output directory")

	cmd.AddCommand(newInitCmd(o, fsys))
	cmd.AddCommand(newVersionCmd(stdout))

	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command, fsys afero.Fs) error {
	in, err := discover.Inspect(o.file)
	if err != nil {
		return err
	}

	flags, err := o.parseFlags(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadOrDefault(fsys, o.configPath)
	if err != nil {
		return err
	}

	opts := splitter.ResolveOptions(in, cfg, flags)

	var extra []splitter.Option
	if o.interactive {
		if isTerminal() {
			answers, err := ui.RunOptions(in, ui.Answers{
				BaseName:       opts.BaseName,
				LineCount:      opts.LineCount,
				IncludeHeaders: opts.IncludeHeaders,
			})
			if err != nil {
				return err
			}
			opts.BaseName = answers.BaseName
			opts.LineCount = answers.LineCount
			opts.IncludeHeaders = answers.IncludeHeaders
			extra = append(extra, splitter.WithConfirm(ui.ConfirmOverwrite))
		} else {
			o.log.Warn("--interactive needs a terminal; continuing without prompts")
		}
	}

	if err := chunk.ValidateSize(opts.LineCount); err != nil {
		return err
	}

	res, err := splitter.New(fsys, o.log, extra...).Run(opts)
	if err != nil {
		return err
	}
	o.log.Info("split complete", "dir", res.Dir, "files", len(res.Files))
	return nil
}

// parseFlags converts the explicitly set flags. Values are parsed strictly:
// a line count is a non-negative integer and headers are "true" or "false".
func (o *rootOptions) parseFlags(cmd *cobra.Command) (splitter.Flags, error) {
	var flags splitter.Flags
	if cmd.Flags().Changed("new-file-name") {
		if o.newFileName == "" {
			return flags, failure.Argumentf("argument '--new-file-name <new_file_name>' missing a required value")
		}
		if err := discover.ValidateBaseName(o.newFileName); err != nil {
			return flags, err
		}
		flags.BaseName = o.newFileName
	}
	if cmd.Flags().Changed("line-count") {
		n, err := strconv.ParseUint(o.lineCount, 10, strconv.IntSize-1)
		if err != nil {
			return flags, failure.Argumentf("invalid value %q for '--line-count <lines>': expected a non-negative integer", o.lineCount)
		}
		lines := int(n)
		flags.LineCount = &lines
	}
	if cmd.Flags().Changed("include-headers") {
		var headers bool
		switch o.includeHeaders {
		case "true":
			headers = true
		case "false":
			headers = false
		default:
			return flags, failure.Argumentf("invalid value %q for '--include-headers <include_headers>': expected true or false", o.includeHeaders)
		}
		flags.IncludeHeaders = &headers
	}
	return flags, nil
}

func loadOrDefault(fsys afero.Fs, path string) (config.Config, error) {
	cfg, err := config.Load(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return config.Config{}, failure.WrapIO(err, "load config %s", path)
	}
	if cfg.HeaderExtensions == nil {
		cfg.HeaderExtensions = config.Default().HeaderExtensions
	}
	return cfg, nil
}
