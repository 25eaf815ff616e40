// Package splitter runs the split pipeline: read the input, partition it
// into chunks, recreate the output directory and write one file per chunk.
package splitter

import (
	"github.com/spf13/afero"

	"github.com/natedelduca/file-split/internal/chunk"
	"github.com/natedelduca/file-split/internal/config"
	"github.com/natedelduca/file-split/internal/discover"
	"github.com/natedelduca/file-split/internal/failure"
	"github.com/natedelduca/file-split/internal/logger"
	"github.com/natedelduca/file-split/internal/output"
)

// Options is a fully resolved split request.
type Options struct {
	Input          discover.Input
	BaseName       string
	LineCount      int
	IncludeHeaders bool
}

// Flags holds values given explicitly on the command line. Nil and empty
// fields fall back to the config file and then to built-in defaults.
type Flags struct {
	BaseName       string
	LineCount      *int
	IncludeHeaders *bool
}

// Result lists what a run produced.
type Result struct {
	Dir   string
	Files []string
}

// ConfirmFunc is asked before an existing output directory is replaced.
type ConfirmFunc func(dir string) (bool, error)

// Option configures a Splitter.
type Option func(*Splitter)

// WithConfirm installs a hook consulted before an existing output
// directory is removed.
func WithConfirm(fn ConfirmFunc) Option {
	return func(s *Splitter) { s.confirm = fn }
}

// Splitter executes split requests against a filesystem.
type Splitter struct {
	fs      afero.Fs
	log     logger.Logger
	writer  *output.Writer
	confirm ConfirmFunc
}

// New returns a Splitter working on fsys.
func New(fsys afero.Fs, log logger.Logger, opts ...Option) *Splitter {
	if log == nil {
		log = logger.Nop()
	}
	s := &Splitter{
		fs:     fsys,
		log:    log,
		writer: output.New(fsys, log),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveOptions merges flags over cfg over the built-in defaults for in.
func ResolveOptions(in discover.Input, cfg config.Config, flags Flags) Options {
	opts := Options{
		Input:          in,
		BaseName:       in.Stem + "-split",
		LineCount:      cfg.Lines(),
		IncludeHeaders: cfg.HeadersFor(in.Ext),
	}
	if flags.BaseName != "" {
		opts.BaseName = flags.BaseName
	}
	if flags.LineCount != nil {
		opts.LineCount = *flags.LineCount
	}
	if flags.IncludeHeaders != nil {
		opts.IncludeHeaders = *flags.IncludeHeaders
	}
	return opts
}

// Run splits opts.Input. The base name and line count are checked before the
// output directory is touched, so invalid options leave existing output
// alone. A write failure stops the run and keeps the files already written.
func (s *Splitter) Run(opts Options) (Result, error) {
	if err := discover.ValidateBaseName(opts.BaseName); err != nil {
		return Result{}, err
	}

	contents, err := discover.Read(s.fs, opts.Input)
	if err != nil {
		return Result{}, err
	}

	chunks, err := chunk.Split(contents, opts.LineCount, opts.IncludeHeaders)
	if err != nil {
		return Result{}, err
	}
	s.log.Info("split input",
		"path", opts.Input.Path,
		"chunks", chunks.Len(),
		"lines_per_chunk", opts.LineCount,
		"headers", opts.IncludeHeaders,
	)

	if err := s.confirmOverwrite(opts.Input.OutputDir(opts.BaseName)); err != nil {
		return Result{}, err
	}

	dir, err := s.writer.CreateDir(opts.Input.Dir, opts.BaseName)
	if err != nil {
		return Result{}, err
	}

	result := Result{Dir: dir, Files: make([]string, 0, chunks.Len())}
	for i, text := range chunks.All() {
		path, err := s.writer.WriteChunk(opts.Input.Dir, opts.BaseName, i, opts.Input.Ext, text)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, path)
	}
	return result, nil
}

func (s *Splitter) confirmOverwrite(dir string) error {
	if s.confirm == nil {
		return nil
	}
	exists, err := afero.Exists(s.fs, dir)
	if err != nil {
		return failure.WrapIO(err, "stat %s", dir)
	}
	if !exists {
		return nil
	}
	ok, err := s.confirm(dir)
	if err != nil {
		return err
	}
	if !ok {
		return failure.Argumentf("overwrite of %s declined", dir)
	}
	return nil
}
