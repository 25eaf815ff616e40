// Package output materializes chunks as numbered files.
//
// CreateDir is destructive: an existing directory with the requested name is
// removed together with everything in it, without confirmation.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/natedelduca/file-split/internal/failure"
	"github.com/natedelduca/file-split/internal/logger"
)

// maxCreateAttempts bounds CreateDir to the first try plus one retry after
// removing an existing directory.
const maxCreateAttempts = 2

// Writer creates the output directory and the chunk files inside it.
type Writer struct {
	fs  afero.Fs
	log logger.Logger
}

// New returns a Writer operating on fsys.
func New(fsys afero.Fs, log logger.Logger) *Writer {
	if log == nil {
		log = logger.Nop()
	}
	return &Writer{fs: fsys, log: log}
}

// FileName renders the name of chunk index: <base>-<index>.<ext>.
func FileName(base string, index int, ext string) string {
	return fmt.Sprintf("%s-%d.%s", base, index, ext)
}

// CreateDir ensures baseDir/dirName exists and is empty, removing any
// previous directory of that name. It returns the directory path.
func (w *Writer) CreateDir(baseDir, dirName string) (string, error) {
	path := filepath.Join(baseDir, dirName)

	for attempt := 1; ; attempt++ {
		err := w.fs.Mkdir(path, 0o755)
		if err == nil {
			w.log.Debug("created output directory", "path", path, "attempt", attempt)
			return path, nil
		}
		if !errors.Is(err, fs.ErrExist) || attempt == maxCreateAttempts {
			return "", failure.WrapIO(err, "create directory %s", path)
		}

		w.log.Info("removing existing output directory", "path", path)
		if rmErr := w.fs.RemoveAll(path); rmErr != nil {
			return "", failure.WrapIO(rmErr, "remove directory %s", path)
		}
	}
}

// WriteChunk writes text verbatim to the file for chunk index inside
// baseDir/dirName, creating or truncating it. It returns the file path.
func (w *Writer) WriteChunk(baseDir, dirName string, index int, ext, text string) (string, error) {
	path := filepath.Join(baseDir, dirName, FileName(dirName, index, ext))
	if err := afero.WriteFile(w.fs, path, []byte(text), 0o644); err != nil {
		return "", failure.WrapIO(err, "write %s", path)
	}
	w.log.Debug("wrote chunk", "index", index, "path", path, "bytes", len(text))
	return path, nil
}
