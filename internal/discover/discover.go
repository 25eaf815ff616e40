package discover

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/natedelduca/file-split/internal/failure"
)

const invalidFileMsg = "required value of argument '--file <file>' missing or invalid"

// Input describes the file being split and where its output goes.
type Input struct {
	// Path is the path as given on the command line.
	Path string
	// Dir is the directory containing the input; the output directory is
	// created inside it.
	Dir string
	// Stem is the file name without its final extension.
	Stem string
	// Ext is the final extension without the leading dot.
	Ext string
}

// Inspect resolves the parent directory, stem and extension of path.
func Inspect(path string) (Input, error) {
	if path == "" {
		return Input{}, failure.Argumentf("argument '--file <file>' missing a required value")
	}

	name := fileName(path)
	if name == "" {
		return Input{}, failure.Pathf(invalidFileMsg)
	}

	stem, ext, ok := splitExt(name)
	if !ok || stem == "" || ext == "" {
		return Input{}, failure.Pathf(invalidFileMsg)
	}

	return Input{
		Path: path,
		Dir:  filepath.Dir(path),
		Stem: stem,
		Ext:  ext,
	}, nil
}

// Read loads the whole document.
func Read(fs afero.Fs, in Input) (string, error) {
	data, err := afero.ReadFile(fs, in.Path)
	if err != nil {
		return "", failure.WrapIO(err, "read %s", in.Path)
	}
	return string(data), nil
}

// ValidateBaseName rejects output names that would resolve outside a plain
// child of the input directory. "." and ".." would make the output directory
// the input's own directory or its parent, which CreateDir then deletes.
func ValidateBaseName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return failure.Argumentf("base name is required")
	case name == "." || name == "..":
		return failure.Argumentf("invalid base name %q: must not be %q", name, name)
	case strings.ContainsAny(name, `/\`):
		return failure.Argumentf("invalid base name %q: must be a plain file name without path separators", name)
	}
	return nil
}

// OutputDir returns the directory that will hold the chunks named base.
func (in Input) OutputDir(base string) string {
	return filepath.Join(in.Dir, base)
}

// fileName returns the last element of path, or "" when path ends in a
// root, "." or "..".
func fileName(path string) string {
	base := filepath.Base(path)
	switch base {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return base
}

// splitExt splits name at its last dot. A dot in first position starts a
// hidden name, not an extension.
func splitExt(name string) (stem, ext string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}
