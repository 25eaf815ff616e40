package config

import (
	"encoding/json"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

const (
	// DefaultFile is the default defaults-file name, looked up in the working directory.
	DefaultFile = ".file-split.json"
)

// Config captures persisted defaults applied when a flag is not given.
type Config struct {
	// LineCount is the number of data lines per chunk; values below 1 mean
	// the built-in default.
	LineCount int `json:"lineCount"`
	// IncludeHeaders forces header handling on or off for every input. When
	// nil, headers are enabled for extensions listed in HeaderExtensions.
	IncludeHeaders   *bool    `json:"includeHeaders,omitempty"`
	HeaderExtensions []string `json:"headerExtensions"`
}

// Load reads configuration from the provided path. If the file does not exist,
// an empty config and os.ErrNotExist are returned to allow callers to initialise defaults.
func Load(fs afero.Fs, path string) (Config, error) {
	var cfg Config

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Save writes the configuration to disk, creating parent directories as needed.
func Save(fs afero.Fs, path string, cfg Config) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return afero.WriteFile(fs, path, data, 0o644)
}

// Default returns the built-in defaults: one line per chunk, headers for CSV.
func Default() Config {
	return Config{
		LineCount:        1,
		IncludeHeaders:   nil,
		HeaderExtensions: []string{"csv"},
	}
}

// HeadersFor reports whether inputs with extension ext carry a header row.
// Extensions match exactly, so "CSV" is not "csv".
func (c Config) HeadersFor(ext string) bool {
	if c.IncludeHeaders != nil {
		return *c.IncludeHeaders
	}
	return slices.Contains(c.HeaderExtensions, ext)
}

// Lines returns the configured line count, or 1 when unset.
func (c Config) Lines() int {
	if c.LineCount < 1 {
		return 1
	}
	return c.LineCount
}
