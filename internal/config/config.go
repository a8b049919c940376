package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultLineEnding = "crlf"
	defaultJobs       = 4
)

// Config holds CLI defaults loaded from an optional srtfix.toml file.
// Command-line flags override anything set here.
type Config struct {
	Encoding   string `toml:"encoding"`
	LineEnding string `toml:"line_ending"`
	Backup     bool   `toml:"backup"`
	Clean      bool   `toml:"clean"`
	CleanAll   bool   `toml:"clean_all"`
	Jobs       int    `toml:"jobs"`
}

func Default() Config {
	return Config{
		LineEnding: defaultLineEnding,
		Jobs:       defaultJobs,
	}
}

// Load reads the config file at path. A missing file is not an error; the
// defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	return cfg, nil
}
