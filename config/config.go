// Package config holds the settings of the setlike command.
package config

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	OutputYAML = "yaml"
	OutputText = "text"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	LogLevel  string `toml:"log-level"`
	LogFormat string `toml:"log-format"`
	// Output selects how results are printed.
	Output string `toml:"output"`
}

func Default() *Config {
	return &Config{
		LogLevel:  log.InfoLevel.String(),
		LogFormat: FormatText,
		Output:    OutputYAML,
	}
}

// Load applies the TOML file at path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: %w: unknown key %s", path, ErrInvalid, undecoded[0])
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !slices.Contains([]string{FormatText, FormatJSON}, c.LogFormat) {
		return fmt.Errorf("%w: log-format %q", ErrInvalid, c.LogFormat)
	}
	if !slices.Contains([]string{OutputYAML, OutputText}, c.Output) {
		return fmt.Errorf("%w: output %q", ErrInvalid, c.Output)
	}
	return nil
}

// Logger builds a logger writing to w. The config must be valid.
func (c *Config) Logger(w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	if c.LogFormat == FormatJSON {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
