// Package config holds the defaults for the command-line tools, optionally
// read from a TOML file.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Output formats.
const (
	// FormatText writes one 16-character binary line per instruction.
	FormatText = "text"
	// FormatRaw writes big-endian 16-bit words.
	FormatRaw = "raw"
)

// EnvConfig names the environment variable consulted when --config is not given.
const EnvConfig = "HACKASM_CONFIG"

// Config is the set of run defaults.
type Config struct {
	LogLevel  string `toml:"log_level"`
	Format    string `toml:"format"`
	Extension string `toml:"extension"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		Format:    FormatText,
		Extension: ".hack",
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log_level")
	}
	switch c.Format {
	case FormatText, FormatRaw:
	default:
		return errors.Errorf("format %q: want %q or %q", c.Format, FormatText, FormatRaw)
	}
	if c.Extension == "" || c.Extension[0] != '.' {
		return errors.Errorf("extension %q must start with a dot", c.Extension)
	}
	return nil
}

// OutputExtension returns the extension used for the configured format.
func (c *Config) OutputExtension() string {
	if c.Format == FormatRaw {
		return ".bin"
	}
	return c.Extension
}
