// Package config loads exactcalc settings from a TOML or YAML file.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/exactcalc"
)

// EnvConfigPath names the environment variable consulted for a config file
// when none is given on the command line.
const EnvConfigPath = "EXACTCALC_CONFIG"

// Config holds the complete configuration.
type Config struct {
	// Precision is the number of digits after the decimal point to which
	// quotients are rounded.
	Precision int `toml:"precision" yaml:"precision"`
	// Group is whether results are printed with thousands separators.
	Group   bool          `toml:"group" yaml:"group"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level      string `toml:"level" yaml:"level"`
	Format     string `toml:"format" yaml:"format"` // text or json
	IncludeSrc bool   `toml:"include_src" yaml:"include_src"`
	// File enables a rotating log file in addition to stderr.
	File FileConfig `toml:"file" yaml:"file"`
}

// FileConfig holds log file rotation settings.
type FileConfig struct {
	Filename   string `toml:"filename" yaml:"filename"`
	MaxSize    int    `toml:"max_size" yaml:"max_size"` // megabytes
	MaxAge     int    `toml:"max_age" yaml:"max_age"`   // days
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
	Compress   bool   `toml:"compress" yaml:"compress"`
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Addr         string   `toml:"addr" yaml:"addr"`
	DebugMode    bool     `toml:"debug_mode" yaml:"debug_mode"`
	ReadTimeout  Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout"`
	Limits       Limits   `toml:"limits" yaml:"limits"`
}

// Limits bounds the work a single request may ask for.
type Limits struct {
	// MaxLength is the maximum expression length in runes.
	MaxLength int `toml:"max_length" yaml:"max_length"`
	// MaxDepth is the maximum parenthesis nesting depth.
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
	// MaxPrecision is the largest precision a request may set.
	MaxPrecision int `toml:"max_precision" yaml:"max_precision"`
}

// Duration wraps time.Duration for text decoding, e.g. "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	cfg := &Config{Precision: -1}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills settings left unset. A negative precision means unset,
// since zero is a meaningful precision.
func (c *Config) applyDefaults() {
	if c.Precision < 0 {
		c.Precision = exactcalc.DefaultPrecision
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.File.MaxSize == 0 {
		c.Logging.File.MaxSize = 100
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 10 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 10 * time.Second
	}
	if c.Server.Limits.MaxLength == 0 {
		c.Server.Limits.MaxLength = 4096
	}
	if c.Server.Limits.MaxDepth == 0 {
		c.Server.Limits.MaxDepth = 64
	}
	if c.Server.Limits.MaxPrecision == 0 {
		c.Server.Limits.MaxPrecision = 1000
	}
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch {
	case c.Precision < 0:
		return errors.Errorf("precision must be non-negative, not %d", c.Precision)
	case c.Server.Limits.MaxLength <= 0:
		return errors.Errorf("server.limits.max_length must be positive, not %d", c.Server.Limits.MaxLength)
	case c.Server.Limits.MaxDepth <= 0:
		return errors.Errorf("server.limits.max_depth must be positive, not %d", c.Server.Limits.MaxDepth)
	case c.Server.Limits.MaxPrecision <= 0:
		return errors.Errorf("server.limits.max_precision must be positive, not %d", c.Server.Limits.MaxPrecision)
	case c.Precision > c.Server.Limits.MaxPrecision:
		return errors.Errorf("precision %d exceeds server.limits.max_precision %d", c.Precision, c.Server.Limits.MaxPrecision)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return errors.Errorf("unknown logging.format %q", c.Logging.Format)
	}
	return nil
}

// Load reads a configuration file. The extension selects the format:
// .toml, or .yaml or .yml. Unknown keys are errors. Settings the file leaves
// out take their defaults, and the result is validated.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	cfg := Config{Precision: -1}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		if und := md.Undecoded(); len(und) > 0 {
			return nil, errors.Errorf("parsing %s: unknown key %s", path, und[0])
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document leaves everything at defaults.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	default:
		return nil, errors.Errorf("config %s: unknown format %q", path, ext)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return &cfg, nil
}

// Resolve loads the config at path, or at $EXACTCALC_CONFIG if path is
// empty, or returns defaults if both are empty.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
