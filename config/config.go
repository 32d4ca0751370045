// Package config loads mstviz settings from a TOML file.
//
// Example file:
//
//	method    = "prim"
//	speed     = "250ms"
//	format    = "yaml"
//	log_level = "debug"
//
//	[server]
//	addr           = ":9090"
//	max_body_bytes = 65536
//
// Missing keys keep their Default values. Unknown keys are an error.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mstviz/export"
	"github.com/katalvlaran/mstviz/playback"
	"github.com/katalvlaran/mstviz/prim_kruskal"
)

const appName = "mstviz"

var (
	// ErrInvalidConfig indicates a value outside its allowed set or range.
	ErrInvalidConfig = errors.New("config: invalid value")

	// ErrUnknownKey indicates a key that no setting reads.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is the effective configuration.
type Config struct {
	// Method is the default MST algorithm: kruskal or prim.
	Method string `toml:"method"`

	// Speed is the auto-play interval, within playback.MinInterval..MaxInterval.
	Speed time.Duration `toml:"speed"`

	// Format is the default export format: json or yaml.
	Format string `toml:"format"`

	// LogLevel is a charmbracelet/log level name.
	LogLevel string `toml:"log_level"`

	Server Server `toml:"server"`
}

// Server holds the HTTP API settings.
type Server struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Method:   prim_kruskal.MethodKruskal,
		Speed:    playback.DefaultInterval,
		Format:   string(export.JSON),
		LogLevel: "info",
		Server: Server{
			Addr:         ":8080",
			MaxBodyBytes: 1 << 20,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/mstviz/config.toml, falling back to
// ~/.config/mstviz/config.toml. It returns "" when neither is resolvable.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", appName, "config.toml")
}

// Load reads the file at path over the defaults and validates the result.
// An empty path means DefaultPath; a missing default file is not an error,
// a missing explicit file is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads TOML from r over the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: %w", strings.Join(keys, ", "), ErrUnknownKey)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and normalizes the names it accepts.
func (c *Config) Validate() error {
	method, err := prim_kruskal.ParseMethod(c.Method)
	if err != nil {
		return fmt.Errorf("method %q: %w", c.Method, ErrInvalidConfig)
	}
	c.Method = method

	format, err := export.ParseFormat(c.Format)
	if err != nil {
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}
	c.Format = string(format)

	if c.Speed < playback.MinInterval || c.Speed > playback.MaxInterval {
		return fmt.Errorf("speed %s outside %s..%s: %w", c.Speed, playback.MinInterval, playback.MaxInterval, ErrInvalidConfig)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is empty: %w", ErrInvalidConfig)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes %d: %w", c.Server.MaxBodyBytes, ErrInvalidConfig)
	}

	return nil
}

// Level returns the parsed log level, or info if LogLevel is invalid.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}
