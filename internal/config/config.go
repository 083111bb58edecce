// Package config loads user settings for the algotrace CLI and server.
//
// Settings come from three layers, later layers winning:
//
//  1. built-in defaults ([Default])
//  2. a TOML file, by default $XDG_CONFIG_HOME/algotrace/config.toml
//  3. environment variables ALGOTRACE_SPEED, ALGOTRACE_ADDR and
//     ALGOTRACE_MAX_STEPS, optionally read from a .env file in the working
//     directory
//
// A missing file at either layer is not an error.
package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/playback"
	"github.com/matzehuels/algotrace/pkg/trace"
)

const appName = "algotrace"

// Environment variables that override file settings.
const (
	EnvSpeed    = "ALGOTRACE_SPEED"
	EnvAddr     = "ALGOTRACE_ADDR"
	EnvMaxSteps = "ALGOTRACE_MAX_STEPS"
)

// DefaultAddr is the listen address of "algotrace serve".
const DefaultAddr = "127.0.0.1:8080"

// Config holds all user settings.
type Config struct {
	Playback Playback `toml:"playback"`
	Server   Server   `toml:"server"`
	Trace    Trace    `toml:"trace"`
}

// Playback configures the terminal player.
type Playback struct {
	// Speed is the delay between automatic steps.
	Speed Duration `toml:"speed"`
}

// Server configures the HTTP API.
type Server struct {
	Addr        string   `toml:"addr"`
	ReadTimeout Duration `toml:"read_timeout"`
}

// Trace configures trace generation and export.
type Trace struct {
	// MaxSteps rejects traces longer than this many steps.
	MaxSteps int `toml:"max_steps"`
}

// Duration is a time.Duration written as text ("400ms") in TOML.
type Duration struct{ time.Duration }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Playback: Playback{Speed: Duration{playback.DefaultSpeed}},
		Server:   Server{Addr: DefaultAddr, ReadTimeout: Duration{10 * time.Second}},
		Trace:    Trace{MaxSteps: trace.MaxBudget + 1},
	}
}

// Path returns the default config file location, using the XDG standard
// (~/.config/algotrace/config.toml).
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path over the defaults, then applies the
// environment. An empty path means [Path].
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, fmt.Errorf("locate config: %w", err)
		}
		path = p
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !missing(err) {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config %s", path)
	}

	if err := godotenv.Load(); err != nil && !missing(err) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSpeed); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", EnvSpeed)
		}
		c.Playback.Speed = Duration{d}
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvMaxSteps); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidNumber, err, "%s", EnvMaxSteps)
		}
		c.Trace.MaxSteps = n
	}
	return nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if s := c.Playback.Speed.Duration; s < playback.MinSpeed || s > playback.MaxSpeed {
		return errors.New(errors.ErrCodeOutOfRange, "playback.speed %s must be between %s and %s", s, playback.MinSpeed, playback.MaxSpeed)
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "server.addr must not be empty")
	}
	if c.Trace.MaxSteps < 1 {
		return errors.New(errors.ErrCodeOutOfRange, "trace.max_steps must be positive, got %d", c.Trace.MaxSteps)
	}
	return nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func missing(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}
