// Package config loads and saves persistent TUI settings and merges them with
// environment variables and command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/maiconbre/barbershop/ui/window"
)

const (
	filename      = "config.toml"
	tokenFilename = "token"

	DefaultBackendURL = "http://localhost:6543"
	DefaultTheme      = "dark"
	DefaultRowHeight  = 1
	DefaultCacheTTL   = 5 * time.Minute
)

// Environment variables read by FromEnv.
const (
	EnvURL      = "BARBERSHOP_URL"
	EnvToken    = "BARBERSHOP_TOKEN"
	EnvID       = "BARBERSHOP_ID"
	EnvEmail    = "BARBERSHOP_EMAIL"
	EnvPassword = "BARBERSHOP_PASSWORD"
	EnvDebug    = "BARBERSHOP_DEBUG"
)

// Duration is a time.Duration written as a Go duration string ("5m").
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Config holds persistent TUI settings stored at <profileDir>/config.toml.
type Config struct {
	Theme        string   `toml:"theme,omitempty"`
	BackendURL   string   `toml:"backend_url,omitempty"`
	BarbershopID string   `toml:"barbershop_id,omitempty"`
	RowHeight    int      `toml:"row_height"`
	Overscan     int      `toml:"overscan"`
	CacheTTL     Duration `toml:"cache_ttl"`

	// Credentials come from the environment or the token file, never from
	// config.toml.
	Token    string `toml:"-"`
	Email    string `toml:"-"`
	Password string `toml:"-"`
	Debug    bool   `toml:"-"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Theme:      DefaultTheme,
		BackendURL: DefaultBackendURL,
		RowHeight:  DefaultRowHeight,
		Overscan:   window.DefaultOverscan,
		CacheTTL:   Duration{DefaultCacheTTL},
	}
}

// ProfileDir returns ~/.barbershop, or ~/.barbershop/profiles/<name> for a
// named profile.
func ProfileDir(profile string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if profile == "" {
		return filepath.Join(home, ".barbershop")
	}
	return filepath.Join(home, ".barbershop", "profiles", profile)
}

// Load reads <profileDir>/config.toml on top of Defaults. If the file is
// absent, unreadable or invalid, Defaults is returned.
func Load(profileDir string) Config {
	cfg := Defaults()
	data, err := os.ReadFile(filepath.Join(profileDir, filename))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("config: read: %v", err)
		}
		return cfg
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		log.Printf("config: decode %s: %v", filename, err)
		return Defaults()
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("config: %v", err)
		return Defaults()
	}
	return cfg
}

// Save writes cfg to <profileDir>/config.toml, creating the directory if needed.
func Save(profileDir string, cfg Config) error {
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(filepath.Join(profileDir, filename), buf.Bytes(), 0o644)
}

// LoadToken returns the JWT saved by SaveToken, or "".
func LoadToken(profileDir string) string {
	data, err := os.ReadFile(filepath.Join(profileDir, tokenFilename))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveToken persists a JWT next to config.toml, readable by the owner only.
func SaveToken(profileDir, token string) error {
	if err := os.MkdirAll(profileDir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(profileDir, tokenFilename), []byte(token+"\n"), 0o600)
}

// Validate checks the layout settings the list virtualizer depends on.
func (c Config) Validate() error {
	wc := window.Config{
		ItemSize:      float64(c.RowHeight),
		ContainerSize: 1,
		Overscan:      c.Overscan,
	}
	if err := wc.Validate(); err != nil {
		return fmt.Errorf("row_height/overscan: %w", err)
	}
	if c.CacheTTL.Duration < 0 {
		return fmt.Errorf("cache_ttl must be >= 0, got %s", c.CacheTTL)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Overrides
// ---------------------------------------------------------------------------

// Flags are command-line overrides. Empty strings mean "not set".
type Flags struct {
	BackendURL   string
	BarbershopID string
	Theme        string
}

// FromEnv applies environment overrides through getenv (os.Getenv in main).
func (c Config) FromEnv(getenv func(string) string) Config {
	if v := getenv(EnvURL); v != "" {
		c.BackendURL = v
	}
	if v := getenv(EnvID); v != "" {
		c.BarbershopID = v
	}
	if v := getenv(EnvToken); v != "" {
		c.Token = v
	}
	c.Email = getenv(EnvEmail)
	c.Password = getenv(EnvPassword)
	c.Debug = getenv(EnvDebug) != ""
	return c
}

// WithFlags applies command-line overrides.
func (c Config) WithFlags(f Flags) Config {
	if f.BackendURL != "" {
		c.BackendURL = f.BackendURL
	}
	if f.BarbershopID != "" {
		c.BarbershopID = f.BarbershopID
	}
	if f.Theme != "" {
		c.Theme = f.Theme
	}
	return c
}

// Resolve merges every source, highest precedence last:
// defaults, config.toml, token file, environment, flags.
func Resolve(profileDir string, getenv func(string) string, f Flags) Config {
	cfg := Load(profileDir)
	cfg.Token = LoadToken(profileDir)
	return cfg.FromEnv(getenv).WithFlags(f)
}
