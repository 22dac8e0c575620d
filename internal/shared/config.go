package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Environment variables that override the configuration file.
const (
	EnvHost     = "TRACKLIST_HOST"
	EnvPort     = "TRACKLIST_PORT"
	EnvLogLevel = "TRACKLIST_LOG_LEVEL"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
	Format  FormatConfig  `toml:"format"`
	Watch   WatchConfig   `toml:"watch"`
	Session SessionConfig `toml:"session"`
}

// ServerConfig contains HTTP server settings for the browser UI.
type ServerConfig struct {
	Host        string          `toml:"host"`
	Port        int             `toml:"port"`
	MaxUploadMB int             `toml:"max_upload_mb"`
	OpenBrowser bool            `toml:"open_browser"`
	RateLimit   RateLimitConfig `toml:"rate_limit"`
}

// RateLimitConfig contains per-client upload rate limiting settings.
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// LoggingConfig contains logger settings. File is used by the TUI only.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// FormatConfig contains tracklist rendering defaults.
type FormatConfig struct {
	Numbered bool `toml:"numbered"`
}

// WatchConfig contains export file watcher settings.
type WatchConfig struct {
	Output     string `toml:"output"`
	DebounceMS int    `toml:"debounce_ms"`
}

// SessionConfig contains browser session settings.
type SessionConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadEnv loads variables from a dotenv file into the process environment.
//
// A missing file is not an error. Variables already set are not overwritten.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides configuration values from TRACKLIST_* variables found by lookup.
//
// lookup defaults to [os.LookupEnv].
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvHost); ok && v != "" {
		c.Server.Host = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a port", ErrInvalidConfig, EnvPort, v)
		}
		c.Server.Port = port
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}

	return c.Validate()
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return fmt.Errorf("%w: server host cannot be empty", ErrInvalidConfig)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Server.MaxUploadMB < 1 {
		return fmt.Errorf("%w: max_upload_mb must be at least 1", ErrInvalidConfig)
	}
	if c.Server.RateLimit.Enabled {
		if c.Server.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("%w: requests_per_second must be positive", ErrInvalidConfig)
		}
		if c.Server.RateLimit.Burst < 1 {
			return fmt.Errorf("%w: burst must be at least 1", ErrInvalidConfig)
		}
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("%w: debounce_ms cannot be negative", ErrInvalidConfig)
	}
	if c.Session.TTLMinutes < 1 {
		return fmt.Errorf("%w: ttl_minutes must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// Address returns the host:port the web server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the base URL of the web UI.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// MaxUploadBytes returns the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Server.MaxUploadMB) << 20
}

// Debounce returns the watcher debounce interval.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMS) * time.Millisecond
}

// SessionTTL returns how long an idle browser session is kept.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}
