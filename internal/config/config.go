package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko/tracing"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Keymap  KeymapConfig  `toml:"keymap"`
	Server  ServerConfig  `toml:"server"`
	Collab  CollabConfig  `toml:"collab"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// KeymapConfig selects the transliteration tables. An empty path selects
// the built-in Bahnar tables.
type KeymapConfig struct {
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

// ServerConfig holds settings of the websocket host
type ServerConfig struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	ReadTimeout    Duration `toml:"read_timeout"`
	WriteTimeout   Duration `toml:"write_timeout"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// CollabConfig bounds calls to speech, OCR and document services
type CollabConfig struct {
	Timeout Duration `toml:"timeout"`
	Gender  string   `toml:"gender"`
	Region  string   `toml:"region"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file. An empty path yields the
// defaults. Environment variables TRANSLIT_* override file values.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		path = os.ExpandEnv(path)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	cfg.Keymap.Path = os.ExpandEnv(cfg.Keymap.Path)
	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "error"
	}
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 10 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 10 * time.Second
	}
	if c.Collab.Timeout.Duration == 0 {
		c.Collab.Timeout.Duration = 30 * time.Second
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TRANSLIT_LOG_LEVEL"); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv("TRANSLIT_KEYMAP"); v != "" {
		c.Keymap.Path = v
	}
	if v := os.Getenv("TRANSLIT_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("TRANSLIT_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TRANSLIT_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	return nil
}

// Address returns host:port of the websocket host
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// TraceLevel maps the configured log level to a trace level.
func (c *Config) TraceLevel() (tracing.TraceLevel, error) {
	switch strings.ToLower(c.General.LogLevel) {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown log level %q", c.General.LogLevel)
}

// ApplyTraceLevel sets the configured level on all given trace keys.
func (c *Config) ApplyTraceLevel(keys ...string) error {
	level, err := c.TraceLevel()
	if err != nil {
		return err
	}
	for _, key := range keys {
		tracing.Select(key).SetTraceLevel(level)
	}
	return nil
}
