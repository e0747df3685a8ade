// Package config loads service and CLI settings from an optional config file,
// environment variables and command line flags.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all runtime settings.
type Config struct {
	Port           int             `mapstructure:"port"`
	DatabaseURL    string          `mapstructure:"database_url"`
	MaxUploadBytes int64           `mapstructure:"max_upload_bytes"`
	JWT            JWTConfig       `mapstructure:"jwt"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
	Fetch          FetchConfig     `mapstructure:"fetch"`
	Log            LogConfig       `mapstructure:"log"`
}

// RateLimitConfig controls the per-client request limiter.
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit"`
	DefaultWindow   time.Duration `mapstructure:"default_window"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	Whitelist       []string      `mapstructure:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist"`
}

// FetchConfig controls retrieval of hosted resumes.
type FetchConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	UseBrowser bool          `mapstructure:"use_browser"`

	// AllowPrivateHosts lets the API fetch URLs on loopback and private networks.
	AllowPrivateHosts bool `mapstructure:"allow_private_hosts"`
}

// LogConfig selects the log encoding and level.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// Default values.
const (
	DefaultPort           = 8080
	DefaultMaxUploadBytes = 5 << 20
)

var envBindings = map[string]string{
	"port":                        "PORT",
	"database_url":                "DATABASE_URL",
	"max_upload_bytes":            "MAX_UPLOAD_BYTES",
	"jwt.secret":                  "JWT_SECRET",
	"jwt.expiration_hours":        "JWT_EXPIRATION_HOURS",
	"rate_limit.enabled":          "RATE_LIMIT_ENABLED",
	"rate_limit.default_limit":    "RATE_LIMIT_DEFAULT_LIMIT",
	"rate_limit.default_window":   "RATE_LIMIT_DEFAULT_WINDOW",
	"rate_limit.cleanup_interval": "RATE_LIMIT_CLEANUP_INTERVAL",
	"rate_limit.whitelist":        "RATE_LIMIT_WHITELIST",
	"rate_limit.blacklist":        "RATE_LIMIT_BLACKLIST",
	"fetch.timeout":               "FETCH_TIMEOUT",
	"fetch.use_browser":           "USE_BROWSER",
	"fetch.allow_private_hosts":   "FETCH_ALLOW_PRIVATE_HOSTS",
	"log.json":                    "LOG_JSON",
	"log.debug":                   "LOG_DEBUG",
}

// Loader resolves a Config from defaults, a config file, environment
// variables and bound flags, in increasing order of precedence.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with defaults and environment bindings registered.
func NewLoader() *Loader {
	v := viper.New()

	v.SetDefault("port", DefaultPort)
	v.SetDefault("database_url", "")
	v.SetDefault("max_upload_bytes", DefaultMaxUploadBytes)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", DefaultJWTExpirationHours)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", 1000)
	v.SetDefault("rate_limit.default_window", time.Minute)
	v.SetDefault("rate_limit.cleanup_interval", 5*time.Minute)
	v.SetDefault("rate_limit.whitelist", []string{})
	v.SetDefault("rate_limit.blacklist", []string{})
	v.SetDefault("fetch.timeout", 30*time.Second)
	v.SetDefault("fetch.use_browser", false)
	v.SetDefault("fetch.allow_private_hosts", false)
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)

	for key, env := range envBindings {
		// BindEnv only fails when no key is given.
		_ = v.BindEnv(key, env)
	}

	return &Loader{v: v}
}

// BindFlag lets a command line flag override the setting at key when the flag is set.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("config error: no flag to bind for %q", key)
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("config error: failed to bind flag for %q: %w", key, err)
	}
	return nil
}

// Load reads the config file at path, if any, and returns the validated result.
// The file format is chosen by extension (JSON, YAML or TOML).
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load is shorthand for NewLoader().Load(path).
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// Validate checks that the configuration has usable values.
// The JWT secret is checked separately by the commands that sign tokens.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be positive")
	}
	if c.JWT.ExpirationHours < 1 {
		return fmt.Errorf("config error: 'jwt.expiration_hours' must be at least 1, got %d", c.JWT.ExpirationHours)
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.DefaultLimit <= 0 {
			return fmt.Errorf("config error: 'rate_limit.default_limit' must be positive")
		}
		if c.RateLimit.DefaultWindow <= 0 {
			return fmt.Errorf("config error: 'rate_limit.default_window' must be positive")
		}
		if c.RateLimit.CleanupInterval < 0 {
			return fmt.Errorf("config error: 'rate_limit.cleanup_interval' must be non-negative")
		}
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("config error: 'fetch.timeout' must be positive")
	}
	return nil
}
