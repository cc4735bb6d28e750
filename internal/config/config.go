// Package config provides configuration management for deepl-mcp using Viper.
package config

import (
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/translatekit/deepl-mcp/internal/errors"
	"github.com/translatekit/deepl-mcp/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "deepl-mcp"

// Config represents the top-level configuration structure.
//
// The auth key is normally supplied via the DEEPL_API_KEY environment
// variable (or a .env file) rather than the config file; all keys bind to
// DEEPL_-prefixed environment variables.
type Config struct {
	// APIKey is the DeepL API authentication key.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`

	// ServerURL overrides the DeepL API endpoint. When empty, the endpoint
	// is derived from the auth key (free-plan keys end in ":fx").
	ServerURL string `mapstructure:"server_url" yaml:"server_url"`

	// HTTPAddr is the listen address used by the HTTP transport.
	HTTPAddr string `mapstructure:"http_addr" yaml:"http_addr"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support: DEEPL_API_KEY, DEEPL_SERVER_URL, ...
	viper.SetEnvPrefix("DEEPL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Explicit binds so Unmarshal sees env-only keys with no config file.
	_ = viper.BindEnv("api_key")
	_ = viper.BindEnv("server_url")

	viper.SetDefault("http_addr", "127.0.0.1:8000")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found
// (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If the user specified a path, a missing file is an error;
			// an implicit load falls back to env vars and defaults.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks configuration values that can be verified without
// contacting the API. A missing API key is not an error here: the key is
// only required once a capability handle is constructed.
func (c *Config) Validate() error {
	if c.ServerURL != "" {
		u, err := url.Parse(c.ServerURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.Wrapf(errors.ErrInvalidConfig,
				"server_url %q is not an absolute URL", c.ServerURL)
		}
	}
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "http_addr must not be empty")
	}
	return nil
}
