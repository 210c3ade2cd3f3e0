// Package config holds the MCP server configuration.
package config

import (
	"errors"

	"github.com/draftstack/mcp-draftstack/internal/configload"
	"github.com/draftstack/mcp-draftstack/internal/logger"
)

const (
	defaultCMSURL             = "http://localhost:1337"
	defaultHTTPTimeoutSeconds = 30
)

// Config holds the MCP server configuration.
type Config struct {
	CMS     CMSConfig     `yaml:"cms"`
	Logging logger.Config `yaml:"logging"`
}

// CMSConfig holds the connection and credential settings for the Draftstack
// backend. Either APIToken or AdminEmail/AdminPassword must be set; a static
// API token wins when both are present.
type CMSConfig struct {
	BaseURL            string `yaml:"base_url" env:"DRAFTSTACK_URL"`
	APIToken           string `yaml:"api_token" env:"DRAFTSTACK_API_TOKEN"`
	AdminEmail         string `yaml:"admin_email" env:"DRAFTSTACK_ADMIN_EMAIL"`
	AdminPassword      string `yaml:"admin_password" env:"DRAFTSTACK_ADMIN_PASSWORD"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds" env:"DRAFTSTACK_HTTP_TIMEOUT_SECONDS"`
}

// ErrNoCredentials is returned when neither an API token nor admin
// credentials are configured.
var ErrNoCredentials = errors.New("no CMS credentials: set DRAFTSTACK_API_TOKEN or DRAFTSTACK_ADMIN_EMAIL and DRAFTSTACK_ADMIN_PASSWORD")

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return configload.LoadWithDefaults[Config](path, setDefaults)
}

// LoadOrDefault loads config from file, or returns defaults with env
// overrides applied if the file is missing. MCP servers are usually launched
// by a client with environment variables only, so the config file is optional.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		cfg = NewDefault()
		configload.ApplyEnvOverrides(cfg)
	}
	return cfg
}

// NewDefault creates a new config with all default values.
func NewDefault() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.CMS.APIToken == "" && (c.CMS.AdminEmail == "" || c.CMS.AdminPassword == "") {
		return ErrNoCredentials
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.CMS.BaseURL == "" {
		cfg.CMS.BaseURL = defaultCMSURL
	}
	if cfg.CMS.HTTPTimeoutSeconds == 0 {
		cfg.CMS.HTTPTimeoutSeconds = defaultHTTPTimeoutSeconds
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
