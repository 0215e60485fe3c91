package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// MCP transport modes
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	MCP        MCPConfig
	Woolworths BackendConfig
	Coles      ColesConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MCPConfig selects how the MCP tools are served
type MCPConfig struct {
	Transport string `mapstructure:"transport"` // "stdio" or "http"
}

// BackendConfig holds per-supermarket client configuration. An empty
// base_url selects the chain's public endpoint.
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ColesConfig extends BackendConfig with the default store selection
type ColesConfig struct {
	BackendConfig  `mapstructure:",squash"`
	DefaultStoreID string `mapstructure:"default_store_id"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/trolley/")

	// Environment variable settings
	v.SetEnvPrefix("TROLLEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "7860")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// MCP defaults
	v.SetDefault("mcp.transport", TransportStdio)

	// Backend defaults; empty base URLs fall through to the public endpoints
	v.SetDefault("woolworths.base_url", "")
	v.SetDefault("woolworths.timeout", "15s")
	v.SetDefault("coles.base_url", "")
	v.SetDefault("coles.timeout", "15s")
	v.SetDefault("coles.default_store_id", "")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.MCP.Transport != TransportStdio && config.MCP.Transport != TransportHTTP {
		return fmt.Errorf("mcp transport must be 'stdio' or 'http', got: %s", config.MCP.Transport)
	}

	if config.Woolworths.Timeout < 0 || config.Coles.Timeout < 0 {
		return fmt.Errorf("backend timeouts must not be negative")
	}

	return nil
}
