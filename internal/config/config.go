package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// MCP transport selections.
const (
	TransportAuto  = "auto"
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds host settings for the placename binaries.
// Environment variables are parsed with the PLACENAME_ prefix, e.g.
// PLACENAME_LISTEN_ADDR. The gazetteer origin is deliberately absent.
type Config struct {
	// Invoke bridge for the webview front-end
	ListenAddr string `envconfig:"LISTEN_ADDR" default:"127.0.0.1:1430"`

	// MCP tool server
	MCPAddr       string `envconfig:"MCP_ADDR" default:":11547"`
	MCPTransport  string `envconfig:"MCP_TRANSPORT" default:"auto"`
	ServerName    string `envconfig:"SERVER_NAME" default:"placename-mcp-server"`
	ServerVersion string `envconfig:"SERVER_VERSION" default:"0.1.0"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`

	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPWriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"0s"`
	HTTPIdleTimeout  time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
}

// New creates a Config by parsing environment variables and validating them.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("PLACENAME", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("listen_addr", cfg.ListenAddr).
		Str("mcp_addr", cfg.MCPAddr).
		Str("mcp_transport", cfg.MCPTransport).
		Str("log_level", cfg.LogLevel).
		Bool("debug", cfg.Debug).
		Dur("shutdown_timeout", cfg.ShutdownTimeout).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting returns the defaults without reading the environment.
func NewForTesting() *Config {
	return &Config{
		ListenAddr:      "127.0.0.1:0",
		MCPAddr:         "127.0.0.1:0",
		MCPTransport:    TransportHTTP,
		ServerName:      "placename-mcp-server",
		ServerVersion:   "0.1.0",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		HTTPReadTimeout: 5 * time.Second,
		HTTPIdleTimeout: 120 * time.Second,
	}
}

// Validate normalizes enumerations and rejects impossible values.
func (c *Config) Validate() error {
	c.MCPTransport = strings.ToLower(strings.TrimSpace(c.MCPTransport))
	switch c.MCPTransport {
	case "":
		c.MCPTransport = TransportAuto
	case TransportAuto, TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unsupported MCP_TRANSPORT: %s", c.MCPTransport)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported LOG_LEVEL: %s", c.LogLevel)
	}

	if c.ListenAddr == "" {
		return fmt.Errorf("LISTEN_ADDR cannot be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	if c.HTTPReadTimeout < 0 || c.HTTPWriteTimeout < 0 || c.HTTPIdleTimeout < 0 {
		return fmt.Errorf("HTTP timeouts cannot be negative")
	}
	return nil
}
