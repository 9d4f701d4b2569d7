package client

// This file defines functional options that configure the Client during
// construction.

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithBaseURL points the client at another origin. Production code never
// sets it; tests use it to reach a stub server.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		u = strings.TrimRight(strings.TrimSpace(u), "/")
		if u == "" {
			return fmt.Errorf("base URL cannot be empty")
		}
		c.baseURL = u
		return nil
	}
}

// WithTransport replaces the base RoundTripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("transport cannot be nil")
		}
		c.transport = rt
		return nil
	}
}

// WithHTTPTimeout bounds each request. The default is no timeout; prefer
// context deadlines where possible. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithDebugLogging wraps the transport so each request/response is dumped
// at debug level when enabled is true. Do not enable in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithLogger sets the logger used for per-call events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}
