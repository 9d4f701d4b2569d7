package http

import (
	"net/http"

	"github.com/placename-desk/placename-desk/internal/config"
)

// NewServer builds the loopback HTTP server for the invoke bridge.
func NewServer(cfg *config.Config, relay Relay) *http.Server {
	return &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      NewRouter(relay),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}
