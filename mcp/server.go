package mcp

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/placename-desk/placename-desk/client"
	"github.com/placename-desk/placename-desk/internal/config"
	"github.com/placename-desk/placename-desk/internal/logger"
	"github.com/placename-desk/placename-desk/mcp/internal/handlers"
)

// loadConfig reads PLACENAME_* variables; command line flags override them.
func loadConfig(args []string) (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("placename-mcp-server", flag.ContinueOnError)
	fs.StringVar(&cfg.MCPAddr, "addr", cfg.MCPAddr, "Listen address for the streamable HTTP transport")
	fs.StringVar(&cfg.MCPTransport, "transport", cfg.MCPTransport, "Transport: auto|stdio|http")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// initLogger points the global logger at stderr; stdout belongs to the
// stdio transport.
func initLogger(cfg *config.Config) {
	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))
	log.Logger = logger.NewWithWriter(os.Stderr, cfg.ServerName).With().Caller().Logger()
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) {
	if err := handler.RegisterTools(s); err != nil {
		log.Fatal().Err(err).Msgf("Failed to register %s tools", name)
	}
}

// NewServer builds the MCP server with both placename tools bound to relay.
func NewServer(cfg *config.Config, relay handlers.Relay) *server.MCPServer {
	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
	)

	registerHandler(s, handlers.NewSearchHandler(relay), "search")
	registerHandler(s, handlers.NewPlacenameHandler(relay), "placename")
	return s
}

// RunMCPServer starts the MCP server and blocks until it exits.
func RunMCPServer() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	initLogger(cfg)

	// One client for the life of the process; without it no tool can work.
	gazetteer, err := client.New(client.WithLogger(log.Logger), client.WithDebugLogging(cfg.Debug))
	if err != nil {
		log.Fatal().Stack().Err(err).Msg("Failed to create gazetteer client")
	}

	s := NewServer(cfg, gazetteer)

	if shouldUseStdio(cfg.MCPTransport) {
		// Stdio transport (desktop hosts, launched processes)
		log.Info().Msg("Starting placename MCP server (stdio transport)")
		if err := server.ServeStdio(s); err != nil {
			log.Error().Err(err).Msg("Stdio server error")
			return err
		}
		return nil
	}

	log.Info().Str("addr", cfg.MCPAddr).Msg("Starting placename MCP server (Streamable HTTP)")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	srv := &http.Server{
		Addr:         cfg.MCPAddr,
		Handler:      streamSrv,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: 0, // No deadline - required for SSE streaming
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	shutdownComplete := make(chan struct{})
	go func() {
		defer close(shutdownComplete)
		<-ctx.Done()
		log.Info().Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("HTTP server error")
		return err
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio resolves the configured transport; "auto" picks stdio when
// stdin is not a terminal (the server was launched by a host process).
func shouldUseStdio(transport string) bool {
	switch transport {
	case config.TransportStdio:
		return true
	case config.TransportHTTP:
		return false
	}

	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}

	// Default to HTTP if detection fails
	return false
}
