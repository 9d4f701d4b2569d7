// Package shell is the composition root of the desktop shell backend: it
// builds the one gazetteer client and serves the invoke bridge for the
// webview front-end.
package shell

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/placename-desk/placename-desk/client"
	bridge "github.com/placename-desk/placename-desk/internal/api/http"
	"github.com/placename-desk/placename-desk/internal/config"
	"github.com/placename-desk/placename-desk/internal/logger"
)

// Run starts the invoke bridge and blocks until SIGINT/SIGTERM or a server error.
func Run() error {
	cfg, err := config.New()
	if err != nil {
		l := logger.New(serviceName)
		l.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	log := initLogger(os.Stdout, cfg)

	// The client is a prerequisite for every command; failing to build it
	// means the process cannot do anything useful.
	gazetteer, err := client.New(client.WithLogger(log), client.WithDebugLogging(cfg.Debug))
	if err != nil {
		log.Fatal().Stack().Err(err).Msg("Failed to create gazetteer client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Serve(ctx, cfg, log, gazetteer)
}

const serviceName = "placename-shell"

// initLogger applies the configured level and makes the service logger the
// global one, so bridge middleware and handlers log with the service field.
func initLogger(w io.Writer, cfg *config.Config) zerolog.Logger {
	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))
	l := logger.NewWithWriter(w, serviceName)
	zlog.Logger = l
	return l
}

// Serve runs the bridge on cfg.ListenAddr until ctx is cancelled, then shuts
// down within cfg.ShutdownTimeout.
func Serve(ctx context.Context, cfg *config.Config, log zerolog.Logger, relay bridge.Relay) error {
	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Error().Err(err).Str("addr", cfg.ListenAddr).Msg("Failed to bind invoke bridge")
		return err
	}
	return serveListener(ctx, cfg, log, relay, ln)
}

func serveListener(ctx context.Context, cfg *config.Config, log zerolog.Logger, relay bridge.Relay, ln net.Listener) error {
	server := bridge.NewServer(cfg, relay)
	server.BaseContext = func(net.Listener) context.Context { return ctx }

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("Invoke bridge starting")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down invoke bridge")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Invoke bridge forced to shutdown")
			return err
		}
		log.Info().Msg("Invoke bridge exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("Invoke bridge failed")
		return err
	}
}
