package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/config"
	"github.com/anyulbade/card-rewards-gateway/internal/handler"
	"github.com/anyulbade/card-rewards-gateway/internal/mcp"
	"github.com/anyulbade/card-rewards-gateway/internal/tracing"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Caller().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("server failed")
		stop()
		os.Exit(1)
	}

	log.Info().Msg("server exited")
}

// setupLogger applies LOG_LEVEL and LOG_FORMAT. In stdio mode stdout carries
// JSON-RPC frames, so logs always go to stderr there.
func setupLogger(cfg *config.Config) {
	var out io.Writer = os.Stdout
	if cfg.Transport == config.TransportStdio {
		out = os.Stderr
	}
	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Caller().Logger()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func run(ctx context.Context, cfg *config.Config) error {
	tracer, shutdownTracing, err := tracing.Init(tracing.Config{
		Enabled:     cfg.TracingEnabled,
		Endpoint:    cfg.JaegerEndpoint,
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		Version:     version,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("tracer shutdown")
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client := apiclient.New(cfg.APIBaseURL, cfg.APITimeout,
		apiclient.WithMetrics(apiclient.NewMetrics(reg)),
		apiclient.WithTracer(tracer),
	)
	services := mcp.NewServices(client)

	registry := mcp.NewRegistry(mcp.NewMetrics(reg))
	mcp.RegisterTools(registry, services)
	server := mcp.NewServer(registry, version)

	log.Info().
		Str("api_base_url", cfg.APIBaseURL).
		Str("transport", cfg.Transport).
		Int("tools", len(registry.Tools())).
		Str("version", version).
		Msg("starting " + mcp.ServerName)

	if cfg.Transport == config.TransportStdio {
		return serveStdio(ctx, server)
	}

	router := handler.NewRouter(handler.RouterConfig{
		Server:       server,
		Registry:     registry,
		Health:       services.Health,
		Gatherer:     reg,
		Tracer:       tracer,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})
	return serveHTTP(ctx, cfg, router)
}

// serveStdio returns when stdin closes or a signal arrives; a read blocked
// on stdin is abandoned on signal.
func serveStdio(ctx context.Context, server *mcp.Server) error {
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down stdio transport")
		return nil
	}
}

func serveHTTP(ctx context.Context, cfg *config.Config, router http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.APITimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
