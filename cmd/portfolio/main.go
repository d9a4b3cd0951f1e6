// Package main is the entry point for the portfolio site.
package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jsamuelsen/portfolio/internal/adapters/clients/contact"
	"github.com/jsamuelsen/portfolio/internal/adapters/content"
	"github.com/jsamuelsen/portfolio/internal/adapters/http"
	"github.com/jsamuelsen/portfolio/internal/adapters/http/handlers"
	"github.com/jsamuelsen/portfolio/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/portfolio/internal/app"
	"github.com/jsamuelsen/portfolio/internal/platform/config"
	"github.com/jsamuelsen/portfolio/internal/platform/logging"
	"github.com/jsamuelsen/portfolio/internal/platform/telemetry"
	"github.com/jsamuelsen/portfolio/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the site.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Local overrides from .env; a missing file is fine
	_ = godotenv.Load()

	// 2. Load and validate configuration (fail fast)
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	ctx = logging.WithContext(ctx, logger)

	logger.Info("starting portfolio",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("contact_sink", cfg.Contact.Sink),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if shutdownErr := telProvider.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Load the content store
	store, err := content.Load(ctx, contentFS(&cfg.Content))
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	logger.Info("content loaded", slog.Int("items", store.Count()))

	// 6. Create the contact sink
	sender, closeSender, err := newContactSender(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("creating contact sink: %w", err)
	}

	defer func() {
		if closeErr := closeSender.Close(); closeErr != nil {
			logger.Error("contact sink close error", slog.Any("error", closeErr))
		}
	}()

	// 7. Health checks and metrics
	healthRegistry := ports.NewHealthRegistry()
	for _, checker := range []ports.HealthChecker{store, sender} {
		if err := healthRegistry.Register(checker); err != nil {
			return fmt.Errorf("registering health check: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics := app.NewMetrics(reg)

	// 8. Application services
	contentService := app.NewContentService(app.ContentServiceConfig{Store: store, Metrics: metrics})
	viewService := app.NewViewService(app.ViewServiceConfig{Store: store, Metrics: metrics, Views: cfg.Views})
	contactService := app.NewContactService(app.ContactServiceConfig{Sender: sender, Metrics: metrics})

	go viewService.Run(ctx)

	// 9. HTTP server and routes
	server, err := http.New(&cfg.Server, logger)
	if err != nil {
		return fmt.Errorf("creating http server: %w", err)
	}

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:         logger,
		AppConfig:      &cfg.App,
		Timeout:        cfg.Server.RequestTimeout,
		HealthHandler:  handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime), reg),
		ContentHandler: handlers.NewContentHandler(contentService),
		ViewHandler:    handlers.NewViewHandler(viewService),
		ContactHandler: handlers.NewContactHandler(contactService),
		PageHandler:    handlers.NewPageHandler(contentService),
	})

	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	// 10. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// contactSink is a contact sender that reports health.
type contactSink interface {
	ports.ContactSender
	ports.HealthChecker
}

// newContactSender builds the configured sink. The returned closer
// releases its resources and is always non-nil.
func newContactSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (contactSink, io.Closer, error) {
	switch cfg.Contact.Sink {
	case config.ContactSinkWebhook:
		webhook, err := contact.NewWebhook(&contact.WebhookConfig{
			URL:    cfg.Contact.WebhookURL,
			Token:  cfg.Contact.WebhookToken,
			Client: cfg.Client,
			Logger: logger,
		})
		if err != nil {
			return nil, nil, err
		}

		return webhook, nopCloser{}, nil

	case config.ContactSinkSQLite:
		inbox, err := sqlite.Open(ctx, cfg.Contact.SQLitePath)
		if err != nil {
			return nil, nil, err
		}

		return inbox, inbox, nil

	default:
		return contact.NewSimulated(cfg.Contact.Delay), nopCloser{}, nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// contentFS serves content from disk when a directory is configured and
// from the embedded copy otherwise.
func contentFS(cfg *config.ContentConfig) fs.FS {
	if cfg.Dir != "" {
		return os.DirFS(cfg.Dir)
	}

	return content.Embedded()
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	// The signal context is done; shut down on a fresh deadline.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
