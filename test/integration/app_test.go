//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/portfolio/internal/adapters/content"
	httpadapter "github.com/jsamuelsen/portfolio/internal/adapters/http"
	"github.com/jsamuelsen/portfolio/internal/adapters/http/handlers"
	"github.com/jsamuelsen/portfolio/internal/app"
	"github.com/jsamuelsen/portfolio/internal/platform/config"
	"github.com/jsamuelsen/portfolio/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// sink is a contact sender that reports health, like every configured sink.
type sink interface {
	ports.ContactSender
	ports.HealthChecker
}

// testClientConfig retries quickly so failure paths finish fast.
func testClientConfig() config.ClientConfig {
	return config.ClientConfig{
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// newApp wires the site over the embedded content exactly as main does,
// with the given contact sink.
func newApp(tb testing.TB, sender sink) http.Handler {
	tb.Helper()

	store, err := content.Load(tb.Context(), content.Embedded())
	require.NoError(tb, err)

	registry := ports.NewHealthRegistry()
	require.NoError(tb, registry.Register(store))
	require.NoError(tb, registry.Register(sender))

	reg := prometheus.NewRegistry()
	metrics := app.NewMetrics(reg)

	contentSvc := app.NewContentService(app.ContentServiceConfig{Store: store, Metrics: metrics})
	viewSvc := app.NewViewService(app.ViewServiceConfig{
		Store:   store,
		Metrics: metrics,
		Views:   config.ViewsConfig{TTL: time.Hour, SweepInterval: time.Minute, MaxSessions: 1000},
	})
	contactSvc := app.NewContactService(app.ContactServiceConfig{Sender: sender, Metrics: metrics})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		AppConfig:      &config.AppConfig{Name: "portfolio", Version: "test", Environment: "test"},
		Timeout:        10 * time.Second,
		HealthHandler:  handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now"), reg),
		ContentHandler: handlers.NewContentHandler(contentSvc),
		ViewHandler:    handlers.NewViewHandler(viewSvc),
		ContactHandler: handlers.NewContactHandler(contactSvc),
		PageHandler:    handlers.NewPageHandler(contentSvc),
	})

	return engine
}
