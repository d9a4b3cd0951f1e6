package http

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/portfolio/internal/adapters/http/dto"
	"github.com/jsamuelsen/portfolio/internal/adapters/http/handlers"
	"github.com/jsamuelsen/portfolio/internal/adapters/http/middleware"
	"github.com/jsamuelsen/portfolio/internal/platform/config"
	"github.com/jsamuelsen/portfolio/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// apiPrefix is the mount point of the JSON API.
const apiPrefix = "/api/v1"

// RouterConfig contains configuration for setting up the router. Nil
// handlers leave their routes unregistered.
type RouterConfig struct {
	// Logger is stored in every request context.
	Logger *slog.Logger

	// AppConfig names the service for tracing.
	AppConfig *config.AppConfig

	// Timeout bounds API and page requests. Zero disables it.
	Timeout time.Duration

	HealthHandler  *handlers.HealthHandler
	ContentHandler *handlers.ContentHandler
	ViewHandler    *handlers.ViewHandler
	ContactHandler *handlers.ContactHandler
	PageHandler    *handlers.PageHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Logger - request-scoped logger in the context
//  2. Recovery - catch panics
//  3. Request ID - generate/extract request ID
//  4. Correlation ID - carry the caller's correlation ID
//  5. OpenTelemetry - tracing and metrics
//  6. Logging - request logging (skips /-/ endpoints)
//  7. Timeout - request deadline (API and pages only)
//
// Route groups:
//   - /-/ (internal): probes, build info and metrics, no timeout
//   - /api/v1/ (public API): content, views and contact
//   - / (pages): server-rendered HTML
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "portfolio"
	if cfg.AppConfig != nil {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Logger(cfg.Logger),
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(serviceName)...)
	engine.Use(middleware.Logging())

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine.Group("/-"))
	}

	apiV1 := engine.Group(apiPrefix, middleware.Timeout(cfg.Timeout))
	setupAPIRoutes(apiV1, cfg)

	if cfg.PageHandler != nil {
		engine.SetHTMLTemplate(cfg.PageHandler.Templates())
		cfg.PageHandler.RegisterRoutes(engine.Group("", middleware.Timeout(cfg.Timeout)))
	}

	engine.NoRoute(notFound(cfg.PageHandler))
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.ContentHandler != nil {
		cfg.ContentHandler.RegisterRoutes(rg)
	}

	if cfg.ViewHandler != nil {
		cfg.ViewHandler.RegisterRoutes(rg)
	}

	if cfg.ContactHandler != nil {
		cfg.ContactHandler.RegisterRoutes(rg)
	}
}

// notFound answers unknown API paths with the JSON envelope and anything
// else with the HTML not-found page.
func notFound(pages *handlers.PageHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pages == nil || strings.HasPrefix(c.Request.URL.Path, apiPrefix+"/") {
			dto.HandleErrorCode(c, dto.ErrorCodeNotFound, "route not found")
			return
		}

		pages.NotFound(c)
	}
}
