package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/portfolio/internal/platform/logging"
)

// probePrefix marks health and metrics routes, which are not logged.
const probePrefix = "/-/"

// Logger stores logger in the request context. Install it before the ID
// middleware so their attributes land on this logger.
func Logger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		c.Next()
	}
}

// Logging logs one line per completed request, at warn for 4xx and error
// for 5xx or when a handler recorded a gin error. It also tags the request
// logger with the active trace ID.
// Paths under /-/ and any in skipPaths are not logged.
func Logging(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if _, ok := skip[path]; ok || strings.HasPrefix(path, probePrefix) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			ctx = logging.WithTraceID(ctx, sc.TraceID().String())
			c.Request = c.Request.WithContext(ctx)
		}

		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		level := slog.LevelInfo

		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		}

		// Errors gin recorded itself, such as a failed template render.
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			level = max(level, slog.LevelError)
			attrs = append(attrs, slog.String("error", errs.String()))
		}

		logging.FromContext(ctx).LogAttrs(ctx, level, "request completed", attrs...)
	}
}
