// Package middleware provides the gin middleware chain of the portfolio API.
package middleware

import (
	"context"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/portfolio/internal/platform/logging"
)

const (
	// HeaderRequestID identifies a single request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID ties together the requests of one visit, such as
	// the view updates and contact submission of a page.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key of the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key of the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// maxIDLength bounds caller-supplied IDs before they reach logs and
// outbound headers.
const maxIDLength = 128

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyCorrelationID
)

type idConfig struct {
	header string
	ginKey string
	ctxKey ctxKey
	enrich func(context.Context, string) context.Context
}

// RequestID extracts X-Request-ID or generates a UUID. The ID is echoed in
// the response, stored on the gin and request contexts, and added to the
// request logger.
func RequestID() gin.HandlerFunc {
	return idMiddleware(idConfig{
		header: HeaderRequestID,
		ginKey: ContextKeyRequestID,
		ctxKey: ctxKeyRequestID,
		enrich: logging.WithRequestID,
	})
}

// CorrelationID does the same for X-Correlation-ID.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(idConfig{
		header: HeaderCorrelationID,
		ginKey: ContextKeyCorrelationID,
		ctxKey: ctxKeyCorrelationID,
		enrich: logging.WithCorrelationID,
	})
}

func idMiddleware(cfg idConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.header)
		if !validID(id) {
			id = uuid.NewString()
		}

		c.Set(cfg.ginKey, id)
		c.Header(cfg.header, id)

		ctx := context.WithValue(c.Request.Context(), cfg.ctxKey, id)
		c.Request = c.Request.WithContext(cfg.enrich(ctx, id))

		c.Next()
	}
}

// validID accepts non-empty printable ASCII up to maxIDLength.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for _, r := range id {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return false
		}
	}

	return true
}

// GetRequestID returns the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID from the gin context.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}

// RequestIDFromContext returns the request ID stored by RequestID. Outbound
// clients use it to propagate the header.
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxKeyRequestID)
}

// CorrelationIDFromContext returns the correlation ID stored by CorrelationID.
func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxKeyCorrelationID)
}

// ContextWithRequestID stores a request ID in ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// ContextWithCorrelationID stores a correlation ID in ctx.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

func stringValue(ctx context.Context, key ctxKey) string {
	if ctx == nil {
		return ""
	}

	s, _ := ctx.Value(key).(string)

	return s
}
