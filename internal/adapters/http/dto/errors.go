// Package dto holds the JSON shapes of the HTTP API and the helpers that
// bind, validate and render them.
package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/portfolio/internal/domain"
	"github.com/jsamuelsen/portfolio/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details holds field-level messages for validation errors.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeNotFound    = "NOT_FOUND"
	ErrorCodeConflict    = "CONFLICT"
	ErrorCodeValidation  = "VALIDATION_ERROR"
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal    = "INTERNAL_ERROR"
	ErrorCodeTimeout     = "TIMEOUT"
	ErrorCodeBadRequest  = "BAD_REQUEST"
	ErrorCodeTooLarge    = "PAYLOAD_TOO_LARGE"
)

// traceIDKey is the gin context key checked when no span is active.
const traceIDKey = "trace_id"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// MapError maps an error from the app layer or from request binding to an
// error code and envelope. Unknown errors get a generic message.
func MapError(err error) *ErrorResponse {
	var (
		maxBytes *http.MaxBytesError
		verr     *domain.ValidationError
	)

	switch {
	case errors.As(err, &maxBytes):
		return NewErrorResponse(ErrorCodeTooLarge, "request body too large")

	case IsValidationError(err):
		return NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", ValidationErrors(err))

	case errors.Is(err, ErrInvalidCursor):
		return NewErrorResponse(ErrorCodeBadRequest, "invalid cursor")

	case errors.Is(err, ErrBinding):
		return NewErrorResponse(ErrorCodeBadRequest, "malformed request body")

	case domain.IsNotFound(err):
		return NewErrorResponse(ErrorCodeNotFound, domainMessage(err))

	case domain.IsConflict(err):
		return NewErrorResponse(ErrorCodeConflict, domainMessage(err))

	case errors.As(err, &verr):
		resp := NewErrorResponse(ErrorCodeValidation, verr.Error())
		if verr.Field != "" {
			resp.Error.Details = map[string]string{verr.Field: verr.Message}
		}

		return resp

	case domain.IsValidation(err):
		return NewErrorResponse(ErrorCodeValidation, domainMessage(err))

	case domain.IsUnavailable(err):
		return NewErrorResponse(ErrorCodeUnavailable, "service temporarily unavailable, please try again later")

	case errors.Is(err, context.DeadlineExceeded):
		return NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")

	default:
		return NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}
}

// domainMessage returns the innermost typed domain error's message so that
// wrapping by the app layer does not leak into responses.
func domainMessage(err error) string {
	var (
		nf *domain.NotFoundError
		cf *domain.ConflictError
		ve *domain.ValidationError
	)

	switch {
	case errors.As(err, &nf):
		return nf.Error()
	case errors.As(err, &cf):
		return cf.Error()
	case errors.As(err, &ve):
		return ve.Error()
	default:
		return err.Error()
	}
}

// HandleError writes the error envelope for err. Server-side failures are
// logged; client errors are not.
func HandleError(c *gin.Context, err error) {
	resp := MapError(err).WithTraceID(GetTraceID(c))
	status := HTTPStatusFromCode(resp.Error.Code)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
			slog.Any("error", err),
			slog.Int("status", status),
		)
	}

	c.AbortWithStatusJSON(status, resp)
}

// HandleErrorCode writes an envelope with a fixed code and message.
func HandleErrorCode(c *gin.Context, code, message string) {
	resp := NewErrorResponse(code, message).WithTraceID(GetTraceID(c))
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), resp)
}

// GetTraceID returns the active OpenTelemetry trace ID, falling back to a
// trace_id set on the gin context and then to the request ID header.
func GetTraceID(c *gin.Context) string {
	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	if v, ok := c.Get(traceIDKey); ok {
		s, _ := v.(string)
		return s
	}

	return c.GetHeader("X-Request-ID")
}
