package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/portfolio/internal/adapters/http/dto"
	"github.com/jsamuelsen/portfolio/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// bufferLogger returns a JSON logger writing into a buffer.
func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))

		out = append(out, m)
	}

	return out
}

func TestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		middleware func() gin.HandlerFunc
		get        func(*gin.Context) string
		fromCtx    func(context.Context) string
		incoming   string
		wantKeep   bool
	}{
		{
			name:       "request ID generated",
			header:     HeaderRequestID,
			middleware: RequestID,
			get:        GetRequestID,
			fromCtx:    RequestIDFromContext,
		},
		{
			name:       "request ID passed through",
			header:     HeaderRequestID,
			middleware: RequestID,
			get:        GetRequestID,
			fromCtx:    RequestIDFromContext,
			incoming:   "req-123",
			wantKeep:   true,
		},
		{
			name:       "correlation ID passed through",
			header:     HeaderCorrelationID,
			middleware: CorrelationID,
			get:        GetCorrelationID,
			fromCtx:    CorrelationIDFromContext,
			incoming:   "visit-42",
			wantKeep:   true,
		},
		{
			name:       "oversized ID replaced",
			header:     HeaderCorrelationID,
			middleware: CorrelationID,
			get:        GetCorrelationID,
			fromCtx:    CorrelationIDFromContext,
			incoming:   strings.Repeat("x", maxIDLength+1),
		},
		{
			name:       "non-printable ID replaced",
			header:     HeaderRequestID,
			middleware: RequestID,
			get:        GetRequestID,
			fromCtx:    RequestIDFromContext,
			incoming:   "bad\x01id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fromGin, fromCtx string

			router := gin.New()
			router.Use(tt.middleware())
			router.GET("/test", func(c *gin.Context) {
				fromGin = tt.get(c)
				fromCtx = tt.fromCtx(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(tt.header, tt.incoming)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			echoed := w.Header().Get(tt.header)
			assert.Equal(t, echoed, fromGin)
			assert.Equal(t, echoed, fromCtx)

			if tt.wantKeep {
				assert.Equal(t, tt.incoming, echoed)
			} else {
				_, err := uuid.Parse(echoed)
				assert.NoError(t, err)
			}
		})
	}
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	ctx := ContextWithRequestID(context.Background(), "r1")
	ctx = ContextWithCorrelationID(ctx, "c1")

	assert.Equal(t, "r1", RequestIDFromContext(ctx))
	assert.Equal(t, "c1", CorrelationIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Empty(t, CorrelationIDFromContext(context.Background()))
}

func TestLoggerAndIDs_EnrichRequestLogger(t *testing.T) {
	t.Parallel()

	logger, buf := bufferLogger()

	router := gin.New()
	router.Use(Logger(logger), RequestID(), CorrelationID())
	router.GET("/test", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	req.Header.Set(HeaderCorrelationID, "corr-1")

	router.ServeHTTP(httptest.NewRecorder(), req)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-1", lines[0]["request_id"])
	assert.Equal(t, "corr-1", lines[0]["correlation_id"])
}

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
		wantLog   bool
	}{
		{name: "success at info", path: "/api/v1/posts", status: http.StatusOK, wantLevel: "INFO", wantLog: true},
		{name: "client error at warn", path: "/api/v1/posts/nope", status: http.StatusNotFound, wantLevel: "WARN", wantLog: true},
		{name: "server error at error", path: "/api/v1/contact", status: http.StatusServiceUnavailable, wantLevel: "ERROR", wantLog: true},
		{name: "probe skipped", path: "/-/ready", status: http.StatusOK},
		{name: "explicit skip", path: "/favicon.ico", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := bufferLogger()

			router := gin.New()
			router.Use(Logger(logger), Logging("/favicon.ico"))
			router.GET(tt.path, func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path+"?q=go", nil))

			require.Equal(t, tt.status, w.Code)

			lines := decodeLines(t, buf)
			if !tt.wantLog {
				assert.Empty(t, lines)
				return
			}

			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantLevel, lines[0]["level"])
			assert.Equal(t, "request completed", lines[0]["msg"])
			assert.Equal(t, tt.path, lines[0]["path"])
			assert.InDelta(t, float64(tt.status), lines[0]["status"], 0)
		})
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	t.Run("normal request passes through", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery())
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("panic becomes 500 envelope and is logged", func(t *testing.T) {
		t.Parallel()

		logger, buf := bufferLogger()

		router := gin.New()
		router.Use(Logger(logger), Recovery())
		router.GET("/test", func(*gin.Context) { panic("something went wrong") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)

		lines := decodeLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "panic recovered", lines[0]["msg"])
		assert.Equal(t, "something went wrong", lines[0]["error"])
		assert.Contains(t, lines[0]["stack"], "goroutine")
	})

	t.Run("panic after write keeps status", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery())
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "partial")
			panic("late")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "partial", w.Body.String())
	})
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("sets deadline", func(t *testing.T) {
		t.Parallel()

		var (
			deadline time.Time
			ok       bool
		)

		router := gin.New()
		router.Use(Timeout(time.Minute))
		router.GET("/test", func(c *gin.Context) {
			deadline, ok = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
	})

	t.Run("zero disables", func(t *testing.T) {
		t.Parallel()

		var ok bool

		router := gin.New()
		router.Use(Timeout(0))
		router.GET("/test", func(c *gin.Context) {
			_, ok = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.False(t, ok)
	})

	t.Run("expired deadline maps to 504", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Timeout(time.Millisecond))
		router.GET("/test", func(c *gin.Context) {
			<-c.Request.Context().Done()
			dto.HandleError(c, c.Request.Context().Err())
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	})
}
