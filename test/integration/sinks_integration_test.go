//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/portfolio/internal/adapters/clients/contact"
	"github.com/jsamuelsen/portfolio/internal/adapters/http/middleware"
	"github.com/jsamuelsen/portfolio/internal/adapters/storage/sqlite"
)

const contactBody = `{"name":"Grace","email":"grace@example.com","subject":"Hi","message":"Hello there"}`

func postContact(t *testing.T, h http.Handler, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func newWebhook(t *testing.T, url string, mutate func(*contact.WebhookConfig)) *contact.Webhook {
	t.Helper()

	cfg := &contact.WebhookConfig{URL: url, Token: "s3cret", Client: testClientConfig()}
	if mutate != nil {
		mutate(cfg)
	}

	webhook, err := contact.NewWebhook(cfg)
	require.NoError(t, err)

	return webhook
}

func TestWebhookSink_DeliversSubmission(t *testing.T) {
	type received struct {
		auth, requestID, correlationID string
		payload                        map[string]any
	}

	got := make(chan received, 1)

	receiver := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)

		got <- received{
			auth:          r.Header.Get("Authorization"),
			requestID:     r.Header.Get(middleware.HeaderRequestID),
			correlationID: r.Header.Get(middleware.HeaderCorrelationID),
			payload:       payload,
		}

		w.WriteHeader(http.StatusNoContent)
	}))
	defer receiver.Close()

	h := newApp(t, newWebhook(t, receiver.URL, nil))

	w := postContact(t, h, contactBody, map[string]string{
		middleware.HeaderRequestID:     "req-42",
		middleware.HeaderCorrelationID: "visit-7",
	})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	r := <-got
	assert.Equal(t, "Bearer s3cret", r.auth)
	assert.Equal(t, "req-42", r.requestID)
	assert.Equal(t, "visit-7", r.correlationID)
	assert.Equal(t, resp.ID, r.payload["id"])
	assert.Equal(t, "grace@example.com", r.payload["email"])
	assert.Equal(t, "Hello there", r.payload["message"])
}

func TestWebhookSink_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32

	receiver := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer receiver.Close()

	h := newApp(t, newWebhook(t, receiver.URL, nil))

	w := postContact(t, h, contactBody, nil)
	assert.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	assert.Equal(t, int32(3), calls.Load())
}

func TestWebhookSink_RejectedPayloadIsUnavailable(t *testing.T) {
	receiver := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer receiver.Close()

	h := newApp(t, newWebhook(t, receiver.URL, nil))

	w := postContact(t, h, contactBody, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "SERVICE_UNAVAILABLE")
}

func TestWebhookSink_CircuitOpensAndFailsReadiness(t *testing.T) {
	var calls atomic.Int32

	receiver := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer receiver.Close()

	h := newApp(t, newWebhook(t, receiver.URL, func(cfg *contact.WebhookConfig) {
		cfg.Client.Retry.MaxAttempts = 1
		cfg.Client.CircuitBreaker.MaxFailures = 2
	}))

	for range 2 {
		w := postContact(t, h, contactBody, nil)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
	}

	// The third submission is refused without reaching the receiver.
	w := postContact(t, h, contactBody, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, int32(2), calls.Load())

	ready := httptest.NewRecorder()
	h.ServeHTTP(ready, httptest.NewRequest(http.MethodGet, "/-/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, ready.Code)
	assert.Contains(t, ready.Body.String(), "contact-webhook")
}

func TestSQLiteSink_StoresSubmission(t *testing.T) {
	inbox, err := sqlite.Open(t.Context(), filepath.Join(t.TempDir(), "nested", "contact.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = inbox.Close() })

	h := newApp(t, inbox)

	w := postContact(t, h, contactBody, nil)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	msgs, err := inbox.Messages(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Grace", msgs[0].Name)
	assert.Equal(t, "Hi", msgs[0].Subject)
	assert.Equal(t, "Hello there", msgs[0].Message)

	ready := httptest.NewRecorder()
	h.ServeHTTP(ready, httptest.NewRequest(http.MethodGet, "/-/ready", nil))
	assert.Equal(t, http.StatusOK, ready.Code)
	assert.Contains(t, ready.Body.String(), "contact-inbox")
}

func TestSimulatedSink_ConcurrentSubmissions(t *testing.T) {
	h := newApp(t, contact.NewSimulated(300*time.Millisecond))

	t.Run("distinct views are independent", func(t *testing.T) {
		const n = 20

		var (
			wg       sync.WaitGroup
			accepted atomic.Int32
		)

		for range n {
			wg.Go(func() {
				body := strings.Replace(contactBody, `"message"`, `"viewId":"`+uuid.NewString()+`","message"`, 1)
				if postContact(t, h, body, nil).Code == http.StatusAccepted {
					accepted.Add(1)
				}
			})
		}

		wg.Wait()

		assert.Equal(t, int32(n), accepted.Load())
	})

	t.Run("same view is rejected while pending", func(t *testing.T) {
		const n = 10

		body := strings.Replace(contactBody, `"message"`, `"viewId":"`+uuid.NewString()+`","message"`, 1)

		var (
			wg                  sync.WaitGroup
			accepted, conflicts atomic.Int32
		)

		start := make(chan struct{})

		for range n {
			wg.Go(func() {
				<-start

				switch postContact(t, h, body, nil).Code {
				case http.StatusAccepted:
					accepted.Add(1)
				case http.StatusConflict:
					conflicts.Add(1)
				}
			})
		}

		close(start)
		wg.Wait()

		assert.GreaterOrEqual(t, accepted.Load(), int32(1))
		assert.GreaterOrEqual(t, conflicts.Load(), int32(1))
		assert.Equal(t, int32(n), accepted.Load()+conflicts.Load())
	})
}
