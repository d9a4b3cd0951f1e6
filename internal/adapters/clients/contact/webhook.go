package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen/portfolio/internal/adapters/clients"
	"github.com/jsamuelsen/portfolio/internal/domain"
	"github.com/jsamuelsen/portfolio/internal/platform/config"
	"github.com/jsamuelsen/portfolio/internal/ports"
)

const webhookService = "contact webhook"

// WebhookConfig configures the webhook sender.
type WebhookConfig struct {
	URL    string
	Token  string
	Client config.ClientConfig
	Logger *slog.Logger
}

// Webhook POSTs each submission as JSON to a single URL.
type Webhook struct {
	client *clients.Client
}

var (
	_ ports.ContactSender = (*Webhook)(nil)
	_ ports.HealthChecker = (*Webhook)(nil)
)

// webhookPayload is the wire format sent to the webhook. Field names are
// part of the contract with the receiver.
type webhookPayload struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func toPayload(msg *domain.ContactMessage) webhookPayload {
	return webhookPayload{
		ID:          msg.ID,
		Name:        msg.Name,
		Email:       msg.Email,
		Subject:     msg.Subject,
		Message:     msg.Message,
		SubmittedAt: msg.SubmittedAt.UTC(),
	}
}

// NewWebhook builds a sender on top of the resilient HTTP client. A
// non-empty Token is sent as a bearer token.
func NewWebhook(cfg *WebhookConfig) (*Webhook, error) {
	if cfg.URL == "" {
		return nil, errors.New("webhook URL is required")
	}

	var auth func(*http.Request)
	if cfg.Token != "" {
		token := cfg.Token
		auth = func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
	}

	client, err := clients.New(&clients.Config{
		BaseURL:     cfg.URL,
		ServiceName: webhookService,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		AuthFunc:    auth,
		Logger:      cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating webhook client: %w", err)
	}

	return &Webhook{client: client}, nil
}

// Send delivers msg. Transport failures, an open circuit and non-2xx
// responses become domain.ErrUnavailable; context errors pass through.
func (w *Webhook) Send(ctx context.Context, msg *domain.ContactMessage) error {
	resp, err := w.client.PostJSON(ctx, "", toPayload(msg))
	if err != nil {
		return translateError(err)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.NewUnavailableError(webhookService, "unexpected status "+resp.Status)
	}

	return nil
}

func translateError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(webhookService, "circuit open")
	default:
		return fmt.Errorf("%w: %v", domain.NewUnavailableError(webhookService, "delivery failed"), err)
	}
}

func (w *Webhook) Name() string {
	return "contact-webhook"
}

// Check fails while the circuit breaker is open.
func (w *Webhook) Check(_ context.Context) error {
	if w.client.CircuitState() == clients.StateOpen {
		return clients.ErrCircuitOpen
	}

	return nil
}
