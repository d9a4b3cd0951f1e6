// Package contact provides contact form senders: a simulated sender that
// only waits, and a webhook sender that forwards submissions over HTTP.
package contact

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jsamuelsen/portfolio/internal/domain"
	"github.com/jsamuelsen/portfolio/internal/platform/logging"
	"github.com/jsamuelsen/portfolio/internal/ports"
)

// Simulated accepts every submission after a fixed delay. Nothing is
// delivered anywhere.
type Simulated struct {
	delay time.Duration
	sent  atomic.Int64
}

var (
	_ ports.ContactSender = (*Simulated)(nil)
	_ ports.HealthChecker = (*Simulated)(nil)
)

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{delay: delay}
}

// Send waits for the configured delay and succeeds. It returns early with
// the context error if ctx ends first, e.g. during shutdown.
func (s *Simulated) Send(ctx context.Context, msg *domain.ContactMessage) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	s.sent.Add(1)
	logging.FromContext(ctx).Info("contact message accepted (simulated)",
		slog.String("message_id", msg.ID),
		slog.Duration("delay", s.delay),
	)

	return nil
}

// Sent returns how many messages have been accepted.
func (s *Simulated) Sent() int64 {
	return s.sent.Load()
}

func (s *Simulated) Name() string {
	return "contact-simulated"
}

func (s *Simulated) Check(_ context.Context) error {
	return nil
}
