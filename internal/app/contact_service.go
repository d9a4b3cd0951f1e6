package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jsamuelsen/portfolio/internal/domain"
	"github.com/jsamuelsen/portfolio/internal/platform/logging"
	"github.com/jsamuelsen/portfolio/internal/ports"
)

// ContactRequest is a contact form submission as entered by the visitor.
type ContactRequest struct {
	Name    string
	Email   string
	Subject string
	Message string

	// Key identifies the submitter for duplicate suppression: the view ID
	// when the form belongs to one, otherwise a client key such as the
	// remote address.
	Key string
}

// ContactReceipt acknowledges an accepted submission.
type ContactReceipt struct {
	ID          string
	SubmittedAt time.Time
}

// ContactService accepts contact form submissions and hands them to the
// configured sender. While a submission is in flight, further submissions
// with the same key are rejected, like a disabled submit button.
type ContactService struct {
	sender  ports.ContactSender
	metrics *Metrics

	mu       sync.Mutex
	inFlight map[string]struct{}

	now   func() time.Time
	newID func() string
}

// ContactServiceConfig contains configuration for the contact service.
type ContactServiceConfig struct {
	Sender  ports.ContactSender
	Metrics *Metrics
}

// NewContactService panics without a sender.
func NewContactService(cfg ContactServiceConfig) *ContactService {
	if cfg.Sender == nil {
		panic("app: contact sender is required")
	}

	if cfg.Metrics == nil {
		cfg.Metrics = NewMetrics(nil)
	}

	return &ContactService{
		sender:   cfg.Sender,
		metrics:  cfg.Metrics,
		inFlight: make(map[string]struct{}),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Submit validates req and delivers it.
//
// Errors:
//   - domain.ErrValidation when a required field is blank or the email is malformed
//   - domain.ErrConflict when a submission with the same key is still in flight
//   - domain.ErrUnavailable when the sender cannot deliver
func (s *ContactService) Submit(ctx context.Context, req ContactRequest) (ContactReceipt, error) {
	start := s.now()

	receipt, err := Execute(ctx, Operation[ContactRequest, *domain.ContactMessage, ContactReceipt]{
		Name:     "contact.submit",
		Validate: s.validate,
		Perform:  s.deliver,
		Respond: func(_ context.Context, _ ContactRequest, msg *domain.ContactMessage) (ContactReceipt, error) {
			return ContactReceipt{ID: msg.ID, SubmittedAt: msg.SubmittedAt}, nil
		},
	}, req)

	s.metrics.ContactTotal.WithLabelValues(submitResult(err)).Inc()

	if step, ok := FailedStep(err); !ok || step == StepPerform {
		s.metrics.ContactDuration.Observe(s.now().Sub(start).Seconds())
	}

	return receipt, err
}

func submitResult(err error) string {
	switch {
	case err == nil:
		return resultAccepted
	case domain.IsValidation(err):
		return resultRejected
	case domain.IsConflict(err):
		return resultConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return resultCancelled
	default:
		return resultFailed
	}
}

var fieldValidator = validator.New()

func (s *ContactService) validate(_ context.Context, req ContactRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return domain.NewValidationError("name", "is required")
	case strings.TrimSpace(req.Email) == "":
		return domain.NewValidationError("email", "is required")
	case strings.TrimSpace(req.Message) == "":
		return domain.NewValidationError("message", "is required")
	}

	if err := fieldValidator.Var(strings.TrimSpace(req.Email), "email"); err != nil {
		return domain.NewValidationErrorWithValue("email", "must be a valid email address", req.Email)
	}

	return nil
}

func (s *ContactService) deliver(ctx context.Context, req ContactRequest) (*domain.ContactMessage, error) {
	release, err := s.acquire(req.Key)
	if err != nil {
		return nil, err
	}
	defer release()

	msg := &domain.ContactMessage{
		ID:          s.newID(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     req.Message,
		SubmittedAt: s.now().UTC(),
	}

	ctx = logging.With(ctx, slog.String("message_id", msg.ID))

	if err := s.sender.Send(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// acquire marks key as in flight. An empty key is never deduplicated.
func (s *ContactService) acquire(key string) (func(), error) {
	if key == "" {
		return func() {}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[key]; busy {
		return nil, domain.NewConflictError("contact submission", "a submission is already in progress")
	}

	s.inFlight[key] = struct{}{}

	return func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}, nil
}
