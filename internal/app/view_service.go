package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/portfolio/internal/domain"
	"github.com/jsamuelsen/portfolio/internal/platform/config"
	"github.com/jsamuelsen/portfolio/internal/platform/logging"
	"github.com/jsamuelsen/portfolio/internal/ports"
)

const viewEntity = "view"

// ViewSnapshot is a view state together with what it currently shows.
type ViewSnapshot struct {
	ID        string
	State     domain.ViewState
	Visible   []domain.Item
	Selected  *domain.Item
	ExpiresAt time.Time
}

type viewEntry struct {
	state    domain.ViewState
	lastSeen time.Time
}

// ViewService keeps per-visitor view states in memory. Each view owns its
// filter and selection; nothing is shared between views. Views idle for
// longer than the TTL are dropped by Sweep.
type ViewService struct {
	store   ports.ContentStore
	metrics *Metrics
	cfg     config.ViewsConfig

	mu    sync.Mutex
	views map[string]*viewEntry

	now   func() time.Time
	newID func() string
}

// ViewServiceConfig contains configuration for the view service.
type ViewServiceConfig struct {
	Store   ports.ContentStore
	Metrics *Metrics
	Views   config.ViewsConfig
}

// NewViewService panics without a store.
func NewViewService(cfg ViewServiceConfig) *ViewService {
	if cfg.Store == nil {
		panic("app: content store is required")
	}

	if cfg.Metrics == nil {
		cfg.Metrics = NewMetrics(nil)
	}

	if cfg.Views.MaxSessions <= 0 {
		cfg.Views.MaxSessions = config.DefaultViewMaxSessions
	}

	return &ViewService{
		store:   cfg.Store,
		metrics: cfg.Metrics,
		cfg:     cfg.Views,
		views:   make(map[string]*viewEntry),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Create starts a view over a collection in its initial state.
// Returns domain.ErrUnavailable when the session limit is reached.
func (s *ViewService) Create(ctx context.Context, kind domain.Kind) (ViewSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if len(s.views) >= s.cfg.MaxSessions {
		s.sweepLocked(now)
	}

	if len(s.views) >= s.cfg.MaxSessions {
		return ViewSnapshot{}, domain.NewUnavailableError("view registry", "session limit reached")
	}

	id := s.newID()
	entry := &viewEntry{state: domain.NewViewState(kind), lastSeen: now}
	s.views[id] = entry
	s.metrics.ViewsActive.Set(float64(len(s.views)))

	logging.FromContext(ctx).DebugContext(ctx, "view created",
		slog.String("view_id", id),
		slog.String("kind", string(kind)),
	)

	return s.snapshot(id, entry), nil
}

// Get returns the view's state and visible items.
// Returns domain.ErrNotFound for unknown or expired views.
func (s *ViewService) Get(_ context.Context, id string) (ViewSnapshot, error) {
	return s.update(id, func(v domain.ViewState) (domain.ViewState, error) {
		return v, nil
	})
}

// SetCategory applies a category button activation.
func (s *ViewService) SetCategory(_ context.Context, id, category string) (ViewSnapshot, error) {
	return s.update(id, func(v domain.ViewState) (domain.ViewState, error) {
		return v.SetCategory(category), nil
	})
}

// SetQuery applies the search input's current text.
func (s *ViewService) SetQuery(_ context.Context, id, query string) (ViewSnapshot, error) {
	return s.update(id, func(v domain.ViewState) (domain.ViewState, error) {
		return v.SetQuery(query), nil
	})
}

// Activate toggles item index of the view's visible subset.
// Returns domain.ErrValidation when index is outside the subset.
func (s *ViewService) Activate(_ context.Context, id string, index int) (ViewSnapshot, error) {
	return s.update(id, func(v domain.ViewState) (domain.ViewState, error) {
		return v.Activate(index, len(v.Visible(s.store.Items(v.Kind))))
	})
}

// Dismiss closes the view's detail panel.
func (s *ViewService) Dismiss(_ context.Context, id string) (ViewSnapshot, error) {
	return s.update(id, func(v domain.ViewState) (domain.ViewState, error) {
		return v.Dismiss(), nil
	})
}

// Delete discards a view, as when the visitor navigates away.
func (s *ViewService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.views[id]; !ok {
		return domain.NewNotFoundError(viewEntity, id)
	}

	s.removeLocked(id, evictDeleted)

	logging.FromContext(ctx).DebugContext(ctx, "view deleted", slog.String("view_id", id))

	return nil
}

// Len returns the number of live views.
func (s *ViewService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.views)
}

// Sweep drops expired views and returns how many were removed.
func (s *ViewService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sweepLocked(s.now())
}

// Run sweeps expired views every SweepInterval until ctx is done.
func (s *ViewService) Run(ctx context.Context) {
	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger := logging.FromContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.DebugContext(ctx, "expired views swept", slog.Int("count", n))
			}
		}
	}
}

func (s *ViewService) update(id string, fn func(domain.ViewState) (domain.ViewState, error)) (ViewSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	entry, ok := s.views[id]
	if !ok {
		return ViewSnapshot{}, domain.NewNotFoundError(viewEntity, id)
	}

	if s.expired(entry, now) {
		s.removeLocked(id, evictExpired)
		return ViewSnapshot{}, domain.NewNotFoundError(viewEntity, id)
	}

	next, err := fn(entry.state)
	if err != nil {
		return ViewSnapshot{}, err
	}

	entry.state = next
	entry.lastSeen = now

	return s.snapshot(id, entry), nil
}

func (s *ViewService) snapshot(id string, entry *viewEntry) ViewSnapshot {
	visible := entry.state.Visible(s.store.Items(entry.state.Kind))
	s.metrics.FilterEvaluations.WithLabelValues(string(entry.state.Kind)).Inc()
	s.metrics.FilterResults.WithLabelValues(string(entry.state.Kind)).Observe(float64(len(visible)))

	snap := ViewSnapshot{
		ID:        id,
		State:     entry.state,
		Visible:   visible,
		ExpiresAt: entry.lastSeen.Add(s.cfg.TTL),
	}

	if i, ok := entry.state.Selection.Index(); ok && i < len(visible) {
		item := visible[i]
		snap.Selected = &item
	}

	return snap
}

func (s *ViewService) expired(entry *viewEntry, now time.Time) bool {
	return s.cfg.TTL > 0 && now.Sub(entry.lastSeen) > s.cfg.TTL
}

func (s *ViewService) sweepLocked(now time.Time) int {
	var n int

	for id, entry := range s.views {
		if s.expired(entry, now) {
			s.removeLocked(id, evictExpired)
			n++
		}
	}

	return n
}

func (s *ViewService) removeLocked(id, reason string) {
	delete(s.views, id)
	s.metrics.ViewEvictions.WithLabelValues(reason).Inc()
	s.metrics.ViewsActive.Set(float64(len(s.views)))
}
