// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/portfolio/internal/domain"
	"github.com/jsamuelsen/portfolio/internal/platform/logging"
	"github.com/jsamuelsen/portfolio/internal/platform/telemetry"
	"github.com/jsamuelsen/portfolio/internal/ports"
)

// ContentService answers read queries against the static content store.
type ContentService struct {
	store   ports.ContentStore
	metrics *Metrics
	tracer  trace.Tracer
}

// ContentServiceConfig contains configuration for the content service.
type ContentServiceConfig struct {
	Store   ports.ContentStore
	Metrics *Metrics
}

// NewContentService panics without a store.
func NewContentService(cfg ContentServiceConfig) *ContentService {
	if cfg.Store == nil {
		panic("app: content store is required")
	}

	if cfg.Metrics == nil {
		cfg.Metrics = NewMetrics(nil)
	}

	return &ContentService{
		store:   cfg.Store,
		metrics: cfg.Metrics,
		tracer:  telemetry.Tracer(),
	}
}

// List returns the items of a collection that pass filter, in source order.
func (s *ContentService) List(ctx context.Context, kind domain.Kind, filter domain.FilterState) []domain.Item {
	_, span := s.tracer.Start(ctx, "ContentService.List", trace.WithAttributes(
		attribute.String("content.kind", string(kind)),
		attribute.String("filter.category", filter.Category),
		attribute.Int("filter.query_length", len(filter.Query)),
	))
	defer span.End()

	items := domain.Filter(s.store.Items(kind), filter)

	span.SetAttributes(attribute.Int("filter.results", len(items)))
	s.observeFilter(kind, len(items))

	logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "filtered collection",
		slog.String("kind", string(kind)),
		slog.String("category", filter.Category),
		slog.Int("results", len(items)),
	)

	return items
}

func (s *ContentService) observeFilter(kind domain.Kind, n int) {
	s.metrics.FilterEvaluations.WithLabelValues(string(kind)).Inc()
	s.metrics.FilterResults.WithLabelValues(string(kind)).Observe(float64(n))
}

// Get returns a single item by exact slug.
// Returns domain.ErrNotFound when the slug is unknown.
func (s *ContentService) Get(ctx context.Context, kind domain.Kind, slug string) (domain.Item, error) {
	item, err := s.store.BySlug(kind, slug)
	if err != nil {
		logging.FromContext(ctx).DebugContext(ctx, "slug lookup missed",
			slog.String("kind", string(kind)),
			slog.String("slug", slug),
		)

		return domain.Item{}, err
	}

	return item, nil
}

// Categories returns the category buttons for a collection, "all" first.
func (s *ContentService) Categories(kind domain.Kind) []string {
	cats := s.store.Categories(kind)

	out := make([]string, 0, len(cats)+1)
	out = append(out, domain.CategoryAll)

	return append(out, cats...)
}

// Profile returns the biography and hero data.
func (s *ContentService) Profile() domain.Profile {
	return s.store.Profile()
}

// Items exposes the unfiltered collection for callers that derive their
// own subsets, such as the view service.
func (s *ContentService) Items(kind domain.Kind) []domain.Item {
	return s.store.Items(kind)
}
