package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/portfolio/internal/domain"
	"github.com/jsamuelsen/portfolio/internal/mocks"
	"github.com/jsamuelsen/portfolio/internal/platform/logging"
)

// quietContext carries a logger that discards all output.
func quietContext() context.Context {
	return logging.WithContext(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testMetrics() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewMetrics(reg), reg
}

func testJobs() []domain.Item {
	return []domain.Item{
		{ID: "1", Kind: domain.KindJob, Slug: "platform-engineer", Title: "Platform Engineer", Excerpt: "Ran the Kubernetes fleet", Category: "engineering"},
		{ID: "2", Kind: domain.KindJob, Slug: "data-analyst", Title: "Data Analyst", Excerpt: "Dashboards and SQL", Category: "data"},
		{ID: "3", Kind: domain.KindJob, Slug: "backend-engineer", Title: "Backend Engineer", Excerpt: "Payments APIs in Go", Category: "engineering"},
		{ID: "4", Kind: domain.KindJob, Slug: "meetup-organiser", Title: "Meetup Organiser", Excerpt: "Monthly Go meetups", Category: "community"},
	}
}

func jobStore(store *mocks.MockContentStore) {
	store.EXPECT().Items(domain.KindJob).Return(testJobs()).Maybe()
}
