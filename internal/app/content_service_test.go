package app

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/portfolio/internal/domain"
	"github.com/jsamuelsen/portfolio/internal/mocks"
)

func TestNewContentService_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() {
		NewContentService(ContentServiceConfig{})
	})
}

func TestContentService_List(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.FilterState
		want   []string
	}{
		{
			name:   "all categories and no query returns everything in order",
			filter: domain.DefaultFilterState(),
			want:   []string{"platform-engineer", "data-analyst", "backend-engineer", "meetup-organiser"},
		},
		{
			name:   "category only",
			filter: domain.FilterState{Category: "engineering"},
			want:   []string{"platform-engineer", "backend-engineer"},
		},
		{
			name:   "query matches excerpt case-insensitively",
			filter: domain.FilterState{Category: domain.CategoryAll, Query: "GO"},
			want:   []string{"backend-engineer", "meetup-organiser"},
		},
		{
			name:   "category and query combine",
			filter: domain.FilterState{Category: "engineering", Query: "go"},
			want:   []string{"backend-engineer"},
		},
		{
			name:   "unknown category is empty",
			filter: domain.FilterState{Category: "Engineering"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockContentStore(t)
			jobStore(store)

			metrics, _ := testMetrics()
			svc := NewContentService(ContentServiceConfig{Store: store, Metrics: metrics})

			got := svc.List(quietContext(), domain.KindJob, tt.filter)

			slugs := make([]string, 0, len(got))
			for _, item := range got {
				slugs = append(slugs, item.Slug)
			}

			assert.Equal(t, tt.want, slugs)
		})
	}
}

func TestContentService_List_RecordsMetrics(t *testing.T) {
	store := mocks.NewMockContentStore(t)
	jobStore(store)

	metrics, _ := testMetrics()
	svc := NewContentService(ContentServiceConfig{Store: store, Metrics: metrics})

	svc.List(quietContext(), domain.KindJob, domain.DefaultFilterState())
	svc.List(quietContext(), domain.KindJob, domain.FilterState{Category: "data"})

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.FilterEvaluations.WithLabelValues("jobs")), 0)
}

func TestContentService_Get(t *testing.T) {
	store := mocks.NewMockContentStore(t)
	store.EXPECT().BySlug(domain.KindPost, "hello").Return(domain.Item{Slug: "hello", Title: "Hello"}, nil)
	store.EXPECT().BySlug(domain.KindPost, "missing").Return(domain.Item{}, domain.NewNotFoundError("post", "missing"))

	svc := NewContentService(ContentServiceConfig{Store: store})

	item, err := svc.Get(quietContext(), domain.KindPost, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", item.Title)

	_, err = svc.Get(quietContext(), domain.KindPost, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, `post "missing" not found`)
}

func TestContentService_Categories_AllFirst(t *testing.T) {
	store := mocks.NewMockContentStore(t)
	store.EXPECT().Categories(domain.KindProject).Return([]string{"backend", "web"})

	svc := NewContentService(ContentServiceConfig{Store: store})

	assert.Equal(t, []string{"all", "backend", "web"}, svc.Categories(domain.KindProject))
}

func TestContentService_Profile(t *testing.T) {
	store := mocks.NewMockContentStore(t)
	store.EXPECT().Profile().Return(domain.Profile{Name: "Alex Rivera"})

	svc := NewContentService(ContentServiceConfig{Store: store})

	assert.Equal(t, "Alex Rivera", svc.Profile().Name)
}
