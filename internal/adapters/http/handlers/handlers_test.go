package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/portfolio/internal/adapters/content"
	"github.com/jsamuelsen/portfolio/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

// testStore builds a small store covering every collection.
func testStore(t *testing.T) *content.Store {
	t.Helper()

	store, err := content.NewStore(domain.Profile{
		Name:     "Ada Example",
		Headline: "Backend engineer",
		Location: "Leeds, UK",
		Email:    "ada@example.com",
		Bio:      []string{"I build services."},
		Links:    []domain.Link{{Label: "GitHub", URL: "https://github.com/ada"}},
		Stats:    []domain.Stat{{Label: "Years", Value: 8, Suffix: "+"}},
	}, map[domain.Kind][]domain.Item{
		domain.KindPost: {
			{Slug: "go-generics", Title: "Go Generics", Excerpt: "Type parameters in practice", Category: "go", Published: date("2024-05-01"), ReadingMinutes: 4, BodyHTML: "<p>Hello generics</p>"},
			{Slug: "tracing-basics", Title: "Tracing Basics", Excerpt: "Spans and exporters", Category: "observability", Published: date("2024-03-01"), ReadingMinutes: 6},
			{Slug: "error-wrapping", Title: "Error Wrapping", Excerpt: "Wrap errors in Go", Category: "go", Published: date("2024-01-01"), ReadingMinutes: 3},
		},
		domain.KindProject: {
			{Slug: "inventory-api", Title: "Inventory API", Excerpt: "Stock service", Category: "backend", Featured: true},
			{Slug: "dotfiles", Title: "Dotfiles", Excerpt: "Shell setup", Category: "tooling"},
		},
		domain.KindJob: {
			{Slug: "platform-engineer", Title: "Platform Engineer", Excerpt: "Ran the Kubernetes fleet", Category: "engineering", StartDate: date("2022-01-01")},
			{Slug: "data-analyst", Title: "Data Analyst", Excerpt: "Dashboards and SQL", Category: "data", StartDate: date("2019-01-01"), EndDate: date("2021-12-31")},
			{Slug: "backend-engineer", Title: "Backend Engineer", Excerpt: "Payments APIs in Go", Category: "engineering", StartDate: date("2016-01-01"), EndDate: date("2018-12-31")},
		},
		domain.KindEducation: {
			{Slug: "bsc-computing", Title: "BSc Computing", Excerpt: "First class honours", Category: "degree"},
		},
	})
	require.NoError(t, err)

	return store
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())

	return out
}
