package dto

import (
	"time"

	"github.com/jsamuelsen/portfolio/internal/domain"
)

// dateLayout renders calendar dates without a time component.
const dateLayout = "2006-01-02"

// ListQuery holds the filter and pagination parameters of a list request.
type ListQuery struct {
	Category string `form:"category"`
	Query    string `form:"q"        validate:"max=200"`
	PaginationRequest
}

// FilterState converts the query to the domain filter. A missing
// category means every category.
func (q *ListQuery) FilterState() domain.FilterState {
	category := q.Category
	if category == "" {
		category = domain.CategoryAll
	}

	return domain.FilterState{Category: category, Query: q.Query}
}

// ItemResponse is the JSON form of a content item. Fields that do not
// apply to the item's collection are omitted.
type ItemResponse struct {
	ID             string   `json:"id"`
	Kind           string   `json:"kind"`
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Excerpt        string   `json:"excerpt,omitempty"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	Organization   string   `json:"organization,omitempty"`
	Location       string   `json:"location,omitempty"`
	Highlights     []string `json:"highlights,omitempty"`
	URL            string   `json:"url,omitempty"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	Current        bool     `json:"current,omitempty"`
	Published      string   `json:"published,omitempty"`
	ReadingMinutes int      `json:"readingMinutes,omitempty"`
	Featured       bool     `json:"featured,omitempty"`
	BodyHTML       string   `json:"bodyHtml,omitempty"`
}

// NewItemSummary converts an item for list responses, without the body.
func NewItemSummary(item *domain.Item) ItemResponse {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}

	return ItemResponse{
		ID:             item.ID,
		Kind:           string(item.Kind),
		Slug:           item.Slug,
		Title:          item.Title,
		Excerpt:        item.Excerpt,
		Category:       item.Category,
		Tags:           tags,
		Organization:   item.Organization,
		Location:       item.Location,
		Highlights:     item.Highlights,
		URL:            item.URL,
		StartDate:      formatDate(item.StartDate),
		EndDate:        formatDate(item.EndDate),
		Current:        item.Current(),
		Published:      formatDate(item.Published),
		ReadingMinutes: item.ReadingMinutes,
		Featured:       item.Featured,
	}
}

// NewItemDetail converts an item for detail responses, including the
// rendered body of posts.
func NewItemDetail(item *domain.Item) ItemResponse {
	resp := NewItemSummary(item)
	resp.BodyHTML = item.BodyHTML

	return resp
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(dateLayout)
}

// CategoriesResponse lists the category buttons of a collection.
type CategoriesResponse struct {
	Kind       string   `json:"kind"`
	Categories []string `json:"categories"`
}

// ProfileResponse is the biography and hero data.
type ProfileResponse struct {
	Name      string         `json:"name"`
	Headline  string         `json:"headline"`
	Location  string         `json:"location,omitempty"`
	Email     string         `json:"email,omitempty"`
	Bio       []string       `json:"bio"`
	Links     []LinkResponse `json:"links"`
	Stats     []StatResponse `json:"stats"`
	Available bool           `json:"available"`
}

// LinkResponse is an external profile link.
type LinkResponse struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// StatResponse is a headline counter.
type StatResponse struct {
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Suffix string `json:"suffix,omitempty"`
}

// NewProfileResponse converts the domain profile.
func NewProfileResponse(p *domain.Profile) ProfileResponse {
	resp := ProfileResponse{
		Name:      p.Name,
		Headline:  p.Headline,
		Location:  p.Location,
		Email:     p.Email,
		Bio:       p.Bio,
		Links:     make([]LinkResponse, 0, len(p.Links)),
		Stats:     make([]StatResponse, 0, len(p.Stats)),
		Available: p.Available,
	}

	if resp.Bio == nil {
		resp.Bio = []string{}
	}

	for _, l := range p.Links {
		resp.Links = append(resp.Links, LinkResponse(l))
	}

	for _, s := range p.Stats {
		resp.Stats = append(resp.Stats, StatResponse(s))
	}

	return resp
}
