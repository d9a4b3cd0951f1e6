package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/jsamuelsen/portfolio/internal/domain"
)

// DefaultLimit is the default number of items per page.
const DefaultLimit = 20

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

// cursorField is the only sort key: collections keep source order, and the
// cursor remembers the slug of the last item returned.
const cursorField = "slug"

var (
	// ErrInvalidCursor is returned when a cursor cannot be decoded or no
	// longer points into the filtered list.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrNoCursor signals a first page request.
	ErrNoCursor = errors.New("no cursor provided")
)

// PaginationRequest holds pagination query parameters.
type PaginationRequest struct {
	// Cursor is the opaque NextCursor of a previous response.
	Cursor string `form:"cursor"`

	// Limit is the page size (1-100, default 20).
	Limit int `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	return min(p.Limit, MaxLimit)
}

// PaginatedResponse is one page of a list.
type PaginatedResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// CursorData is the decoded form of a cursor.
type CursorData struct {
	Field string `json:"f"`
	Value string `json:"v"`
}

// EncodeCursor encodes cursor data to a URL-safe string.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	b, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeCursor decodes a cursor string.
// Returns ErrNoCursor if encoded is empty.
func DecodeCursor(encoded string) (*CursorData, error) {
	if encoded == "" {
		return nil, ErrNoCursor
	}

	b, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData
	if err := json.Unmarshal(b, &data); err != nil || data.Field != cursorField || data.Value == "" {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}

// SlugCursor returns the cursor that resumes after slug.
func SlugCursor(slug string) string {
	return EncodeCursor(&CursorData{Field: cursorField, Value: slug})
}

// Paginate slices an already filtered list. It never reorders: the page
// starts right after the cursor's slug and holds at most GetLimit items.
func Paginate[T any](items []domain.Item, req *PaginationRequest, convert func(*domain.Item) T) (*PaginatedResponse[T], error) {
	start := 0

	cursor, err := DecodeCursor(req.Cursor)

	switch {
	case errors.Is(err, ErrNoCursor):
	case err != nil:
		return nil, err
	default:
		start = -1

		for i := range items {
			if items[i].Slug == cursor.Value {
				start = i + 1
				break
			}
		}

		if start < 0 {
			return nil, ErrInvalidCursor
		}
	}

	limit := req.GetLimit()
	end := min(start+limit, len(items))

	page := &PaginatedResponse[T]{
		Items:   make([]T, 0, end-start),
		HasMore: end < len(items),
	}

	for i := start; i < end; i++ {
		page.Items = append(page.Items, convert(&items[i]))
	}

	if page.HasMore {
		page.NextCursor = SlugCursor(items[end-1].Slug)
	}

	return page, nil
}
