package dto

import (
	"time"

	"github.com/jsamuelsen/portfolio/internal/app"
)

// CreateViewRequest opens a view over one collection.
type CreateViewRequest struct {
	Kind string `json:"kind" validate:"required,oneof=posts projects jobs education"`
}

// ViewURI binds the :id path parameter.
type ViewURI struct {
	ID string `uri:"id" validate:"required,uuid"`
}

// ActivateURI binds the :id and :index path parameters.
type ActivateURI struct {
	ID    string `uri:"id"    validate:"required,uuid"`
	Index int    `uri:"index"`
}

// SetCategoryRequest records a category button activation.
type SetCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

// SetQueryRequest records the search box's text. An empty query is valid.
type SetQueryRequest struct {
	Query string `json:"query" validate:"max=200"`
}

// ViewResponse is a view's state and what it currently shows.
type ViewResponse struct {
	ID          string         `json:"id"`
	Kind        string         `json:"kind"`
	Category    string         `json:"category"`
	Query       string         `json:"query"`
	ActiveIndex *int           `json:"activeIndex"`
	Selected    *ItemResponse  `json:"selected"`
	Items       []ItemResponse `json:"items"`
	ExpiresAt   time.Time      `json:"expiresAt"`
}

// NewViewResponse converts a view snapshot.
func NewViewResponse(snap *app.ViewSnapshot) ViewResponse {
	resp := ViewResponse{
		ID:          snap.ID,
		Kind:        string(snap.State.Kind),
		Category:    snap.State.Filter.Category,
		Query:       snap.State.Filter.Query,
		ActiveIndex: snap.State.Selection.IndexPtr(),
		Items:       make([]ItemResponse, 0, len(snap.Visible)),
		ExpiresAt:   snap.ExpiresAt.UTC(),
	}

	for i := range snap.Visible {
		resp.Items = append(resp.Items, NewItemSummary(&snap.Visible[i]))
	}

	if snap.Selected != nil {
		selected := NewItemDetail(snap.Selected)
		resp.Selected = &selected
	}

	return resp
}
