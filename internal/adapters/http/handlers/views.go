package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/portfolio/internal/adapters/http/dto"
	"github.com/jsamuelsen/portfolio/internal/app"
	"github.com/jsamuelsen/portfolio/internal/domain"
	"github.com/jsamuelsen/portfolio/internal/platform/logging"
)

// ViewHandler exposes per-visitor view state: the category and search
// filter of a list and the explorer's selected item.
type ViewHandler struct {
	service *app.ViewService
}

// NewViewHandler creates a new view handler.
func NewViewHandler(service *app.ViewService) *ViewHandler {
	return &ViewHandler{service: service}
}

// Create handles POST /api/v1/views.
func (h *ViewHandler) Create(c *gin.Context) {
	var req dto.CreateViewRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	snap, err := h.service.Create(c.Request.Context(), domain.Kind(req.Kind))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/views/"+snap.ID)
	c.JSON(http.StatusCreated, dto.NewViewResponse(&snap))
}

// Get handles GET /api/v1/views/:id.
func (h *ViewHandler) Get(c *gin.Context) {
	h.apply(c, func(ctx context.Context, id string) (app.ViewSnapshot, error) {
		return h.service.Get(ctx, id)
	})
}

// SetCategory handles PUT /api/v1/views/:id/category.
func (h *ViewHandler) SetCategory(c *gin.Context) {
	var req dto.SetCategoryRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	h.apply(c, func(ctx context.Context, id string) (app.ViewSnapshot, error) {
		return h.service.SetCategory(ctx, id, req.Category)
	})
}

// SetQuery handles PUT /api/v1/views/:id/query.
func (h *ViewHandler) SetQuery(c *gin.Context) {
	var req dto.SetQueryRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	h.apply(c, func(ctx context.Context, id string) (app.ViewSnapshot, error) {
		return h.service.SetQuery(ctx, id, req.Query)
	})
}

// Activate handles POST /api/v1/views/:id/activate/:index. Activating the
// selected item again closes it.
func (h *ViewHandler) Activate(c *gin.Context) {
	var uri dto.ActivateURI
	if err := dto.BindURIAndValidate(c, &uri); err != nil {
		dto.HandleError(c, err)
		return
	}

	ctx := logging.WithViewID(c.Request.Context(), uri.ID)

	snap, err := h.service.Activate(ctx, uri.ID, uri.Index)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewViewResponse(&snap))
}

// Dismiss handles POST /api/v1/views/:id/dismiss.
func (h *ViewHandler) Dismiss(c *gin.Context) {
	h.apply(c, func(ctx context.Context, id string) (app.ViewSnapshot, error) {
		return h.service.Dismiss(ctx, id)
	})
}

// Delete handles DELETE /api/v1/views/:id.
func (h *ViewHandler) Delete(c *gin.Context) {
	var uri dto.ViewURI
	if err := dto.BindURIAndValidate(c, &uri); err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.service.Delete(logging.WithViewID(c.Request.Context(), uri.ID), uri.ID); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// apply binds the view ID, runs fn and renders the resulting snapshot.
func (h *ViewHandler) apply(c *gin.Context, fn func(context.Context, string) (app.ViewSnapshot, error)) {
	var uri dto.ViewURI
	if err := dto.BindURIAndValidate(c, &uri); err != nil {
		dto.HandleError(c, err)
		return
	}

	snap, err := fn(logging.WithViewID(c.Request.Context(), uri.ID), uri.ID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewViewResponse(&snap))
}

// RegisterRoutes registers the view routes on rg.
func (h *ViewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	views := rg.Group("/views")

	views.POST("", h.Create)
	views.GET("/:id", h.Get)
	views.PUT("/:id/category", h.SetCategory)
	views.PUT("/:id/query", h.SetQuery)
	views.POST("/:id/activate/:index", h.Activate)
	views.POST("/:id/dismiss", h.Dismiss)
	views.DELETE("/:id", h.Delete)
}
