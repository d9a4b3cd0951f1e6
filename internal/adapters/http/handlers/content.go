package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/portfolio/internal/adapters/http/dto"
	"github.com/jsamuelsen/portfolio/internal/app"
	"github.com/jsamuelsen/portfolio/internal/domain"
)

// ContentHandler serves the read-only content API.
type ContentHandler struct {
	service *app.ContentService
}

// NewContentHandler creates a new content handler.
func NewContentHandler(service *app.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// Profile handles GET /api/v1/profile.
func (h *ContentHandler) Profile(c *gin.Context) {
	profile := h.service.Profile()
	c.JSON(http.StatusOK, dto.NewProfileResponse(&profile))
}

// List returns a handler for GET /api/v1/{kind}. The optional category
// and q parameters filter the collection; limit and cursor page through
// the result without reordering it.
func (h *ContentHandler) List(kind domain.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q dto.ListQuery
		if err := dto.BindQueryAndValidate(c, &q); err != nil {
			dto.HandleError(c, err)
			return
		}

		items := h.service.List(c.Request.Context(), kind, q.FilterState())

		page, err := dto.Paginate(items, &q.PaginationRequest, dto.NewItemSummary)
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

// Get returns a handler for GET /api/v1/{kind}/:slug. Slugs match exactly.
func (h *ContentHandler) Get(kind domain.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := h.service.Get(c.Request.Context(), kind, c.Param("slug"))
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.NewItemDetail(&item))
	}
}

// Categories handles GET /api/v1/categories/:kind.
func (h *ContentHandler) Categories(c *gin.Context) {
	kind, err := domain.ParseKind(c.Param("kind"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Kind:       string(kind),
		Categories: h.service.Categories(kind),
	})
}

// RegisterRoutes registers the content routes on rg. Every collection
// gets a list and a detail route.
func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Profile)
	rg.GET("/categories/:kind", h.Categories)

	for _, kind := range domain.Kinds() {
		rg.GET("/"+string(kind), h.List(kind))
		rg.GET("/"+string(kind)+"/:slug", h.Get(kind))
	}
}
