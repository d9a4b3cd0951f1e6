package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/portfolio/internal/adapters/http/dto"
	"github.com/jsamuelsen/portfolio/internal/app"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	service *app.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(service *app.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/v1/contact. The request returns once the sink
// has accepted the message. A second submission for the same view, or
// from the same client when no view is given, gets 409 while the first is
// pending.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	receipt, err := h.service.Submit(c.Request.Context(), req.ToApp(c.ClientIP()))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.NewContactResponse(&receipt))
}

// RegisterRoutes registers the contact route on rg.
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
}
