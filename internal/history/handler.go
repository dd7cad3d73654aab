package history

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"symptoscan-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/history/:userId", h.forUser)
}

func (h *Handler) forUser(c *gin.Context) {
	userID := c.Param("userId")
	c.Set("userId", userID)

	hist, err := h.Svc.ForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrInvalidUser) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "user id is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load history", nil)
		return
	}

	respond.OK(c, ToResponse(hist))
}
