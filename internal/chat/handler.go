package chat

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

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/symptom-chat", h.respond)
}

type chatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

func (h *Handler) respond(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("userId", req.UserID)

	turn, err := h.Svc.Respond(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "llm_unavailable", "symptom analysis is temporarily unavailable", nil)
		case errors.Is(err, ErrUrgencyUnparseable), errors.Is(err, ErrAnalysisFailed):
			respond.Error(c, http.StatusBadGateway, "llm_schema_mismatch", "symptom analysis produced an unusable result", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process message", nil)
		}
		return
	}

	respond.OK(c, ToTurnResponse(turn))
}
