package tts

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

// RegisterRoutes attaches speech routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tts", h.synthesize)
}

type ttsRequest struct {
	Text string `json:"text"`
}

func (h *Handler) synthesize(c *gin.Context) {
	var req ttsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	audio, contentType, err := h.Svc.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		case errors.Is(err, ErrTextTooLong):
			respond.Error(c, http.StatusBadRequest, "text_too_long", err.Error(), nil)
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "tts_not_configured", "speech synthesis is not configured", nil)
		case errors.Is(err, ErrSynthesisUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "tts_unavailable", "speech synthesis is temporarily unavailable", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to synthesize speech", nil)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="speech.mp3"`)
	c.Data(http.StatusOK, contentType, audio)
}
