package summaries

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"symptoscan-backend/internal/documents"
	"symptoscan-backend/internal/extract"
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

// RegisterRoutes attaches summary routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reports/summarize", h.summarize)
}

type summarizeRequest struct {
	UserID     string `json:"userId"`
	DocumentID string `json:"documentId"`
	ParsedText string `json:"parsedText"`
}

func (h *Handler) summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("userId", req.UserID)
	if req.DocumentID != "" {
		c.Set("documentId", req.DocumentID)
	}

	summary, err := h.Svc.Summarize(c.Request.Context(), Request{
		UserID:     req.UserID,
		DocumentID: req.DocumentID,
		ParsedText: req.ParsedText,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrNotOwned):
			respond.Error(c, http.StatusForbidden, "forbidden", "document not owned by user", nil)
		case errors.Is(err, extract.ErrUnsupportedExtraction):
			respond.Error(c, http.StatusBadRequest, "unsupported_extraction", "no text extraction available for this file type", nil)
		case errors.Is(err, extract.ErrDecode):
			respond.Error(c, http.StatusBadRequest, "decode_error", "file content could not be decoded", nil)
		case errors.Is(err, ErrUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "llm_unavailable", "summarization service is temporarily unavailable", nil)
		case errors.Is(err, ErrSummarizationFailed):
			respond.Error(c, http.StatusBadGateway, "llm_schema_mismatch", "summarization produced an unusable result", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to summarize report", nil)
		}
		return
	}

	respond.OK(c, ToResponse(summary))
}
