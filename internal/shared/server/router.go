package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"symptoscan-backend/internal/chat"
	"symptoscan-backend/internal/documents"
	"symptoscan-backend/internal/history"
	"symptoscan-backend/internal/shared/config"
	"symptoscan-backend/internal/shared/server/middleware"
	"symptoscan-backend/internal/shared/server/respond"
	"symptoscan-backend/internal/summaries"
	"symptoscan-backend/internal/tts"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	DocumentHandler *documents.Handler
	SummaryHandler  *summaries.Handler
	ChatHandler     *chat.Handler
	HistoryHandler  *history.Handler
	TTSHandler      *tts.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
	}
	if deps.SummaryHandler != nil {
		deps.SummaryHandler.RegisterRoutes(api)
	}
	if deps.ChatHandler != nil {
		deps.ChatHandler.RegisterRoutes(api)
	}
	if deps.HistoryHandler != nil {
		deps.HistoryHandler.RegisterRoutes(api)
	}
	if deps.TTSHandler != nil {
		deps.TTSHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
