package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"symptoscan-backend/internal/chat"
	"symptoscan-backend/internal/documents"
	"symptoscan-backend/internal/history"
	"symptoscan-backend/internal/llm"
	openai "symptoscan-backend/internal/llm/openai"
	"symptoscan-backend/internal/retry"
	"symptoscan-backend/internal/shared/config"
	"symptoscan-backend/internal/shared/server"
	"symptoscan-backend/internal/shared/storage/db"
	"symptoscan-backend/internal/shared/storage/object"
	localstore "symptoscan-backend/internal/shared/storage/object/local"
	s3store "symptoscan-backend/internal/shared/storage/object/s3"
	"symptoscan-backend/internal/summaries"
	"symptoscan-backend/internal/tts"
	elevenlabs "symptoscan-backend/internal/tts/elevenlabs"
)

const reaskLimit = 1

// App holds shared dependencies built once at startup.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	DocumentsRepo documents.Repo
	SummariesRepo summaries.Repo
	MessagesRepo  chat.Repo

	DocumentsService *documents.Service
	SummariesService *summaries.Service
	ChatService      *chat.Service
	HistoryService   *history.Service
	TTSService       *tts.Service

	DocumentsHandler *documents.Handler
	SummariesHandler *summaries.Handler
	ChatHandler      *chat.Handler
	HistoryHandler   *history.Handler
	TTSHandler       *tts.Handler
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		DocumentHandler: app.DocumentsHandler,
		SummaryHandler:  app.SummariesHandler,
		ChatHandler:     app.ChatHandler,
		HistoryHandler:  app.HistoryHandler,
		TTSHandler:      app.TTSHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultServerOptions())
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) error {
	cfg := app.Config

	var docRepo documents.Repo
	var sumRepo summaries.Repo
	var msgRepo chat.Repo
	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		sumRepo = &summaries.PGRepo{DB: app.DB}
		msgRepo = &chat.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		sumRepo = summaries.NewMemoryRepo()
		msgRepo = chat.NewMemoryRepo()
	}

	policy := retry.Policy{
		MaxAttempts: cfg.RetryMaxAttempts,
		BaseDelay:   cfg.RetryBaseDelay,
		Multiplier:  2,
		MaxDelay:    cfg.RetryMaxDelay,
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if cfg.LLMProvider == "openai" && strings.TrimSpace(cfg.LLMAPIKey) != "" {
		client, err := openai.NewClient(cfg.LLMAPIKey, cfg.LLMModel, 0)
		if err != nil {
			return err
		}
		llmClient = client
	} else {
		log.Printf("bootstrap: no LLM credentials; summarization and chat will report not configured")
	}

	synth := tts.Synthesizer(tts.PlaceholderSynthesizer{})
	if strings.TrimSpace(cfg.TTSAPIKey) != "" {
		client, err := elevenlabs.NewClient(cfg.TTSAPIKey, cfg.TTSVoiceID, 60*time.Second)
		if err != nil {
			return err
		}
		synth = client
	} else {
		log.Printf("bootstrap: no ELEVENLABS_KEY; speech synthesis will report not configured")
	}

	docSvc := &documents.Service{Store: app.Store, Repo: docRepo, Retry: policy}
	sumSvc := &summaries.Service{
		Docs:   docSvc,
		Engine: &summaries.Engine{LLM: llmClient, Retry: policy, ReaskLimit: reaskLimit},
		Repo:   sumRepo,
	}
	chatSvc := &chat.Service{
		Engine: &chat.Engine{LLM: llmClient, Retry: policy, ReaskLimit: reaskLimit},
		Repo:   msgRepo,
	}
	histSvc := &history.Service{Documents: docRepo, Summaries: sumRepo, Messages: msgRepo}
	ttsSvc := &tts.Service{Synth: synth, Retry: policy, MaxLen: cfg.TTSMaxLen}

	app.DocumentsRepo = docRepo
	app.SummariesRepo = sumRepo
	app.MessagesRepo = msgRepo
	app.DocumentsService = docSvc
	app.SummariesService = sumSvc
	app.ChatService = chatSvc
	app.HistoryService = histSvc
	app.TTSService = ttsSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.SummariesHandler = summaries.NewHandler(sumSvc)
	app.ChatHandler = chat.NewHandler(chatSvc)
	app.HistoryHandler = history.NewHandler(histSvc)
	app.TTSHandler = tts.NewHandler(ttsSvc)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
