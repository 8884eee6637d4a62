package bootstrap

import (
	"context"
	"log"
	"time"

	"readydoc-bot/internal/config"
	"readydoc-bot/internal/controller"
	"readydoc-bot/internal/pkg/logger"
	"readydoc-bot/internal/repository/contract"
	"readydoc-bot/internal/repository/implementation"
	"readydoc-bot/internal/repository/memory"
	"readydoc-bot/internal/repository/redisstore"
	"readydoc-bot/internal/service"
	"readydoc-bot/internal/websocket"
	"readydoc-bot/pkg/docgen"
	"readydoc-bot/pkg/llm/factory"
	"readydoc-bot/pkg/promptcache"

	pkgNats "readydoc-bot/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Bot-facing services
	DialogService service.IDialogService

	// Admin surface
	AdminController controller.IAdminController

	// Background services (exposed for main.go to run)
	AuditService service.IAuditService

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

// NewContainer wires the whole application. db may be nil; the audit trail
// is then disabled and finalized documents only reach the ops stream.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub for the ops dashboard
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// 3. Generation stack
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.OpenAIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	promptCache := promptcache.New(cfg.Bot.CacheDir)
	documentService := service.NewDocumentService(llmProvider, promptCache, sysLogger, cfg.Ai.Temperature, cfg.Ai.MaxTokens)

	// 4. Session storage
	sessionTTL := time.Duration(cfg.Bot.SessionTTLMinutes) * time.Minute
	var sessionRepo contract.SessionRepository
	if cfg.Bot.SessionBackend == "redis" {
		sessionRepo = redisstore.NewSessionRepository(rdb, sessionTTL)
		log.Printf("[INFO] Using Session Backend: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository(sessionTTL)
		log.Printf("[INFO] Using Session Backend: MEMORY")
	}

	// 5. Dialog pipeline
	exporter := docgen.NewExporter(cfg.Bot.ExportDir)
	publisherService := service.NewPublisherService(pubSub, natsPub, sysLogger)
	dialogService := service.NewDialogService(
		sessionRepo,
		documentService,
		exporter,
		publisherService,
		sysLogger,
		cfg.Bot.MaxDescriptionLen,
	)

	// 6. Audit trail consumer
	var auditService service.IAuditService
	if db != nil {
		auditRepo := implementation.NewAuditRepository(db)
		auditService = service.NewAuditService(pubSub, auditRepo, sysLogger)
	} else {
		log.Printf("[WARN] No database configured, audit trail disabled")
	}

	// 7. Ops stream (NATS -> websocket hub)
	if natsSub != nil {
		notifService := service.NewNotificationService(natsSub, wsHub, sysLogger)
		go notifService.Start()
	}

	// 8. Admin surface
	adminService := service.NewAdminService(cfg, sysLogger)

	return &Container{
		DialogService:   dialogService,
		AdminController: controller.NewAdminController(cfg, adminService, auditService, wsHub),
		AuditService:    auditService,
		WebSocketHub:    wsHub,
		Logger:          sysLogger,
	}
}
