package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"readydoc-bot/internal/bootstrap"
	"readydoc-bot/internal/config"
	"readydoc-bot/internal/model"
	"readydoc-bot/internal/server"
	"readydoc-bot/internal/telegram"
	"readydoc-bot/internal/tracer"
	"readydoc-bot/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (optional: audit trail only)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		var err error
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		if err := gormDB.AutoMigrate(&model.DocumentAudit{}); err != nil {
			log.Panicf("Unable to migrate audit schema: %v", err)
		}
	} else {
		log.Println("DB_CONNECTION_STRING not set, running without the audit trail")
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. Start Background Services
	if container.AuditService != nil {
		log.Println("Background: Starting Audit Consumer...")
		if err := container.AuditService.Consume(ctx); err != nil {
			log.Printf("Background Audit Consumer Error: %v", err)
		}
	}

	// 5. Admin API
	srv := server.New(cfg, container)
	go func() {
		if err := srv.Run(); err != nil {
			log.Printf("Admin API stopped: %v", err)
		}
	}()

	// 6. Telegram bot (blocks until shutdown)
	bot, err := telegram.NewBot(cfg.Bot.Token, container.DialogService, container.Logger)
	if err != nil {
		log.Fatalf("Unable to start Telegram bot: %v", err)
	}
	bot.Run(ctx)
}
