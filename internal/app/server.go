package app

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"coin-casino/internal/audit"
	"coin-casino/internal/casino"
	"coin-casino/internal/config"
	"coin-casino/internal/db"
	"coin-casino/internal/event"
	"coin-casino/internal/jobs"
	"coin-casino/internal/ledger"
	"coin-casino/internal/logger"
	"coin-casino/internal/monitoring"
	"coin-casino/internal/rng"
	"coin-casino/internal/security"
	"coin-casino/internal/wallet"
	"coin-casino/internal/ws"
)

type Server struct {
	app  *fiber.App
	cfg  *config.Config
	jobs *jobs.Manager
}

func NewServer() *Server {
	cfg := config.Load()
	database := db.Init(cfg.DBPath)

	src, err := rng.New()
	if err != nil {
		// no safe fallback outcome exists without entropy
		logger.Log.Fatal("random source unavailable", zap.Error(err))
	}

	bus := event.NewBus()
	hub := ws.NewHub()
	ledgerService := ledger.New(database)
	walletService := wallet.New(database, ledgerService, cfg.StartingBalance)
	auditService := audit.New(database)
	casinoService := casino.NewService(walletService, src, bus)

	monitoring.Init()
	casino.RegisterConsumers(bus, auditService, hub)

	manager := jobs.New()
	manager.Register(casino.NewStatsJob(casinoService.RTP()))

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/ws", websocket.New(hub.Handler))

	api := app.Group("/api", security.APIKeyGuard(cfg.APIKey))
	wallet.RegisterRoutes(api, walletService)
	casino.RegisterRoutes(api, casinoService)

	admin := app.Group("/admin", security.AdminGuard(cfg.AdminToken))
	wallet.RegisterAdminRoutes(admin, walletService)

	return &Server{app: app, cfg: cfg, jobs: manager}
}

func (s *Server) Start() error {
	go s.jobs.Start(context.Background())

	go func() {
		if err := monitoring.Serve(s.cfg.MetricsPort); err != nil {
			logger.Log.Warn("metrics server stopped", zap.Error(err))
		}
	}()

	return s.app.Listen(":" + s.cfg.Port)
}
