package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-bot/internal/api/http"
	"github.com/spec-kit/ticket-bot/internal/api/http/handlers"
	"github.com/spec-kit/ticket-bot/internal/bot"
	"github.com/spec-kit/ticket-bot/internal/config"
	"github.com/spec-kit/ticket-bot/internal/events"
	"github.com/spec-kit/ticket-bot/internal/observability"
	"github.com/spec-kit/ticket-bot/internal/platform"
	"github.com/spec-kit/ticket-bot/internal/service"
	"github.com/spec-kit/ticket-bot/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	session, err := discordgo.New("Bot " + cfg.Bot.Token)
	if err != nil {
		logger.Fatal("failed to create session", zap.Error(err))
	}

	client := platform.NewDiscordClient(session, logger)

	ticketService := service.NewTicketService(cfg.Ticket, service.TicketDependencies{
		Client:     client,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	reportService := service.NewReportService(cfg.Ticket, service.ReportDependencies{
		Client:     client,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	panelService := service.NewPanelService(cfg.Ticket, service.PanelDependencies{
		Client:     client,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	gateway := bot.NewGateway(cfg, bot.GatewayDependencies{
		Session: session,
		Tickets: ticketService,
		Reports: reportService,
		Panels:  panelService,
		Logger:  logger,
		Metrics: metrics,
	})

	if err := gateway.Open(); err != nil {
		logger.Fatal("failed to open gateway", zap.Error(err))
	}
	defer gateway.Close()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger)

	healthHandler := handlers.NewHealthHandler(gateway.Ready)
	metricsHandler := handlers.NewMetricsHandler(metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  healthHandler,
		Metrics: metricsHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
