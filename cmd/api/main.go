package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/italosilvaf/TesteSolfacil/internal/api/http"
	"github.com/italosilvaf/TesteSolfacil/internal/api/http/handlers"
	"github.com/italosilvaf/TesteSolfacil/internal/auth"
	"github.com/italosilvaf/TesteSolfacil/internal/cache"
	"github.com/italosilvaf/TesteSolfacil/internal/config"
	"github.com/italosilvaf/TesteSolfacil/internal/events"
	"github.com/italosilvaf/TesteSolfacil/internal/observability"
	"github.com/italosilvaf/TesteSolfacil/internal/persistence"
	"github.com/italosilvaf/TesteSolfacil/internal/repository"
	"github.com/italosilvaf/TesteSolfacil/internal/service"
	"github.com/italosilvaf/TesteSolfacil/internal/worker"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	partnerRepo := repository.NewPartnerRepository(pool)
	plantRepo := repository.NewPlantRepository(pool)

	rankings := cache.NewRankingCache(redis.Client, cfg.Cache.RankingTTL(), logger)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, partnerRepo)
	partnerService := service.NewPartnerService(partnerRepo, plantRepo, authService, rankings, dispatcher, logger)
	plantService := service.NewPlantService(plantRepo, rankings, dispatcher, logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), partnerRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Partners:       handlers.NewPartnersHandler(partnerService, authService),
		Plants:         handlers.NewPlantsHandler(plantService),
		Rankings:       handlers.NewRankingsHandler(partnerService, plantService),
		AuthMiddleware: authMiddleware,
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
