package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/inventario-app/inventario-api/internal/application/auth"
	"github.com/inventario-app/inventario-api/internal/application/stock"
	"github.com/inventario-app/inventario-api/internal/application/usecase"
	infrapdf "github.com/inventario-app/inventario-api/internal/infrastructure/pdf"
	"github.com/inventario-app/inventario-api/internal/infrastructure/postgres"
	infraredis "github.com/inventario-app/inventario-api/internal/infrastructure/redis"
	httpRouter "github.com/inventario-app/inventario-api/internal/interfaces/http"
	"github.com/inventario-app/inventario-api/pkg/config"
	"github.com/inventario-app/inventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Redis es opcional: sin cache el dashboard consulta siempre la base y el
	// login queda sin rate limiting.
	var cache infraredis.Client
	redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, se continúa sin cache")
	} else {
		cache = redisClient
		defer redisClient.Close()
	}

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	historyRepo := postgres.NewStockHistoryRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	statusRepo := postgres.NewStatusRepository(pool)
	movementRepo := postgres.NewItemMovementRepository(pool)
	maintenanceRepo := postgres.NewItemMaintenanceRepository(pool)
	disposalRepo := postgres.NewItemDisposalRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := stock.NewLowStockNotifier(userRepo, notificationRepo, log)
	adjustStockUC := stock.NewAdjustStockUseCase(txRunner, notifier, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, categoryRepo, disposalRepo, notifier, log)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	statusUC := usecase.NewStatusUseCase(statusRepo)
	movementUC := usecase.NewMovementUseCase(itemRepo, locationRepo, movementRepo)
	maintenanceUC := usecase.NewMaintenanceUseCase(itemRepo, statusRepo, maintenanceRepo)
	disposalUC := usecase.NewDisposalUseCase(disposalRepo)

	var summaryCache usecase.SummaryCache
	if cache != nil {
		summaryCache = cache
	}
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo, summaryCache, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(itemRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		UserUC:          userUC,
		ItemUC:          itemUC,
		AdjustStock:     adjustStockUC,
		HistoryRepo:     historyRepo,
		NotificationUC:  notificationUC,
		CategoryUC:      categoryUC,
		LocationUC:      locationUC,
		StatusUC:        statusUC,
		MovementUC:      movementUC,
		MaintenanceUC:   maintenanceUC,
		DisposalUC:      disposalUC,
		DashboardUC:     dashboardUC,
		ReportUC:        reportUC,
		JWTSecret:       cfg.JWT.Secret,
		Log:             log,
		Cache:           cache,
		LoginRateLimit:  cfg.Redis.LoginRateLimit,
		LoginRateWindow: time.Duration(cfg.Redis.LoginRatePeriodSec) * time.Second,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
