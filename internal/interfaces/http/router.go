package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/inventario-app/inventario-api/internal/application/auth"
	"github.com/inventario-app/inventario-api/internal/application/stock"
	"github.com/inventario-app/inventario-api/internal/application/usecase"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
	"github.com/inventario-app/inventario-api/internal/infrastructure/redis"
	"github.com/inventario-app/inventario-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	ItemUC         *usecase.ItemUseCase
	AdjustStock    *stock.AdjustStockUseCase
	HistoryRepo    repository.StockHistoryRepository
	NotificationUC *usecase.NotificationUseCase
	CategoryUC     *usecase.CategoryUseCase
	LocationUC     *usecase.LocationUseCase
	StatusUC       *usecase.StatusUseCase
	MovementUC     *usecase.MovementUseCase
	MaintenanceUC  *usecase.MaintenanceUseCase
	DisposalUC     *usecase.DisposalUseCase
	DashboardUC    *usecase.DashboardUseCase
	ReportUC       *usecase.ReportUseCase

	JWTSecret string
	Log       *logger.Logger

	// Cache puede ser nil: sin Redis el login queda sin rate limiting.
	Cache           redis.Client
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con rate limit por IP si hay Redis)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	if deps.Cache != nil && deps.LoginRateLimit > 0 {
		authGroup.Post("/login", RateLimiter(deps.Cache, deps.LoginRateLimit, deps.LoginRateWindow), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios. /me es del usuario autenticado; el resto solo admin.
	// Se registra antes del grupo para que no lo capture /users/:id.
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/users/me", userHandler.Me)
	users := protected.Group("/users", RequireAdmin())
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Ítems
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", RequireAdmin(), itemHandler.Delete)

	// Stock (ajustes + ledger)
	stockHandler := NewStockHandler(deps.AdjustStock, deps.HistoryRepo, deps.Log)
	items.Post("/:id/stock", stockHandler.Adjust)
	items.Get("/:id/stock/history", stockHandler.History)

	// Traslados
	movementHandler := NewMovementHandler(deps.MovementUC)
	items.Post("/:id/move", movementHandler.Move)
	items.Get("/:id/movements", movementHandler.ListByItem)
	protected.Get("/movements", movementHandler.List)

	// Mantenimientos
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	items.Post("/:id/maintenance", maintenanceHandler.Create)
	items.Get("/:id/maintenance", maintenanceHandler.ListByItem)

	// Bajas (solo admin)
	disposalHandler := NewDisposalHandler(deps.DisposalUC)
	protected.Get("/disposals", RequireAdmin(), disposalHandler.List)

	// Notificaciones
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Put("/read-all", notificationHandler.MarkAllRead)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)
	notifications.Post("/send", RequireAdmin(), notificationHandler.Send)

	// Catálogos
	registerCatalog(protected, "/categories", NewCatalogHandler(deps.CategoryUC, "categoría"))
	registerCatalog(protected, "/locations", NewCatalogHandler(deps.LocationUC, "ubicación"))
	registerCatalog(protected, "/statuses", NewCatalogHandler(deps.StatusUC, "estado"))

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Reportes (solo admin)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/inventory", RequireAdmin(), reportHandler.InventoryPDF)
}

// registerCatalog monta el CRUD de un catálogo; las mutaciones son solo admin.
func registerCatalog(group fiber.Router, prefix string, h *CatalogHandler) {
	g := group.Group(prefix)
	g.Get("/", h.List)
	g.Post("/", RequireAdmin(), h.Create)
	g.Put("/:id", RequireAdmin(), h.Update)
	g.Delete("/:id", RequireAdmin(), h.Delete)
}
