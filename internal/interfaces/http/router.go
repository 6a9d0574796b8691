package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockkasir/stockkasir-api/internal/application/auth"
	"github.com/stockkasir/stockkasir-api/internal/application/inventory"
	"github.com/stockkasir/stockkasir-api/internal/application/report"
	"github.com/stockkasir/stockkasir-api/internal/domain/repository"
	"github.com/stockkasir/stockkasir-api/internal/subscription"
	"github.com/stockkasir/stockkasir-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CatalogUC      *inventory.CatalogUseCase
	RecordMovement *inventory.RecordMovementUseCase
	ReportUC       *report.ReportUseCase
	TxRepo         repository.TransactionRepository
	ItemRepo       repository.ItemRepository
	Hub            *subscription.Hub
	Logger         *logger.Logger
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.CatalogUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Movimientos de inventario (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RecordMovement)
	invGroup.Post("/movements", inventoryHandler.RecordMovement)

	// Historial (protegido, solo lectura)
	historyHandler := NewHistoryHandler(deps.TxRepo)
	protected.Get("/transactions", historyHandler.List)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/accumulation", reportHandler.Accumulation)

	// Websockets: snapshots en vivo del catálogo y del historial
	wsHandler := NewWSHandler(deps.ItemRepo, deps.TxRepo, deps.Hub, deps.Logger)
	ws := app.Group("/ws", UpgradeMiddleware(deps.JWTSecret))
	ws.Get("/items", wsHandler.Items())
	ws.Get("/transactions", wsHandler.Transactions())
}
