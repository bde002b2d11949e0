package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bodega-api/internal/application/auth"
	"github.com/jhoicas/bodega-api/internal/application/backup"
	"github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	StockView  *inventory.StockViewUseCase
	Adjustment *inventory.AdjustmentUseCase
	RequestUC  *inventory.RequestUseCase
	ReceiptUC  *inventory.ReceiptUseCase
	LocationUC *usecase.LocationUseCase
	PaymentUC  *usecase.PaymentUseCase
	ProductUC  *usecase.ProductUseCase
	BackupUC   *backup.UseCase
	JWTSecret  string
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

	// Inventario: vista, ajustes y log de movimientos (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockView, deps.Adjustment)
	invGroup.Get("/", inventoryHandler.ListInventory)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)
	invGroup.Get("/transactions", inventoryHandler.ListTransactions)

	// Solicitudes de entrada/salida (protegido)
	requests := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC, deps.ReceiptUC)
	requests.Post("/", requestHandler.Submit)
	requests.Get("/", requestHandler.List)
	requests.Get("/orders", requestHandler.ListMirroredOrders)
	requests.Get("/:id/receipt", requestHandler.Receipt)

	// Ubicaciones (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)

	// Cargos (protegido)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Get("/", paymentHandler.List)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Administración (protegido + rol admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/requests", requestHandler.ListAll)
	admin.Patch("/requests/:id/status", requestHandler.UpdateStatus)
	admin.Get("/payments/summary", paymentHandler.Summaries)

	// Preferencias de interfaz (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.BackupUC)
	settings.Get("/theme", settingsHandler.GetTheme)
	settings.Put("/theme", settingsHandler.SetTheme)
	settings.Delete("/theme", settingsHandler.ResetTheme)

	// Respaldo (protegido + rol admin)
	backupGroup := protected.Group("/backup", RequireRole(entity.RoleAdmin))
	backupHandler := NewBackupHandler(deps.BackupUC)
	backupGroup.Get("/export", backupHandler.Export)
	backupGroup.Post("/restore", backupHandler.Restore)
}
