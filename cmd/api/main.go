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
	"github.com/jhoicas/bodega-api/internal/application/auth"
	"github.com/jhoicas/bodega-api/internal/application/backup"
	"github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/bodega-api/internal/infrastructure/pdf"
	"github.com/jhoicas/bodega-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bodega-api/internal/infrastructure/remote"
	httpRouter "github.com/jhoicas/bodega-api/internal/interfaces/http"
	"github.com/jhoicas/bodega-api/pkg/config"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	userRepo := postgres.NewUserRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	requestRepo := postgres.NewRequestRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	stateRepo := postgres.NewAppStateRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Clientes remotos: inventario siempre; el espejo de órdenes es opcional.
	inventoryClient := remote.NewInventoryClient(cfg.Remote.InventoryBaseURL, cfg.Remote.APIKey)
	var orderClient inventory.OrderStorageClient
	if cfg.Remote.OrderBaseURL != "" {
		orderClient = remote.NewOrderClient(cfg.Remote.OrderBaseURL, cfg.Remote.APIKey)
	} else {
		log.Warn().Msg("espejo de órdenes deshabilitado (REMOTE_ORDERS_URL vacío)")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	stockViewUC := inventory.NewStockViewUseCase(batchRepo)
	adjustmentUC := inventory.NewAdjustmentUseCase(batchRepo, transactionRepo)
	requestUC := inventory.NewRequestUseCase(
		batchRepo, transactionRepo, productRepo, locationRepo, requestRepo,
		inventoryClient, orderClient, txRunner, log,
	)
	receiptUC := inventory.NewReceiptUseCase(
		requestRepo, productRepo, userRepo, infrapdf.NewMarotoPDFGenerator(),
	)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	backupUC := backup.NewUseCase(stateRepo, log)

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
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		StockView:  stockViewUC,
		Adjustment: adjustmentUC,
		RequestUC:  requestUC,
		ReceiptUC:  receiptUC,
		LocationUC: locationUC,
		PaymentUC:  paymentUC,
		ProductUC:  productUC,
		BackupUC:   backupUC,
		JWTSecret:  cfg.JWT.Secret,
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
