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
	"github.com/tu-usuario/activos-pro/internal/application/audit"
	"github.com/tu-usuario/activos-pro/internal/application/auth"
	appslip "github.com/tu-usuario/activos-pro/internal/application/slip"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/activos-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/activos-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/activos-pro/internal/interfaces/http"
	"github.com/tu-usuario/activos-pro/pkg/config"
	"github.com/tu-usuario/activos-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
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

	// Repositorios del pool (lecturas y CRUD fuera del motor de vales)
	userRepo := postgres.NewUserRepository(pool)
	propertyRepo := postgres.NewPropertyRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	slipRepo := postgres.NewSlipRepository(pool)
	movementRepo := postgres.NewMovementLogRepository(pool)
	auditRepo := postgres.NewAuditEventRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	auditor := audit.NewRecorder()

	// Motor de vales: transaccional, con guard de condición y libro de stock
	createSlipUC := appslip.NewCreateSlipUseCase(
		txRunner, propertyRepo, locationRepo, departmentRepo, userRepo, auditor,
	)
	slipQueriesUC := appslip.NewQueryUseCase(slipRepo, movementRepo)

	// PDF: representación imprimible del vale
	pdfGenerator := infrapdf.NewMarotoSlipGenerator()
	slipPDFUC := appslip.NewPDFUseCase(
		slipRepo, propertyRepo, locationRepo, itemRepo, assetRepo, pdfGenerator,
	)

	assetUC := usecase.NewAssetUseCase(assetRepo, itemRepo, auditRepo, auditor)
	itemUC := usecase.NewItemUseCase(itemRepo, auditRepo, auditor)
	propertyUC := usecase.NewPropertyUseCase(propertyRepo, auditRepo, auditor)
	locationUC := usecase.NewLocationUseCase(locationRepo, propertyRepo, auditRepo, auditor)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo, auditRepo, auditor)
	auditUC := usecase.NewAuditQueryUseCase(auditRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Activos Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CreateSlip:   createSlipUC,
		SlipQueries:  slipQueriesUC,
		SlipPDF:      slipPDFUC,
		AssetUC:      assetUC,
		ItemUC:       itemUC,
		PropertyUC:   propertyUC,
		LocationUC:   locationUC,
		DepartmentUC: departmentUC,
		AuditUC:      auditUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
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
