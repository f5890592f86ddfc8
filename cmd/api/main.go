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

	"github.com/voese/voesesystem-api/internal/application/reporte"
	"github.com/voese/voesesystem-api/internal/application/usecase"
	"github.com/voese/voesesystem-api/internal/domain/repository"
	"github.com/voese/voesesystem-api/internal/infrastructure/memory"
	infrapdf "github.com/voese/voesesystem-api/internal/infrastructure/pdf"
	"github.com/voese/voesesystem-api/internal/infrastructure/postgres"
	"github.com/voese/voesesystem-api/internal/infrastructure/sqlite"
	httpRouter "github.com/voese/voesesystem-api/internal/interfaces/http"
	"github.com/voese/voesesystem-api/internal/jobs"
	"github.com/voese/voesesystem-api/pkg/config"
	"github.com/voese/voesesystem-api/pkg/logger"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var store repository.Store
	switch cfg.Store.Driver {
	case "postgres":
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones de PostgreSQL")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		store = postgres.NewStore(pool)
	case "memory":
		store = memory.NewStore()
	default:
		s, err := sqlite.NewStore(cfg.Store.SQLitePath, cfg.Store.MaxBytes)
		if err != nil {
			log.Fatal().Err(err).Msg("apertura de SQLite")
		}
		store = s
	}
	defer store.Close()

	productUC := usecase.NewProductUseCase(store)
	productionUC := usecase.NewProductionUseCase(store)
	saleUC := usecase.NewSaleUseCase(store)
	expenseUC := usecase.NewExpenseUseCase(store)
	dashboardUC := usecase.NewDashboardUseCase(store)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reporte.NewUseCase(store, pdfGenerator, cfg.Reports.OutputDir)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VoeseSystem API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		ProductionUC: productionUC,
		SaleUC:       saleUC,
		ExpenseUC:    expenseUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
	})

	scheduler := jobs.NewReportScheduler(reportUC, cfg.Reports.CronSpec, log)
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("expresión cron de reportes inválida")
	}

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

	scheduler.Stop()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
