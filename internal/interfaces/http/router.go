package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voese/voesesystem-api/internal/application/reporte"
	"github.com/voese/voesesystem-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	ProductionUC *usecase.ProductionUseCase
	SaleUC       *usecase.SaleUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	DashboardUC  *usecase.DashboardUseCase
	ReportUC     *reporte.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos
	productos := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	productos.Get("/", productHandler.List)
	productos.Post("/", productHandler.Create)
	productos.Delete("/:id", productHandler.Delete)

	// Producciones
	producciones := api.Group("/producciones")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	producciones.Get("/", productionHandler.List)
	producciones.Post("/", productionHandler.Register)

	// Ventas
	ventas := api.Group("/ventas")
	saleHandler := NewSaleHandler(deps.SaleUC)
	ventas.Get("/", saleHandler.List)
	ventas.Post("/", saleHandler.Register)
	ventas.Delete("/:id", saleHandler.Delete)

	// Gastos
	gastos := api.Group("/gastos")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	gastos.Get("/", expenseHandler.List)
	gastos.Post("/", expenseHandler.Register)
	gastos.Delete("/:id", expenseHandler.Delete)

	// Dashboard y selector de mes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetSummary)
	api.Get("/meses", dashboardHandler.GetMonths)

	// Reportes PDF
	reportes := api.Group("/reportes")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportes.Post("/mes/:mes", reportHandler.ExportMonthly)
	reportes.Post("/anual/:anio", reportHandler.ExportAnnual)
}
