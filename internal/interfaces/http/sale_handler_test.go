package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voese/voesesystem-api/internal/application/dto"
	"github.com/voese/voesesystem-api/internal/application/usecase"
	"github.com/voese/voesesystem-api/internal/infrastructure/memory"
)

// newTestApp monta la API completa sobre un store en memoria y devuelve la
// app junto con el store para sembrar datos.
func newTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	app := fiber.New()
	Router(app, RouterDeps{
		ProductUC:    usecase.NewProductUseCase(store),
		ProductionUC: usecase.NewProductionUseCase(store),
		SaleUC:       usecase.NewSaleUseCase(store),
		ExpenseUC:    usecase.NewExpenseUseCase(store),
		DashboardUC:  usecase.NewDashboardUseCase(store),
	})
	return app, store
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	_, err = rec.Body.ReadFrom(resp.Body)
	require.NoError(t, err)
	return rec
}

func TestRegisterSaleFlow(t *testing.T) {
	app, store := newTestApp(t)

	// Producto con stock vía producción
	rec := postJSON(t, app, "/api/productos", dto.CreateProductRequest{
		Name:           "Jabón líquido 1L",
		WholesalePrice: decimal.NewFromInt(10000),
		RetailPrice:    decimal.NewFromInt(12000),
	})
	require.Equal(t, fiber.StatusCreated, rec.Code)
	var producto dto.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &producto))

	rec = postJSON(t, app, "/api/producciones", dto.RegisterProductionRequest{
		ProductID:     producto.ID,
		Quantity:      50,
		MaterialsCost: decimal.NewFromInt(250000),
	})
	require.Equal(t, fiber.StatusCreated, rec.Code)

	// Venta mayorista válida
	rec = postJSON(t, app, "/api/ventas", dto.RegisterSaleRequest{
		ProductID: producto.ID,
		Tipo:      "mayorista",
		Quantity:  10,
	})
	require.Equal(t, fiber.StatusCreated, rec.Code)
	var venta dto.SaleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &venta))
	assert.True(t, venta.Total.Equal(decimal.NewFromInt(100000)))

	productos, err := store.LoadProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(40), productos[0].Stock)
}

func TestRegisterSaleInsufficientStock(t *testing.T) {
	app, _ := newTestApp(t)

	rec := postJSON(t, app, "/api/productos", dto.CreateProductRequest{
		Name:        "Vela aromática",
		RetailPrice: decimal.NewFromInt(8000),
	})
	require.Equal(t, fiber.StatusCreated, rec.Code)
	var producto dto.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &producto))

	// Sin producción: stock 0, la venta debe fallar con 409.
	rec = postJSON(t, app, "/api/ventas", dto.RegisterSaleRequest{
		ProductID: producto.ID,
		Tipo:      "minorista",
		Quantity:  1,
	})
	assert.Equal(t, fiber.StatusConflict, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "INSUFFICIENT_STOCK", errResp.Code)
}

func TestRegisterSaleUnknownProduct(t *testing.T) {
	app, _ := newTestApp(t)

	rec := postJSON(t, app, "/api/ventas", dto.RegisterSaleRequest{
		ProductID: "no-existe",
		Tipo:      "minorista",
		Quantity:  1,
	})
	assert.Equal(t, fiber.StatusNotFound, rec.Code)
}

func TestRegisterSaleInvalidBody(t *testing.T) {
	app, _ := newTestApp(t)

	rec := postJSON(t, app, "/api/ventas", dto.RegisterSaleRequest{
		ProductID: "p1",
		Tipo:      "regalo", // tipo desconocido
		Quantity:  1,
	})
	assert.Equal(t, fiber.StatusBadRequest, rec.Code)
}
