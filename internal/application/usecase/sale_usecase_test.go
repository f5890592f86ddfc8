package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voese/voesesystem-api/internal/application/dto"
	"github.com/voese/voesesystem-api/internal/domain"
	"github.com/voese/voesesystem-api/internal/infrastructure/memory"
)

// seedProduct crea un producto y le da stock vía una producción.
func seedProduct(t *testing.T, store *memory.Store, stock int64) string {
	t.Helper()
	ctx := context.Background()

	producto, err := NewProductUseCase(store).Create(ctx, dto.CreateProductRequest{
		Name:           "Jabón líquido 1L",
		WholesalePrice: decimal.NewFromInt(10000),
		RetailPrice:    decimal.NewFromInt(8000),
	})
	require.NoError(t, err)

	if stock > 0 {
		_, err = NewProductionUseCase(store).Register(ctx, dto.RegisterProductionRequest{
			ProductID:     producto.ID,
			Quantity:      stock,
			MaterialsCost: decimal.NewFromInt(500000),
		})
		require.NoError(t, err)
	}
	return producto.ID
}

func TestRegisterSaleWholesale(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	productID := seedProduct(t, store, 100)
	uc := NewSaleUseCase(store)

	venta, err := uc.Register(ctx, dto.RegisterSaleRequest{
		ProductID: productID,
		Tipo:      "mayorista",
		Quantity:  10,
	})
	require.NoError(t, err)

	// 10 × 10.000 mayorista, sin descuento
	assert.True(t, venta.Total.Equal(decimal.NewFromInt(100000)), "total %s", venta.Total)
	assert.True(t, venta.UnitPrice.Equal(decimal.NewFromInt(10000)))

	productos, err := store.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(90), productos[0].Stock)
	assert.Equal(t, int64(100), productos[0].UnitsProducedTotal)
}

func TestRegisterSaleDiscountClampsAtZero(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	productID := seedProduct(t, store, 10)
	uc := NewSaleUseCase(store)

	venta, err := uc.Register(ctx, dto.RegisterSaleRequest{
		ProductID: productID,
		Tipo:      "minorista",
		Quantity:  1,
		Descuento: decimal.NewFromInt(999999), // mayor que el subtotal
	})
	require.NoError(t, err)
	assert.True(t, venta.Total.IsZero())
}

func TestRegisterSaleInsufficientStock(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	productID := seedProduct(t, store, 5)
	uc := NewSaleUseCase(store)

	_, err := uc.Register(ctx, dto.RegisterSaleRequest{
		ProductID: productID,
		Tipo:      "minorista",
		Quantity:  6,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La falla no tocó nada.
	productos, err := store.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), productos[0].Stock)
	ventas, err := store.LoadSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, ventas)
}

func TestDeleteSaleRestoresStock(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	productID := seedProduct(t, store, 100)
	uc := NewSaleUseCase(store)

	venta, err := uc.Register(ctx, dto.RegisterSaleRequest{
		ProductID: productID,
		Tipo:      "mayorista",
		Quantity:  10,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, venta.ID))

	// Registrar y eliminar es un round-trip exacto sobre el stock.
	productos, err := store.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(100), productos[0].Stock)

	ventas, err := store.LoadSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, ventas)
}

func TestDeleteSaleUnknownID(t *testing.T) {
	store := memory.NewStore()
	uc := NewSaleUseCase(store)

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestDeleteSaleAfterProductGone(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	productID := seedProduct(t, store, 10)
	uc := NewSaleUseCase(store)

	venta, err := uc.Register(ctx, dto.RegisterSaleRequest{
		ProductID: productID,
		Tipo:      "minorista",
		Quantity:  2,
	})
	require.NoError(t, err)

	// El producto se va con sus ventas en cascada; la venta ya no existe.
	require.NoError(t, NewProductUseCase(store).Delete(ctx, productID))
	err = uc.Delete(ctx, venta.ID)
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestRegisterSaleMonthContext(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	productID := seedProduct(t, store, 10)
	uc := NewSaleUseCase(store)

	// El mes del registro es el contexto elegido, no la fecha de hoy.
	venta, err := uc.Register(ctx, dto.RegisterSaleRequest{
		ProductID: productID,
		Tipo:      "minorista",
		Quantity:  1,
		Mes:       "2024-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02", venta.Month)

	_, err = uc.Register(ctx, dto.RegisterSaleRequest{
		ProductID: productID,
		Tipo:      "minorista",
		Quantity:  1,
		Mes:       "2024-13",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
