package reporte

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voese/voesesystem-api/internal/domain"
	"github.com/voese/voesesystem-api/internal/domain/entity"
	"github.com/voese/voesesystem-api/internal/infrastructure/memory"
)

// fakeGenerator captura los datos recibidos y devuelve un PDF de mentira.
type fakeGenerator struct {
	monthly *DatosExtractoMensual
	annual  *DatosResumenAnual
}

func (f *fakeGenerator) GenerateMonthlyPDF(_ context.Context, data *DatosExtractoMensual) ([]byte, error) {
	f.monthly = data
	return []byte("%PDF-mensual"), nil
}

func (f *fakeGenerator) GenerateAnnualPDF(_ context.Context, data *DatosResumenAnual) ([]byte, error) {
	f.annual = data
	return []byte("%PDF-anual"), nil
}

func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	fecha := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	require.NoError(t, store.SaveProductions(ctx, []entity.Production{{
		ID: "pr1", ProductID: "p1", ProductName: "Jabón",
		Quantity: 100, MaterialsCost: decimal.NewFromInt(500000),
		Date: fecha, Month: "2024-03",
	}}))
	require.NoError(t, store.SaveSales(ctx, []entity.Sale{
		{ID: "v1", ProductID: "p1", ProductName: "Jabón", Type: entity.SaleTypeMayorista,
			Quantity: 10, UnitPrice: decimal.NewFromInt(10000), Total: decimal.NewFromInt(100000),
			Date: fecha, Month: "2024-03"},
		{ID: "v2", ProductID: "p1", ProductName: "Jabón", Type: entity.SaleTypeMinorista,
			Quantity: 2, UnitPrice: decimal.NewFromInt(12000), Total: decimal.NewFromInt(24000),
			Date: fecha, Month: "2024-04"},
	}))
	require.NoError(t, store.SaveExpenses(ctx, []entity.Expense{{
		ID: "g1", Type: entity.ExpenseTypePersonal, Description: "Supermercado",
		Amount: decimal.NewFromInt(30000), Date: fecha, Month: "2024-03",
	}}))
	return store
}

func TestExportMonthly(t *testing.T) {
	store := seedStore(t)
	gen := &fakeGenerator{}
	dir := t.TempDir()
	uc := NewUseCase(store, gen, dir)

	pdf, filename, err := uc.ExportMonthly(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Equal(t, "VoeseSystem_2024-03.pdf", filename)
	assert.Equal(t, []byte("%PDF-mensual"), pdf)

	// El archivo quedó escrito con nombre determinístico.
	escrito, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, pdf, escrito)

	// Solo las ventas del mes pedido, y las cifras del mes.
	require.NotNil(t, gen.monthly)
	require.Len(t, gen.monthly.Ventas, 1)
	assert.Equal(t, "v1", gen.monthly.Ventas[0].ID)
	assert.True(t, gen.monthly.TotalVentas.Equal(decimal.NewFromInt(100000)))
	assert.True(t, gen.monthly.Datos.CostoUnitario.Equal(decimal.NewFromInt(5000)))
	// Efectivo sobre toda la historia: 124.000 de ventas menos 30.000 de gastos.
	assert.True(t, gen.monthly.Efectivo.Equal(decimal.NewFromInt(94000)), "efectivo %s", gen.monthly.Efectivo)
}

func TestExportMonthlyInvalidMonth(t *testing.T) {
	uc := NewUseCase(memory.NewStore(), &fakeGenerator{}, t.TempDir())
	_, _, err := uc.ExportMonthly(context.Background(), "marzo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportAnnual(t *testing.T) {
	store := seedStore(t)
	gen := &fakeGenerator{}
	dir := t.TempDir()
	uc := NewUseCase(store, gen, dir)

	_, filename, err := uc.ExportAnnual(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, "VoeseSystem_2024_Anual.pdf", filename)

	require.NotNil(t, gen.annual)
	require.Len(t, gen.annual.Meses, 12)
	assert.Equal(t, "2024-01", gen.annual.Meses[0].Mes)
	assert.Equal(t, "2024-12", gen.annual.Meses[11].Mes)

	marzo := gen.annual.Meses[2]
	assert.Equal(t, int64(100), marzo.Unidades)
	assert.True(t, marzo.Ventas.Equal(decimal.NewFromInt(100000)))
	assert.True(t, marzo.GastosPers.Equal(decimal.NewFromInt(30000)))
	// 100.000 - 0 fabricación - 30.000 personales
	assert.True(t, marzo.Balance.Equal(decimal.NewFromInt(70000)), "balance %s", marzo.Balance)

	assert.True(t, gen.annual.TotalVentas.Equal(decimal.NewFromInt(124000)))
	_, err = os.Stat(filepath.Join(dir, filename))
	assert.NoError(t, err)
}
