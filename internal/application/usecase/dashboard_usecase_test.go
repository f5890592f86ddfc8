package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voese/voesesystem-api/internal/application/dto"
	"github.com/voese/voesesystem-api/internal/domain"
	"github.com/voese/voesesystem-api/internal/domain/fechas"
	"github.com/voese/voesesystem-api/internal/infrastructure/memory"
)

func TestDashboardSummary(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	mes := fechas.Actual()

	productID := seedProduct(t, store, 100) // producción de 100 a 500.000
	_, err := NewSaleUseCase(store).Register(ctx, dto.RegisterSaleRequest{
		ProductID: productID,
		Tipo:      "mayorista",
		Quantity:  10,
	})
	require.NoError(t, err)
	_, err = NewExpenseUseCase(store).Register(ctx, dto.RegisterExpenseRequest{
		Tipo:        "fabricacion",
		Descripcion: "Envases",
		Monto:       decimal.NewFromInt(100000),
	})
	require.NoError(t, err)
	_, err = NewExpenseUseCase(store).Register(ctx, dto.RegisterExpenseRequest{
		Tipo:        "personal",
		Descripcion: "Supermercado",
		Monto:       decimal.NewFromInt(30000),
	})
	require.NoError(t, err)

	resumen, err := NewDashboardUseCase(store).GetSummary(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, mes, resumen.Mes)
	assert.Equal(t, int64(100), resumen.Unidades)
	// (500.000 materiales + 100.000 fabricación) / 100 unidades
	assert.True(t, resumen.CostoUnitario.Equal(decimal.NewFromInt(6000)), "costo unitario %s", resumen.CostoUnitario)
	assert.True(t, resumen.VentasMes.Equal(decimal.NewFromInt(100000)))
	assert.True(t, resumen.GastosPersonales.Equal(decimal.NewFromInt(30000)))
	// 100.000 de ventas menos 130.000 de gastos de toda la historia
	assert.True(t, resumen.EfectivoTotal.Equal(decimal.NewFromInt(-30000)), "efectivo %s", resumen.EfectivoTotal)

	// Series de tendencia: 6 meses alineados, el último es el actual.
	require.Len(t, resumen.Tendencia.Meses, 6)
	assert.Equal(t, mes, resumen.Tendencia.Meses[5])
	require.Len(t, resumen.Tendencia.Ventas, 6)
	require.Len(t, resumen.Tendencia.Unidades, 6)
	assert.Equal(t, int64(100), resumen.Tendencia.Unidades[5])

	assert.Contains(t, resumen.MesesDisponibles, mes)
}

func TestDashboardSummaryInvalidMonth(t *testing.T) {
	store := memory.NewStore()
	_, err := NewDashboardUseCase(store).GetSummary(context.Background(), "2024/01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDashboardAvailableMonthsDescending(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	productID := seedProduct(t, store, 50)
	saleUC := NewSaleUseCase(store)
	for _, mes := range []string{"2024-03", "2024-01", "2024-02"} {
		_, err := saleUC.Register(ctx, dto.RegisterSaleRequest{
			ProductID: productID,
			Tipo:      "minorista",
			Quantity:  1,
			Mes:       mes,
		})
		require.NoError(t, err)
	}

	meses, err := NewDashboardUseCase(store).AvailableMonths(ctx)
	require.NoError(t, err)

	// Del más reciente al más antiguo, con el mes en curso incluido.
	require.GreaterOrEqual(t, len(meses), 4)
	assert.Equal(t, fechas.Actual(), meses[0])
	for i := 1; i < len(meses); i++ {
		assert.Greater(t, meses[i-1], meses[i], "orden en %v", meses)
	}
}
