package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/voese/voesesystem-api/internal/application/dto"
	"github.com/voese/voesesystem-api/internal/domain"
	"github.com/voese/voesesystem-api/internal/domain/fechas"
	"github.com/voese/voesesystem-api/internal/domain/finanzas"
	"github.com/voese/voesesystem-api/internal/domain/repository"
)

const mesesTendencia = 6 // meses de historia en los gráficos del dashboard

// DashboardUseCase arma el resumen financiero de un mes: costos de
// producción, ventas, gastos personales, efectivo acumulado y las series de
// tendencia. Todo se recalcula desde los registros crudos en cada llamada.
type DashboardUseCase struct {
	store repository.Store
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.Store) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// GetSummary devuelve el resumen del mes indicado; mes vacío = mes en curso.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, mes string) (*dto.DashboardSummaryDTO, error) {
	if mes == "" {
		mes = fechas.Actual()
	}
	if !fechas.Valido(mes) {
		return nil, domain.ErrInvalidInput
	}

	producciones, err := uc.store.LoadProductions(ctx)
	if err != nil {
		return nil, err
	}
	ventas, err := uc.store.LoadSales(ctx)
	if err != nil {
		return nil, err
	}
	gastos, err := uc.store.LoadExpenses(ctx)
	if err != nil {
		return nil, err
	}

	datos := finanzas.CostosDelMes(producciones, gastos, mes)

	ultimos := fechas.Ultimos(mesesTendencia)
	tendencia := dto.TendenciaDTO{
		Meses: ultimos,
		CostoUnitario: finanzas.SerieMensual(ultimos, func(m string) decimal.Decimal {
			return finanzas.CostosDelMes(producciones, gastos, m).CostoUnitario
		}),
		Ventas: finanzas.SerieMensual(ultimos, func(m string) decimal.Decimal {
			return finanzas.VentasDelMes(ventas, m)
		}),
	}
	tendencia.Unidades = make([]int64, 0, len(ultimos))
	for _, m := range ultimos {
		tendencia.Unidades = append(tendencia.Unidades, finanzas.UnidadesDelMes(producciones, m))
	}

	return &dto.DashboardSummaryDTO{
		Mes:              mes,
		Unidades:         datos.Unidades,
		Materiales:       datos.Materiales,
		GastosFab:        datos.GastosFab,
		CostoUnitario:    datos.CostoUnitario,
		VentasMes:        finanzas.VentasDelMes(ventas, mes),
		GastosPersonales: finanzas.GastosPersonalesDelMes(gastos, mes),
		EfectivoTotal:    finanzas.EfectivoTotal(ventas, gastos),
		MesesDisponibles: finanzas.MesesDisponibles(producciones, ventas, gastos, fechas.Actual()),
		Tendencia:        tendencia,
	}, nil
}

// AvailableMonths devuelve los meses con registros más el mes en curso,
// del más reciente al más antiguo (para el selector de mes).
func (uc *DashboardUseCase) AvailableMonths(ctx context.Context) ([]string, error) {
	producciones, err := uc.store.LoadProductions(ctx)
	if err != nil {
		return nil, err
	}
	ventas, err := uc.store.LoadSales(ctx)
	if err != nil {
		return nil, err
	}
	gastos, err := uc.store.LoadExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return finanzas.MesesDisponibles(producciones, ventas, gastos, fechas.Actual()), nil
}
