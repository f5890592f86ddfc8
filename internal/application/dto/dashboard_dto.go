package dto

import "github.com/shopspring/decimal"

// TendenciaDTO series de los últimos meses para los gráficos del dashboard.
// Las tres series comparten el eje Meses (del más antiguo al más reciente) y
// cada punto se calcula de forma independiente, sin arrastre entre meses.
type TendenciaDTO struct {
	Meses         []string          `json:"meses"`
	CostoUnitario []decimal.Decimal `json:"costo_unitario"`
	Unidades      []int64           `json:"unidades"`
	Ventas        []decimal.Decimal `json:"ventas"`
}

// DashboardSummaryDTO resumen financiero del mes seleccionado.
type DashboardSummaryDTO struct {
	Mes              string          `json:"mes"`
	Unidades         int64           `json:"unidades"`
	Materiales       decimal.Decimal `json:"materiales"`
	GastosFab        decimal.Decimal `json:"gastos_fabricacion"`
	CostoUnitario    decimal.Decimal `json:"costo_unitario"`
	VentasMes        decimal.Decimal `json:"ventas_mes"`
	GastosPersonales decimal.Decimal `json:"gastos_personales_mes"`
	EfectivoTotal    decimal.Decimal `json:"efectivo_total"`
	MesesDisponibles []string        `json:"meses_disponibles"`
	Tendencia        TendenciaDTO    `json:"tendencia"`
}
