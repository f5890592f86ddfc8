// Package finanzas es el motor de agregación mensual: costo unitario de
// producción, split de gastos y efectivo acumulado. Todas las funciones son
// puras sobre los registros crudos; no hay caché ni estado entre llamadas,
// así el resultado siempre refleja el store tal como está.
package finanzas

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/voese/voesesystem-api/internal/domain/entity"
	"github.com/voese/voesesystem-api/internal/domain/fechas"
)

// DatosMes resume la producción y los gastos de fabricación de un mes.
type DatosMes struct {
	Unidades      int64
	Materiales    decimal.Decimal
	GastosFab     decimal.Decimal
	CostoUnitario decimal.Decimal
}

// CostosDelMes calcula unidades producidas, costo de materiales, gastos de
// fabricación y costo unitario del mes indicado.
//
// Asimetría deliberada heredada del producto: las producciones se filtran por
// su campo Month (el mes que el operador tenía seleccionado al registrar),
// mientras que los gastos se re-derivan de su propia fecha. No unificar.
func CostosDelMes(producciones []entity.Production, gastos []entity.Expense, mes string) DatosMes {
	var d DatosMes
	d.Materiales = decimal.Zero
	d.GastosFab = decimal.Zero
	d.CostoUnitario = decimal.Zero

	for _, p := range producciones {
		if p.Month != mes {
			continue
		}
		d.Unidades += p.Quantity
		d.Materiales = d.Materiales.Add(p.MaterialsCost)
	}

	for _, g := range gastos {
		if g.Type != entity.ExpenseTypeFabricacion {
			continue
		}
		if fechas.DeFecha(g.Date) != mes {
			continue
		}
		d.GastosFab = d.GastosFab.Add(g.Amount)
	}

	// División protegida: sin unidades el costo unitario es 0, sin excepción.
	if d.Unidades > 0 {
		d.CostoUnitario = d.Materiales.Add(d.GastosFab).Div(decimal.NewFromInt(d.Unidades))
	}
	return d
}

// EfectivoTotal devuelve el efectivo en caja acumulado de TODA la historia:
// ventas totales menos gastos de fabricación y personales totales.
// Nunca se filtra por mes.
func EfectivoTotal(ventas []entity.Sale, gastos []entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, v := range ventas {
		total = total.Add(v.Total)
	}
	for _, g := range gastos {
		switch g.Type {
		case entity.ExpenseTypeFabricacion, entity.ExpenseTypePersonal:
			total = total.Sub(g.Amount)
		}
	}
	return total
}

// VentasDelMes suma los totales de las ventas del mes (por su campo Month).
func VentasDelMes(ventas []entity.Sale, mes string) decimal.Decimal {
	total := decimal.Zero
	for _, v := range ventas {
		if v.Month == mes {
			total = total.Add(v.Total)
		}
	}
	return total
}

// GastosPersonalesDelMes suma los gastos personales del mes (por su campo Month).
func GastosPersonalesDelMes(gastos []entity.Expense, mes string) decimal.Decimal {
	total := decimal.Zero
	for _, g := range gastos {
		if g.Type == entity.ExpenseTypePersonal && g.Month == mes {
			total = total.Add(g.Amount)
		}
	}
	return total
}

// UnidadesDelMes suma las unidades producidas del mes.
func UnidadesDelMes(producciones []entity.Production, mes string) int64 {
	var total int64
	for _, p := range producciones {
		if p.Month == mes {
			total += p.Quantity
		}
	}
	return total
}

// SerieMensual aplica metrica a cada mes de la lista, en orden. Cada valor es
// independiente: no hay suavizado ni arrastre entre meses.
func SerieMensual(meses []string, metrica func(mes string) decimal.Decimal) []decimal.Decimal {
	serie := make([]decimal.Decimal, 0, len(meses))
	for _, m := range meses {
		serie = append(serie, metrica(m))
	}
	return serie
}

// MesesDisponibles devuelve las claves de mes con algún registro, más el mes
// actual aunque esté vacío, ordenadas de la más reciente a la más antigua.
// Cada tipo aporta su propia clave: Month almacenado para producciones y
// ventas, derivada de la fecha para gastos.
func MesesDisponibles(producciones []entity.Production, ventas []entity.Sale, gastos []entity.Expense, actual string) []string {
	set := map[string]struct{}{actual: {}}
	for _, p := range producciones {
		set[p.Month] = struct{}{}
	}
	for _, v := range ventas {
		set[v.Month] = struct{}{}
	}
	for _, g := range gastos {
		set[fechas.DeFecha(g.Date)] = struct{}{}
	}
	meses := make([]string, 0, len(set))
	for m := range set {
		meses = append(meses, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(meses)))
	return meses
}
