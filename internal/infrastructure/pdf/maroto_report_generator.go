// Package pdf genera los extractos financieros en PDF con Maroto v2.
//
// Layout del extracto mensual (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: VoeseSystem  │  Extracto Mensual + mes             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TARJETAS: Efectivo disponible │ Total ventas del mes       │
//	│  PRODUCCIÓN: Unidades │ Costo unitario │ Materiales         │
//	│  GASTOS: Fabricación / Personales                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Detalle de ventas (máx. 15 filas + resumen)         │
//	│  FOOTER: fecha de generación                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/voese/voesesystem-api/internal/application/reporte"
	"github.com/voese/voesesystem-api/internal/domain/entity"
	"github.com/voese/voesesystem-api/internal/domain/fechas"
	"github.com/voese/voesesystem-api/pkg/moneda"
)

// maxFilasVentas filas de la tabla de ventas del extracto mensual; el resto
// se resume en una línea "... y N ventas más".
const maxFilasVentas = 15

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 98, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reporte.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMonthlyPDF genera el extracto de un mes y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMonthlyPDF(_ context.Context, data *reporte.DatosExtractoMensual) ([]byte, error) {
	m := newDocument("Extracto Mensual VoeseSystem")

	m.AddRows(headerRow("EXTRACTO MENSUAL", fechas.Nombre(data.Mes), data.GeneradoEn.Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(cardsRow(data))
	m.AddRows(productionRow(data))
	m.AddRows(expensesRow(data))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(salesHeaderRow())
	for _, r := range salesRows(data.Ventas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(data.GeneradoEn.Format("02/01/2006 15:04")))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar extracto mensual: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateAnnualPDF genera el resumen de un año y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateAnnualPDF(_ context.Context, data *reporte.DatosResumenAnual) ([]byte, error) {
	m := newDocument("Resumen Anual VoeseSystem")

	m.AddRows(headerRow("RESUMEN ANUAL", strconv.Itoa(data.Anio), data.GeneradoEn.Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(annualTotalsRow(data))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(annualTableHeaderRow())
	for _, r := range annualTableRows(data.Meses) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(data.GeneradoEn.Format("02/01/2006 15:04")))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar resumen anual: %w", err)
	}
	return doc.GetBytes(), nil
}

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor("VoeseSystem", true).
		Build()
	return maroto.New(cfg)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y título del reporte + período (der).
func headerRow(titulo, periodo, fecha string) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New("VoeseSystem", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestión de producción y ventas", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 7, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// cardsRow: efectivo acumulado y ventas del mes, las dos cifras principales.
func cardsRow(data *reporte.DatosExtractoMensual) core.Row {
	card := func(label, value string) core.Col {
		return col.New(6).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 2,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 7,
			}),
		)
	}
	return row.New(17).Add(
		card("EFECTIVO DISPONIBLE", moneda.ConSimbolo(data.Efectivo)),
		card("TOTAL VENTAS DEL MES", moneda.ConSimbolo(data.TotalVentas)),
	)
}

// productionRow: unidades, costo unitario y materiales del mes.
func productionRow(data *reporte.DatosExtractoMensual) core.Row {
	stat := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		)
	}
	return row.New(14).Add(
		stat("UNIDADES PRODUCIDAS", strconv.FormatInt(data.Datos.Unidades, 10)),
		stat("COSTO UNITARIO", moneda.ConSimbolo(data.Datos.CostoUnitario)),
		stat("MATERIALES", moneda.ConSimbolo(data.Datos.Materiales)),
	)
}

// expensesRow: partición de gastos del mes en fabricación y personales.
func expensesRow(data *reporte.DatosExtractoMensual) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("GASTOS DEL MES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Fabricación: %s   |   Personales: %s",
				moneda.ConSimbolo(data.Datos.GastosFab),
				moneda.ConSimbolo(data.GastosPersonales),
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// salesHeaderRow: cabecera de la tabla de ventas.
func salesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Tipo", 2, align.Center),
		h("Cant.", 1, align.Center),
		h("P. Unit.", 2, align.Right),
		h("Desc.", 1, align.Right),
		h("Total", 2, align.Right),
	)
}

// salesRows: una fila por venta, hasta maxFilasVentas; el excedente se
// resume en una línea final.
func salesRows(ventas []entity.Sale) []core.Row {
	if len(ventas) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin ventas registradas este mes.", props.Text{
				Size: 8, Color: colorGray, Top: 2, Left: 1,
			}),
		))}
	}

	visibles := ventas
	if len(visibles) > maxFilasVentas {
		visibles = visibles[:maxFilasVentas]
	}
	result := make([]core.Row, 0, len(visibles)+1)
	for _, v := range visibles {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(v.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(v.Type, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(strconv.FormatInt(v.Quantity, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(moneda.Formato(v.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(moneda.Formato(v.Discount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(moneda.Formato(v.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	if resto := len(ventas) - maxFilasVentas; resto > 0 {
		result = append(result, row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("... y %d ventas más", resto), props.Text{
				Size: 7.5, Color: colorGray, Top: 1, Left: 1,
			}),
		)))
	}
	return result
}

// annualTotalsRow: cifras agregadas del año.
func annualTotalsRow(data *reporte.DatosResumenAnual) core.Row {
	card := func(label, value string) core.Col {
		return col.New(6).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 2}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 7}),
		)
	}
	return row.New(17).Add(
		card("TOTAL VENTAS DEL AÑO", moneda.ConSimbolo(data.TotalVentas)),
		card("EFECTIVO DISPONIBLE", moneda.ConSimbolo(data.Efectivo)),
	)
}

// annualTableHeaderRow: cabecera de la tabla mes a mes.
func annualTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Mes", 2, align.Left),
		h("Unid.", 1, align.Center),
		h("Ventas", 3, align.Right),
		h("G. Fabricación", 2, align.Right),
		h("G. Personales", 2, align.Right),
		h("Balance", 2, align.Right),
	)
}

// annualTableRows: las 12 filas del año, enero a diciembre. El balance
// negativo va en rojo.
func annualTableRows(meses []reporte.ResumenMes) []core.Row {
	result := make([]core.Row, 0, len(meses))
	for _, rm := range meses {
		balanceColor := colorPrimary
		if rm.Balance.IsNegative() {
			balanceColor = colorRed
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(fechas.Nombre(rm.Mes), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.FormatInt(rm.Unidades, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(moneda.Formato(rm.Ventas), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(moneda.Formato(rm.GastosFab), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(moneda.Formato(rm.GastosPers), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(moneda.Formato(rm.Balance), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: balanceColor,
			})),
		))
	}
	return result
}

// footerRow: sello de generación.
func footerRow(fecha string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Documento generado automáticamente por VoeseSystem el "+fecha+
			". Las cifras se recalculan desde los registros al momento de la emisión.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
