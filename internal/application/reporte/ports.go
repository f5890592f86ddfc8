package reporte

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/voese/voesesystem-api/internal/domain/entity"
	"github.com/voese/voesesystem-api/internal/domain/finanzas"
)

// DatosExtractoMensual todo lo que el generador necesita para el PDF del mes.
type DatosExtractoMensual struct {
	Mes              string
	Efectivo         decimal.Decimal
	TotalVentas      decimal.Decimal
	GastosPersonales decimal.Decimal
	Datos            finanzas.DatosMes
	Ventas           []entity.Sale // solo las del mes, en orden de registro
	GeneradoEn       time.Time
}

// ResumenMes una fila de la tabla del resumen anual.
type ResumenMes struct {
	Mes        string
	Unidades   int64
	Ventas     decimal.Decimal
	GastosFab  decimal.Decimal
	GastosPers decimal.Decimal
	Balance    decimal.Decimal
}

// DatosResumenAnual todo lo que el generador necesita para el PDF anual.
type DatosResumenAnual struct {
	Anio        int
	Meses       []ResumenMes // siempre 12, enero a diciembre
	TotalVentas decimal.Decimal
	Efectivo    decimal.Decimal
	GeneradoEn  time.Time
}

// PDFGenerator puerto de generación de documentos (implementado con Maroto).
type PDFGenerator interface {
	GenerateMonthlyPDF(ctx context.Context, data *DatosExtractoMensual) ([]byte, error)
	GenerateAnnualPDF(ctx context.Context, data *DatosResumenAnual) ([]byte, error)
}
