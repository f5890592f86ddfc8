package reporte

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/voese/voesesystem-api/internal/domain"
	"github.com/voese/voesesystem-api/internal/domain/fechas"
	"github.com/voese/voesesystem-api/internal/domain/finanzas"
	"github.com/voese/voesesystem-api/internal/domain/repository"
)

// UseCase genera los extractos PDF mensuales y anuales y los escribe en el
// directorio de salida con nombre determinístico por clave de mes/año.
// Regenerar un reporte sobreescribe el archivo anterior del mismo período;
// nunca se agrega ni se edita un documento ya emitido.
type UseCase struct {
	store     repository.Store
	generator PDFGenerator
	outputDir string
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.Store, generator PDFGenerator, outputDir string) *UseCase {
	return &UseCase{store: store, generator: generator, outputDir: outputDir}
}

// ExportMonthly genera el extracto del mes y lo escribe en disco.
// Devuelve los bytes y el nombre de archivo para que la capa HTTP también
// pueda servirlo como descarga.
func (uc *UseCase) ExportMonthly(ctx context.Context, mes string) ([]byte, string, error) {
	if !fechas.Valido(mes) {
		return nil, "", domain.ErrInvalidInput
	}

	producciones, err := uc.store.LoadProductions(ctx)
	if err != nil {
		return nil, "", err
	}
	ventas, err := uc.store.LoadSales(ctx)
	if err != nil {
		return nil, "", err
	}
	gastos, err := uc.store.LoadExpenses(ctx)
	if err != nil {
		return nil, "", err
	}

	data := &DatosExtractoMensual{
		Mes:              mes,
		Efectivo:         finanzas.EfectivoTotal(ventas, gastos),
		TotalVentas:      finanzas.VentasDelMes(ventas, mes),
		GastosPersonales: finanzas.GastosPersonalesDelMes(gastos, mes),
		Datos:            finanzas.CostosDelMes(producciones, gastos, mes),
		GeneradoEn:       time.Now(),
	}
	for _, v := range ventas {
		if v.Month == mes {
			data.Ventas = append(data.Ventas, v)
		}
	}

	pdf, err := uc.generator.GenerateMonthlyPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: extracto %s: %v", domain.ErrExport, mes, err)
	}

	filename := fmt.Sprintf("VoeseSystem_%s.pdf", mes)
	if err := uc.write(filename, pdf); err != nil {
		return nil, "", err
	}
	return pdf, filename, nil
}

// ExportAnnual genera el resumen de los 12 meses del año y lo escribe en disco.
func (uc *UseCase) ExportAnnual(ctx context.Context, anio int) ([]byte, string, error) {
	if anio < 2000 || anio > 9999 {
		return nil, "", domain.ErrInvalidInput
	}

	producciones, err := uc.store.LoadProductions(ctx)
	if err != nil {
		return nil, "", err
	}
	ventas, err := uc.store.LoadSales(ctx)
	if err != nil {
		return nil, "", err
	}
	gastos, err := uc.store.LoadExpenses(ctx)
	if err != nil {
		return nil, "", err
	}

	data := &DatosResumenAnual{
		Anio:        anio,
		TotalVentas: decimal.Zero,
		Efectivo:    finanzas.EfectivoTotal(ventas, gastos),
		GeneradoEn:  time.Now(),
	}
	for _, mes := range fechas.DelAnio(anio) {
		datos := finanzas.CostosDelMes(producciones, gastos, mes)
		vm := finanzas.VentasDelMes(ventas, mes)
		gp := finanzas.GastosPersonalesDelMes(gastos, mes)
		data.Meses = append(data.Meses, ResumenMes{
			Mes:        mes,
			Unidades:   datos.Unidades,
			Ventas:     vm,
			GastosFab:  datos.GastosFab,
			GastosPers: gp,
			Balance:    vm.Sub(datos.GastosFab).Sub(gp),
		})
		data.TotalVentas = data.TotalVentas.Add(vm)
	}

	pdf, err := uc.generator.GenerateAnnualPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: resumen anual %d: %v", domain.ErrExport, anio, err)
	}

	filename := fmt.Sprintf("VoeseSystem_%d_Anual.pdf", anio)
	if err := uc.write(filename, pdf); err != nil {
		return nil, "", err
	}
	return pdf, filename, nil
}

func (uc *UseCase) write(filename string, pdf []byte) error {
	if err := os.MkdirAll(uc.outputDir, 0o755); err != nil {
		return fmt.Errorf("%w: crear directorio de reportes: %v", domain.ErrExport, err)
	}
	path := filepath.Join(uc.outputDir, filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrExport, path, err)
	}
	return nil
}
