// Package jobs agrupa las tareas programadas de la aplicación.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/voese/voesesystem-api/internal/application/reporte"
	"github.com/voese/voesesystem-api/internal/domain/fechas"
	"github.com/voese/voesesystem-api/pkg/logger"
)

// ReportScheduler exporta automáticamente el extracto del mes anterior según
// una expresión cron (típicamente el día 1 de cada mes).
type ReportScheduler struct {
	cron     *cron.Cron
	reportUC *reporte.UseCase
	spec     string
	log      *logger.Logger
}

// NewReportScheduler construye el scheduler. spec vacío lo deja inerte.
func NewReportScheduler(reportUC *reporte.UseCase, spec string, log *logger.Logger) *ReportScheduler {
	return &ReportScheduler{
		cron:     cron.New(),
		reportUC: reportUC,
		spec:     spec,
		log:      log,
	}
}

// Start registra y arranca el job. Devuelve error si la expresión cron es
// inválida.
func (s *ReportScheduler) Start() error {
	if s.spec == "" {
		return nil
	}
	_, err := s.cron.AddFunc(s.spec, s.exportPreviousMonth)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("cron", s.spec).Msg("exportación automática de reportes activada")
	return nil
}

// Stop detiene el cron y espera a que termine el job en curso.
func (s *ReportScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *ReportScheduler) exportPreviousMonth() {
	mes := fechas.Anterior(fechas.Actual())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	_, filename, err := s.reportUC.ExportMonthly(ctx, mes)
	if err != nil {
		s.log.Error().Err(err).Str("mes", mes).Msg("fallo la exportación automática del extracto")
		return
	}
	s.log.Info().Str("mes", mes).Str("archivo", filename).Msg("extracto mensual exportado")
}
