package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/sales-analytics/internal/application/dto"
	"github.com/jhoicas/sales-analytics/internal/domain"
	"github.com/jhoicas/sales-analytics/internal/domain/analytics"
	"github.com/jhoicas/sales-analytics/internal/domain/entity"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
	"github.com/jhoicas/sales-analytics/pkg/logger"
	"go.uber.org/multierr"
)

const (
	defaultWindowDays   = 30
	defaultExportFormat = "csv"
)

// bootstrapWindows ventanas precargadas en un historial vacío. Se guardan en este
// orden para que el listado (más reciente primero) muestre Q1 2024 arriba.
var bootstrapWindows = [][2]string{
	{"2023-01-01", "2023-12-31"},
	{"2024-07-01", "2024-09-30"},
	{"2024-04-01", "2024-06-30"},
	{"2024-01-01", "2024-03-31"},
}

// ReportDeps dependencias del caso de uso de reportes.
type ReportDeps struct {
	Sales      repository.SaleRepository
	Reports    repository.ReportRepository
	Aggregator *analytics.Aggregator
	Exporters  []ReportExporter // indexados por Extension()
	Metrics    ReportMetrics
	Logger     *logger.Logger
	WindowDays int              // ventana por defecto cuando faltan fechas
	Now        func() time.Time // reloj para la ventana por defecto
}

// ReportUseCase orquesta la generación, el historial y la exportación de reportes:
//   - Carga el corpus de la ventana y lo pasa al agregador puro.
//   - Inconsistencias de dimensión se registran como advertencia, no bloquean.
//   - Historial solo de inserción, más reciente primero.
type ReportUseCase struct {
	sales      repository.SaleRepository
	reports    repository.ReportRepository
	aggregator *analytics.Aggregator
	exporters  map[string]ReportExporter
	metrics    ReportMetrics
	log        *logger.Logger
	windowDays int
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso aplicando valores por defecto.
func NewReportUseCase(deps ReportDeps) *ReportUseCase {
	uc := &ReportUseCase{
		sales:      deps.Sales,
		reports:    deps.Reports,
		aggregator: deps.Aggregator,
		exporters:  make(map[string]ReportExporter, len(deps.Exporters)),
		metrics:    deps.Metrics,
		log:        deps.Logger,
		windowDays: deps.WindowDays,
		now:        deps.Now,
	}
	for _, e := range deps.Exporters {
		uc.exporters[e.Extension()] = e
	}
	if uc.aggregator == nil {
		uc.aggregator = analytics.NewAggregator()
	}
	if uc.metrics == nil {
		uc.metrics = noopMetrics{}
	}
	if uc.log == nil {
		uc.log = logger.Nop()
	}
	if uc.windowDays <= 0 {
		uc.windowDays = defaultWindowDays
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	uc.log = uc.log.Component("reports")
	return uc
}

// Generate calcula el reporte de la ventana sin guardarlo.
func (uc *ReportUseCase) Generate(ctx context.Context, req dto.ReportRequest) (*dto.ReportDTO, error) {
	start, end, err := resolveWindow(req.StartDate, req.EndDate, uc.windowDays, uc.now())
	if err != nil {
		return nil, err
	}
	report, err := uc.generate(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := dto.ReportFromEntity(report)
	return &out, nil
}

// Save genera el reporte y lo agrega al historial.
func (uc *ReportUseCase) Save(ctx context.Context, req dto.ReportRequest) (*dto.ReportDTO, error) {
	start, end, err := resolveWindow(req.StartDate, req.EndDate, uc.windowDays, uc.now())
	if err != nil {
		return nil, err
	}
	report, err := uc.generate(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if err := uc.reports.Save(ctx, report); err != nil {
		return nil, fmt.Errorf("reports: guardar %s: %w", report.ID, err)
	}
	uc.log.Info().Str("report_id", report.ID).Msg("reporte guardado en historial")
	out := dto.ReportFromEntity(report)
	return &out, nil
}

// History lista el historial paginado, más reciente primero.
func (uc *ReportUseCase) History(ctx context.Context, page dto.PageRequest) (*dto.ReportListDTO, error) {
	page.DefaultPage()
	reports, err := uc.reports.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("reports: listar: %w", err)
	}
	total, err := uc.reports.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("reports: contar: %w", err)
	}
	items := make([]dto.ReportDTO, 0, len(reports))
	for _, r := range reports {
		items = append(items, dto.ReportFromEntity(r))
	}
	return &dto.ReportListDTO{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByID devuelve un reporte del historial o domain.ErrNotFound.
func (uc *ReportUseCase) GetByID(ctx context.Context, id string) (*dto.ReportDTO, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	report, err := uc.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ReportFromEntity(*report)
	return &out, nil
}

// Export serializa un reporte guardado en csv (por defecto) o pdf.
func (uc *ReportUseCase) Export(ctx context.Context, id, format string) (*dto.ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = defaultExportFormat
	}
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, domain.ErrUnsupportedFormat)
	}
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	report, err := uc.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	content, err := exporter.Export(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("reports: exportar %s a %s: %w", id, format, err)
	}
	uc.metrics.IncExport(format)
	return &dto.ExportFile{
		Filename:    fmt.Sprintf("sales-report-%s-%s.%s", report.StartDate, report.EndDate, exporter.Extension()),
		ContentType: exporter.ContentType(),
		Content:     content,
	}, nil
}

// Bootstrap precarga el historial con las ventanas de ejemplo si está vacío.
// Devuelve cuántos reportes se guardaron.
func (uc *ReportUseCase) Bootstrap(ctx context.Context) (int, error) {
	n, err := uc.reports.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("reports: contar: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	saved := 0
	for _, w := range bootstrapWindows {
		report, err := uc.generate(ctx, w[0], w[1])
		if err != nil {
			return saved, err
		}
		if err := uc.reports.Save(ctx, report); err != nil {
			return saved, fmt.Errorf("reports: guardar %s: %w", report.ID, err)
		}
		saved++
	}
	uc.log.Info().Int("reports", saved).Msg("historial inicializado")
	return saved, nil
}

func (uc *ReportUseCase) generate(ctx context.Context, start, end string) (entity.AnalyticsReport, error) {
	began := time.Now()
	sales, err := uc.sales.ListByRange(ctx, start, end)
	if err != nil {
		uc.metrics.IncFailure()
		return entity.AnalyticsReport{}, fmt.Errorf("reports: cargar ventas %s..%s: %w", start, end, err)
	}

	if err := analytics.CheckDimensions(sales); err != nil {
		conflicts := multierr.Errors(err)
		uc.log.Warn().
			Int("conflicts", len(conflicts)).
			Str("first", conflicts[0].Error()).
			Str("start_date", start).
			Str("end_date", end).
			Msg("atributos de dimensión inconsistentes; se conserva el primer valor visto")
	}

	report := uc.aggregator.Generate(sales, start, end)
	elapsed := time.Since(began)
	uc.metrics.ObserveGeneration(elapsed, len(sales))
	uc.log.Info().
		Str("report_id", report.ID).
		Str("start_date", report.StartDate).
		Str("end_date", report.EndDate).
		Int("orders", report.TotalOrders).
		Dur("elapsed", elapsed).
		Msg("reporte generado")
	return report, nil
}
