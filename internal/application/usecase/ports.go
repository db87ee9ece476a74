package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

// ReportExporter serializa un reporte a un formato descargable (csv, pdf).
type ReportExporter interface {
	Export(ctx context.Context, report *entity.AnalyticsReport) ([]byte, error)
	ContentType() string
	Extension() string
}

// ReportMetrics instrumentación de la generación de reportes.
type ReportMetrics interface {
	ObserveGeneration(elapsed time.Duration, salesCount int)
	IncFailure()
	IncExport(format string)
}

type noopMetrics struct{}

func (noopMetrics) ObserveGeneration(time.Duration, int) {}
func (noopMetrics) IncFailure()                          {}
func (noopMetrics) IncExport(string)                     {}
