package repository

import (
	"context"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

// ReportRepository historial de reportes generados.
// La única mutación permitida es agregar un reporte; List devuelve el más reciente primero.
type ReportRepository interface {
	Save(ctx context.Context, report entity.AnalyticsReport) error
	List(ctx context.Context, limit, offset int) ([]entity.AnalyticsReport, error)
	// GetByID devuelve domain.ErrNotFound si el reporte no existe.
	GetByID(ctx context.Context, id string) (*entity.AnalyticsReport, error)
	Count(ctx context.Context) (int, error)
}
