package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sales-analytics/internal/domain"
	"github.com/jhoicas/sales-analytics/internal/domain/entity"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

const reportColumns = `
	id, to_char(report_date, 'YYYY-MM-DD'), start_date, end_date, total_revenue, total_orders,
	avg_order_value, top_products, top_customers, region_wise_stats, category_wise_stats`

// ReportRepo historial de reportes; los resúmenes anidados se guardan como JSONB.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Acepta pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Save agrega el reporte al historial.
func (r *ReportRepo) Save(ctx context.Context, report entity.AnalyticsReport) error {
	const query = `
	INSERT INTO analytics_reports (id, report_date, start_date, end_date, total_revenue, total_orders,
	                               avg_order_value, top_products, top_customers, region_wise_stats, category_wise_stats)
	VALUES ($1, $2::text::date, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	nested, err := marshalNested(report)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, query,
		report.ID, report.ReportDate, report.StartDate, report.EndDate,
		report.TotalRevenue, report.TotalOrders, report.AvgOrderValue,
		nested[0], nested[1], nested[2], nested[3],
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("reports.Save: %w", err)
	}
	return nil
}

// List historial paginado, último guardado primero.
func (r *ReportRepo) List(ctx context.Context, limit, offset int) ([]entity.AnalyticsReport, error) {
	query := `SELECT ` + reportColumns + `
	FROM analytics_reports
	ORDER BY saved_at DESC, id
	LIMIT $1 OFFSET $2`

	lim, off := pageArgs(limit, offset)
	rows, err := r.q.Query(ctx, query, lim, off)
	if err != nil {
		return nil, fmt.Errorf("reports.List: %w", err)
	}
	defer rows.Close()

	list := make([]entity.AnalyticsReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("reports.List scan: %w", err)
		}
		list = append(list, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reports.List rows: %w", err)
	}
	return list, nil
}

// GetByID devuelve domain.ErrNotFound si no existe.
func (r *ReportRepo) GetByID(ctx context.Context, id string) (*entity.AnalyticsReport, error) {
	query := `SELECT ` + reportColumns + ` FROM analytics_reports WHERE id = $1`
	report, err := scanReport(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reports.GetByID: %w", err)
	}
	return report, nil
}

func (r *ReportRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM analytics_reports`).Scan(&n); err != nil {
		return 0, fmt.Errorf("reports.Count: %w", err)
	}
	return n, nil
}

func scanReport(row pgx.Row) (*entity.AnalyticsReport, error) {
	var (
		rep                                    entity.AnalyticsReport
		products, customers, regions, category []byte
	)
	if err := row.Scan(
		&rep.ID, &rep.ReportDate, &rep.StartDate, &rep.EndDate, &rep.TotalRevenue, &rep.TotalOrders,
		&rep.AvgOrderValue, &products, &customers, &regions, &category,
	); err != nil {
		return nil, err
	}
	if err := unmarshalNested(&rep, products, customers, regions, category); err != nil {
		return nil, err
	}
	return &rep, nil
}

// marshalNested serializa las cuatro listas anidadas en el orden de las columnas JSONB.
func marshalNested(rep entity.AnalyticsReport) ([4][]byte, error) {
	var out [4][]byte
	values := [4]any{
		nonNil(rep.TopProducts), nonNil(rep.TopCustomers),
		nonNil(rep.RegionWiseStats), nonNil(rep.CategoryWiseStats),
	}
	for i, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return out, fmt.Errorf("serializar reporte %s: %w", rep.ID, err)
		}
		out[i] = b
	}
	return out, nil
}

func unmarshalNested(rep *entity.AnalyticsReport, products, customers, regions, categories []byte) error {
	rep.TopProducts = []entity.ProductSummary{}
	rep.TopCustomers = []entity.CustomerSummary{}
	rep.RegionWiseStats = []entity.RegionStat{}
	rep.CategoryWiseStats = []entity.CategoryStat{}
	targets := []struct {
		raw []byte
		dst any
	}{
		{products, &rep.TopProducts},
		{customers, &rep.TopCustomers},
		{regions, &rep.RegionWiseStats},
		{categories, &rep.CategoryWiseStats},
	}
	for _, t := range targets {
		if len(t.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(t.raw, t.dst); err != nil {
			return fmt.Errorf("deserializar reporte %s: %w", rep.ID, err)
		}
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
