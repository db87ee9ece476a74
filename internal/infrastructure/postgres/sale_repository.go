package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `
	id, to_char(sale_date, 'YYYY-MM-DD'), customer_id, customer_name, customer_type, region,
	product_id, product_name, category, quantity, unit_price, total_revenue`

// SaleRepo corpus de ventas en PostgreSQL.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// ListByRange ventas con sale_date en [startDate, endDate]; un rango invertido no devuelve filas.
func (r *SaleRepo) ListByRange(ctx context.Context, startDate, endDate string) ([]entity.Sale, error) {
	query := `SELECT ` + saleColumns + `
	FROM sales
	WHERE sale_date BETWEEN $1::text::date AND $2::text::date
	ORDER BY sale_date DESC, id`

	rows, err := r.pool.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("sales.ListByRange: %w", err)
	}
	return collectSales(rows, "sales.ListByRange")
}

// List corpus paginado, más recientes primero.
func (r *SaleRepo) List(ctx context.Context, limit, offset int) ([]entity.Sale, error) {
	query := `SELECT ` + saleColumns + `
	FROM sales
	ORDER BY sale_date DESC, id
	LIMIT $1 OFFSET $2`

	lim, off := pageArgs(limit, offset)
	rows, err := r.pool.Query(ctx, query, lim, off)
	if err != nil {
		return nil, fmt.Errorf("sales.List: %w", err)
	}
	return collectSales(rows, "sales.List")
}

func (r *SaleRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n); err != nil {
		return 0, fmt.Errorf("sales.Count: %w", err)
	}
	return n, nil
}

// SaveAll upsert por ID de todo el lote dentro de una transacción.
func (r *SaleRepo) SaveAll(ctx context.Context, sales []entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	const query = `
	INSERT INTO sales (id, sale_date, customer_id, customer_name, customer_type, region,
	                   product_id, product_name, category, quantity, unit_price, total_revenue)
	VALUES ($1, $2::text::date, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO UPDATE SET
	    sale_date     = EXCLUDED.sale_date,
	    customer_id   = EXCLUDED.customer_id,
	    customer_name = EXCLUDED.customer_name,
	    customer_type = EXCLUDED.customer_type,
	    region        = EXCLUDED.region,
	    product_id    = EXCLUDED.product_id,
	    product_name  = EXCLUDED.product_name,
	    category      = EXCLUDED.category,
	    quantity      = EXCLUDED.quantity,
	    unit_price    = EXCLUDED.unit_price,
	    total_revenue = EXCLUDED.total_revenue`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, s := range sales {
		batch.Queue(query,
			s.ID, s.Date, s.CustomerID, s.CustomerName, string(s.CustomerType), s.Region,
			s.ProductID, s.ProductName, s.Category, s.Quantity, s.UnitPrice, s.TotalRevenue,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("sales.SaveAll: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func collectSales(rows pgx.Rows, op string) ([]entity.Sale, error) {
	defer rows.Close()
	list := make([]entity.Sale, 0)
	for rows.Next() {
		var (
			s     entity.Sale
			ctype string
		)
		if err := rows.Scan(
			&s.ID, &s.Date, &s.CustomerID, &s.CustomerName, &ctype, &s.Region,
			&s.ProductID, &s.ProductName, &s.Category, &s.Quantity, &s.UnitPrice, &s.TotalRevenue,
		); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		s.CustomerType = entity.CustomerType(ctype)
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}
	return list, nil
}
