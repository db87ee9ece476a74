package repository

import (
	"context"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

// SaleRepository proveedor del corpus de ventas.
// La agregación no depende de cómo se produce ni persiste el corpus.
type SaleRepository interface {
	// ListByRange devuelve las ventas con fecha en [startDate, endDate] (YYYY-MM-DD, inclusive).
	ListByRange(ctx context.Context, startDate, endDate string) ([]entity.Sale, error)
	// List devuelve el corpus paginado, más recientes primero.
	List(ctx context.Context, limit, offset int) ([]entity.Sale, error)
	Count(ctx context.Context) (int, error)
	// SaveAll inserta (o reemplaza por ID) un lote de ventas.
	SaveAll(ctx context.Context, sales []entity.Sale) error
}
