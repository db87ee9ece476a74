package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/sales-analytics/internal/application/dto"
	"github.com/jhoicas/sales-analytics/internal/domain/entity"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
)

// SalesUseCase consulta el corpus de ventas crudo.
type SalesUseCase struct {
	sales      repository.SaleRepository
	windowDays int
	now        func() time.Time
}

// NewSalesUseCase construye el caso de uso. windowDays <= 0 usa 30 días.
func NewSalesUseCase(sales repository.SaleRepository, windowDays int) *SalesUseCase {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	return &SalesUseCase{sales: sales, windowDays: windowDays, now: time.Now}
}

// ListSales pagina el corpus completo o, si llega alguna fecha, la ventana resuelta
// con las mismas reglas que los reportes.
func (uc *SalesUseCase) ListSales(ctx context.Context, req dto.SaleListRequest) (*dto.SaleListDTO, error) {
	req.DefaultPage()

	var (
		sales []entity.Sale
		total int
		err   error
	)
	if req.StartDate == "" && req.EndDate == "" {
		if sales, err = uc.sales.List(ctx, req.Limit, req.Offset); err != nil {
			return nil, fmt.Errorf("sales: listar: %w", err)
		}
		if total, err = uc.sales.Count(ctx); err != nil {
			return nil, fmt.Errorf("sales: contar: %w", err)
		}
	} else {
		start, end, werr := resolveWindow(req.StartDate, req.EndDate, uc.windowDays, uc.now())
		if werr != nil {
			return nil, werr
		}
		window, lerr := uc.sales.ListByRange(ctx, start, end)
		if lerr != nil {
			return nil, fmt.Errorf("sales: listar %s..%s: %w", start, end, lerr)
		}
		total = len(window)
		sales = window[min(req.Offset, total):min(req.Offset+req.Limit, total)]
	}

	items := make([]dto.SaleDTO, 0, len(sales))
	for _, s := range sales {
		items = append(items, dto.SaleFromEntity(s))
	}
	return &dto.SaleListDTO{
		Items: items,
		Page:  dto.PageResponse{Limit: req.Limit, Offset: req.Offset, Total: total},
	}, nil
}
