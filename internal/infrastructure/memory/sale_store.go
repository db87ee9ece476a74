// Package memory implementa los repositorios en memoria (modo por defecto y fakes de test).
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/sales-analytics/internal/domain/analytics"
	"github.com/jhoicas/sales-analytics/internal/domain/entity"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleStore)(nil)

// SaleStore corpus de ventas en memoria, ordenado por fecha descendente.
type SaleStore struct {
	mu    sync.RWMutex
	index map[string]int
	sales []entity.Sale
}

// NewSaleStore construye el store con un corpus inicial opcional.
func NewSaleStore(initial ...entity.Sale) *SaleStore {
	s := &SaleStore{index: make(map[string]int)}
	_ = s.SaveAll(context.Background(), initial)
	return s
}

// ListByRange filtra por fecha inclusive en ambos extremos.
func (s *SaleStore) ListByRange(_ context.Context, startDate, endDate string) ([]entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.FilterByWindow(s.sales, startDate, endDate), nil
}

// List devuelve una página del corpus.
func (s *SaleStore) List(_ context.Context, limit, offset int) ([]entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.sales, limit, offset), nil
}

func (s *SaleStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sales), nil
}

// SaveAll inserta o reemplaza por ID y reordena el corpus.
func (s *SaleStore) SaveAll(_ context.Context, sales []entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sale := range sales {
		if i, ok := s.index[sale.ID]; ok {
			s.sales[i] = sale
			continue
		}
		s.index[sale.ID] = len(s.sales)
		s.sales = append(s.sales, sale)
	}
	slices.SortStableFunc(s.sales, func(a, b entity.Sale) int {
		if c := cmp.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	for i, sale := range s.sales {
		s.index[sale.ID] = i
	}
	return nil
}

// page recorta items según limit/offset; limit <= 0 devuelve todo desde offset.
func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}
