package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/sales-analytics/internal/domain"
	"github.com/jhoicas/sales-analytics/internal/domain/entity"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportStore)(nil)

// ReportStore historial de reportes en memoria (más reciente primero).
type ReportStore struct {
	mu      sync.RWMutex
	reports []entity.AnalyticsReport
}

func NewReportStore() *ReportStore {
	return &ReportStore{}
}

// Save antepone el reporte al historial. Un ID repetido devuelve domain.ErrDuplicate.
func (s *ReportStore) Save(_ context.Context, report entity.AnalyticsReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reports {
		if s.reports[i].ID == report.ID {
			return fmt.Errorf("reporte %s: %w", report.ID, domain.ErrDuplicate)
		}
	}
	s.reports = append([]entity.AnalyticsReport{report}, s.reports...)
	return nil
}

func (s *ReportStore) List(_ context.Context, limit, offset int) ([]entity.AnalyticsReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.reports, limit, offset), nil
}

func (s *ReportStore) GetByID(_ context.Context, id string) (*entity.AnalyticsReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.reports {
		if s.reports[i].ID == id {
			r := s.reports[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *ReportStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports), nil
}
