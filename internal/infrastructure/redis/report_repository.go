package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/sales-analytics/internal/domain"
	"github.com/jhoicas/sales-analytics/internal/domain/entity"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo guarda cada reporte como JSON en un hash (<prefix>:items) y el orden
// del historial en una lista (<prefix>:order, más reciente a la izquierda).
type ReportRepo struct {
	rdb    redis.Cmdable
	prefix string
}

// NewReportRepository construye el adaptador con el prefijo de claves dado.
func NewReportRepository(rdb redis.Cmdable, prefix string) *ReportRepo {
	return &ReportRepo{rdb: rdb, prefix: prefix}
}

func (r *ReportRepo) itemsKey() string { return r.prefix + ":items" }
func (r *ReportRepo) orderKey() string { return r.prefix + ":order" }

// Save agrega el reporte; un ID repetido devuelve domain.ErrDuplicate.
func (r *ReportRepo) Save(ctx context.Context, report entity.AnalyticsReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("serializar reporte %s: %w", report.ID, err)
	}
	created, err := r.rdb.HSetNX(ctx, r.itemsKey(), report.ID, payload).Result()
	if err != nil {
		return fmt.Errorf("reports.Save: %w", err)
	}
	if !created {
		return domain.ErrDuplicate
	}
	if err := r.rdb.LPush(ctx, r.orderKey(), report.ID).Err(); err != nil {
		return fmt.Errorf("reports.Save orden: %w", err)
	}
	return nil
}

// List historial paginado; limit <= 0 devuelve todo desde offset.
func (r *ReportRepo) List(ctx context.Context, limit, offset int) ([]entity.AnalyticsReport, error) {
	start, stop := listRange(limit, offset)
	ids, err := r.rdb.LRange(ctx, r.orderKey(), start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("reports.List: %w", err)
	}
	list := make([]entity.AnalyticsReport, 0, len(ids))
	if len(ids) == 0 {
		return list, nil
	}
	values, err := r.rdb.HMGet(ctx, r.itemsKey(), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("reports.List items: %w", err)
	}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// entrada del orden sin payload: se ignora
			continue
		}
		rep, err := decodeReport(raw)
		if err != nil {
			return nil, fmt.Errorf("reports.List %s: %w", ids[i], err)
		}
		list = append(list, *rep)
	}
	return list, nil
}

func (r *ReportRepo) GetByID(ctx context.Context, id string) (*entity.AnalyticsReport, error) {
	raw, err := r.rdb.HGet(ctx, r.itemsKey(), id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reports.GetByID: %w", err)
	}
	return decodeReport(raw)
}

func (r *ReportRepo) Count(ctx context.Context) (int, error) {
	n, err := r.rdb.LLen(ctx, r.orderKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("reports.Count: %w", err)
	}
	return int(n), nil
}

// listRange traduce limit/offset a índices inclusivos de LRANGE.
func listRange(limit, offset int) (int64, int64) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		return int64(offset), -1
	}
	return int64(offset), int64(offset + limit - 1)
}

func decodeReport(raw string) (*entity.AnalyticsReport, error) {
	var rep entity.AnalyticsReport
	if err := json.Unmarshal([]byte(raw), &rep); err != nil {
		return nil, fmt.Errorf("deserializar reporte: %w", err)
	}
	return &rep, nil
}
