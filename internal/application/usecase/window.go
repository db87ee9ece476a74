package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/sales-analytics/internal/domain"
	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

// resolveWindow valida las fechas y completa las ausentes: end = hoy,
// start = end - windowDays. Un rango invertido se acepta tal cual.
func resolveWindow(startStr, endStr string, windowDays int, now time.Time) (start, end string, err error) {
	var endDate time.Time
	if endStr == "" {
		endDate = now
	} else {
		endDate, err = time.Parse(entity.DateLayout, endStr)
		if err != nil {
			return "", "", fmt.Errorf("end_date %q: %w", endStr, domain.ErrInvalidDate)
		}
	}
	end = endDate.Format(entity.DateLayout)

	if startStr == "" {
		return endDate.AddDate(0, 0, -windowDays).Format(entity.DateLayout), end, nil
	}
	if _, err = time.Parse(entity.DateLayout, startStr); err != nil {
		return "", "", fmt.Errorf("start_date %q: %w", startStr, domain.ErrInvalidDate)
	}
	return startStr, end, nil
}
