package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// ReportRequest ventana del reporte. Fechas vacías toman la ventana por defecto
// (últimos REPORT_DEFAULT_WINDOW_DAYS días hasta hoy).
type ReportRequest struct {
	StartDate string `query:"start_date" json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// ExportRequest formato de descarga (csv por defecto, sin distinguir mayúsculas).
type ExportRequest struct {
	Format string `query:"format" json:"format"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// ReportDTO reporte con montos y porcentajes redondeados a 2 decimales.
type ReportDTO struct {
	ID                string               `json:"id"`
	ReportDate        string               `json:"report_date"`
	StartDate         string               `json:"start_date"`
	EndDate           string               `json:"end_date"`
	TotalRevenue      decimal.Decimal      `json:"total_revenue"`
	TotalOrders       int                  `json:"total_orders"`
	AvgOrderValue     decimal.Decimal      `json:"avg_order_value"`
	TopProducts       []ProductSummaryDTO  `json:"top_products"`
	TopCustomers      []CustomerSummaryDTO `json:"top_customers"`
	RegionWiseStats   []RegionStatDTO      `json:"region_wise_stats"`
	CategoryWiseStats []CategoryStatDTO    `json:"category_wise_stats"`
}

type ProductSummaryDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type CustomerSummaryDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Region      string          `json:"region"`
	Type        string          `json:"type"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}

type RegionStatDTO struct {
	Region  string          `json:"region"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

type CategoryStatDTO struct {
	Category   string          `json:"category"`
	Revenue    decimal.Decimal `json:"revenue"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ReportListDTO página del historial, más reciente primero.
type ReportListDTO struct {
	Items []ReportDTO  `json:"items"`
	Page  PageResponse `json:"page"`
}

// ExportFile archivo listo para descargar.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportFromEntity convierte el reporte de dominio a su representación de salida.
func ReportFromEntity(r entity.AnalyticsReport) ReportDTO {
	out := ReportDTO{
		ID:                r.ID,
		ReportDate:        r.ReportDate,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		TotalRevenue:      r.TotalRevenue.Round(2),
		TotalOrders:       r.TotalOrders,
		AvgOrderValue:     r.AvgOrderValue.Round(2),
		TopProducts:       make([]ProductSummaryDTO, 0, len(r.TopProducts)),
		TopCustomers:      make([]CustomerSummaryDTO, 0, len(r.TopCustomers)),
		RegionWiseStats:   make([]RegionStatDTO, 0, len(r.RegionWiseStats)),
		CategoryWiseStats: make([]CategoryStatDTO, 0, len(r.CategoryWiseStats)),
	}
	for _, p := range r.TopProducts {
		out.TopProducts = append(out.TopProducts, ProductSummaryDTO{
			ID: p.ID, Name: p.Name, Category: p.Category, UnitsSold: p.UnitsSold, Revenue: p.Revenue.Round(2),
		})
	}
	for _, c := range r.TopCustomers {
		out.TopCustomers = append(out.TopCustomers, CustomerSummaryDTO{
			ID: c.ID, Name: c.Name, Region: c.Region, Type: string(c.Type),
			TotalOrders: c.TotalOrders, TotalSpent: c.TotalSpent.Round(2),
		})
	}
	for _, rs := range r.RegionWiseStats {
		out.RegionWiseStats = append(out.RegionWiseStats, RegionStatDTO{
			Region: rs.Region, Revenue: rs.Revenue.Round(2), Orders: rs.Orders,
		})
	}
	for _, cs := range r.CategoryWiseStats {
		out.CategoryWiseStats = append(out.CategoryWiseStats, CategoryStatDTO{
			Category: cs.Category, Revenue: cs.Revenue.Round(2), Percentage: cs.Percentage.Round(2),
		})
	}
	return out
}
