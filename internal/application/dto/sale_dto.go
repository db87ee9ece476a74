package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

// SaleListRequest parámetros para GET /api/sales. Sin fechas se lista el corpus completo.
type SaleListRequest struct {
	ReportRequest
	PageRequest
}

// SaleDTO venta del corpus.
type SaleDTO struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	CustomerType string          `json:"customer_type,omitempty"`
	Region       string          `json:"region"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// SaleListDTO página del corpus, más recientes primero.
type SaleListDTO struct {
	Items []SaleDTO    `json:"items"`
	Page  PageResponse `json:"page"`
}

func SaleFromEntity(s entity.Sale) SaleDTO {
	return SaleDTO{
		ID:           s.ID,
		Date:         s.Date,
		CustomerID:   s.CustomerID,
		CustomerName: s.CustomerName,
		CustomerType: string(s.CustomerType),
		Region:       s.Region,
		ProductID:    s.ProductID,
		ProductName:  s.ProductName,
		Category:     s.Category,
		Quantity:     s.Quantity,
		UnitPrice:    s.UnitPrice,
		TotalRevenue: s.TotalRevenue,
	}
}
