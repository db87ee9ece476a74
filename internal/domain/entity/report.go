package entity

import "github.com/shopspring/decimal"

// AnalyticsReport resumen agregado de las ventas de una ventana [StartDate, EndDate].
// Inmutable una vez generado; los resúmenes anidados no existen fuera del reporte.
type AnalyticsReport struct {
	ID                string            `json:"id"`
	ReportDate        string            `json:"report_date"` // fecha de generación (YYYY-MM-DD)
	StartDate         string            `json:"start_date"`
	EndDate           string            `json:"end_date"`
	TotalRevenue      decimal.Decimal   `json:"total_revenue"`
	TotalOrders       int               `json:"total_orders"`
	AvgOrderValue     decimal.Decimal   `json:"avg_order_value"` // 0 si no hay órdenes
	TopProducts       []ProductSummary  `json:"top_products"`
	TopCustomers      []CustomerSummary `json:"top_customers"`
	RegionWiseStats   []RegionStat      `json:"region_wise_stats"`
	CategoryWiseStats []CategoryStat    `json:"category_wise_stats"`
}

// ProductSummary producto reconstruido agrupando ventas por ProductID.
type ProductSummary struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// CustomerSummary cliente reconstruido agrupando ventas por CustomerID.
type CustomerSummary struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Region      string          `json:"region"`
	Type        CustomerType    `json:"type"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}

// RegionStat ingresos y órdenes por región.
type RegionStat struct {
	Region  string          `json:"region"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// CategoryStat ingresos por categoría y su participación % sobre el total.
type CategoryStat struct {
	Category   string          `json:"category"`
	Revenue    decimal.Decimal `json:"revenue"`
	Percentage decimal.Decimal `json:"percentage"`
}
