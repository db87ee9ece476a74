// Package export serializa reportes a formatos de texto delimitado (solo ida, sin parseo de vuelta).
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

// CSVExporter escribe el resumen del reporte (periodo, ingresos, órdenes, ticket promedio)
// seguido del detalle de rankings y desgloses.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

func (e *CSVExporter) ContentType() string { return "text/csv" }
func (e *CSVExporter) Extension() string   { return "csv" }

// Export genera el CSV del reporte.
func (e *CSVExporter) Export(_ context.Context, r *entity.AnalyticsReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Report Period", fmt.Sprintf("%s to %s", r.StartDate, r.EndDate)},
		{"Total Revenue", money(r.TotalRevenue)},
		{"Total Orders", strconv.Itoa(r.TotalOrders)},
		{"Average Order Value", money(r.AvgOrderValue)},
		{},
		{"Top Products"},
		{"Rank", "Product ID", "Product", "Category", "Units Sold", "Revenue"},
	}
	for i, p := range r.TopProducts {
		records = append(records, []string{
			strconv.Itoa(i + 1), p.ID, p.Name, p.Category, strconv.Itoa(p.UnitsSold), money(p.Revenue),
		})
	}

	records = append(records, []string{}, []string{"Top Customers"},
		[]string{"Rank", "Customer ID", "Customer", "Region", "Type", "Orders", "Total Spent"})
	for i, c := range r.TopCustomers {
		records = append(records, []string{
			strconv.Itoa(i + 1), c.ID, c.Name, c.Region, string(c.Type), strconv.Itoa(c.TotalOrders), money(c.TotalSpent),
		})
	}

	records = append(records, []string{}, []string{"Regions"}, []string{"Region", "Revenue", "Orders"})
	for _, rs := range r.RegionWiseStats {
		records = append(records, []string{rs.Region, money(rs.Revenue), strconv.Itoa(rs.Orders)})
	}

	records = append(records, []string{}, []string{"Categories"}, []string{"Category", "Revenue", "Percentage"})
	for _, cs := range r.CategoryWiseStats {
		records = append(records, []string{cs.Category, money(cs.Revenue), cs.Percentage.StringFixed(2) + "%"})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("csv: escribir reporte %s: %w", r.ID, err)
	}
	return buf.Bytes(), nil
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
