package export_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/export"
)

func sampleReport() *entity.AnalyticsReport {
	return &entity.AnalyticsReport{
		ID:            "report-1",
		StartDate:     "2024-01-01",
		EndDate:       "2024-01-31",
		TotalRevenue:  decimal.NewFromInt(1000),
		TotalOrders:   3,
		AvgOrderValue: decimal.NewFromInt(1000).Div(decimal.NewFromInt(3)),
		TopProducts: []entity.ProductSummary{
			{ID: "2", Name: "Business Intelligence Suite, Pro", Category: "Software", UnitsSold: 1, Revenue: decimal.NewFromInt(599)},
		},
		TopCustomers: []entity.CustomerSummary{
			{ID: "1", Name: "TechCorp Inc.", Region: "North", Type: entity.CustomerBusiness, TotalOrders: 3, TotalSpent: decimal.NewFromInt(1000)},
		},
		RegionWiseStats: []entity.RegionStat{{Region: "North", Revenue: decimal.NewFromInt(1000), Orders: 3}},
		CategoryWiseStats: []entity.CategoryStat{
			{Category: "Software", Revenue: decimal.NewFromInt(1000), Percentage: decimal.NewFromInt(100)},
		},
	}
}

func TestCSVExporter_Resumen(t *testing.T) {
	out, err := export.NewCSVExporter().Export(context.Background(), sampleReport())
	require.NoError(t, err)

	lines := strings.Split(string(out), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "Report Period,2024-01-01 to 2024-01-31", lines[0])
	assert.Equal(t, "Total Revenue,$1000.00", lines[1])
	assert.Equal(t, "Total Orders,3", lines[2])
	assert.Equal(t, "Average Order Value,$333.33", lines[3])
}

func TestCSVExporter_DetalleYEscapado(t *testing.T) {
	out, err := export.NewCSVExporter().Export(context.Background(), sampleReport())
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, `1,2,"Business Intelligence Suite, Pro",Software,1,$599.00`)
	assert.Contains(t, content, "1,1,TechCorp Inc.,North,Business,3,$1000.00")
	assert.Contains(t, content, "North,$1000.00,3")
	assert.Contains(t, content, "Software,$1000.00,100.00%")
}

func TestCSVExporter_ReporteVacio(t *testing.T) {
	empty := &entity.AnalyticsReport{ID: "r", StartDate: "2030-01-01", EndDate: "2030-01-31"}
	out, err := export.NewCSVExporter().Export(context.Background(), empty)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "Report Period,2030-01-01 to 2030-01-31\nTotal Revenue,$0.00\nTotal Orders,0\nAverage Order Value,$0.00\n"))
}
