package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

func TestMigrations_EmbebidasYConUpDown(t *testing.T) {
	files, err := fs.Glob(migrationsFS, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)

	checks := map[string][]string{
		"00001_create_sales.sql": {
			"CREATE TABLE IF NOT EXISTS sales",
			"CHECK (total_revenue = quantity * unit_price)",
			"idx_sales_sale_date",
		},
		"00002_create_analytics_reports.sql": {
			"CREATE TABLE IF NOT EXISTS analytics_reports",
			"category_wise_stats JSONB",
		},
	}
	for name, stmts := range checks {
		data, err := fs.ReadFile(migrationsFS, migrationsDir+"/"+name)
		require.NoError(t, err, name)
		content := string(data)
		assert.Contains(t, content, "-- +goose Up")
		assert.Contains(t, content, "-- +goose Down")
		for _, s := range stmts {
			assert.True(t, strings.Contains(content, s), "%s: falta %q", name, s)
		}
	}
}

func TestNestedJSON_IdaYVuelta(t *testing.T) {
	rep := entity.AnalyticsReport{
		ID: "report-1",
		TopProducts: []entity.ProductSummary{
			{ID: "p1", Name: "Tool", Category: "Software", UnitsSold: 3, Revenue: decimal.RequireFromString("597.50")},
		},
		CategoryWiseStats: []entity.CategoryStat{
			{Category: "Software", Revenue: decimal.RequireFromString("597.50"), Percentage: decimal.NewFromInt(100)},
		},
	}

	raw, err := marshalNested(rep)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw[1]), "listas nil se guardan como []")

	var back entity.AnalyticsReport
	back.ID = rep.ID
	require.NoError(t, unmarshalNested(&back, raw[0], raw[1], raw[2], raw[3]))
	require.Len(t, back.TopProducts, 1)
	assert.True(t, back.TopProducts[0].Revenue.Equal(rep.TopProducts[0].Revenue))
	assert.NotNil(t, back.TopCustomers)
	assert.Empty(t, back.RegionWiseStats)
	assert.True(t, back.CategoryWiseStats[0].Percentage.Equal(decimal.NewFromInt(100)))
}

func TestPageArgs(t *testing.T) {
	lim, off := pageArgs(0, -3)
	assert.Nil(t, lim)
	assert.Equal(t, 0, off)

	lim, off = pageArgs(20, 40)
	assert.Equal(t, 20, lim)
	assert.Equal(t, 40, off)
}
