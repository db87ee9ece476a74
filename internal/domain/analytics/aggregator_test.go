package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-analytics/internal/domain/analytics"
	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type saleSpec struct {
	id, date, customerID, customerName, region string
	productID, productName, category         string
	qty                                      int
	price                                    int64
}

func mkSale(t *testing.T, s saleSpec) entity.Sale {
	t.Helper()
	sale, err := entity.NewSale(entity.SaleParams{
		ID:           s.id,
		Date:         s.date,
		CustomerID:   s.customerID,
		CustomerName: s.customerName,
		Region:       s.region,
		ProductID:    s.productID,
		ProductName:  s.productName,
		Category:     s.category,
		Quantity:     s.qty,
		UnitPrice:    decimal.NewFromInt(s.price),
	})
	require.NoError(t, err)
	return sale
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "%s: esperado %s, obtenido %s", msg, want, got.String())
}

func fixedAggregator() *analytics.Aggregator {
	return analytics.NewAggregator(
		analytics.WithClock(func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }),
		analytics.WithIDGenerator(func() string { return "report-fixed" }),
	)
}

// corpus mixto: 3 regiones, 2 categorías, 6 productos, 7 clientes, fechas entre enero y marzo 2024.
func mixedCorpus(t *testing.T) []entity.Sale {
	t.Helper()
	var sales []entity.Sale
	regions := []string{"North", "South", "East"}
	categories := []string{"Software", "Services"}
	names := []string{"TechCorp Inc.", "John Smith", "DataSync Solutions", "Sarah Johnson", "Global Systems Ltd", "Ana Ruiz", "Bolt Ltd"}
	for i := 0; i < 40; i++ {
		cust := i % len(names)
		prod := i % 6
		sales = append(sales, mkSale(t, saleSpec{
			id:           fmt.Sprintf("sale-%d", i+1),
			date:         fmt.Sprintf("2024-%02d-%02d", 1+i%3, 1+i%28),
			customerID:   fmt.Sprintf("c%d", cust),
			customerName: names[cust],
			region:       regions[cust%len(regions)],
			productID:    fmt.Sprintf("p%d", prod),
			productName:  fmt.Sprintf("Producto %d", prod),
			category:     categories[prod%len(categories)],
			qty:          1 + i%5,
			price:        int64(50 + 37*prod),
		}))
	}
	return sales
}

// ── Escenarios concretos ──────────────────────────────────────────────────────

func TestGenerate_EscenarioConcreto(t *testing.T) {
	sales := []entity.Sale{
		mkSale(t, saleSpec{id: "s1", date: "2024-01-05", customerID: "c1", customerName: "Acme Solutions", region: "North",
			productID: "p1", productName: "Analytics Pro", category: "Software", qty: 2, price: 100}),
		mkSale(t, saleSpec{id: "s2", date: "2024-02-01", customerID: "c1", customerName: "Acme Solutions", region: "North",
			productID: "p2", productName: "Consulting", category: "Services", qty: 1, price: 50}),
	}

	r := fixedAggregator().Generate(sales, "2024-01-01", "2024-01-31")

	assert.Equal(t, "report-fixed", r.ID)
	assert.Equal(t, "2024-03-01", r.ReportDate)
	assert.Equal(t, "2024-01-01", r.StartDate)
	assert.Equal(t, "2024-01-31", r.EndDate)
	assert.Equal(t, 1, r.TotalOrders)
	assertDecimal(t, "200", r.TotalRevenue, "total revenue")
	assertDecimal(t, "200", r.AvgOrderValue, "avg order value")

	require.Len(t, r.RegionWiseStats, 1)
	assert.Equal(t, "North", r.RegionWiseStats[0].Region)
	assert.Equal(t, 1, r.RegionWiseStats[0].Orders)
	assertDecimal(t, "200", r.RegionWiseStats[0].Revenue, "revenue región")

	require.Len(t, r.CategoryWiseStats, 1)
	assert.Equal(t, "Software", r.CategoryWiseStats[0].Category)
	assertDecimal(t, "200", r.CategoryWiseStats[0].Revenue, "revenue categoría")
	assertDecimal(t, "100", r.CategoryWiseStats[0].Percentage, "porcentaje categoría")

	require.Len(t, r.TopProducts, 1)
	assert.Equal(t, "p1", r.TopProducts[0].ID)
	assert.Equal(t, 2, r.TopProducts[0].UnitsSold)

	require.Len(t, r.TopCustomers, 1)
	assert.Equal(t, entity.CustomerBusiness, r.TopCustomers[0].Type)
	assert.Equal(t, 1, r.TopCustomers[0].TotalOrders)
}

func TestGenerate_VentanaSinVentas(t *testing.T) {
	sales := mixedCorpus(t)

	r := fixedAggregator().Generate(sales, "2030-01-01", "2030-12-31")

	assert.Equal(t, 0, r.TotalOrders)
	assert.True(t, r.TotalRevenue.IsZero())
	assert.True(t, r.AvgOrderValue.IsZero())
	assert.NotNil(t, r.TopProducts, "las listas vacías no deben ser nil")
	assert.Empty(t, r.TopProducts)
	assert.Empty(t, r.TopCustomers)
	assert.Empty(t, r.RegionWiseStats)
	assert.Empty(t, r.CategoryWiseStats)
}

func TestGenerate_CorpusVacio(t *testing.T) {
	r := analytics.GenerateReport(nil, "2024-01-01", "2024-01-31")
	assert.Equal(t, 0, r.TotalOrders)
	assert.True(t, r.AvgOrderValue.IsZero())
	assert.NotEmpty(t, r.ID)
}

func TestGenerate_RangoInvertidoNoFalla(t *testing.T) {
	sales := mixedCorpus(t)
	var r entity.AnalyticsReport
	require.NotPanics(t, func() {
		r = analytics.GenerateReport(sales, "2024-03-31", "2024-01-01")
	})
	assert.Equal(t, 0, r.TotalOrders)
	assert.Empty(t, r.CategoryWiseStats)
}

// ── Propiedades ───────────────────────────────────────────────────────────────

func TestGenerate_TotalesCoincidenConVentasFiltradas(t *testing.T) {
	sales := mixedCorpus(t)
	start, end := "2024-01-10", "2024-02-20"

	r := analytics.GenerateReport(sales, start, end)

	var want decimal.Decimal
	count := 0
	for _, s := range sales {
		if s.Date >= start && s.Date <= end {
			want = want.Add(s.TotalRevenue)
			count++
		}
	}
	require.Positive(t, count)
	assert.Equal(t, count, r.TotalOrders)
	assert.True(t, want.Equal(r.TotalRevenue))
	assert.True(t, want.Div(decimal.NewFromInt(int64(count))).Equal(r.AvgOrderValue))
}

func TestGenerate_RegionesSumanTotales(t *testing.T) {
	r := analytics.GenerateReport(mixedCorpus(t), "2024-01-01", "2024-12-31")

	var revenue decimal.Decimal
	orders := 0
	for _, rs := range r.RegionWiseStats {
		revenue = revenue.Add(rs.Revenue)
		orders += rs.Orders
	}
	assert.Equal(t, r.TotalOrders, orders)
	assert.True(t, r.TotalRevenue.Equal(revenue))
	assert.Len(t, r.RegionWiseStats, 3, "una entrada por región distinta")
}

func TestGenerate_CategoriasSumanCienPorCiento(t *testing.T) {
	r := analytics.GenerateReport(mixedCorpus(t), "2024-01-01", "2024-12-31")

	var revenue, pct decimal.Decimal
	for _, cs := range r.CategoryWiseStats {
		revenue = revenue.Add(cs.Revenue)
		pct = pct.Add(cs.Percentage)
	}
	assert.True(t, r.TotalRevenue.Equal(revenue))
	assert.InDelta(t, 100.0, pct.InexactFloat64(), 1e-9)
}

func TestGenerate_PorcentajeCeroConIngresoCero(t *testing.T) {
	free := mkSale(t, saleSpec{id: "s1", date: "2024-01-05", customerID: "c1", customerName: "Jane Doe", region: "West",
		productID: "p9", productName: "Trial", category: "Software", qty: 3, price: 0})

	r := analytics.GenerateReport([]entity.Sale{free}, "2024-01-01", "2024-01-31")

	require.Len(t, r.CategoryWiseStats, 1)
	assert.True(t, r.CategoryWiseStats[0].Percentage.IsZero(), "con ingreso total 0 el porcentaje debe ser 0")
	assert.Equal(t, 1, r.TotalOrders)
	assert.True(t, r.AvgOrderValue.IsZero())
}

func TestGenerate_RankingsAcotadosYOrdenados(t *testing.T) {
	r := analytics.GenerateReport(mixedCorpus(t), "2024-01-01", "2024-12-31")

	assert.LessOrEqual(t, len(r.TopProducts), analytics.DefaultTopN)
	assert.LessOrEqual(t, len(r.TopCustomers), analytics.DefaultTopN)
	assert.Len(t, r.TopProducts, 5, "hay 6 productos, se recorta a 5")
	assert.Len(t, r.TopCustomers, 5, "hay 7 clientes, se recorta a 5")

	for i := 1; i < len(r.TopProducts); i++ {
		assert.True(t, r.TopProducts[i-1].Revenue.GreaterThanOrEqual(r.TopProducts[i].Revenue))
	}
	for i := 1; i < len(r.TopCustomers); i++ {
		assert.True(t, r.TopCustomers[i-1].TotalSpent.GreaterThanOrEqual(r.TopCustomers[i].TotalSpent))
	}
	for i := 1; i < len(r.RegionWiseStats); i++ {
		assert.True(t, r.RegionWiseStats[i-1].Revenue.GreaterThanOrEqual(r.RegionWiseStats[i].Revenue))
	}
	for i := 1; i < len(r.CategoryWiseStats); i++ {
		assert.True(t, r.CategoryWiseStats[i-1].Revenue.GreaterThanOrEqual(r.CategoryWiseStats[i].Revenue))
	}
}

func TestGenerate_WithTopN(t *testing.T) {
	r := analytics.NewAggregator(analytics.WithTopN(2)).Generate(mixedCorpus(t), "2024-01-01", "2024-12-31")
	assert.Len(t, r.TopProducts, 2)
	assert.Len(t, r.TopCustomers, 2)
}

func TestGenerate_LimitesInclusivos(t *testing.T) {
	base := saleSpec{customerID: "c1", customerName: "Jane Doe", region: "West",
		productID: "p1", productName: "Tool", category: "Software", qty: 1, price: 10}
	dates := map[string]string{
		"antes":   "2024-01-09",
		"inicio":  "2024-01-10",
		"fin":     "2024-01-20",
		"despues": "2024-01-21",
	}
	var sales []entity.Sale
	for id, d := range dates {
		s := base
		s.id, s.date = id, d
		sales = append(sales, mkSale(t, s))
	}

	r := analytics.GenerateReport(sales, "2024-01-10", "2024-01-20")

	assert.Equal(t, 2, r.TotalOrders, "solo las ventas en los límites exactos deben incluirse")
	assertDecimal(t, "20", r.TotalRevenue, "total")
}

func TestGenerate_IgnoraComponenteHora(t *testing.T) {
	s := mkSale(t, saleSpec{id: "s1", date: "2024-01-31", customerID: "c1", customerName: "Jane Doe", region: "West",
		productID: "p1", productName: "Tool", category: "Software", qty: 1, price: 10})
	s.Date = "2024-01-31T23:59:59Z"

	r := analytics.GenerateReport([]entity.Sale{s}, "2024-01-01", "2024-01-31T00:00:00Z")

	assert.Equal(t, 1, r.TotalOrders)
	assert.Equal(t, "2024-01-31", r.EndDate)
}

func TestGenerate_Idempotente(t *testing.T) {
	sales := mixedCorpus(t)

	r1 := analytics.GenerateReport(sales, "2024-01-01", "2024-02-29")
	r2 := analytics.GenerateReport(sales, "2024-01-01", "2024-02-29")

	assert.NotEqual(t, r1.ID, r2.ID, "cada generación tiene ID propio")
	r2.ID, r2.ReportDate = r1.ID, r1.ReportDate
	assert.Equal(t, r1, r2, "mismos datos de entrada deben producir el mismo reporte")
}

func TestGenerate_OrdenDeEntradaNoAfectaSalida(t *testing.T) {
	sales := mixedCorpus(t)
	reversed := make([]entity.Sale, len(sales))
	for i, s := range sales {
		reversed[len(sales)-1-i] = s
	}
	agg := fixedAggregator()

	r1 := agg.Generate(sales, "2024-01-01", "2024-12-31")
	r2 := agg.Generate(reversed, "2024-01-01", "2024-12-31")

	require.Equal(t, len(r1.TopProducts), len(r2.TopProducts))
	for i := range r1.TopProducts {
		assert.Equal(t, r1.TopProducts[i].ID, r2.TopProducts[i].ID)
	}
	for i := range r1.TopCustomers {
		assert.Equal(t, r1.TopCustomers[i].ID, r2.TopCustomers[i].ID)
	}
	for i := range r1.RegionWiseStats {
		assert.Equal(t, r1.RegionWiseStats[i].Region, r2.RegionWiseStats[i].Region)
	}
}

func TestGenerate_EmpateDesempataPorClave(t *testing.T) {
	sales := []entity.Sale{
		mkSale(t, saleSpec{id: "s1", date: "2024-01-05", customerID: "c2", customerName: "Zoe", region: "South",
			productID: "pB", productName: "B", category: "Software", qty: 1, price: 100}),
		mkSale(t, saleSpec{id: "s2", date: "2024-01-06", customerID: "c1", customerName: "Al", region: "North",
			productID: "pA", productName: "A", category: "Services", qty: 1, price: 100}),
	}

	r := analytics.GenerateReport(sales, "2024-01-01", "2024-01-31")

	require.Len(t, r.TopProducts, 2)
	assert.Equal(t, "pA", r.TopProducts[0].ID)
	assert.Equal(t, "c1", r.TopCustomers[0].ID)
	assert.Equal(t, "North", r.RegionWiseStats[0].Region)
	assert.Equal(t, "Services", r.CategoryWiseStats[0].Category)
}

func TestGenerate_PrimerValorVisto(t *testing.T) {
	first := mkSale(t, saleSpec{id: "s1", date: "2024-01-05", customerID: "c1", customerName: "Jane Doe", region: "West",
		productID: "p1", productName: "Nombre original", category: "Software", qty: 1, price: 10})
	second := mkSale(t, saleSpec{id: "s2", date: "2024-01-06", customerID: "c1", customerName: "Jane D.", region: "East",
		productID: "p1", productName: "Renombrado", category: "Services", qty: 2, price: 10})

	r := analytics.GenerateReport([]entity.Sale{first, second}, "2024-01-01", "2024-01-31")

	require.Len(t, r.TopProducts, 1)
	assert.Equal(t, "Nombre original", r.TopProducts[0].Name)
	assert.Equal(t, "Software", r.TopProducts[0].Category)
	assert.Equal(t, 3, r.TopProducts[0].UnitsSold)
	assert.Equal(t, "West", r.TopCustomers[0].Region)
	assert.Equal(t, 2, r.TopCustomers[0].TotalOrders)
}

func TestGenerate_TipoExplicitoTienePrioridad(t *testing.T) {
	s := mkSale(t, saleSpec{id: "s1", date: "2024-01-05", customerID: "c1", customerName: "Jane Doe", region: "West",
		productID: "p1", productName: "Tool", category: "Software", qty: 1, price: 10})
	s.CustomerType = entity.CustomerBusiness

	r := analytics.GenerateReport([]entity.Sale{s}, "2024-01-01", "2024-01-31")

	assert.Equal(t, entity.CustomerBusiness, r.TopCustomers[0].Type)
}
