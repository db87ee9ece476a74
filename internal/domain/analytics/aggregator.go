// Package analytics contiene el motor de agregación de ventas (servicio de dominio puro):
// filtra las ventas de una ventana de fechas y produce un AnalyticsReport.
package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

// DefaultTopN tamaño de los rankings de productos y clientes.
const DefaultTopN = 5

var hundred = decimal.NewFromInt(100)

// Aggregator genera reportes analíticos. No hace I/O ni guarda estado entre llamadas;
// solo ID y ReportDate dependen del reloj y del generador de IDs.
type Aggregator struct {
	topN  int
	now   func() time.Time
	newID func() string
}

// Option configura el Aggregator.
type Option func(*Aggregator)

// WithTopN cambia el tamaño de los rankings (valores <= 0 se ignoran).
func WithTopN(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.topN = n
		}
	}
}

// WithClock inyecta el reloj usado para ReportDate.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// WithIDGenerator inyecta el generador de IDs de reporte.
func WithIDGenerator(newID func() string) Option {
	return func(a *Aggregator) { a.newID = newID }
}

// NewAggregator construye el agregador con top 5, reloj real e IDs "report-<uuid>".
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		topN:  DefaultTopN,
		now:   time.Now,
		newID: func() string { return "report-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GenerateReport atajo con la configuración por defecto.
func GenerateReport(sales []entity.Sale, startDate, endDate string) entity.AnalyticsReport {
	return NewAggregator().Generate(sales, startDate, endDate)
}

// Generate filtra las ventas con fecha en [startDate, endDate] (inclusive, comparación
// lexicográfica de fechas ISO) y agrega por producto, cliente, región y categoría.
// Nunca falla: un rango invertido o sin ventas produce un reporte vacío.
func (a *Aggregator) Generate(sales []entity.Sale, startDate, endDate string) entity.AnalyticsReport {
	start, end := dateOnly(startDate), dateOnly(endDate)
	filtered := FilterByWindow(sales, start, end)

	var totalRevenue decimal.Decimal
	for _, s := range filtered {
		totalRevenue = totalRevenue.Add(s.TotalRevenue)
	}
	totalOrders := len(filtered)
	avgOrderValue := decimal.Zero
	if totalOrders > 0 {
		avgOrderValue = totalRevenue.Div(decimal.NewFromInt(int64(totalOrders)))
	}

	return entity.AnalyticsReport{
		ID:                a.newID(),
		ReportDate:        a.now().Format(entity.DateLayout),
		StartDate:         start,
		EndDate:           end,
		TotalRevenue:      totalRevenue,
		TotalOrders:       totalOrders,
		AvgOrderValue:     avgOrderValue,
		TopProducts:       topN(groupProducts(filtered), a.topN),
		TopCustomers:      topN(groupCustomers(filtered), a.topN),
		RegionWiseStats:   groupRegions(filtered),
		CategoryWiseStats: groupCategories(filtered, totalRevenue),
	}
}

// FilterByWindow devuelve las ventas cuya fecha cae en [start, end], ambos inclusive.
func FilterByWindow(sales []entity.Sale, start, end string) []entity.Sale {
	out := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		d := dateOnly(s.Date)
		if d >= start && d <= end {
			out = append(out, s)
		}
	}
	return out
}

// dateOnly descarta cualquier componente de hora ("2024-01-05T10:00:00Z" → "2024-01-05").
func dateOnly(s string) string {
	if len(s) > len(entity.DateLayout) {
		return s[:len(entity.DateLayout)]
	}
	return s
}

// ── Agrupaciones ──────────────────────────────────────────────────────────────

// group acumuladores por clave manteniendo el orden de primera aparición.
type group[T any] struct {
	index map[string]int
	items []T
}

func newGroup[T any]() *group[T] {
	return &group[T]{index: make(map[string]int)}
}

// upsert devuelve el acumulador de key; init solo se llama la primera vez (first-seen-wins).
func (g *group[T]) upsert(key string, init func() T) *T {
	i, ok := g.index[key]
	if !ok {
		i = len(g.items)
		g.index[key] = i
		g.items = append(g.items, init())
	}
	return &g.items[i]
}

func groupProducts(sales []entity.Sale) []entity.ProductSummary {
	g := newGroup[entity.ProductSummary]()
	for _, s := range sales {
		p := g.upsert(s.ProductID, func() entity.ProductSummary {
			return entity.ProductSummary{ID: s.ProductID, Name: s.ProductName, Category: s.Category}
		})
		p.UnitsSold += s.Quantity
		p.Revenue = p.Revenue.Add(s.TotalRevenue)
	}
	slices.SortStableFunc(g.items, func(a, b entity.ProductSummary) int {
		return byRevenueDesc(a.Revenue, b.Revenue, a.ID, b.ID)
	})
	return g.items
}

func groupCustomers(sales []entity.Sale) []entity.CustomerSummary {
	g := newGroup[entity.CustomerSummary]()
	for _, s := range sales {
		c := g.upsert(s.CustomerID, func() entity.CustomerSummary {
			return entity.CustomerSummary{
				ID:     s.CustomerID,
				Name:   s.CustomerName,
				Region: s.Region,
				Type:   customerType(s),
			}
		})
		c.TotalOrders++
		c.TotalSpent = c.TotalSpent.Add(s.TotalRevenue)
	}
	slices.SortStableFunc(g.items, func(a, b entity.CustomerSummary) int {
		return byRevenueDesc(a.TotalSpent, b.TotalSpent, a.ID, b.ID)
	})
	return g.items
}

func groupRegions(sales []entity.Sale) []entity.RegionStat {
	g := newGroup[entity.RegionStat]()
	for _, s := range sales {
		r := g.upsert(s.Region, func() entity.RegionStat {
			return entity.RegionStat{Region: s.Region}
		})
		r.Revenue = r.Revenue.Add(s.TotalRevenue)
		r.Orders++
	}
	slices.SortStableFunc(g.items, func(a, b entity.RegionStat) int {
		return byRevenueDesc(a.Revenue, b.Revenue, a.Region, b.Region)
	})
	return orEmpty(g.items)
}

func groupCategories(sales []entity.Sale, totalRevenue decimal.Decimal) []entity.CategoryStat {
	g := newGroup[entity.CategoryStat]()
	for _, s := range sales {
		c := g.upsert(s.Category, func() entity.CategoryStat {
			return entity.CategoryStat{Category: s.Category}
		})
		c.Revenue = c.Revenue.Add(s.TotalRevenue)
	}
	for i := range g.items {
		g.items[i].Percentage = percentage(g.items[i].Revenue, totalRevenue)
	}
	slices.SortStableFunc(g.items, func(a, b entity.CategoryStat) int {
		return byRevenueDesc(a.Revenue, b.Revenue, a.Category, b.Category)
	})
	return orEmpty(g.items)
}

// percentage 100 * part / total, 0% cuando total es cero (evita NaN).
func percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}

// customerType usa el tipo explícito de la venta; si falta, aplica la heurística por nombre.
func customerType(s entity.Sale) entity.CustomerType {
	if s.CustomerType != "" {
		return s.CustomerType
	}
	return ClassifyCustomer(s.CustomerName)
}

// byRevenueDesc ordena por monto descendente; empate por clave ascendente.
func byRevenueDesc(a, b decimal.Decimal, keyA, keyB string) int {
	if c := b.Cmp(a); c != 0 {
		return c
	}
	return cmp.Compare(keyA, keyB)
}

func topN[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	return orEmpty(items)
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
