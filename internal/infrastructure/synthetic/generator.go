// Package synthetic genera el corpus de ventas de demostración que alimenta el dashboard.
package synthetic

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

type customer struct {
	id, name, region string
	kind             entity.CustomerType
}

type product struct {
	id, name, category string
	price              int64
}

// Catálogo fijo del corpus de demostración.
var (
	customers = []customer{
		{"1", "TechCorp Inc.", "North", entity.CustomerBusiness},
		{"2", "John Smith", "South", entity.CustomerIndividual},
		{"3", "DataSync Solutions", "East", entity.CustomerBusiness},
		{"4", "Sarah Johnson", "West", entity.CustomerIndividual},
		{"5", "Global Systems Ltd", "North", entity.CustomerBusiness},
	}
	products = []product{
		{"1", "Analytics Pro License", "Software", 299},
		{"2", "Business Intelligence Suite", "Software", 599},
		{"3", "Data Visualization Tool", "Software", 199},
		{"4", "Consulting Services", "Services", 150},
		{"5", "Training Package", "Services", 89},
	}
)

const maxQuantity = 5

// Generator produce ventas aleatorias reproducibles a partir de una semilla.
type Generator struct {
	count int
	years int
	rng   *rand.Rand
}

// NewGenerator count ventas repartidas en los últimos years años. seed == 0 usa el reloj.
func NewGenerator(count, years int, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if years <= 0 {
		years = 1
	}
	return &Generator{
		count: count,
		years: years,
		rng:   rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Generate devuelve el corpus ordenado por fecha descendente (IDs sale-1..sale-N).
func (g *Generator) Generate(now time.Time) []entity.Sale {
	end := now.UTC()
	start := end.AddDate(-g.years, 0, 0)
	span := end.Sub(start)

	sales := make([]entity.Sale, 0, g.count)
	for i := 0; i < g.count; i++ {
		c := customers[g.rng.IntN(len(customers))]
		p := products[g.rng.IntN(len(products))]
		qty := g.rng.IntN(maxQuantity) + 1
		date := start.Add(time.Duration(g.rng.Int64N(int64(span) + 1)))
		price := decimal.NewFromInt(p.price)

		sales = append(sales, entity.Sale{
			ID:           fmt.Sprintf("sale-%d", i+1),
			Date:         date.Format(entity.DateLayout),
			CustomerID:   c.id,
			CustomerName: c.name,
			CustomerType: c.kind,
			Region:       c.region,
			ProductID:    p.id,
			ProductName:  p.name,
			Category:     p.category,
			Quantity:     qty,
			UnitPrice:    price,
			TotalRevenue: price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	slices.SortStableFunc(sales, func(a, b entity.Sale) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return sales
}
