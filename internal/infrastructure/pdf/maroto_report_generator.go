// Package pdf implementa la exportación del reporte de ventas a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + periodo     │  ID reporte + fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: Ingresos | Órdenes | Ticket promedio              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Top productos                                        │
//	│  TABLA: Top clientes                                         │
//	│  TABLA: Regiones  │  TABLA: Categorías                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator exporta un AnalyticsReport como documento PDF.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

func (g *MarotoReportGenerator) ContentType() string { return "application/pdf" }
func (g *MarotoReportGenerator) Extension() string   { return "pdf" }

// Export genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) Export(_ context.Context, r *entity.AnalyticsReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sales Report "+r.StartDate+" - "+r.EndDate, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Top Products"))
	m.AddRows(tableHeader([]string{"#", "Product", "Category", "Units", "Revenue"}, []int{1, 5, 2, 1, 3}))
	for i, p := range r.TopProducts {
		m.AddRows(tableRow([]string{
			strconv.Itoa(i + 1), p.Name, p.Category, strconv.Itoa(p.UnitsSold), "$" + formatMoney(p.Revenue),
		}, []int{1, 5, 2, 1, 3}))
	}

	m.AddRows(sectionTitle("Top Customers"))
	m.AddRows(tableHeader([]string{"#", "Customer", "Region", "Type", "Orders", "Spent"}, []int{1, 4, 2, 2, 1, 2}))
	for i, c := range r.TopCustomers {
		m.AddRows(tableRow([]string{
			strconv.Itoa(i + 1), c.Name, c.Region, string(c.Type), strconv.Itoa(c.TotalOrders), "$" + formatMoney(c.TotalSpent),
		}, []int{1, 4, 2, 2, 1, 2}))
	}

	m.AddRows(sectionTitle("Regions"))
	m.AddRows(tableHeader([]string{"Region", "Orders", "Revenue"}, []int{6, 2, 4}))
	for _, rs := range r.RegionWiseStats {
		m.AddRows(tableRow([]string{rs.Region, strconv.Itoa(rs.Orders), "$" + formatMoney(rs.Revenue)}, []int{6, 2, 4}))
	}

	m.AddRows(sectionTitle("Categories"))
	m.AddRows(tableHeader([]string{"Category", "Share", "Revenue"}, []int{6, 2, 4}))
	for _, cs := range r.CategoryWiseStats {
		m.AddRows(tableRow([]string{cs.Category, cs.Percentage.StringFixed(2) + "%", "$" + formatMoney(cs.Revenue)}, []int{6, 2, 4}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte %s: %w", r.ID, err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r *entity.AnalyticsReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("SALES REPORT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(r.StartDate+" to "+r.EndDate, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(nonEmpty(r.ID, "-"), props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Top: 2,
			}),
			text.New("Generated: "+nonEmpty(r.ReportDate, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// metricsRow: tres tarjetas con los totales del periodo.
func metricsRow(r *entity.AnalyticsReport) core.Row {
	card := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		card("Total Revenue", "$"+formatMoney(r.TotalRevenue)),
		card("Total Orders", strconv.Itoa(r.TotalOrders)),
		card("Average Order Value", "$"+formatMoney(r.AvgOrderValue)),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
	))
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: cellAlign(i, len(labels)), Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func tableRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 8, Align: cellAlign(i, len(values)), Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

// La última columna siempre es un monto.
func cellAlign(i, n int) align.Type {
	if i == n-1 {
		return align.Right
	}
	return align.Left
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney redondea a 2 decimales e inserta comas de miles.
// Ej: 25000 → "25,000.00", 1234567.891 → "1,234,567.89"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
