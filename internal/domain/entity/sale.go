package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato ISO (solo fecha) usado en ventas y reportes.
const DateLayout = "2006-01-02"

// Sale representa un hecho de venta inmutable: un cliente, un producto, una fecha y un monto.
// TotalRevenue siempre es Quantity * UnitPrice (ver NewSale y Validate).
type Sale struct {
	ID           string
	Date         string // YYYY-MM-DD
	CustomerID   string
	CustomerName string
	CustomerType CustomerType // opcional; vacío = se infiere del nombre
	Region       string
	ProductID    string
	ProductName  string
	Category     string
	Quantity     int
	UnitPrice    decimal.Decimal
	TotalRevenue decimal.Decimal
}

// SaleParams datos de entrada para construir una venta.
type SaleParams struct {
	ID           string
	Date         string
	CustomerID   string
	CustomerName string
	CustomerType CustomerType
	Region       string
	ProductID    string
	ProductName  string
	Category     string
	Quantity     int
	UnitPrice    decimal.Decimal
}

// NewSale construye una venta derivando TotalRevenue y la valida.
func NewSale(p SaleParams) (Sale, error) {
	s := Sale{
		ID:           p.ID,
		Date:         p.Date,
		CustomerID:   p.CustomerID,
		CustomerName: p.CustomerName,
		CustomerType: p.CustomerType,
		Region:       p.Region,
		ProductID:    p.ProductID,
		ProductName:  p.ProductName,
		Category:     p.Category,
		Quantity:     p.Quantity,
		UnitPrice:    p.UnitPrice,
		TotalRevenue: p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity))),
	}
	if err := s.Validate(); err != nil {
		return Sale{}, err
	}
	return s, nil
}

// Validate verifica las invariantes de la venta.
func (s Sale) Validate() error {
	if s.ID == "" || s.CustomerID == "" || s.ProductID == "" {
		return fmt.Errorf("id, customer_id y product_id son requeridos")
	}
	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		return fmt.Errorf("venta %s: fecha %q inválida", s.ID, s.Date)
	}
	if s.Quantity <= 0 {
		return fmt.Errorf("venta %s: quantity debe ser positiva", s.ID)
	}
	if s.UnitPrice.IsNegative() {
		return fmt.Errorf("venta %s: unit_price no puede ser negativo", s.ID)
	}
	if !s.CustomerType.Valid() {
		return fmt.Errorf("venta %s: customer_type %q desconocido", s.ID, s.CustomerType)
	}
	expected := s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
	if !s.TotalRevenue.Equal(expected) {
		return fmt.Errorf("venta %s: total_revenue %s != quantity * unit_price (%s)",
			s.ID, s.TotalRevenue.String(), expected.String())
	}
	return nil
}
