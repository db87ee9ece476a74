package analytics

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/jhoicas/sales-analytics/internal/domain"
	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

// CheckDimensions verifica la dependencia funcional que asume la agregación:
//   - productId  → (productName, category)
//   - customerId → (customerName, region)
//
// Devuelve nil si todas las ventas son consistentes; si no, un error combinado
// (multierr) con un conflicto por clave, cada uno envolviendo domain.ErrDimensionConflict.
func CheckDimensions(sales []entity.Sale) error {
	type productAttrs struct{ name, category string }
	type customerAttrs struct{ name, region string }

	products := make(map[string]productAttrs)
	customers := make(map[string]customerAttrs)
	reported := make(map[string]bool)

	var errs error
	for _, s := range sales {
		p := productAttrs{s.ProductName, s.Category}
		if seen, ok := products[s.ProductID]; !ok {
			products[s.ProductID] = p
		} else if seen != p && !reported["p:"+s.ProductID] {
			reported["p:"+s.ProductID] = true
			errs = multierr.Append(errs, fmt.Errorf("%w: producto %s (%q/%q vs %q/%q en venta %s)",
				domain.ErrDimensionConflict, s.ProductID, seen.name, seen.category, p.name, p.category, s.ID))
		}

		c := customerAttrs{s.CustomerName, s.Region}
		if seen, ok := customers[s.CustomerID]; !ok {
			customers[s.CustomerID] = c
		} else if seen != c && !reported["c:"+s.CustomerID] {
			reported["c:"+s.CustomerID] = true
			errs = multierr.Append(errs, fmt.Errorf("%w: cliente %s (%q/%q vs %q/%q en venta %s)",
				domain.ErrDimensionConflict, s.CustomerID, seen.name, seen.region, c.name, c.region, s.ID))
		}
	}
	return errs
}
