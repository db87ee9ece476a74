package analytics

import (
	"strings"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
)

// businessMarkers sufijos/palabras que delatan una razón social.
var businessMarkers = []string{"Inc.", "Ltd", "Solutions", "Systems"}

// ClassifyCustomer infiere el tipo de cliente a partir del nombre cuando la venta no lo trae.
// Es una heurística frágil: solo se usa como respaldo del campo explícito Sale.CustomerType.
func ClassifyCustomer(name string) entity.CustomerType {
	for _, marker := range businessMarkers {
		if strings.Contains(name, marker) {
			return entity.CustomerBusiness
		}
	}
	return entity.CustomerIndividual
}
