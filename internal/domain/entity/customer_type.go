package entity

// CustomerType clasificación comercial del cliente.
type CustomerType string

const (
	CustomerBusiness   CustomerType = "Business"
	CustomerIndividual CustomerType = "Individual"
)

// Valid acepta los dos tipos conocidos y el valor vacío (tipo no informado).
func (t CustomerType) Valid() bool {
	switch t {
	case "", CustomerBusiness, CustomerIndividual:
		return true
	}
	return false
}
