package entity

import "time"

// Tipos de contraparte.
const (
	CounterpartyCliente   = "cliente"
	CounterpartyProveedor = "proveedor"
)

// Counterparty representa un cliente o un proveedor (referencia de solo lectura para el motor).
type Counterparty struct {
	ID        string
	Kind      string // cliente | proveedor
	Name      string
	TaxID     string
	Phone     string
	Email     string
	Active    bool
	CreatedAt time.Time
}
