package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de factura: por cobrar (a clientes) y por pagar (a proveedores).
const (
	InvoiceKindReceivable = "cobrar"
	InvoiceKindPayable    = "pagar"
)

// Estados sugeridos para la factura. El estado es una etiqueta libre, no una máquina de estados.
const (
	InvoiceStatusPendiente = "pendiente"
	InvoiceStatusParcial   = "parcial"
	InvoiceStatusPagada    = "pagada"
	InvoiceStatusVencida   = "vencida"
)

// CounterpartyKindFor devuelve el tipo de contraparte que corresponde a un tipo de factura.
func CounterpartyKindFor(invoiceKind string) (string, bool) {
	switch invoiceKind {
	case InvoiceKindReceivable:
		return CounterpartyCliente, true
	case InvoiceKindPayable:
		return CounterpartyProveedor, true
	}
	return "", false
}

// Invoice factura de cliente o de proveedor con su saldo pendiente.
// Invariante: 0 <= Balance <= Amount tras cualquier operación.
type Invoice struct {
	ID               string
	Kind             string // cobrar | pagar
	CounterpartyID   string
	CounterpartyName string
	Number           string
	IssueDate        time.Time
	DueDate          *time.Time
	Amount           decimal.Decimal // monto original
	Balance          decimal.Decimal // saldo, derivado de Amount y los abonos
	Status           string
	Description      string
	Version          int64
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Paid indica si la factura no tiene saldo pendiente.
func (i *Invoice) Paid() bool {
	return i.Balance.IsZero()
}

// DisplayStatus devuelve la etiqueta almacenada o, si está vacía, una derivada del saldo.
func (i *Invoice) DisplayStatus() string {
	if i.Status != "" {
		return i.Status
	}
	switch {
	case i.Paid():
		return InvoiceStatusPagada
	case i.Balance.LessThan(i.Amount):
		return InvoiceStatusParcial
	default:
		return InvoiceStatusPendiente
	}
}
