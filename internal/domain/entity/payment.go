package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago habituales (etiqueta libre).
const (
	PaymentMethodEfectivo      = "efectivo"
	PaymentMethodTarjeta       = "tarjeta"
	PaymentMethodTransferencia = "transferencia"
	PaymentMethodSinpe         = "sinpe"
)

// Payment abono a una factura por cobrar o pago a una factura por pagar. Inmutable una vez creado.
type Payment struct {
	ID             string
	InvoiceID      string
	Amount         decimal.Decimal
	Date           time.Time
	Method         string
	Reference      string
	RecordedBy     string
	RecordedByName string
	CreatedAt      time.Time
}
