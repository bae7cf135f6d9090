package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest body para POST /api/payments.
type CreatePaymentRequest struct {
	InvoiceID string          `json:"invoice_id" validate:"required,max=64"`
	Amount    decimal.Decimal `json:"monto"`
	Date      string          `json:"fecha,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Method    string          `json:"metodo_pago,omitempty" validate:"max=40"`
	Reference string          `json:"referencia,omitempty" validate:"max=120"`
}

// PaymentResponse salida de un abono.
type PaymentResponse struct {
	ID             string          `json:"id"`
	InvoiceID      string          `json:"invoice_id"`
	Amount         decimal.Decimal `json:"monto"`
	Date           string          `json:"fecha"`
	Method         string          `json:"metodo_pago"`
	Reference      string          `json:"referencia,omitempty"`
	RecordedBy     string          `json:"usuario_registro"`
	RecordedByName string          `json:"usuario_nombre,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PaymentResultResponse abono registrado junto con la factura actualizada.
type PaymentResultResponse struct {
	Payment PaymentResponse `json:"payment"`
	Invoice InvoiceResponse `json:"invoice"`
}
