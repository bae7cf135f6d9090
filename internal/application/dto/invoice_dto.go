package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	Type           string          `json:"type" validate:"required,oneof=cobrar pagar"`
	CounterpartyID string          `json:"counterparty_id" validate:"required,max=64"`
	Number         string          `json:"numero_factura" validate:"required,max=60"`
	IssueDate      string          `json:"fecha_emision" validate:"required,datetime=2006-01-02"`
	DueDate        string          `json:"fecha_vencimiento,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Amount         decimal.Decimal `json:"monto"`
	Status         string          `json:"estado,omitempty" validate:"max=40"`
	Description    string          `json:"descripcion,omitempty" validate:"max=500"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id. Campos nil no cambian.
// Si cambia monto, el saldo se recalcula contra los abonos existentes.
type UpdateInvoiceRequest struct {
	CounterpartyID *string          `json:"counterparty_id,omitempty" validate:"omitempty,max=64"`
	Number         *string          `json:"numero_factura,omitempty" validate:"omitempty,min=1,max=60"`
	IssueDate      *string          `json:"fecha_emision,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate        *string          `json:"fecha_vencimiento,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Amount         *decimal.Decimal `json:"monto,omitempty"`
	Status         *string          `json:"estado,omitempty" validate:"omitempty,max=40"`
	Description    *string          `json:"descripcion,omitempty" validate:"omitempty,max=500"`
}

// InvoiceFilterRequest query de GET /api/invoices.
type InvoiceFilterRequest struct {
	PageRequest
	Type           string `query:"type" validate:"omitempty,oneof=cobrar pagar"`
	CounterpartyID string `query:"counterparty_id"`
	OnlyPending    bool   `query:"pending"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID               string          `json:"id"`
	Type             string          `json:"type"`
	CounterpartyID   string          `json:"counterparty_id"`
	CounterpartyName string          `json:"counterparty_name,omitempty"`
	Number           string          `json:"numero_factura"`
	IssueDate        string          `json:"fecha_emision"`
	DueDate          string          `json:"fecha_vencimiento,omitempty"`
	Amount           decimal.Decimal `json:"monto"`
	Balance          decimal.Decimal `json:"saldo"`
	Status           string          `json:"estado"`
	Description      string          `json:"descripcion,omitempty"`
	Version          int64           `json:"version"`
	CreatedBy        string          `json:"created_by,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// InvoiceMutationResponse respuesta de una edición; Warning presente si el saldo no pudo reconciliarse.
type InvoiceMutationResponse struct {
	Invoice InvoiceResponse  `json:"invoice"`
	Warning *WarningResponse `json:"warning,omitempty"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// BalanceCheckResponse resultado de verificar saldo contra abonos.
type BalanceCheckResponse struct {
	InvoiceID       string          `json:"invoice_id"`
	Amount          decimal.Decimal `json:"monto"`
	StoredBalance   decimal.Decimal `json:"saldo_almacenado"`
	ExpectedBalance decimal.Decimal `json:"saldo_esperado"`
	PaymentsTotal   decimal.Decimal `json:"total_abonos"`
	PaymentCount    int             `json:"cantidad_abonos"`
	Consistent      bool            `json:"consistente"`
	Issues          []string        `json:"problemas,omitempty"`
}

// VerificationReport resultado de verificar todas las facturas.
type VerificationReport struct {
	Checked      int                    `json:"revisadas"`
	Inconsistent []BalanceCheckResponse `json:"inconsistentes"`
}
