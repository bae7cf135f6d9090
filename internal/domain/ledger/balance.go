// Package ledger contiene la lógica pura de saldos de facturas y de stock de inventario.
// No accede a persistencia: recibe el estado actual y devuelve el estado nuevo o un error de validación.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/money"
)

// NewInvoiceInput datos para registrar una factura.
type NewInvoiceInput struct {
	Kind           string
	CounterpartyID string
	Number         string
	IssueDate      time.Time
	DueDate        *time.Time
	Amount         decimal.Decimal
	Status         string
	Description    string
	CreatedBy      string
	Now            time.Time
}

// ValidateAmount redondea y valida que el monto de una factura sea positivo.
func ValidateAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	amount = money.RoundMoney(amount)
	if !money.IsPositive(amount) {
		return decimal.Zero, &domain.ValidationError{Field: "monto", Message: "el monto debe ser mayor a 0", Err: domain.ErrNonPositiveAmount}
	}
	return amount, nil
}

// NewInvoice crea una factura con saldo igual al monto.
func NewInvoice(in NewInvoiceInput) (*entity.Invoice, error) {
	if _, ok := entity.CounterpartyKindFor(in.Kind); !ok {
		return nil, domain.Invalid("type", "tipo de factura inválido %q (cobrar|pagar)", in.Kind)
	}
	if strings.TrimSpace(in.CounterpartyID) == "" {
		return nil, domain.Invalid("counterparty_id", "la contraparte es requerida")
	}
	if strings.TrimSpace(in.Number) == "" {
		return nil, domain.Invalid("numero_factura", "el número de factura es requerido")
	}
	if in.IssueDate.IsZero() {
		return nil, domain.Invalid("fecha_emision", "la fecha de emisión es requerida")
	}
	if in.DueDate != nil && in.DueDate.Before(in.IssueDate) {
		return nil, domain.Invalid("fecha_vencimiento", "la fecha de vencimiento no puede ser anterior a la emisión")
	}
	amount, err := ValidateAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	return &entity.Invoice{
		Kind:           in.Kind,
		CounterpartyID: in.CounterpartyID,
		Number:         strings.TrimSpace(in.Number),
		IssueDate:      in.IssueDate,
		DueDate:        in.DueDate,
		Amount:         amount,
		Balance:        amount,
		Status:         strings.TrimSpace(in.Status), // vacío = estado derivado del saldo
		Description:    in.Description,
		Version:        1,
		CreatedBy:      in.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// PaymentInput datos de un abono.
type PaymentInput struct {
	Amount         decimal.Decimal
	Date           time.Time
	Method         string
	Reference      string
	RecordedBy     string
	RecordedByName string
	Now            time.Time
}

// ApplyPayment valida 0 < abono <= saldo, descuenta el saldo de inv y devuelve el abono a persistir.
// Si la validación falla inv no se modifica.
func ApplyPayment(inv *entity.Invoice, in PaymentInput) (*entity.Payment, error) {
	amount := money.RoundMoney(in.Amount)
	if !money.IsPositive(amount) {
		return nil, &domain.ValidationError{Field: "monto", Message: "el abono debe ser mayor a 0", Err: domain.ErrNonPositiveAmount}
	}
	if amount.GreaterThan(inv.Balance) {
		return nil, &domain.ValidationError{
			Field:   "monto",
			Message: fmt.Sprintf("el abono no puede exceder el saldo adeudado (saldo %s, abono %s)", inv.Balance.StringFixed(money.MoneyScale), amount.StringFixed(money.MoneyScale)),
			Err:     domain.ErrPaymentExceedsBalance,
		}
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	date := in.Date
	if date.IsZero() {
		date = now
	}
	method := strings.TrimSpace(in.Method)
	if method == "" {
		method = entity.PaymentMethodEfectivo
	}

	// El clamp no debería activarse con la validación anterior; se mantiene como segunda barrera.
	inv.Balance = money.ClampNonNegative(inv.Balance.Sub(amount))
	inv.UpdatedAt = now

	return &entity.Payment{
		InvoiceID:      inv.ID,
		Amount:         amount,
		Date:           date,
		Method:         method,
		Reference:      in.Reference,
		RecordedBy:     in.RecordedBy,
		RecordedByName: in.RecordedByName,
		CreatedAt:      now,
	}, nil
}

// PaymentsTotal suma los montos de los abonos.
func PaymentsTotal(payments []*entity.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// RecomputeBalance saldo = max(0, monto - Σ abonos).
func RecomputeBalance(amount decimal.Decimal, payments []*entity.Payment) decimal.Decimal {
	return money.ClampNonNegative(money.RoundMoney(amount).Sub(PaymentsTotal(payments)))
}

// BalanceCheck resultado de comparar el saldo almacenado con el derivado de los abonos.
type BalanceCheck struct {
	InvoiceID       string
	Amount          decimal.Decimal
	StoredBalance   decimal.Decimal
	ExpectedBalance decimal.Decimal
	PaymentsTotal   decimal.Decimal
	PaymentCount    int
	Issues          []string
}

// Consistent indica que no se detectaron problemas.
func (c BalanceCheck) Consistent() bool { return len(c.Issues) == 0 }

// CheckBalance detecta corrupción: saldo fuera de [0, monto] o distinto de max(0, monto - Σ abonos).
func CheckBalance(inv *entity.Invoice, payments []*entity.Payment) BalanceCheck {
	total := PaymentsTotal(payments)
	check := BalanceCheck{
		InvoiceID:       inv.ID,
		Amount:          inv.Amount,
		StoredBalance:   inv.Balance,
		ExpectedBalance: RecomputeBalance(inv.Amount, payments),
		PaymentsTotal:   total,
		PaymentCount:    len(payments),
	}
	if inv.Balance.IsNegative() {
		check.Issues = append(check.Issues, "saldo negativo")
	}
	if inv.Balance.GreaterThan(inv.Amount) {
		check.Issues = append(check.Issues, "saldo mayor al monto de la factura")
	}
	if total.GreaterThan(inv.Amount) {
		check.Issues = append(check.Issues, "la suma de abonos excede el monto de la factura")
	}
	if !inv.Balance.Equal(check.ExpectedBalance) {
		check.Issues = append(check.Issues, fmt.Sprintf("saldo %s no coincide con monto - abonos = %s",
			inv.Balance.StringFixed(money.MoneyScale), check.ExpectedBalance.StringFixed(money.MoneyScale)))
	}
	return check
}
