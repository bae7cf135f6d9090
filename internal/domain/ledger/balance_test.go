package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/ledger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newInvoice(t *testing.T, amount string) *entity.Invoice {
	t.Helper()
	inv, err := ledger.NewInvoice(ledger.NewInvoiceInput{
		Kind:           entity.InvoiceKindReceivable,
		CounterpartyID: "cli-1",
		Number:         "F-001",
		IssueDate:      fixedNow,
		Amount:         dec(amount),
		Now:            fixedNow,
	})
	require.NoError(t, err)
	inv.ID = "inv-1"
	return inv
}

func TestNewInvoice_SaldoIgualAMonto(t *testing.T) {
	inv := newInvoice(t, "1000")
	assert.True(t, dec("1000").Equal(inv.Amount))
	assert.True(t, dec("1000").Equal(inv.Balance))
	assert.Empty(t, inv.Status)
	assert.Equal(t, entity.InvoiceStatusPendiente, inv.DisplayStatus())
	assert.Equal(t, int64(1), inv.Version)
}

func TestNewInvoice_Validaciones(t *testing.T) {
	base := ledger.NewInvoiceInput{
		Kind: entity.InvoiceKindPayable, CounterpartyID: "prov-1", Number: "P-1",
		IssueDate: fixedNow, Amount: dec("50"),
	}
	cases := []struct {
		name   string
		mutate func(in *ledger.NewInvoiceInput)
		field  string
		target error
	}{
		{"monto cero", func(in *ledger.NewInvoiceInput) { in.Amount = decimal.Zero }, "monto", domain.ErrNonPositiveAmount},
		{"monto negativo", func(in *ledger.NewInvoiceInput) { in.Amount = dec("-10") }, "monto", domain.ErrNonPositiveAmount},
		{"monto que redondea a cero", func(in *ledger.NewInvoiceInput) { in.Amount = dec("0.001") }, "monto", domain.ErrNonPositiveAmount},
		{"tipo inválido", func(in *ledger.NewInvoiceInput) { in.Kind = "otro" }, "type", domain.ErrInvalidInput},
		{"sin contraparte", func(in *ledger.NewInvoiceInput) { in.CounterpartyID = " " }, "counterparty_id", domain.ErrInvalidInput},
		{"sin número", func(in *ledger.NewInvoiceInput) { in.Number = "" }, "numero_factura", domain.ErrInvalidInput},
		{"sin fecha", func(in *ledger.NewInvoiceInput) { in.IssueDate = time.Time{} }, "fecha_emision", domain.ErrInvalidInput},
		{"vencimiento anterior", func(in *ledger.NewInvoiceInput) {
			d := fixedNow.AddDate(0, 0, -1)
			in.DueDate = &d
		}, "fecha_vencimiento", domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := ledger.NewInvoice(in)
			require.Error(t, err)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

// Escenario: monto 1000, abono 400 → 600; abono 700 rechazado; abono 600 → 0.
func TestApplyPayment_EscenarioCompleto(t *testing.T) {
	inv := newInvoice(t, "1000")

	p, err := ledger.ApplyPayment(inv, ledger.PaymentInput{Amount: dec("400"), RecordedBy: "u-1", Now: fixedNow})
	require.NoError(t, err)
	assert.True(t, dec("600").Equal(inv.Balance))
	assert.Equal(t, "inv-1", p.InvoiceID)
	assert.Equal(t, "u-1", p.RecordedBy)
	assert.Equal(t, entity.PaymentMethodEfectivo, p.Method)
	assert.Equal(t, fixedNow, p.Date)

	_, err = ledger.ApplyPayment(inv, ledger.PaymentInput{Amount: dec("700")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentExceedsBalance)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "saldo 600.00")
	assert.True(t, dec("600").Equal(inv.Balance), "el saldo no cambia al fallar")

	_, err = ledger.ApplyPayment(inv, ledger.PaymentInput{Amount: dec("600")})
	require.NoError(t, err)
	assert.True(t, inv.Balance.IsZero())
	assert.True(t, inv.Paid())
	assert.Empty(t, inv.Status, "la etiqueta libre no se toca")
	assert.Equal(t, entity.InvoiceStatusPagada, inv.DisplayStatus())
}

func TestApplyPayment_MontoNoPositivo(t *testing.T) {
	for _, amount := range []string{"0", "-5", "0.004"} {
		inv := newInvoice(t, "100")
		_, err := ledger.ApplyPayment(inv, ledger.PaymentInput{Amount: dec(amount)})
		require.Error(t, err, amount)
		assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
		assert.True(t, dec("100").Equal(inv.Balance))
	}
}

func TestApplyPayment_MetodoYFechaExplicitos(t *testing.T) {
	inv := newInvoice(t, "100")
	date := fixedNow.AddDate(0, 0, -2)
	p, err := ledger.ApplyPayment(inv, ledger.PaymentInput{
		Amount: dec("10.555"), Date: date, Method: "sinpe", Reference: "TX-9",
	})
	require.NoError(t, err)
	assert.True(t, dec("10.56").Equal(p.Amount), "el abono se redondea a céntimos")
	assert.True(t, dec("89.44").Equal(inv.Balance))
	assert.Equal(t, "sinpe", p.Method)
	assert.Equal(t, "TX-9", p.Reference)
	assert.Equal(t, date, p.Date)
}

// Propiedad: con abonos válidos en cualquier orden, 0 <= saldo <= monto y saldo == max(0, monto - Σ).
func TestApplyPayment_InvarianteSaldo(t *testing.T) {
	sequences := [][]string{
		{"100", "250.50", "0.50", "649"},
		{"999.99", "0.01"},
		{"1", "1", "1", "1", "1", "2000"},
	}
	for _, seq := range sequences {
		inv := newInvoice(t, "1000")
		var applied []*entity.Payment
		for _, a := range seq {
			p, err := ledger.ApplyPayment(inv, ledger.PaymentInput{Amount: dec(a)})
			if err == nil {
				applied = append(applied, p)
			}
			assert.False(t, inv.Balance.IsNegative())
			assert.True(t, inv.Balance.LessThanOrEqual(inv.Amount))
			assert.True(t, ledger.RecomputeBalance(inv.Amount, applied).Equal(inv.Balance))
		}
		assert.True(t, ledger.CheckBalance(inv, applied).Consistent())
	}
}

// Escenario: monto 1000 con abono de 300, editado a 1500 → saldo 1200.
func TestRecomputeBalance_EdicionDeMonto(t *testing.T) {
	payments := []*entity.Payment{{Amount: dec("300")}}
	assert.True(t, dec("1200").Equal(ledger.RecomputeBalance(dec("1500"), payments)))
	assert.True(t, dec("0").Equal(ledger.RecomputeBalance(dec("200"), payments)), "nunca negativo")
	assert.True(t, dec("1500").Equal(ledger.RecomputeBalance(dec("1500"), nil)))
}

func TestCheckBalance_DetectaCorrupcion(t *testing.T) {
	inv := newInvoice(t, "1000")
	payments := []*entity.Payment{{Amount: dec("300")}}

	inv.Balance = dec("1000") // abono registrado pero saldo sin actualizar
	check := ledger.CheckBalance(inv, payments)
	assert.False(t, check.Consistent())
	assert.True(t, dec("700").Equal(check.ExpectedBalance))
	assert.Equal(t, 1, check.PaymentCount)
	require.Len(t, check.Issues, 1)

	inv.Balance = dec("-1")
	check = ledger.CheckBalance(inv, payments)
	assert.Contains(t, check.Issues, "saldo negativo")

	inv.Balance = dec("0")
	check = ledger.CheckBalance(inv, []*entity.Payment{{Amount: dec("800")}, {Amount: dec("800")}})
	assert.Contains(t, check.Issues, "la suma de abonos excede el monto de la factura")
}

func TestDisplayStatus(t *testing.T) {
	inv := &entity.Invoice{Amount: dec("10"), Balance: dec("10")}
	assert.Equal(t, entity.InvoiceStatusPendiente, inv.DisplayStatus())
	inv.Balance = dec("4")
	assert.Equal(t, entity.InvoiceStatusParcial, inv.DisplayStatus())
	inv.Balance = decimal.Zero
	assert.Equal(t, entity.InvoiceStatusPagada, inv.DisplayStatus())
	inv.Status = "en disputa"
	assert.Equal(t, "en disputa", inv.DisplayStatus())
}
