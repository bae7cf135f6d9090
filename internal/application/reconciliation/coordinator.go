// Package reconciliation recalcula valores derivados (saldo, stock) cuando el registro padre
// se edita después de que ya existen movimientos.
package reconciliation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/ledger"
	"github.com/jhoicas/Verduleria-api/internal/domain/money"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

// Códigos de advertencia de reconciliación degradada.
const (
	WarningPriorPaymentsUnavailable  = "PRIOR_PAYMENTS_UNAVAILABLE"
	WarningPriorMovementsUnavailable = "PRIOR_MOVEMENTS_UNAVAILABLE"
)

// ReconciliationWarning indica que el valor se calculó sin el historial completo.
type ReconciliationWarning struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	EntityID string `json:"entity_id"`
	Cause    string `json:"cause,omitempty"`
}

// Result valor recalculado y, si el cálculo fue degradado, la advertencia correspondiente.
type Result struct {
	Value   decimal.Decimal
	Warning *ReconciliationWarning
}

// Degraded indica que el valor no pudo reconciliarse contra el historial.
func (r Result) Degraded() bool { return r.Warning != nil }

// PaymentLister fuente de abonos previos de una factura.
type PaymentLister interface {
	ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.Payment, error)
}

// MovementLister fuente del historial de movimientos de un registro de inventario.
type MovementLister interface {
	ListByInventory(ctx context.Context, inventoryID string) ([]*entity.StockMovement, error)
}

// Coordinator recalcula saldos y stock desde su historial.
type Coordinator struct {
	log *logger.Logger
}

// NewCoordinator construye el coordinador. log puede ser nil.
func NewCoordinator(log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.Nop()
	}
	return &Coordinator{log: log.Component("reconciliation")}
}

// RecomputeInvoice saldo = max(0, newAmount - Σ abonos previos).
// Si los abonos no se pueden leer, el valor es newAmount y Result lleva la advertencia.
func (c *Coordinator) RecomputeInvoice(ctx context.Context, payments PaymentLister, inv *entity.Invoice, newAmount decimal.Decimal) Result {
	newAmount = money.RoundMoney(newAmount)
	prior, err := payments.ListByInvoice(ctx, inv.ID)
	if err != nil {
		w := &ReconciliationWarning{
			Code:     WarningPriorPaymentsUnavailable,
			Message:  "no se pudieron leer los abonos previos; el saldo se igualó al monto sin descontarlos",
			EntityID: inv.ID,
			Cause:    err.Error(),
		}
		c.log.Warn().Err(err).Str("invoice_id", inv.ID).Str("code", w.Code).
			Str("monto", newAmount.String()).Msg("reconciliación de saldo degradada")
		return Result{Value: newAmount, Warning: w}
	}
	return Result{Value: ledger.RecomputeBalance(newAmount, prior)}
}

// RecomputeInventory reproduce el historial de movimientos del registro.
// Si el historial no se puede leer, devuelve el stock almacenado con advertencia.
func (c *Coordinator) RecomputeInventory(ctx context.Context, movements MovementLister, rec *entity.InventoryRecord) Result {
	history, err := movements.ListByInventory(ctx, rec.ID)
	if err != nil {
		w := &ReconciliationWarning{
			Code:     WarningPriorMovementsUnavailable,
			Message:  "no se pudo leer el historial de movimientos; se conserva el stock almacenado",
			EntityID: rec.ID,
			Cause:    err.Error(),
		}
		c.log.Warn().Err(err).Str("inventory_id", rec.ID).Str("code", w.Code).Msg("reconciliación de stock degradada")
		return Result{Value: rec.Stock, Warning: w}
	}
	if len(history) == 0 {
		return Result{Value: rec.Stock}
	}
	return Result{Value: ledger.ReplayMovements(history)}
}
