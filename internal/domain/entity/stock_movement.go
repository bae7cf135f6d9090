package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeCompra = "COMPRA" // entrada por compra
	MovementTypeSalida = "SALIDA" // retiro de stock
	MovementTypeAjuste = "AJUSTE" // edición directa: fija el stock absoluto
)

// StockMovement registro append-only de cada cambio de stock.
// Quantity: positivo en COMPRA, negativo en SALIDA, valor absoluto resultante en AJUSTE.
type StockMovement struct {
	ID          string
	InventoryID string
	ProductID   string
	Type        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	StockAfter  decimal.Decimal
	SupplierID  string
	Reference   string
	Notes       string
	CreatedBy   string
	Date        time.Time // fecha del documento (p. ej. la factura de compra); por defecto CreatedAt
	CreatedAt   time.Time
}

// Total importe del movimiento: |cantidad| * precio unitario, a 2 decimales.
func (m StockMovement) Total() decimal.Decimal {
	return m.Quantity.Abs().Mul(m.UnitPrice).Round(2)
}
