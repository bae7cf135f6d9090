package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de inventario derivados de (stock actual, stock mínimo).
const (
	StockStatusDisponible = "Disponible"
	StockStatusBajo       = "Stock Bajo"
	StockStatusAgotado    = "Agotado"
)

// InventoryRecord stock actual de un producto (uno por producto).
// Status siempre se deriva; StatusHint guarda la etiqueta manual de la última edición.
type InventoryRecord struct {
	ID          string
	ProductID   string
	ProductName string
	UnitMeasure string
	Stock       decimal.Decimal
	StockMinimo decimal.Decimal
	UnitPrice   decimal.Decimal
	EntryDate   time.Time
	ExpiryDate  *time.Time
	Status      string
	StatusHint  string
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Valuation valor del stock al precio unitario vigente.
func (r *InventoryRecord) Valuation() decimal.Decimal {
	return r.Stock.Mul(r.UnitPrice)
}
