package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
)

// PurchaseFilter filtros del registro de compras (movimientos COMPRA). Campos vacíos no filtran.
// From es inclusivo y To exclusivo, ambos sobre StockMovement.Date.
type PurchaseFilter struct {
	SupplierID string
	ProductID  string
	From       *time.Time
	To         *time.Time
}

// StockMovementRepository define el puerto de persistencia para el historial de movimientos de stock.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByInventory devuelve los movimientos del registro en orden cronológico ascendente.
	ListByInventory(ctx context.Context, inventoryID string) ([]*entity.StockMovement, error)
	// ListPurchases devuelve las compras que cumplen el filtro, la más reciente primero.
	ListPurchases(ctx context.Context, filter PurchaseFilter) ([]*entity.StockMovement, error)
}
