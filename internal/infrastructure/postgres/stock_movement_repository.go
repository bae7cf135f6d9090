package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `
	id, inventory_id, product_id, type, quantity, unit_price, stock_after,
	supplier_id, reference, notes, created_by, movement_date, created_at`

// StockMovementRepo historial de movimientos de stock sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento. Date vacío se guarda como created_at.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	if m.Date.IsZero() {
		m.Date = m.CreatedAt
	}
	query := `
		INSERT INTO stock_movements (id, inventory_id, product_id, type, quantity, unit_price, stock_after,
		                             supplier_id, reference, notes, created_by, movement_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.InventoryID, m.ProductID, m.Type, m.Quantity, m.UnitPrice, m.StockAfter,
		nullIfEmpty(m.SupplierID), m.Reference, m.Notes, m.CreatedBy, m.Date, m.CreatedAt,
	)
	if err != nil {
		return wrapErr("insert stock movement", err)
	}
	return nil
}

// ListByInventory movimientos del registro en orden de inserción.
func (r *StockMovementRepo) ListByInventory(ctx context.Context, inventoryID string) ([]*entity.StockMovement, error) {
	query := "SELECT" + movementColumns + " FROM stock_movements WHERE inventory_id = $1 ORDER BY seq"
	return r.list(ctx, "list stock movements", query, inventoryID)
}

// ListPurchases movimientos COMPRA filtrados por proveedor, producto y rango de fechas.
func (r *StockMovementRepo) ListPurchases(ctx context.Context, f repository.PurchaseFilter) ([]*entity.StockMovement, error) {
	args := []any{entity.MovementTypeCompra}
	where := []string{"type = $1"}
	if f.SupplierID != "" {
		args = append(args, f.SupplierID)
		where = append(where, fmt.Sprintf("supplier_id = $%d", len(args)))
	}
	if f.ProductID != "" {
		args = append(args, f.ProductID)
		where = append(where, fmt.Sprintf("product_id = $%d", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where = append(where, fmt.Sprintf("movement_date >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where = append(where, fmt.Sprintf("movement_date < $%d", len(args)))
	}
	query := "SELECT" + movementColumns + " FROM stock_movements WHERE " + strings.Join(where, " AND ") +
		" ORDER BY movement_date DESC, seq DESC"
	return r.list(ctx, "list purchases", query, args...)
}

func (r *StockMovementRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var (
			m        entity.StockMovement
			supplier *string
		)
		if err := rows.Scan(&m.ID, &m.InventoryID, &m.ProductID, &m.Type, &m.Quantity, &m.UnitPrice,
			&m.StockAfter, &supplier, &m.Reference, &m.Notes, &m.CreatedBy, &m.Date, &m.CreatedAt); err != nil {
			return nil, wrapErr("scan stock movement", err)
		}
		m.SupplierID = derefStr(supplier)
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return list, nil
}
