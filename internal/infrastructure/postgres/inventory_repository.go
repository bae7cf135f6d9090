package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `
	r.id, r.product_id, COALESCE(p.name, ''), COALESCE(p.unit_measure, ''), r.stock, r.stock_minimo,
	r.unit_price, r.entry_date, r.expiry_date, r.status, r.status_hint, r.version, r.created_at, r.updated_at`

const inventoryFrom = `
	FROM inventory_records r LEFT JOIN products p ON p.id = r.product_id`

// InventoryRepo registros de stock por producto sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta el registro. product_id es único: un segundo registro para el producto es ErrDuplicate.
func (r *InventoryRepo) Create(ctx context.Context, rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory_records (id, product_id, stock, stock_minimo, unit_price, entry_date, expiry_date,
		                               status, status_hint, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.ProductID, rec.Stock, rec.StockMinimo, rec.UnitPrice, rec.EntryDate, rec.ExpiryDate,
		rec.Status, rec.StatusHint, rec.Version, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return wrapErr("insert inventory record", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryRecord, error) {
	return r.get(ctx, "SELECT"+inventoryColumns+inventoryFrom+" WHERE r.id = $1", id, "get inventory record")
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryRecord, error) {
	return r.get(ctx, "SELECT"+inventoryColumns+inventoryFrom+" WHERE r.id = $1 FOR UPDATE OF r", id, "get inventory record for update")
}

// GetByProduct obtiene el registro del producto sin bloquearlo.
func (r *InventoryRepo) GetByProduct(ctx context.Context, productID string) (*entity.InventoryRecord, error) {
	return r.get(ctx, "SELECT"+inventoryColumns+inventoryFrom+" WHERE r.product_id = $1", productID, "get inventory by product")
}

// GetByProductForUpdate bloquea el registro del producto si existe.
func (r *InventoryRepo) GetByProductForUpdate(ctx context.Context, productID string) (*entity.InventoryRecord, error) {
	return r.get(ctx, "SELECT"+inventoryColumns+inventoryFrom+" WHERE r.product_id = $1 FOR UPDATE OF r", productID, "get inventory by product")
}

func (r *InventoryRepo) get(ctx context.Context, query, arg, op string) (*entity.InventoryRecord, error) {
	rec, err := scanInventory(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return rec, nil
}

// Update persiste el registro con verificación optimista de versión.
func (r *InventoryRepo) Update(ctx context.Context, rec *entity.InventoryRecord) error {
	query := `
		UPDATE inventory_records
		SET stock        = $2,
		    stock_minimo = $3,
		    unit_price   = $4,
		    entry_date   = $5,
		    expiry_date  = $6,
		    status       = $7,
		    status_hint  = $8,
		    updated_at   = $9,
		    version      = version + 1
		WHERE id = $1 AND version = $10`
	tag, err := r.q.Exec(ctx, query,
		rec.ID, rec.Stock, rec.StockMinimo, rec.UnitPrice, rec.EntryDate, rec.ExpiryDate,
		rec.Status, rec.StatusHint, rec.UpdatedAt, rec.Version,
	)
	if err != nil {
		return wrapErr("update inventory record", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update inventory %s versión %d: %w", rec.ID, rec.Version, domain.ErrConflict)
	}
	rec.Version++
	return nil
}

// List lista registros ordenados por nombre de producto.
func (r *InventoryRepo) List(ctx context.Context, f repository.InventoryFilter) ([]*entity.InventoryRecord, error) {
	query := "SELECT" + inventoryColumns + inventoryFrom
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		query += " WHERE r.status = $1"
	}
	query += " ORDER BY p.name, r.id"
	page, args := pageClause(args, f.Limit, f.Offset)
	query += page

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list inventory", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRecord
	for rows.Next() {
		rec, err := scanInventory(rows)
		if err != nil {
			return nil, wrapErr("scan inventory record", err)
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list inventory", err)
	}
	return list, nil
}

// Count total de registros, opcionalmente por estado.
func (r *InventoryRepo) Count(ctx context.Context, f repository.InventoryFilter) (int, error) {
	query := "SELECT COUNT(*) FROM inventory_records r"
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		query += " WHERE r.status = $1"
	}
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, wrapErr("count inventory", err)
	}
	return n, nil
}

func scanInventory(row rowScanner) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := row.Scan(
		&rec.ID, &rec.ProductID, &rec.ProductName, &rec.UnitMeasure, &rec.Stock, &rec.StockMinimo,
		&rec.UnitPrice, &rec.EntryDate, &rec.ExpiryDate, &rec.Status, &rec.StatusHint, &rec.Version,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
