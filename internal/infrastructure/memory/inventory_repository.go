package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
)

var (
	_ repository.InventoryRepository     = (*inventoryRepo)(nil)
	_ repository.StockMovementRepository = (*movementRepo)(nil)
	_ repository.ProductRepository       = (*productRepo)(nil)
)

type inventoryRepo struct{ s *Store }

func (r *inventoryRepo) Create(_ context.Context, rec *entity.InventoryRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.inventory[rec.ID]; ok {
		return fmt.Errorf("inventario %s: %w", rec.ID, domain.ErrDuplicate)
	}
	for _, other := range r.s.inventory {
		if other.ProductID == rec.ProductID {
			return fmt.Errorf("el producto %s ya tiene inventario: %w", rec.ProductID, domain.ErrDuplicate)
		}
	}
	r.s.inventory[rec.ID] = *rec
	return nil
}

func (r *inventoryRepo) GetByID(_ context.Context, id string) (*entity.InventoryRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.inventory[id]
	if !ok {
		return nil, nil
	}
	r.s.fillProduct(&rec)
	return &rec, nil
}

func (r *inventoryRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryRecord, error) {
	return r.GetByID(ctx, id)
}

func (r *inventoryRepo) GetByProductForUpdate(ctx context.Context, productID string) (*entity.InventoryRecord, error) {
	return r.GetByProduct(ctx, productID)
}

func (r *inventoryRepo) GetByProduct(_ context.Context, productID string) (*entity.InventoryRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rec := range r.s.inventory {
		if rec.ProductID == productID {
			r.s.fillProduct(&rec)
			return &rec, nil
		}
	}
	return nil, nil
}

func (r *inventoryRepo) Update(_ context.Context, rec *entity.InventoryRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.inventory[rec.ID]
	if !ok {
		return domain.NotFound("inventario", rec.ID)
	}
	if stored.Version != rec.Version {
		return fmt.Errorf("inventario %s versión %d (esperada %d): %w", rec.ID, stored.Version, rec.Version, domain.ErrConflict)
	}
	rec.Version++
	r.s.inventory[rec.ID] = *rec
	return nil
}

func (r *inventoryRepo) List(_ context.Context, f repository.InventoryFilter) ([]*entity.InventoryRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.InventoryRecord, 0)
	for _, rec := range r.s.inventory {
		if f.Status != "" && rec.Status != f.Status {
			continue
		}
		r.s.fillProduct(&rec)
		out = append(out, &rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductName != out[j].ProductName {
			return out[i].ProductName < out[j].ProductName
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, f.Limit, f.Offset), nil
}

func (r *inventoryRepo) Count(_ context.Context, f repository.InventoryFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if f.Status == "" {
		return len(r.s.inventory), nil
	}
	n := 0
	for _, rec := range r.s.inventory {
		if rec.Status == f.Status {
			n++
		}
	}
	return n, nil
}

// fillProduct requiere mu tomado.
func (s *Store) fillProduct(rec *entity.InventoryRecord) {
	if p, ok := s.products[rec.ProductID]; ok {
		rec.ProductName = p.Name
		rec.UnitMeasure = p.UnitMeasure
	}
}

type movementRepo struct{ s *Store }

func (r *movementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.inventory[m.InventoryID]; !ok {
		return domain.NotFound("inventario", m.InventoryID)
	}
	r.s.movements = append(r.s.movements, *m)
	return nil
}

// ListByInventory devuelve los movimientos en orden de inserción.
func (r *movementRepo) ListByInventory(_ context.Context, inventoryID string) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.StockMovement, 0)
	for _, m := range r.s.movements {
		if m.InventoryID == inventoryID {
			out = append(out, &m)
		}
	}
	return out, nil
}

type productRepo struct{ s *Store }

func (r *productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *productRepo) ListActive(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		if !p.Active {
			continue
		}
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ListPurchases compras filtradas, por fecha descendente y luego por orden de inserción inverso.
func (r *movementRepo) ListPurchases(_ context.Context, f repository.PurchaseFilter) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.StockMovement, 0)
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if m.Type != entity.MovementTypeCompra {
			continue
		}
		if f.SupplierID != "" && m.SupplierID != f.SupplierID {
			continue
		}
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.From != nil && m.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && !m.Date.Before(*f.To) {
			continue
		}
		out = append(out, &m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
