package repository

import (
	"context"

	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
)

// InventoryFilter filtros opcionales para listar registros de inventario.
type InventoryFilter struct {
	Status string // estado derivado
	Limit  int
	Offset int
}

// InventoryRepository define el puerto para registros de stock (uno por producto).
// Usado dentro de transacciones; los Get devuelven (nil, nil) si no existe.
type InventoryRepository interface {
	Create(ctx context.Context, rec *entity.InventoryRecord) error
	GetByID(ctx context.Context, id string) (*entity.InventoryRecord, error)
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryRecord, error)
	GetByProduct(ctx context.Context, productID string) (*entity.InventoryRecord, error)
	// GetByProductForUpdate bloquea el registro del producto si existe.
	GetByProductForUpdate(ctx context.Context, productID string) (*entity.InventoryRecord, error)
	// Update con verificación optimista de Version (domain.ErrConflict si no coincide).
	Update(ctx context.Context, rec *entity.InventoryRecord) error
	List(ctx context.Context, filter InventoryFilter) ([]*entity.InventoryRecord, error)
	// Count total de registros que cumplen el filtro, ignorando Limit y Offset.
	Count(ctx context.Context, filter InventoryFilter) (int, error)
}
