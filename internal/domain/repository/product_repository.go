package repository

import (
	"context"

	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo de productos.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListActive(ctx context.Context) ([]*entity.Product, error)
}

// CounterpartyRepository puerto de lectura de clientes y proveedores.
type CounterpartyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Counterparty, error)
	// List filtra por tipo (cliente|proveedor); vacío devuelve todos.
	List(ctx context.Context, kind string) ([]*entity.Counterparty, error)
}

// Repositories agrupa los repositorios atados a una misma transacción.
type Repositories struct {
	Invoices       InvoiceRepository
	Payments       PaymentRepository
	Inventory      InventoryRepository
	Movements      StockMovementRepository
	Products       ProductRepository
	Counterparties CounterpartyRepository
}
