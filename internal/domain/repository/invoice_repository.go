package repository

import (
	"context"

	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
)

// InvoiceFilter filtros opcionales para listar facturas. Campos vacíos no filtran.
type InvoiceFilter struct {
	Kind           string
	CounterpartyID string
	OnlyPending    bool // solo saldo > 0
	Limit          int
	Offset         int
}

// InvoiceRepository define el puerto de persistencia para facturas por cobrar y por pagar.
// Los métodos Get devuelven (nil, nil) si la factura no existe.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Invoice, error)
	// Update persiste la factura si su Version coincide con la almacenada e incrementa Version.
	// Devuelve domain.ErrConflict si otra escritura ganó.
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, error)
	// Count total de facturas que cumplen el filtro, ignorando Limit y Offset.
	Count(ctx context.Context, filter InvoiceFilter) (int, error)
}

// PaymentRepository define el puerto de persistencia para abonos (append-only).
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// ListByInvoice devuelve los abonos de la factura en orden cronológico.
	ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.Payment, error)
	CountByInvoice(ctx context.Context, invoiceID string) (int, error)
}
