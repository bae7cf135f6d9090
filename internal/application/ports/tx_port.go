package ports

import (
	"context"

	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace rollback y ninguna escritura queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}
