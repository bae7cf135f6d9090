// Package catalog expone el catálogo de productos y contrapartes en solo lectura.
package catalog

import (
	"context"
	"strings"

	"github.com/jhoicas/Verduleria-api/internal/application/dto"
	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
)

// UseCase consultas de catálogo. products puede ser el repositorio cacheado en Redis.
type UseCase struct {
	products       repository.ProductRepository
	counterparties repository.CounterpartyRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, counterparties repository.CounterpartyRepository) *UseCase {
	return &UseCase{products: products, counterparties: counterparties}
}

// ActiveProducts productos que admiten compras.
func (uc *UseCase) ActiveProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductResponse{ID: p.ID, Name: p.Name, Category: p.Category, UnitMeasure: p.UnitMeasure})
	}
	return out, nil
}

// Counterparties clientes o proveedores; kind vacío lista ambos.
func (uc *UseCase) Counterparties(ctx context.Context, kind string) ([]dto.CounterpartyResponse, error) {
	kind = strings.TrimSpace(kind)
	switch kind {
	case "", entity.CounterpartyCliente, entity.CounterpartyProveedor:
	default:
		return nil, domain.Invalid("type", "tipo inválido %q (cliente|proveedor)", kind)
	}
	list, err := uc.counterparties.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CounterpartyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CounterpartyResponse{
			ID: c.ID, Type: c.Kind, Name: c.Name, TaxID: c.TaxID, Phone: c.Phone, Email: c.Email,
		})
	}
	return out, nil
}
