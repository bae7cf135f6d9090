package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Verduleria-api/internal/application/catalog"
	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/infrastructure/memory"
)

func TestCatalog(t *testing.T) {
	store := memory.New()
	store.SeedDemo()
	repos := store.Repositories()
	uc := catalog.NewUseCase(repos.Products, repos.Counterparties)
	ctx := context.Background()

	products, err := uc.ActiveProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3, "el culantro está inactivo")
	for _, p := range products {
		assert.NotEqual(t, "prod-culantro", p.ID)
	}

	suppliers, err := uc.Counterparties(ctx, "proveedor")
	require.NoError(t, err)
	assert.Len(t, suppliers, 2)

	all, err := uc.Counterparties(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = uc.Counterparties(ctx, "empleado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
