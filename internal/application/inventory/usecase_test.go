package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Verduleria-api/internal/application/dto"
	"github.com/jhoicas/Verduleria-api/internal/application/inventory"
	"github.com/jhoicas/Verduleria-api/internal/application/ports"
	"github.com/jhoicas/Verduleria-api/internal/application/reconciliation"
	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
	"github.com/jhoicas/Verduleria-api/internal/infrastructure/lock"
	"github.com/jhoicas/Verduleria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

var actor = dto.Actor{UserID: "u-1", Name: "Ana", Role: "bodega"}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func newUseCase(t *testing.T) (*inventory.UseCase, *memory.Store) {
	t.Helper()
	store := memory.New()
	store.SeedDemo()
	uc := inventory.NewUseCase(store, store.Repositories(), lock.NewKeyedLocker(time.Second), nil, logger.Nop(), inventory.Options{})
	return uc, store
}

func purchase(t *testing.T, uc *inventory.UseCase, product, qty, price string) *dto.StockMutationResponse {
	t.Helper()
	res, err := uc.RegisterPurchase(context.Background(), actor, dto.PurchaseRequest{
		ProductID: product, Quantity: dec(qty), UnitPrice: dec(price), SupplierID: "prov-cenada",
	})
	require.NoError(t, err)
	return res
}

// failingMovements simula un historial de movimientos inaccesible.
type failingMovements struct{}

func (failingMovements) Create(context.Context, *entity.StockMovement) error { return domain.ErrTransport }
func (failingMovements) ListByInventory(context.Context, string) ([]*entity.StockMovement, error) {
	return nil, domain.ErrTransport
}
func (failingMovements) ListPurchases(context.Context, repository.PurchaseFilter) ([]*entity.StockMovement, error) {
	return nil, domain.ErrTransport
}

func TestRegisterPurchase_CreaYLuegoSuma(t *testing.T) {
	uc, _ := newUseCase(t)

	first := purchase(t, uc, "prod-tomate", "10", "40")
	assert.True(t, dec("10").Equal(first.Inventory.Stock))
	assert.True(t, dec("10").Equal(first.Inventory.StockMinimo))
	assert.Equal(t, entity.StockStatusBajo, first.Inventory.Status)
	assert.Equal(t, "Tomate", first.Inventory.ProductName)
	assert.Equal(t, entity.MovementTypeCompra, first.Movement.Type)
	assert.Equal(t, first.Inventory.ID, first.Movement.InventoryID)

	// Escenario: stock 10 a 40, compra de 20 a 50 → stock 30, precio 50.
	second := purchase(t, uc, "prod-tomate", "20", "50")
	assert.Equal(t, first.Inventory.ID, second.Inventory.ID)
	assert.True(t, dec("30").Equal(second.Inventory.Stock))
	assert.True(t, dec("50").Equal(second.Inventory.UnitPrice))
	assert.Equal(t, entity.StockStatusDisponible, second.Inventory.Status)

	movs, err := uc.ListMovements(context.Background(), first.Inventory.ID)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.True(t, dec("30").Equal(movs[1].StockAfter))
}

func TestRegisterPurchase_MinimoPorOpcion(t *testing.T) {
	store := memory.New()
	store.SeedDemo()
	uc := inventory.NewUseCase(store, store.Repositories(), lock.NewKeyedLocker(time.Second), nil, nil, inventory.Options{DefaultStockMinimo: 3})

	res := purchase(t, uc, "prod-papa", "5", "1")
	assert.True(t, dec("3").Equal(res.Inventory.StockMinimo))
	assert.Equal(t, entity.StockStatusDisponible, res.Inventory.Status)
}

func TestRegisterPurchase_Validaciones(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.RegisterPurchase(ctx, actor, dto.PurchaseRequest{ProductID: "prod-culantro", Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producto inactivo")

	_, err = uc.RegisterPurchase(ctx, actor, dto.PurchaseRequest{ProductID: "prod-nada", Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.RegisterPurchase(ctx, actor, dto.PurchaseRequest{ProductID: "prod-papa", Quantity: dec("1"), SupplierID: "cli-hotel"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un cliente no es proveedor")

	_, err = uc.RegisterPurchase(ctx, actor, dto.PurchaseRequest{ProductID: "prod-papa", Quantity: dec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterPurchase(ctx, actor, dto.PurchaseRequest{ProductID: "prod-papa", Quantity: dec("5"), StockMinimo: decPtr("-3")})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "stock_minimo", verr.Field)

	_, err = uc.RegisterPurchase(ctx, actor, dto.PurchaseRequest{ProductID: "prod-papa", Quantity: dec("5"), Date: "03/01/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx, dto.InventoryFilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items, "ninguna compra inválida crea registros")
}

// Una compra sobre un registro existente espera por la misma clave que retiros y ediciones.
func TestRegisterPurchase_BloqueaElRegistro(t *testing.T) {
	store := memory.New()
	store.SeedDemo()
	locker := lock.NewKeyedLocker(50 * time.Millisecond)
	uc := inventory.NewUseCase(store, store.Repositories(), locker, nil, nil, inventory.Options{})
	ctx := context.Background()
	rec := purchase(t, uc, "prod-tomate", "10", "40").Inventory

	release, err := locker.Acquire(ctx, ports.InventoryLockKey(rec.ID))
	require.NoError(t, err)
	_, err = uc.RegisterPurchase(ctx, actor, dto.PurchaseRequest{ProductID: "prod-tomate", Quantity: dec("1"), UnitPrice: dec("40")})
	assert.ErrorIs(t, err, domain.ErrLockTimeout)
	release()

	res := purchase(t, uc, "prod-tomate", "1", "40")
	assert.True(t, dec("11").Equal(res.Inventory.Stock))
	assert.Zero(t, locker.Len(), "todas las claves quedan liberadas")
}

func TestListPurchases(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	buy := func(product, supplier, qty, price, date string) *dto.StockMutationResponse {
		t.Helper()
		res, err := uc.RegisterPurchase(ctx, actor, dto.PurchaseRequest{
			ProductID: product, SupplierID: supplier, Quantity: dec(qty), UnitPrice: dec(price), Date: date,
		})
		require.NoError(t, err)
		return res
	}
	first := buy("prod-tomate", "prov-cenada", "10", "40", "2026-03-01")
	assert.Equal(t, "2026-03-01", first.Movement.Date)
	buy("prod-papa", "prov-finca", "5", "900", "2026-03-03")
	buy("prod-tomate", "prov-cenada", "2.5", "50", "2026-03-05")
	_, err := uc.RegisterWithdrawal(ctx, actor, first.Inventory.ID, dto.WithdrawalRequest{Quantity: dec("1")})
	require.NoError(t, err)

	all, err := uc.ListPurchases(ctx, dto.PurchaseFilterRequest{})
	require.NoError(t, err)
	require.Len(t, all.Items, 3, "los retiros no son compras")
	assert.Equal(t, 3, all.Page.Total)
	assert.True(t, dec("5025").Equal(all.Amount))
	assert.Equal(t, "2026-03-05", all.Items[0].Date)
	assert.True(t, dec("125").Equal(all.Items[0].Total))
	assert.Equal(t, "prov-cenada", all.Items[0].SupplierID)
	assert.Equal(t, "u-1", all.Items[0].CreatedBy)

	cases := []struct {
		name   string
		filter dto.PurchaseFilterRequest
		count  int
		amount string
	}{
		{"por proveedor", dto.PurchaseFilterRequest{SupplierID: "prov-cenada"}, 2, "525"},
		{"por producto", dto.PurchaseFilterRequest{ProductID: "prod-papa"}, 1, "4500"},
		{"hasta inclusivo", dto.PurchaseFilterRequest{From: "2026-03-03", To: "2026-03-03"}, 1, "4500"},
		{"producto y rango", dto.PurchaseFilterRequest{ProductID: "prod-tomate", To: "2026-03-04"}, 1, "400"},
		{"sin resultados", dto.PurchaseFilterRequest{From: "2026-04-01"}, 0, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uc.ListPurchases(ctx, tc.filter)
			require.NoError(t, err)
			assert.Len(t, got.Items, tc.count)
			assert.True(t, dec(tc.amount).Equal(got.Amount), got.Amount.String())
		})
	}

	page, err := uc.ListPurchases(ctx, dto.PurchaseFilterRequest{PageRequest: dto.PageRequest{Limit: 1, Offset: 1}})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "prod-papa", page.Items[0].ProductID)
	assert.Equal(t, 3, page.Page.Total)
	assert.True(t, dec("5025").Equal(page.Amount))

	_, err = uc.ListPurchases(ctx, dto.PurchaseFilterRequest{From: "2026-03-05", To: "2026-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.ListPurchases(ctx, dto.PurchaseFilterRequest{From: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Escenario: stock 5 con mínimo 10, retiro de 5 → Agotado; retiro de 1 rechazado.
func TestRegisterWithdrawal_Escenario(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	rec := purchase(t, uc, "prod-banano", "5", "100").Inventory

	res, err := uc.RegisterWithdrawal(ctx, actor, rec.ID, dto.WithdrawalRequest{Quantity: dec("5"), Notes: "venta"})
	require.NoError(t, err)
	assert.True(t, res.Inventory.Stock.IsZero())
	assert.Equal(t, entity.StockStatusAgotado, res.Inventory.Status)
	assert.True(t, dec("-5").Equal(res.Movement.Quantity))

	_, err = uc.RegisterWithdrawal(ctx, actor, rec.ID, dto.WithdrawalRequest{Quantity: dec("1")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = uc.RegisterWithdrawal(ctx, actor, "nope", dto.WithdrawalRequest{Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Retiros concurrentes nunca dejan stock negativo.
func TestRegisterWithdrawal_Concurrente(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	rec := purchase(t, uc, "prod-papa", "20", "10").Inventory

	var wg sync.WaitGroup
	for range 15 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.RegisterWithdrawal(ctx, actor, rec.ID, dto.WithdrawalRequest{Quantity: dec("3")})
		}()
	}
	wg.Wait()

	got, err := uc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, got.Stock.IsNegative())
	assert.True(t, dec("3").GreaterThan(got.Stock), "quedan menos de 3 unidades")

	movs, err := uc.ListMovements(ctx, rec.ID)
	require.NoError(t, err)
	withdrawn := decimal.Zero
	for _, m := range movs[1:] {
		withdrawn = withdrawn.Add(m.Quantity.Neg())
	}
	assert.True(t, dec("20").Sub(withdrawn).Equal(got.Stock))
}

func TestCreateRecord(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	res, err := uc.CreateRecord(ctx, actor, dto.CreateInventoryRequest{
		ProductID: "prod-papa", Stock: dec("0"), UnitPrice: dec("900"), EntryDate: "2026-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusAgotado, res.Inventory.Status)
	assert.Equal(t, "2026-03-01", res.Inventory.EntryDate)
	assert.Equal(t, entity.MovementTypeAjuste, res.Movement.Type)

	_, err = uc.CreateRecord(ctx, actor, dto.CreateInventoryRequest{ProductID: "prod-papa", Stock: dec("1")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.CreateRecord(ctx, actor, dto.CreateInventoryRequest{ProductID: "prod-tomate", Stock: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEditRecord_EstadoSiempreDerivado(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	rec := purchase(t, uc, "prod-tomate", "50", "40").Inventory

	res, err := uc.EditRecord(ctx, actor, rec.ID, dto.UpdateInventoryRequest{
		Stock: decPtr("0"), Status: strPtr(entity.StockStatusDisponible), ExpiryDate: strPtr("2026-04-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusAgotado, res.Inventory.Status)
	assert.Equal(t, entity.StockStatusDisponible, res.Inventory.StatusHint)
	assert.Equal(t, "2026-04-01", res.Inventory.ExpiryDate)

	// Una compra posterior descarta la etiqueta manual.
	after := purchase(t, uc, "prod-tomate", "4", "40")
	assert.Empty(t, after.Inventory.StatusHint)
	assert.Equal(t, "2026-04-01", after.Inventory.ExpiryDate)

	res, err = uc.EditRecord(ctx, actor, rec.ID, dto.UpdateInventoryRequest{ExpiryDate: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, res.Inventory.ExpiryDate)

	_, err = uc.EditRecord(ctx, actor, rec.ID, dto.UpdateInventoryRequest{StockMinimo: decPtr("-2")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.EditRecord(ctx, actor, rec.ID, dto.UpdateInventoryRequest{EntryDate: strPtr("ayer")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_FiltroPorEstado(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	purchase(t, uc, "prod-tomate", "50", "40")
	purchase(t, uc, "prod-papa", "2", "10")
	banano := purchase(t, uc, "prod-banano", "1", "10").Inventory
	_, err := uc.RegisterWithdrawal(ctx, actor, banano.ID, dto.WithdrawalRequest{Quantity: dec("1")})
	require.NoError(t, err)

	for status, want := range map[string]int{
		"": 3, entity.StockStatusDisponible: 1, entity.StockStatusBajo: 1, entity.StockStatusAgotado: 1,
	} {
		list, err := uc.List(ctx, dto.InventoryFilterRequest{Status: status})
		require.NoError(t, err)
		assert.Len(t, list.Items, want, status)
	}

	firstPage, err := uc.List(ctx, dto.InventoryFilterRequest{PageRequest: dto.PageRequest{Limit: 1}})
	require.NoError(t, err)
	assert.Len(t, firstPage.Items, 1)
	assert.Equal(t, 3, firstPage.Page.Total)

	_, err = uc.List(ctx, dto.InventoryFilterRequest{Status: "Vencido"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReconcile_DetectaYCorrigeDiferencia(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()
	rec := purchase(t, uc, "prod-papa", "10", "10").Inventory
	_, err := uc.RegisterWithdrawal(ctx, actor, rec.ID, dto.WithdrawalRequest{Quantity: dec("4")})
	require.NoError(t, err)

	// Corrupción directa del almacenamiento, sin movimiento.
	repos := store.Repositories()
	stored, err := repos.Inventory.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	stored.Stock = dec("9")
	require.NoError(t, repos.Inventory.Update(ctx, stored))

	res, err := uc.Reconcile(ctx, actor, rec.ID, false)
	require.NoError(t, err)
	assert.True(t, dec("9").Equal(res.StoredStock))
	assert.True(t, dec("6").Equal(res.ReplayedStock))
	assert.True(t, dec("-3").Equal(res.Drift))
	assert.False(t, res.Applied)

	res, err = uc.Reconcile(ctx, actor, rec.ID, true)
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.True(t, dec("6").Equal(res.Inventory.Stock))
	assert.Equal(t, entity.StockStatusBajo, res.Inventory.Status)

	res, err = uc.Reconcile(ctx, actor, rec.ID, true)
	require.NoError(t, err)
	assert.True(t, res.Drift.IsZero())
	assert.False(t, res.Applied)
}

func TestReconcile_HistorialInaccesible(t *testing.T) {
	store := memory.New()
	store.SeedDemo()
	healthy := inventory.NewUseCase(store, store.Repositories(), lock.NewKeyedLocker(time.Second), nil, nil, inventory.Options{})
	rec := purchase(t, healthy, "prod-tomate", "8", "40").Inventory

	reads := store.Repositories()
	reads.Movements = failingMovements{}
	degraded := inventory.NewUseCase(store, reads, lock.NewKeyedLocker(time.Second), nil, nil, inventory.Options{})

	res, err := degraded.Reconcile(context.Background(), actor, rec.ID, true)
	require.NoError(t, err)
	require.NotNil(t, res.Warning)
	assert.Equal(t, reconciliation.WarningPriorMovementsUnavailable, res.Warning.Code)
	assert.False(t, res.Applied)
	assert.True(t, dec("8").Equal(res.Inventory.Stock))
}
