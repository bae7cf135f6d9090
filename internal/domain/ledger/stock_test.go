package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/ledger"
)

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		stock, minimo, want string
	}{
		{"0", "10", entity.StockStatusAgotado},
		{"0", "0", entity.StockStatusAgotado},
		{"0.001", "10", entity.StockStatusBajo},
		{"10", "10", entity.StockStatusBajo},
		{"10.001", "10", entity.StockStatusDisponible},
		{"5", "0", entity.StockStatusDisponible},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ledger.DeriveStatus(dec(tc.stock), dec(tc.minimo)), "stock=%s minimo=%s", tc.stock, tc.minimo)
	}
}

func TestApplyPurchase_CreaRegistroConMinimoPorDefecto(t *testing.T) {
	rec, mov, err := ledger.ApplyPurchase(nil, ledger.PurchaseInput{
		ProductID: "tomate", Quantity: dec("5"), UnitPrice: dec("800"), SupplierID: "prov-1", Now: fixedNow,
	})
	require.NoError(t, err)
	assert.True(t, dec("5").Equal(rec.Stock))
	assert.True(t, decimal.NewFromInt(ledger.DefaultStockMinimo).Equal(rec.StockMinimo))
	assert.Equal(t, entity.StockStatusBajo, rec.Status)
	assert.Equal(t, fixedNow, rec.EntryDate)

	assert.Equal(t, entity.MovementTypeCompra, mov.Type)
	assert.True(t, dec("5").Equal(mov.Quantity))
	assert.True(t, dec("5").Equal(mov.StockAfter))
	assert.Equal(t, "prov-1", mov.SupplierID)
}

func TestApplyPurchase_MinimoExplicito(t *testing.T) {
	rec, _, err := ledger.ApplyPurchase(nil, ledger.PurchaseInput{
		ProductID: "papa", Quantity: dec("5"), UnitPrice: dec("1"), StockMinimo: decPtr("2"),
	})
	require.NoError(t, err)
	assert.True(t, dec("2").Equal(rec.StockMinimo))
	assert.Equal(t, entity.StockStatusDisponible, rec.Status)
}

// Escenario: stock 10 a precio 40, compra de 20 a 50 → stock 30, precio 50.
func TestApplyPurchase_SumaYSobrescribePrecio(t *testing.T) {
	rec := &entity.InventoryRecord{
		ID: "inv-1", ProductID: "cebolla", Stock: dec("10"), StockMinimo: dec("10"),
		UnitPrice: dec("40"), StatusHint: entity.StockStatusAgotado,
	}
	got, mov, err := ledger.ApplyPurchase(rec, ledger.PurchaseInput{
		ProductID: "cebolla", Quantity: dec("20"), UnitPrice: dec("50"), Now: fixedNow,
	})
	require.NoError(t, err)
	assert.Same(t, rec, got)
	assert.True(t, dec("30").Equal(rec.Stock))
	assert.True(t, dec("50").Equal(rec.UnitPrice))
	assert.Equal(t, entity.StockStatusDisponible, rec.Status)
	assert.Empty(t, rec.StatusHint)
	assert.Equal(t, "inv-1", mov.InventoryID)
	assert.True(t, dec("30").Equal(mov.StockAfter))
}

func TestApplyPurchase_Validaciones(t *testing.T) {
	_, _, err := ledger.ApplyPurchase(nil, ledger.PurchaseInput{ProductID: "x", Quantity: dec("0"), UnitPrice: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = ledger.ApplyPurchase(nil, ledger.PurchaseInput{ProductID: "x", Quantity: dec("1"), UnitPrice: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = ledger.ApplyPurchase(nil, ledger.PurchaseInput{Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	rec := &entity.InventoryRecord{ProductID: "a", Stock: dec("1")}
	_, _, err = ledger.ApplyPurchase(rec, ledger.PurchaseInput{ProductID: "b", Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, dec("1").Equal(rec.Stock))

	_, _, err = ledger.ApplyPurchase(nil, ledger.PurchaseInput{ProductID: "x", Quantity: dec("1"), StockMinimo: decPtr("-3")})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "stock_minimo", verr.Field)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = ledger.ApplyPurchase(rec, ledger.PurchaseInput{ProductID: "a", Quantity: dec("1"), StockMinimo: decPtr("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, dec("1").Equal(rec.Stock))
}

func TestApplyPurchase_MinimoRedondeadoYFecha(t *testing.T) {
	date := fixedNow.AddDate(0, 0, -2)
	rec, mov, err := ledger.ApplyPurchase(nil, ledger.PurchaseInput{
		ProductID: "ayote", Quantity: dec("2"), UnitPrice: dec("450"), StockMinimo: decPtr("2.34567"), Date: &date, Now: fixedNow,
	})
	require.NoError(t, err)
	assert.True(t, dec("2.346").Equal(rec.StockMinimo))
	assert.Equal(t, date, mov.Date)
	assert.Equal(t, fixedNow, mov.CreatedAt)
	assert.True(t, dec("900").Equal(mov.Total()))

	_, mov, err = ledger.ApplyPurchase(rec, ledger.PurchaseInput{ProductID: "ayote", Quantity: dec("1.5"), UnitPrice: dec("300.10"), Now: fixedNow})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, mov.Date)
	assert.True(t, dec("450.15").Equal(mov.Total()))
}

// Escenario: stock 5 con mínimo 10 (Stock Bajo), retiro de 5 → Agotado, retiro de 1 rechazado.
func TestApplyWithdrawal_Escenario(t *testing.T) {
	rec := &entity.InventoryRecord{ID: "inv-1", ProductID: "lechuga", Stock: dec("5"), StockMinimo: dec("10"), UnitPrice: dec("300")}
	ledger.RefreshStatus(rec)
	require.Equal(t, entity.StockStatusBajo, rec.Status)

	mov, err := ledger.ApplyWithdrawal(rec, ledger.WithdrawalInput{Quantity: dec("5"), Now: fixedNow})
	require.NoError(t, err)
	assert.True(t, rec.Stock.IsZero())
	assert.Equal(t, entity.StockStatusAgotado, rec.Status)
	assert.Equal(t, entity.MovementTypeSalida, mov.Type)
	assert.True(t, dec("-5").Equal(mov.Quantity))

	_, err = ledger.ApplyWithdrawal(rec, ledger.WithdrawalInput{Quantity: dec("1")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "disponible 0, solicitado 1")
	assert.True(t, rec.Stock.IsZero())
}

func TestApplyWithdrawal_CantidadNoPositiva(t *testing.T) {
	rec := &entity.InventoryRecord{Stock: dec("5"), StockMinimo: dec("1")}
	for _, q := range []string{"0", "-2", "0.0001"} {
		_, err := ledger.ApplyWithdrawal(rec, ledger.WithdrawalInput{Quantity: dec(q)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, q)
	}
	assert.True(t, dec("5").Equal(rec.Stock))
}

// Propiedad: stock nunca negativo y Status siempre coincide con DeriveStatus.
func TestStock_InvarianteTrasSecuencia(t *testing.T) {
	rec, _, err := ledger.ApplyPurchase(nil, ledger.PurchaseInput{ProductID: "p", Quantity: dec("3"), UnitPrice: dec("1")})
	require.NoError(t, err)

	steps := []struct {
		buy bool
		qty string
	}{
		{false, "1"}, {true, "12.5"}, {false, "20"}, {false, "14.5"}, {false, "0.5"}, {true, "0.25"},
	}
	var history []*entity.StockMovement
	for _, s := range steps {
		var mov *entity.StockMovement
		if s.buy {
			_, mov, err = ledger.ApplyPurchase(rec, ledger.PurchaseInput{ProductID: "p", Quantity: dec(s.qty), UnitPrice: dec("2")})
		} else {
			mov, err = ledger.ApplyWithdrawal(rec, ledger.WithdrawalInput{Quantity: dec(s.qty)})
		}
		if err == nil {
			history = append(history, mov)
		}
		assert.False(t, rec.Stock.IsNegative())
		assert.Equal(t, ledger.DeriveStatus(rec.Stock, rec.StockMinimo), rec.Status)
	}
	assert.True(t, dec("0.25").Equal(rec.Stock))
	assert.Len(t, history, 4)
}

func TestEditRecord(t *testing.T) {
	rec := &entity.InventoryRecord{ID: "inv-1", ProductID: "p", Stock: dec("50"), StockMinimo: dec("10"), UnitPrice: dec("5")}
	ledger.RefreshStatus(rec)

	hint := entity.StockStatusDisponible
	mov, err := ledger.EditRecord(rec, ledger.EditInput{Stock: decPtr("0"), StatusHint: &hint, Notes: "conteo físico"})
	require.NoError(t, err)
	assert.True(t, rec.Stock.IsZero())
	assert.Equal(t, entity.StockStatusAgotado, rec.Status, "el estado siempre se deriva")
	assert.Equal(t, entity.StockStatusDisponible, rec.StatusHint)
	assert.Equal(t, entity.MovementTypeAjuste, mov.Type)
	assert.True(t, mov.Quantity.IsZero())
	assert.Equal(t, "conteo físico", mov.Notes)

	_, err = ledger.EditRecord(rec, ledger.EditInput{StockMinimo: decPtr("-1"), Stock: decPtr("99")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, rec.Stock.IsZero(), "una edición inválida no aplica cambios parciales")

	bad := "Vencido"
	_, err = ledger.EditRecord(rec, ledger.EditInput{StatusHint: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ledger.EditRecord(rec, ledger.EditInput{UnitPrice: decPtr("-3")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	expiry := fixedNow.AddDate(0, 0, 7)
	_, err = ledger.EditRecord(rec, ledger.EditInput{ExpiryDate: &expiry})
	require.NoError(t, err)
	require.NotNil(t, rec.ExpiryDate)
	_, err = ledger.EditRecord(rec, ledger.EditInput{ClearExpiry: true})
	require.NoError(t, err)
	assert.Nil(t, rec.ExpiryDate)
}

func TestReplayMovements(t *testing.T) {
	history := []*entity.StockMovement{
		{Type: entity.MovementTypeCompra, Quantity: dec("10")},
		{Type: entity.MovementTypeSalida, Quantity: dec("-4")},
		{Type: entity.MovementTypeAjuste, Quantity: dec("20")},
		{Type: entity.MovementTypeCompra, Quantity: dec("5")},
		{Type: entity.MovementTypeSalida, Quantity: dec("-2.5")},
	}
	assert.True(t, dec("22.5").Equal(ledger.ReplayMovements(history)))
	assert.True(t, ledger.ReplayMovements(nil).IsZero())
}
