package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/money"
)

// DefaultStockMinimo umbral de reorden para registros creados por una compra.
const DefaultStockMinimo = 10

// DeriveStatus stock == 0 → Agotado; 0 < stock <= mínimo → Stock Bajo; resto → Disponible.
func DeriveStatus(stock, minimo decimal.Decimal) string {
	switch {
	case !stock.IsPositive():
		return entity.StockStatusAgotado
	case stock.LessThanOrEqual(minimo):
		return entity.StockStatusBajo
	default:
		return entity.StockStatusDisponible
	}
}

// RefreshStatus recalcula el estado derivado del registro.
func RefreshStatus(rec *entity.InventoryRecord) {
	rec.Status = DeriveStatus(rec.Stock, rec.StockMinimo)
}

func validateQuantity(q decimal.Decimal) (decimal.Decimal, error) {
	q = money.RoundQuantity(q)
	if !money.IsPositive(q) {
		return decimal.Zero, &domain.ValidationError{Field: "cantidad", Message: "la cantidad debe ser mayor a 0", Err: domain.ErrInvalidInput}
	}
	return q, nil
}

// PurchaseInput entrada de mercadería por compra.
type PurchaseInput struct {
	ProductID   string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	SupplierID  string
	Reference   string
	ExpiryDate  *time.Time
	StockMinimo *decimal.Decimal // usado solo si el registro no existe; nil = DefaultStockMinimo
	Date        *time.Time       // fecha de la compra; nil = Now
	CreatedBy   string
	Now         time.Time
}

// ApplyPurchase suma la compra al registro (o lo crea si rec es nil) y devuelve el movimiento.
// El precio unitario se sobrescribe con el de la compra (último gana, no promedio ponderado).
func ApplyPurchase(rec *entity.InventoryRecord, in PurchaseInput) (*entity.InventoryRecord, *entity.StockMovement, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, nil, domain.Invalid("producto_id", "el producto es requerido")
	}
	qty, err := validateQuantity(in.Quantity)
	if err != nil {
		return nil, nil, err
	}
	price := money.RoundMoney(in.UnitPrice)
	if price.IsNegative() {
		return nil, nil, domain.Invalid("precio", "el precio unitario no puede ser negativo")
	}
	minimo := decimal.NewFromInt(DefaultStockMinimo)
	if in.StockMinimo != nil {
		minimo = money.RoundQuantity(*in.StockMinimo)
		if minimo.IsNegative() {
			return nil, nil, domain.Invalid("stock_minimo", "el stock mínimo no puede ser negativo")
		}
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	date := now
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}

	if rec == nil {
		rec = &entity.InventoryRecord{
			ProductID:   in.ProductID,
			Stock:       qty,
			StockMinimo: minimo,
			UnitPrice:   price,
			EntryDate:   now,
			ExpiryDate:  in.ExpiryDate,
			CreatedAt:   now,
		}
	} else {
		if rec.ProductID != in.ProductID {
			return nil, nil, domain.Invalid("producto_id", "el registro de inventario no corresponde al producto")
		}
		rec.Stock = rec.Stock.Add(qty)
		rec.UnitPrice = price
		rec.StatusHint = ""
		if in.ExpiryDate != nil {
			rec.ExpiryDate = in.ExpiryDate
		}
	}
	rec.UpdatedAt = now
	RefreshStatus(rec)

	mov := &entity.StockMovement{
		InventoryID: rec.ID,
		ProductID:   rec.ProductID,
		Type:        entity.MovementTypeCompra,
		Quantity:    qty,
		UnitPrice:   price,
		StockAfter:  rec.Stock,
		SupplierID:  in.SupplierID,
		Reference:   in.Reference,
		CreatedBy:   in.CreatedBy,
		Date:        date,
		CreatedAt:   now,
	}
	return rec, mov, nil
}

// WithdrawalInput retiro de stock.
type WithdrawalInput struct {
	Quantity  decimal.Decimal
	Reference string
	Notes     string
	CreatedBy string
	Now       time.Time
}

// ApplyWithdrawal valida 0 < cantidad <= stock y descuenta el stock. Si falla rec no se modifica.
// Cualquier movimiento descarta la etiqueta manual de estado.
func ApplyWithdrawal(rec *entity.InventoryRecord, in WithdrawalInput) (*entity.StockMovement, error) {
	qty, err := validateQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	if qty.GreaterThan(rec.Stock) {
		return nil, &domain.ValidationError{
			Field:   "cantidad",
			Message: fmt.Sprintf("stock insuficiente: disponible %s, solicitado %s", rec.Stock.String(), qty.String()),
			Err:     domain.ErrInsufficientStock,
		}
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	rec.Stock = money.ClampNonNegative(rec.Stock.Sub(qty))
	rec.StatusHint = ""
	rec.UpdatedAt = now
	RefreshStatus(rec)

	return &entity.StockMovement{
		InventoryID: rec.ID,
		ProductID:   rec.ProductID,
		Type:        entity.MovementTypeSalida,
		Quantity:    qty.Neg(),
		UnitPrice:   rec.UnitPrice,
		StockAfter:  rec.Stock,
		Reference:   in.Reference,
		Notes:       in.Notes,
		CreatedBy:   in.CreatedBy,
		Date:        now,
		CreatedAt:   now,
	}, nil
}

// EditInput campos editables de un registro. nil = sin cambio.
type EditInput struct {
	Stock       *decimal.Decimal
	StockMinimo *decimal.Decimal
	UnitPrice   *decimal.Decimal
	EntryDate   *time.Time
	ExpiryDate  *time.Time
	ClearExpiry bool
	StatusHint  *string
	Notes       string
	CreatedBy   string
	Now         time.Time
}

// EditRecord sobrescribe directamente los campos sin consultar el historial de movimientos.
// Devuelve un movimiento AJUSTE con el stock resultante para que el historial pueda reproducirse.
func EditRecord(rec *entity.InventoryRecord, in EditInput) (*entity.StockMovement, error) {
	next := *rec
	if in.Stock != nil {
		s := money.RoundQuantity(*in.Stock)
		if s.IsNegative() {
			return nil, domain.Invalid("stock_actual", "el stock no puede ser negativo")
		}
		next.Stock = s
	}
	if in.StockMinimo != nil {
		m := money.RoundQuantity(*in.StockMinimo)
		if m.IsNegative() {
			return nil, domain.Invalid("stock_minimo", "el stock mínimo no puede ser negativo")
		}
		next.StockMinimo = m
	}
	if in.UnitPrice != nil {
		p := money.RoundMoney(*in.UnitPrice)
		if p.IsNegative() {
			return nil, domain.Invalid("precio_unitario", "el precio unitario no puede ser negativo")
		}
		next.UnitPrice = p
	}
	if in.EntryDate != nil {
		next.EntryDate = *in.EntryDate
	}
	if in.ClearExpiry {
		next.ExpiryDate = nil
	} else if in.ExpiryDate != nil {
		next.ExpiryDate = in.ExpiryDate
	}
	if in.StatusHint != nil {
		hint := strings.TrimSpace(*in.StatusHint)
		switch hint {
		case "", entity.StockStatusDisponible, entity.StockStatusBajo, entity.StockStatusAgotado:
		default:
			return nil, domain.Invalid("estado", "estado inválido %q", hint)
		}
		next.StatusHint = hint
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	next.UpdatedAt = now
	RefreshStatus(&next)
	*rec = next

	return &entity.StockMovement{
		InventoryID: rec.ID,
		ProductID:   rec.ProductID,
		Type:        entity.MovementTypeAjuste,
		Quantity:    rec.Stock,
		UnitPrice:   rec.UnitPrice,
		StockAfter:  rec.Stock,
		Notes:       in.Notes,
		CreatedBy:   in.CreatedBy,
		Date:        now,
		CreatedAt:   now,
	}, nil
}

// ReplayMovements reconstruye el stock desde el historial (en orden cronológico):
// AJUSTE fija el valor absoluto, COMPRA suma, SALIDA resta (Quantity ya viene negativa).
func ReplayMovements(movements []*entity.StockMovement) decimal.Decimal {
	stock := decimal.Zero
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypeAjuste:
			stock = m.Quantity
		case entity.MovementTypeCompra, entity.MovementTypeSalida:
			stock = stock.Add(m.Quantity)
		}
		stock = money.ClampNonNegative(stock)
	}
	return stock
}
