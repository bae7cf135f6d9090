package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Verduleria-api/internal/application/dto"
	"github.com/jhoicas/Verduleria-api/internal/application/ports"
	"github.com/jhoicas/Verduleria-api/internal/application/reconciliation"
	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/ledger"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

// Options parámetros de negocio del inventario.
type Options struct {
	DefaultStockMinimo int // umbral para registros creados sin mínimo explícito
}

// UseCase registra compras, retiros y ediciones de inventario de forma transaccional
// con bloqueo por registro (Locker + SELECT FOR UPDATE + versión) y un movimiento por cambio.
type UseCase struct {
	tx            ports.TxRunner
	locker        ports.Locker
	repos         repository.Repositories
	coordinator   *reconciliation.Coordinator
	log           *logger.Logger
	defaultMinimo decimal.Decimal
	now           func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	tx ports.TxRunner,
	repos repository.Repositories,
	locker ports.Locker,
	coordinator *reconciliation.Coordinator,
	log *logger.Logger,
	opts Options,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	if coordinator == nil {
		coordinator = reconciliation.NewCoordinator(log)
	}
	minimo := ledger.DefaultStockMinimo
	if opts.DefaultStockMinimo > 0 {
		minimo = opts.DefaultStockMinimo
	}
	return &UseCase{
		tx:            tx,
		locker:        locker,
		repos:         repos,
		coordinator:   coordinator,
		log:           log.Component("inventory"),
		defaultMinimo: decimal.NewFromInt(int64(minimo)),
		now:           time.Now,
	}
}

// RegisterPurchase suma la compra al registro del producto o lo crea si no existe.
// El precio unitario queda con el de la última compra.
func (uc *UseCase) RegisterPurchase(ctx context.Context, actor dto.Actor, in dto.PurchaseRequest) (*dto.StockMutationResponse, error) {
	product, err := uc.activeProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if in.SupplierID != "" {
		if err := uc.checkSupplier(ctx, in.SupplierID); err != nil {
			return nil, err
		}
	}
	expiry, err := dto.ParseDate(in.ExpiryDate)
	if err != nil {
		return nil, domain.Invalid("fecha_vencimiento", "fecha inválida, use AAAA-MM-DD")
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.Invalid("fecha", "fecha inválida, use AAAA-MM-DD")
	}
	minimo := uc.defaultMinimo
	if in.StockMinimo != nil {
		minimo = *in.StockMinimo
	}

	// Orden fijo producto → registro. Retiros y ediciones solo toman la clave del registro.
	keys := []string{ports.InventoryProductLockKey(product.ID)}
	existing, err := uc.repos.Inventory.GetByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		keys = append(keys, ports.InventoryLockKey(existing.ID))
	}
	release, err := uc.acquire(ctx, keys...)
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		rec *entity.InventoryRecord
		mov *entity.StockMovement
	)
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		current, err := repos.Inventory.GetByProductForUpdate(ctx, product.ID)
		if err != nil {
			return err
		}
		rec, mov, err = ledger.ApplyPurchase(current, ledger.PurchaseInput{
			ProductID:   product.ID,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			SupplierID:  in.SupplierID,
			Reference:   in.Reference,
			ExpiryDate:  expiry,
			Date:        date,
			StockMinimo: &minimo,
			CreatedBy:   actor.UserID,
			Now:         uc.now(),
		})
		if err != nil {
			return err
		}
		if current == nil {
			rec.ID = uuid.New().String()
			rec.Version = 1
			if err := repos.Inventory.Create(ctx, rec); err != nil {
				return err
			}
		} else if err := repos.Inventory.Update(ctx, rec); err != nil {
			return err
		}
		return uc.appendMovement(ctx, repos, rec, mov)
	})
	if err != nil {
		return nil, err
	}
	rec.ProductName, rec.UnitMeasure = product.Name, product.UnitMeasure
	uc.log.Info().Str("inventory_id", rec.ID).Str("product_id", product.ID).Str("cantidad", mov.Quantity.String()).
		Str("stock", rec.Stock.String()).Str("actor", actor.UserID).Msg("compra registrada")
	return &dto.StockMutationResponse{Inventory: toInventoryResponse(rec), Movement: toMovementResponse(mov)}, nil
}

// RegisterWithdrawal descuenta stock validando 0 < cantidad <= stock actual.
func (uc *UseCase) RegisterWithdrawal(ctx context.Context, actor dto.Actor, id string, in dto.WithdrawalRequest) (*dto.StockMutationResponse, error) {
	release, err := uc.locker.Acquire(ctx, ports.InventoryLockKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		rec *entity.InventoryRecord
		mov *entity.StockMovement
	)
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		rec, err = repos.Inventory.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.NotFound("inventario", id)
		}
		mov, err = ledger.ApplyWithdrawal(rec, ledger.WithdrawalInput{
			Quantity:  in.Quantity,
			Reference: in.Reference,
			Notes:     in.Notes,
			CreatedBy: actor.UserID,
			Now:       uc.now(),
		})
		if err != nil {
			return err
		}
		if err := repos.Inventory.Update(ctx, rec); err != nil {
			return err
		}
		return uc.appendMovement(ctx, repos, rec, mov)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("inventory_id", rec.ID).Str("cantidad", mov.Quantity.String()).Str("stock", rec.Stock.String()).
		Str("estado", rec.Status).Str("actor", actor.UserID).Msg("retiro registrado")
	return &dto.StockMutationResponse{Inventory: toInventoryResponse(rec), Movement: toMovementResponse(mov)}, nil
}

// CreateRecord alta manual de un registro para un producto sin inventario.
func (uc *UseCase) CreateRecord(ctx context.Context, actor dto.Actor, in dto.CreateInventoryRequest) (*dto.StockMutationResponse, error) {
	product, err := uc.activeProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	edit := ledger.EditInput{
		Stock:       &in.Stock,
		StockMinimo: in.StockMinimo,
		UnitPrice:   &in.UnitPrice,
		Notes:       "alta de registro",
		CreatedBy:   actor.UserID,
		Now:         uc.now(),
	}
	if edit.StockMinimo == nil {
		edit.StockMinimo = &uc.defaultMinimo
	}
	if edit.EntryDate, err = dto.ParseDate(in.EntryDate); err != nil {
		return nil, domain.Invalid("fecha_ingreso", "fecha inválida, use AAAA-MM-DD")
	}
	if edit.ExpiryDate, err = dto.ParseDate(in.ExpiryDate); err != nil {
		return nil, domain.Invalid("fecha_vencimiento", "fecha inválida, use AAAA-MM-DD")
	}
	if edit.EntryDate == nil {
		now := edit.Now
		edit.EntryDate = &now
	}

	release, err := uc.locker.Acquire(ctx, ports.InventoryProductLockKey(product.ID))
	if err != nil {
		return nil, err
	}
	defer release()

	rec := &entity.InventoryRecord{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitMeasure: product.UnitMeasure,
		Version:     1,
		CreatedAt:   edit.Now,
	}
	var mov *entity.StockMovement
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Inventory.GetByProductForUpdate(ctx, product.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("el producto %s ya tiene inventario (%s): %w", product.ID, existing.ID, domain.ErrDuplicate)
		}
		if mov, err = ledger.EditRecord(rec, edit); err != nil {
			return err
		}
		if err := repos.Inventory.Create(ctx, rec); err != nil {
			return err
		}
		return uc.appendMovement(ctx, repos, rec, mov)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("inventory_id", rec.ID).Str("product_id", product.ID).Str("actor", actor.UserID).Msg("registro de inventario creado")
	return &dto.StockMutationResponse{Inventory: toInventoryResponse(rec), Movement: toMovementResponse(mov)}, nil
}

// EditRecord sobrescribe directamente stock, mínimo, precio y fechas sin consultar el historial.
// Deja un movimiento AJUSTE con el stock resultante.
func (uc *UseCase) EditRecord(ctx context.Context, actor dto.Actor, id string, in dto.UpdateInventoryRequest) (*dto.StockMutationResponse, error) {
	edit := ledger.EditInput{
		Stock:       in.Stock,
		StockMinimo: in.StockMinimo,
		UnitPrice:   in.UnitPrice,
		StatusHint:  in.Status,
		Notes:       in.Notes,
		CreatedBy:   actor.UserID,
		Now:         uc.now(),
	}
	if in.EntryDate != nil {
		d, err := dto.ParseDate(*in.EntryDate)
		if err != nil || d == nil {
			return nil, domain.Invalid("fecha_ingreso", "fecha inválida, use AAAA-MM-DD")
		}
		edit.EntryDate = d
	}
	if in.ExpiryDate != nil {
		d, err := dto.ParseDate(*in.ExpiryDate)
		if err != nil {
			return nil, domain.Invalid("fecha_vencimiento", "fecha inválida, use AAAA-MM-DD")
		}
		edit.ExpiryDate = d
		edit.ClearExpiry = d == nil
	}

	release, err := uc.locker.Acquire(ctx, ports.InventoryLockKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		rec *entity.InventoryRecord
		mov *entity.StockMovement
	)
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		rec, err = repos.Inventory.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.NotFound("inventario", id)
		}
		if mov, err = ledger.EditRecord(rec, edit); err != nil {
			return err
		}
		if err := repos.Inventory.Update(ctx, rec); err != nil {
			return err
		}
		return uc.appendMovement(ctx, repos, rec, mov)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("inventory_id", rec.ID).Str("stock", rec.Stock.String()).Str("estado", rec.Status).
		Str("actor", actor.UserID).Msg("registro de inventario editado")
	return &dto.StockMutationResponse{Inventory: toInventoryResponse(rec), Movement: toMovementResponse(mov)}, nil
}

// Get obtiene un registro por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.InventoryResponse, error) {
	rec, err := uc.repos.Inventory.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.NotFound("inventario", id)
	}
	resp := toInventoryResponse(rec)
	return &resp, nil
}

// List lista registros, opcionalmente filtrados por estado derivado.
func (uc *UseCase) List(ctx context.Context, in dto.InventoryFilterRequest) (*dto.InventoryListResponse, error) {
	in.DefaultPage()
	status := strings.TrimSpace(in.Status)
	switch status {
	case "", entity.StockStatusDisponible, entity.StockStatusBajo, entity.StockStatusAgotado:
	default:
		return nil, domain.Invalid("estado", "estado inválido %q", status)
	}
	filter := repository.InventoryFilter{Status: status, Limit: in.Limit, Offset: in.Offset}
	list, err := uc.repos.Inventory.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.repos.Inventory.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, toInventoryResponse(rec))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// ListPurchases registro de compras sobre el historial de movimientos COMPRA.
// desde y hasta son fechas inclusivas; monto_total suma todas las compras del filtro.
func (uc *UseCase) ListPurchases(ctx context.Context, in dto.PurchaseFilterRequest) (*dto.PurchaseListResponse, error) {
	in.DefaultPage()
	filter := repository.PurchaseFilter{
		SupplierID: strings.TrimSpace(in.SupplierID),
		ProductID:  strings.TrimSpace(in.ProductID),
	}
	from, err := dto.ParseDate(in.From)
	if err != nil {
		return nil, domain.Invalid("desde", "fecha inválida, use AAAA-MM-DD")
	}
	to, err := dto.ParseDate(in.To)
	if err != nil {
		return nil, domain.Invalid("hasta", "fecha inválida, use AAAA-MM-DD")
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, domain.Invalid("hasta", "hasta no puede ser anterior a desde")
	}
	filter.From = from
	if to != nil {
		end := to.AddDate(0, 0, 1)
		filter.To = &end
	}

	list, err := uc.repos.Movements.ListPurchases(ctx, filter)
	if err != nil {
		return nil, err
	}
	amount := decimal.Zero
	for _, m := range list {
		amount = amount.Add(m.Total())
	}
	page := list
	if in.Offset >= len(page) {
		page = nil
	} else {
		page = page[in.Offset:]
	}
	if len(page) > in.Limit {
		page = page[:in.Limit]
	}
	items := make([]dto.PurchaseResponse, 0, len(page))
	for _, m := range page {
		items = append(items, toPurchaseResponse(m))
	}
	return &dto.PurchaseListResponse{
		Items:  items,
		Amount: amount,
		Page:   dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: len(list)},
	}, nil
}

// ListMovements historial del registro en orden cronológico.
func (uc *UseCase) ListMovements(ctx context.Context, id string) ([]dto.MovementResponse, error) {
	rec, err := uc.repos.Inventory.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.NotFound("inventario", id)
	}
	list, err := uc.repos.Movements.ListByInventory(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// Reconcile reproduce el historial y compara con el stock almacenado.
// Con apply=true y diferencia distinta de cero fija el stock reconstruido (movimiento AJUSTE).
// Las ediciones normales nunca invocan esta reconciliación.
func (uc *UseCase) Reconcile(ctx context.Context, actor dto.Actor, id string, apply bool) (*dto.ReconcileResponse, error) {
	release, err := uc.locker.Acquire(ctx, ports.InventoryLockKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	resp := &dto.ReconcileResponse{InventoryID: id}
	var rec *entity.InventoryRecord
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		rec, err = repos.Inventory.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.NotFound("inventario", id)
		}
		res := uc.coordinator.RecomputeInventory(ctx, uc.repos.Movements, rec)
		resp.StoredStock = rec.Stock
		resp.ReplayedStock = res.Value
		resp.Drift = res.Value.Sub(rec.Stock)
		resp.Warning = toWarningResponse(res.Warning)
		if !apply || res.Degraded() || resp.Drift.IsZero() {
			return nil
		}
		mov, err := ledger.EditRecord(rec, ledger.EditInput{
			Stock:     &res.Value,
			Notes:     "reconciliación desde historial",
			CreatedBy: actor.UserID,
			Now:       uc.now(),
		})
		if err != nil {
			return err
		}
		if err := repos.Inventory.Update(ctx, rec); err != nil {
			return err
		}
		resp.Applied = true
		return uc.appendMovement(ctx, repos, rec, mov)
	})
	if err != nil {
		return nil, err
	}
	if resp.Applied {
		uc.log.Info().Str("inventory_id", id).Str("diferencia", resp.Drift.String()).Str("actor", actor.UserID).Msg("stock reconciliado")
	}
	inv := toInventoryResponse(rec)
	resp.Inventory = &inv
	return resp, nil
}

// acquire toma las claves en el orden dado; si una falla libera las ya tomadas.
func (uc *UseCase) acquire(ctx context.Context, keys ...string) (func(), error) {
	releases := make([]func(), 0, len(keys))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}
	for _, key := range keys {
		release, err := uc.locker.Acquire(ctx, key)
		if err != nil {
			releaseAll()
			return nil, err
		}
		releases = append(releases, release)
	}
	return releaseAll, nil
}

func (uc *UseCase) appendMovement(ctx context.Context, repos repository.Repositories, rec *entity.InventoryRecord, mov *entity.StockMovement) error {
	mov.ID = uuid.New().String()
	mov.InventoryID = rec.ID
	return repos.Movements.Create(ctx, mov)
}

func (uc *UseCase) activeProduct(ctx context.Context, id string) (*entity.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.Invalid("producto_id", "el producto es requerido")
	}
	p, err := uc.repos.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("producto", id)
	}
	if !p.Active {
		return nil, domain.Invalid("producto_id", "el producto %s está inactivo", id)
	}
	return p, nil
}

func (uc *UseCase) checkSupplier(ctx context.Context, id string) error {
	cp, err := uc.repos.Counterparties.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cp == nil {
		return domain.NotFound("proveedor", id)
	}
	if cp.Kind != entity.CounterpartyProveedor {
		return domain.Invalid("proveedor_id", "la contraparte %s no es un proveedor", id)
	}
	return nil
}
