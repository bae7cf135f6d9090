package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Verduleria-api/internal/application/dto"
	"github.com/jhoicas/Verduleria-api/internal/application/inventory"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

// InventoryHandler stock por producto: compras, retiros, ediciones y reconciliación (protegido).
type InventoryHandler struct {
	uc  *inventory.UseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        estado  query     string  false  "Disponible | Stock Bajo | Agotado"
// @Param        limit   query     int     false  "Máximo de resultados (default 50)"
// @Param        offset  query     int     false  "Desplazamiento"
// @Success      200     {object}  dto.InventoryListResponse
// @Failure      422     {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var in dto.InventoryFilterRequest
	if !bindQuery(c, &in) {
		return nil
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Purchases godoc
// @Summary      Registro de compras
// @Description  Compras registradas (movimientos COMPRA) con su total. desde y hasta son inclusivos.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        proveedor_id  query     string  false  "Proveedor"
// @Param        producto_id   query     string  false  "Producto"
// @Param        desde         query     string  false  "Fecha inicial AAAA-MM-DD"
// @Param        hasta         query     string  false  "Fecha final AAAA-MM-DD"
// @Param        limit         query     int     false  "Máximo de resultados (default 50)"
// @Param        offset        query     int     false  "Desplazamiento"
// @Success      200           {object}  dto.PurchaseListResponse
// @Failure      400           {object}  dto.ErrorResponse
// @Failure      422           {object}  dto.ErrorResponse
// @Router       /api/inventory/purchases [get]
func (h *InventoryHandler) Purchases(c *fiber.Ctx) error {
	var in dto.PurchaseFilterRequest
	if !bindQuery(c, &in) {
		return nil
	}
	out, err := h.uc.ListPurchases(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Alta manual de registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateInventoryRequest  true  "Registro"
// @Success      201   {object}  dto.StockMutationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.CreateRecord(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del registro"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar registro de inventario
// @Description  Sobrescribe directamente los campos enviados. "estado" se guarda como etiqueta manual;
// @Description  el estado efectivo siempre se deriva del stock y el mínimo.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "ID del registro"
// @Param        body  body      dto.UpdateInventoryRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.StockMutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.EditRecord(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Purchase godoc
// @Summary      Registrar compra
// @Description  Suma al registro del producto o lo crea con stock mínimo por defecto. El precio queda con el de la compra.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PurchaseRequest  true  "Compra"
// @Success      201   {object}  dto.StockMutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/purchases [post]
func (h *InventoryHandler) Purchase(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.RegisterPurchase(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Withdraw godoc
// @Summary      Registrar retiro
// @Description  0 < cantidad <= stock actual; con stock insuficiente responde 409.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "ID del registro"
// @Param        body  body      dto.WithdrawalRequest  true  "Retiro"
// @Success      201   {object}  dto.StockMutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/withdrawals [post]
func (h *InventoryHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.WithdrawalRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.RegisterWithdrawal(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Movements godoc
// @Summary      Historial de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del registro"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.ListMovements(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Reconciliar stock con el historial
// @Description  Reproduce los movimientos y reporta la diferencia. Con apply=true fija el stock reconstruido.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id     path      string  true   "ID del registro"
// @Param        apply  query     bool    false  "Aplicar la corrección"
// @Success      200    {object}  dto.ReconcileResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/reconcile [post]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	out, err := h.uc.Reconcile(c.UserContext(), GetActor(c), c.Params("id"), c.QueryBool("apply", false))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
