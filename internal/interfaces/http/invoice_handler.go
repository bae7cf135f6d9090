package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Verduleria-api/internal/application/accounts"
	"github.com/jhoicas/Verduleria-api/internal/application/dto"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

// InvoiceHandler facturas por cobrar/pagar y sus abonos (protegido).
type InvoiceHandler struct {
	uc  *accounts.UseCase
	log *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *accounts.UseCase, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        type             query  string  false  "cobrar | pagar"
// @Param        counterparty_id  query  string  false  "Cliente o proveedor"
// @Param        pending          query  bool    false  "Solo con saldo pendiente"
// @Param        limit            query  int     false  "Máximo de resultados (default 50)"
// @Param        offset           query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.InvoiceListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var in dto.InvoiceFilterRequest
	if !bindQuery(c, &in) {
		return nil
	}
	out, err := h.uc.ListInvoices(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar factura
// @Description  El saldo inicia igual al monto. cobrar requiere un cliente y pagar un proveedor.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateInvoiceRequest  true  "Factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.RegisterInvoice(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetInvoice(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar factura
// @Description  Si cambia el monto, el saldo se recalcula contra los abonos existentes. Si los abonos
// @Description  no pudieron leerse la respuesta incluye "warning" y el saldo queda igual al monto.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "ID de la factura"
// @Param        body  body      dto.UpdateInvoiceRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.InvoiceMutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateInvoice(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar factura
// @Description  Solo facturas sin abonos; con abonos responde 409 INVOICE_HAS_PAYMENTS.
// @Tags         invoices
// @Security     Bearer
// @Param        id   path  string  true  "ID de la factura"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteInvoice(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Verify godoc
// @Summary      Verificar saldo
// @Description  Compara el saldo almacenado con monto menos la suma de abonos.
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la factura"
// @Success      200  {object}  dto.BalanceCheckResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/verify [get]
func (h *InvoiceHandler) Verify(c *fiber.Ctx) error {
	out, err := h.uc.VerifyInvoice(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListPayments godoc
// @Summary      Listar abonos de una factura
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        invoice_id  query     string  true  "ID de la factura"
// @Success      200         {array}   dto.PaymentResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Failure      422         {object}  dto.ErrorResponse
// @Router       /api/payments [get]
func (h *InvoiceHandler) ListPayments(c *fiber.Ctx) error {
	out, err := h.uc.ListPayments(c.UserContext(), c.Query("invoice_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ApplyPayment godoc
// @Summary      Registrar abono
// @Description  0 < monto <= saldo. El saldo se descuenta en la misma transacción.
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePaymentRequest  true  "Abono"
// @Success      201   {object}  dto.PaymentResultResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *InvoiceHandler) ApplyPayment(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if !bindJSON(c, &in) {
		return nil
	}
	out, err := h.uc.ApplyPayment(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
