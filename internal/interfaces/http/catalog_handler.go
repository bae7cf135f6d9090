package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Verduleria-api/internal/application/catalog"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

// CatalogHandler productos y contrapartes (solo lectura, protegido).
type CatalogHandler struct {
	uc  *catalog.UseCase
	log *logger.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// ActiveProducts godoc
// @Summary      Productos activos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/active [get]
func (h *CatalogHandler) ActiveProducts(c *fiber.Ctx) error {
	out, err := h.uc.ActiveProducts(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Counterparties godoc
// @Summary      Clientes y proveedores
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        type  query     string  false  "cliente | proveedor"
// @Success      200   {array}   dto.CounterpartyResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/counterparties [get]
func (h *CatalogHandler) Counterparties(c *fiber.Ctx) error {
	out, err := h.uc.Counterparties(c.UserContext(), c.Query("type"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
