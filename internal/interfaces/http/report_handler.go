package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Verduleria-api/internal/application/reports"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

// ReportHandler reportes de cartera e inventario (protegido).
type ReportHandler struct {
	uc  *reports.UseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Balances godoc
// @Summary      Saldos pendientes por contraparte
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        type  query     string  true  "cobrar | pagar"
// @Success      200   {object}  dto.BalanceSummaryResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/reports/balances [get]
func (h *ReportHandler) Balances(c *fiber.Ctx) error {
	out, err := h.uc.BalanceSummary(c.UserContext(), c.Query("type"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Resumen de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.InventorySummary(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
