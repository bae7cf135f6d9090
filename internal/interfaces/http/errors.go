package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Verduleria-api/internal/application/dto"
	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

// errorStatus traduce un error de dominio a status HTTP y código estable para el cliente.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrPaymentExceedsBalance):
		return fiber.StatusUnprocessableEntity, "PAYMENT_EXCEEDS_BALANCE"
	case errors.Is(err, domain.ErrNonPositiveAmount):
		return fiber.StatusUnprocessableEntity, "NON_POSITIVE_AMOUNT"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusUnprocessableEntity, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvoiceHasPayments):
		return fiber.StatusConflict, "INVOICE_HAS_PAYMENTS"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrLockTimeout):
		return fiber.StatusConflict, "LOCK_TIMEOUT"
	case errors.Is(err, domain.ErrTransport):
		return fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// writeError responde con dto.ErrorResponse. Los errores de validación incluyen el campo;
// los 5xx no exponen el detalle interno y se registran en el log.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code := errorStatus(err)
	resp := dto.ErrorResponse{Code: code, Message: err.Error()}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp.Message = ve.Message
		if ve.Field != "" {
			resp.Fields = map[string]string{ve.Field: ve.Message}
		}
	}
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Str("code", code).Msg("error en petición")
		if status == fiber.StatusInternalServerError {
			resp.Message = "error interno del servidor"
		} else {
			resp.Message = domain.ErrTransport.Error()
		}
	}
	return c.Status(status).JSON(resp)
}

// ErrorHandler manejador global de fiber para errores no tratados por los handlers.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}
		return writeError(c, log, err)
	}
}
