package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

// RequestIDHeader header de correlación; si el cliente no lo envía se genera uno.
const RequestIDHeader = "X-Request-ID"

// RequestLogger registra cada petición con método, ruta, status y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(RequestIDHeader, reqID)

		err := c.Next()
		if err != nil {
			// El ErrorHandler escribe la respuesta; el status final se conoce después.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("request_id", reqID).Str("method", c.Method()).Str("path", c.Path()).
			Int("status", status).Dur("latency", time.Since(start)).Str("user_id", GetUserID(c)).Msg("request")
		return nil
	}
}
