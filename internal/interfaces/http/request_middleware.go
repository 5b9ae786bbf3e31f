package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/jhoicas/Careplus-api/pkg/logger"
)

// RequestIDHeader cabecera de correlación; se reutiliza si llega del cliente.
const RequestIDHeader = "X-Request-ID"

// Locals keys para el request id y el logger por petición.
const (
	LocalRequestID = "request_id"
	LocalLogger    = "logger"
)

// RequestID asegura un id por petición (UUID si el cliente no envía uno) y lo devuelve en la respuesta.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     RequestIDHeader,
		Generator:  uuid.NewString,
		ContextKey: LocalRequestID,
	})
}

// GetRequestID devuelve el request id del contexto (después de RequestID).
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}

// RequestLogger deja un logger con request_id en c.Locals y escribe una línea por petición.
// Nivel según status: 5xx error, 4xx warn, resto info.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqLog := log.With().Str("request_id", GetRequestID(c)).Logger()
		c.Locals(LocalLogger, &reqLog)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		var e *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			e = reqLog.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			e = reqLog.Warn()
		default:
			e = reqLog.Info()
		}
		e.Str("method", c.Method()).
			Str("uri", c.OriginalURL()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("API")
		return err
	}
}

// GetLogger devuelve el logger de la petición; si no hay, el global de zerolog.
func GetLogger(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(LocalLogger).(*zerolog.Logger); ok && l != nil {
		return l
	}
	return &zlog.Logger
}
