package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ventas-api/pkg/logger"
)

const (
	localLogger     = "logger"
	localRequestID  = "request_id"
	headerRequestID = "X-Request-ID"
)

var nopLogger = logger.Nop()

// RequestLoggerMiddleware adjunta un logger por petición (request_id, method, path) y registra
// una línea al terminar con status y latencia: warn para 4xx, error para 5xx.
func RequestLoggerMiddleware(base *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(headerRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(headerRequestID, reqID)

		l := base.WithRequest(reqID, c.Method(), c.Path())
		c.Locals(localRequestID, reqID)
		c.Locals(localLogger, l)

		err := c.Next()
		if err != nil {
			// Deja que el ErrorHandler escriba la respuesta para registrar el status real.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		level := zerolog.InfoLevel
		switch {
		case status >= 500:
			level = zerolog.ErrorLevel
		case status >= 400:
			level = zerolog.WarnLevel
		}
		l.WithLevel(level).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición completada")
		return nil
	}
}

// RequestLogger devuelve el logger de la petición o uno nulo si el middleware no corrió.
func RequestLogger(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(localLogger).(*logger.Logger); ok {
		return l
	}
	return nopLogger
}
