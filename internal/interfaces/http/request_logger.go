package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// LocalRequestID clave donde el middleware requestid deja el ID de la petición.
const LocalRequestID = "requestid"

func requestID(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRequestID).(string)
	return v
}

// RequestLogger registra método, ruta, status, latencia y request id de cada petición.
func RequestLogger(l zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		ev := l.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = l.Error()
		case status >= fiber.StatusBadRequest:
			ev = l.Warn()
		}
		ev.Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return err
	}
}
