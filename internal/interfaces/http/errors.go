package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/domain"
)

const internalMessage = "error interno del servidor"

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return badRequest(c, "INVALID_BODY", "cuerpo inválido")
}

// writeError traduce errores de dominio a respuestas HTTP. Lo no reconocido se
// registra con el request id y se devuelve como 500 opaco.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return badRequest(c, "DUPLICATE", err.Error())
	case errors.Is(err, domain.ErrMasterBusy):
		return badRequest(c, "MASTER_BUSY", err.Error())
	case errors.Is(err, domain.ErrAlreadyPaid):
		return badRequest(c, "ALREADY_PAID", err.Error())
	case errors.Is(err, domain.ErrClientMismatch):
		return badRequest(c, "CLIENT_MISMATCH", err.Error())
	case errors.Is(err, domain.ErrInUse):
		return badRequest(c, "IN_USE", err.Error())
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrMasterNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	}
	log.Error().Err(err).
		Str("request_id", requestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: internalMessage})
}

// ErrorHandler manejador global de Fiber: errores que escapan de los handlers
// (rutas inexistentes, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return writeError(c, err)
}
