package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Vending-api/internal/application/dto"
	"github.com/jhoicas/Vending-api/internal/domain"
)

// Códigos de error del cuerpo {code, message}.
const (
	codeValidation  = "VALIDATION"
	codeConstraint  = "CONSTRAINT"
	codeNotFound    = "NOT_FOUND"
	codeInvalidBody = "INVALID_BODY"
	codeInternal    = "INTERNAL"
)

// writeError traduce errores de dominio a status HTTP.
// Los errores internos se registran aquí y el cliente recibe un mensaje genérico.
func writeError(c *fiber.Ctx, err error) error {
	var ce *domain.ConstraintError
	switch {
	case errors.As(err, &ce):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: codeConstraint, Message: ce.Reason})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: codeValidation, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: codeNotFound, Message: err.Error()})
	default:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: codeInternal, Message: "error interno del servidor"})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: codeInvalidBody, Message: "cuerpo inválido"})
}
