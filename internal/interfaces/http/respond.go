package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ViggenKorir/smartistics-api/internal/application/dto"
	"github.com/ViggenKorir/smartistics-api/internal/domain"
)

// Helpers de respuesta: toda la API usa la envolvente dto.Response.

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(dto.OK(data))
}

func okMessage(c *fiber.Ctx, data any, message string) error {
	return c.JSON(dto.OKMessage(data, message))
}

func okPage(c *fiber.Ctx, data any, p dto.Pagination) error {
	return c.JSON(dto.OKPage(data, p))
}

func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Fail(message))
}

func failFields(c *fiber.Ctx, message string, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.FailFields(message, errs))
}

// failErr mapea errores de dominio a su status HTTP. Los errores no
// reconocidos son 500 con mensaje genérico: el detalle se registra en el
// log, no se expone al cliente.
func failErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "recurso no encontrado")
	case errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "usuario no encontrado")
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "entrada inválida")
	case errors.Is(err, domain.ErrPaymentDeclined):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusBadRequest, "el email ya está registrado")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "no autorizado")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "acceso denegado")
	default:
		return fail(c, fiber.StatusInternalServerError, "error interno")
	}
}
