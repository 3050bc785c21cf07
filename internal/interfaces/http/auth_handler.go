package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ViggenKorir/smartistics-api/internal/application/auth"
	"github.com/ViggenKorir/smartistics-api/internal/application/dto"
	"github.com/ViggenKorir/smartistics-api/internal/domain"
)

// AuthHandler maneja registro y login (público).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register crea un usuario.
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	user, errs, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errs != nil {
			return failFields(c, "validación fallida", errs)
		}
		return failErr(c, err)
	}
	return created(c, user)
}

// Login verifica credenciales y devuelve token + usuario.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		// Credenciales incorrectas y usuario inexistente responden igual
		// para no filtrar qué emails están registrados.
		if err == domain.ErrUserNotFound || err == domain.ErrUnauthorized {
			return fail(c, fiber.StatusUnauthorized, "credenciales inválidas")
		}
		return failErr(c, err)
	}
	return ok(c, out)
}
