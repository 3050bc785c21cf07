package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ViggenKorir/smartistics-api/internal/application/billing"
	"github.com/ViggenKorir/smartistics-api/internal/application/dto"
)

// SubscriptionHandler maneja el estado de suscripción y las mejoras de plan.
type SubscriptionHandler struct {
	uc *billing.SubscriptionUseCase
}

// NewSubscriptionHandler construye el handler.
func NewSubscriptionHandler(uc *billing.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Get estado de suscripción del usuario, con daysOverdue e isLocked
// derivados del momento de la consulta.
// GET /api/subscription/:userId
func (h *SubscriptionHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Context(), c.Params("userId"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, resp)
}

// Update merge superficial de campos de la suscripción.
// PUT /api/subscription/:userId
func (h *SubscriptionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubscriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	resp, errs, err := h.uc.Update(c.Context(), c.Params("userId"), in)
	if err != nil {
		if errs != nil {
			return failFields(c, "validación fallida", errs)
		}
		return failErr(c, err)
	}
	return okMessage(c, resp, "suscripción actualizada")
}

// Upgrade procesa el pago (simulado) y activa el plan solicitado.
// POST /api/subscription/upgrade
func (h *SubscriptionHandler) Upgrade(c *fiber.Ctx) error {
	var in dto.UpgradeSubscriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	result, errs, err := h.uc.Upgrade(c.Context(), in)
	if err != nil {
		if errs != nil {
			return failFields(c, "validación fallida", errs)
		}
		return failErr(c, err)
	}
	return okMessage(c, result, "plan activado")
}
