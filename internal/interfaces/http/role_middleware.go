package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ViggenKorir/smartistics-api/internal/application/dto"
	"github.com/ViggenKorir/smartistics-api/internal/domain/roles"
)

// RequireDashboard devuelve un middleware Fiber que verifica si el rol del
// token JWT puede ver el dashboard. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalRole).
//
// Comportamiento:
//   - 401 → no hay rol en el contexto (el AuthMiddleware debería haberlo puesto).
//   - 403 → rol desconocido o sin el dashboard en su lista (fail closed,
//     nunca fail open). El cuerpo identifica el dashboard requerido y el rol
//     real del usuario ("Access Restricted").
func RequireDashboard(dashboard roles.Dashboard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return fail(c, fiber.StatusUnauthorized, "rol no encontrado en el token")
		}
		if !roles.IsValidRole(role) || !roles.HasAccess(roles.Role(role), dashboard) {
			route, _ := roles.Route(dashboard)
			return c.Status(fiber.StatusForbidden).JSON(dto.Response{
				Success: false,
				Message: "acceso restringido",
				Data: fiber.Map{
					"dashboard": dashboard,
					"role":      role,
					"route":     route,
				},
			})
		}
		return c.Next()
	}
}

// RequireExport exige la capacidad de exportación del rol (PDF, reportes).
func RequireExport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return fail(c, fiber.StatusUnauthorized, "rol no encontrado en el token")
		}
		if !roles.IsValidRole(role) || !roles.CanExport(roles.Role(role)) {
			return fail(c, fiber.StatusForbidden, "el rol no permite exportar")
		}
		return c.Next()
	}
}
