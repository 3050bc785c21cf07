package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/ViggenKorir/smartistics-api/internal/domain/roles"
)

// DashboardHandler expone la tabla de permisos de dashboards por rol.
type DashboardHandler struct{}

// NewDashboardHandler construye el handler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// List devuelve los dashboards disponibles para el rol autenticado, con su
// ruta de navegación.
// GET /api/dashboards
func (h *DashboardHandler) List(c *fiber.Ctx) error {
	if !roles.IsValidRole(GetRole(c)) {
		return fail(c, fiber.StatusForbidden, "rol desconocido")
	}
	role := roles.Role(GetRole(c))

	available := roles.AvailableDashboards(role)
	items := make([]fiber.Map, 0, len(available))
	for _, d := range available {
		route, _ := roles.Route(d)
		items = append(items, fiber.Map{
			"dashboard": d,
			"route":     route,
		})
	}
	return ok(c, fiber.Map{
		"role":       role,
		"dashboards": items,
	})
}

// Access consulta si el rol autenticado puede acceder a un dashboard
// concreto. El nombre viene URL-escapado en la ruta.
// GET /api/dashboards/:name/access
func (h *DashboardHandler) Access(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "nombre de dashboard inválido")
	}
	if !roles.IsValidDashboard(name) {
		return fail(c, fiber.StatusNotFound, "dashboard desconocido")
	}
	dashboard := roles.Dashboard(name)

	role := roles.Role(GetRole(c))
	allowed := roles.IsValidRole(GetRole(c)) && roles.HasAccess(role, dashboard)
	route, _ := roles.Route(dashboard)
	return ok(c, fiber.Map{
		"role":      role,
		"dashboard": dashboard,
		"route":     route,
		"hasAccess": allowed,
	})
}
