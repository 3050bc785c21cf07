package roles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViggenKorir/smartistics-api/internal/domain/roles"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de permisos por rol. La enumeración es exhaustiva: cada celda
// rol × dashboard tiene un valor esperado explícito.
// ──────────────────────────────────────────────────────────────────────────────

func TestHasAccess_TablaCompleta(t *testing.T) {
	cases := []struct {
		role      roles.Role
		dashboard roles.Dashboard
		want      bool
	}{
		// Founder: acceso total.
		{roles.RoleFounder, roles.DashboardHome, true},
		{roles.RoleFounder, roles.DashboardROI, true},
		{roles.RoleFounder, roles.DashboardInsights, true},
		{roles.RoleFounder, roles.DashboardCampaigns, true},
		{roles.RoleFounder, roles.DashboardSegmentation, true},
		{roles.RoleFounder, roles.DashboardPayments, true},
		{roles.RoleFounder, roles.DashboardSubscription, true},

		// Marketer: sin segmentación, pagos ni suscripción.
		{roles.RoleMarketer, roles.DashboardHome, true},
		{roles.RoleMarketer, roles.DashboardROI, true},
		{roles.RoleMarketer, roles.DashboardInsights, true},
		{roles.RoleMarketer, roles.DashboardCampaigns, true},
		{roles.RoleMarketer, roles.DashboardSegmentation, false},
		{roles.RoleMarketer, roles.DashboardPayments, false},
		{roles.RoleMarketer, roles.DashboardSubscription, false},

		// Analyst: sin campañas, pagos ni suscripción.
		{roles.RoleAnalyst, roles.DashboardHome, true},
		{roles.RoleAnalyst, roles.DashboardROI, true},
		{roles.RoleAnalyst, roles.DashboardInsights, true},
		{roles.RoleAnalyst, roles.DashboardCampaigns, false},
		{roles.RoleAnalyst, roles.DashboardSegmentation, true},
		{roles.RoleAnalyst, roles.DashboardPayments, false},
		{roles.RoleAnalyst, roles.DashboardSubscription, false},

		// Admin: operativo, sin dashboards analíticos.
		{roles.RoleAdmin, roles.DashboardHome, true},
		{roles.RoleAdmin, roles.DashboardROI, false},
		{roles.RoleAdmin, roles.DashboardInsights, false},
		{roles.RoleAdmin, roles.DashboardCampaigns, false},
		{roles.RoleAdmin, roles.DashboardSegmentation, false},
		{roles.RoleAdmin, roles.DashboardPayments, true},
		{roles.RoleAdmin, roles.DashboardSubscription, true},
	}

	for _, tc := range cases {
		got := roles.HasAccess(tc.role, tc.dashboard)
		assert.Equal(t, tc.want, got,
			"rol %s sobre dashboard %q", tc.role, tc.dashboard)
	}
}

// Un rol desconocido nunca obtiene acceso (fail closed).
func TestHasAccess_RolDesconocidoFallaCerrado(t *testing.T) {
	for _, d := range roles.Dashboards() {
		assert.False(t, roles.HasAccess(roles.Role("SuperUser"), d))
		assert.False(t, roles.HasAccess(roles.Role(""), d))
	}
}

// Un dashboard desconocido nunca se concede, ni siquiera a Founder.
func TestHasAccess_DashboardDesconocidoFallaCerrado(t *testing.T) {
	assert.False(t, roles.HasAccess(roles.RoleFounder, roles.Dashboard("Secret Panel")))
}

func TestCapacidades(t *testing.T) {
	assert.True(t, roles.CanExport(roles.RoleFounder))
	assert.True(t, roles.CanExport(roles.RoleMarketer))
	assert.True(t, roles.CanExport(roles.RoleAnalyst))
	assert.True(t, roles.CanExport(roles.RoleAdmin))

	// Un rol fuera de la tabla no obtiene ninguna capacidad.
	assert.False(t, roles.CanExport(roles.Role("SuperUser")))

	assert.True(t, roles.CanManageUsers(roles.RoleFounder))
	assert.False(t, roles.CanManageUsers(roles.RoleMarketer))
	assert.False(t, roles.CanManageUsers(roles.RoleAnalyst))
	assert.True(t, roles.CanManageUsers(roles.RoleAdmin))

	assert.True(t, roles.CanAccessPayments(roles.RoleFounder))
	assert.False(t, roles.CanAccessPayments(roles.RoleMarketer))
	assert.False(t, roles.CanAccessPayments(roles.RoleAnalyst))
	assert.True(t, roles.CanAccessPayments(roles.RoleAdmin))
}

func TestIsValidRole(t *testing.T) {
	for _, r := range roles.All() {
		assert.True(t, roles.IsValidRole(string(r)))
	}
	assert.False(t, roles.IsValidRole("founder"), "la pertenencia distingue mayúsculas")
	assert.False(t, roles.IsValidRole(""))
	assert.False(t, roles.IsValidRole("Root"))
}

func TestIsValidDashboard(t *testing.T) {
	for _, d := range roles.Dashboards() {
		assert.True(t, roles.IsValidDashboard(string(d)))
	}
	assert.False(t, roles.IsValidDashboard("dashboard"))
	assert.False(t, roles.IsValidDashboard(""))
}

// AvailableDashboards devuelve una copia: mutarla no altera la tabla interna.
func TestAvailableDashboards_DevuelveCopia(t *testing.T) {
	first := roles.AvailableDashboards(roles.RoleAdmin)
	require.NotEmpty(t, first)
	first[0] = roles.Dashboard("Mutado")

	second := roles.AvailableDashboards(roles.RoleAdmin)
	assert.NotEqual(t, first[0], second[0], "la tabla interna no debe mutarse")
}

func TestAvailableDashboards_RolDesconocido(t *testing.T) {
	assert.Nil(t, roles.AvailableDashboards(roles.Role("Nadie")))
}

// Cada dashboard definido tiene ruta de navegación.
func TestRoute_TodosLosDashboardsTienenRuta(t *testing.T) {
	for _, d := range roles.Dashboards() {
		route, ok := roles.Route(d)
		assert.True(t, ok, "dashboard %q sin ruta", d)
		assert.NotEmpty(t, route)
	}

	_, ok := roles.Route(roles.Dashboard("Secret Panel"))
	assert.False(t, ok)
}
