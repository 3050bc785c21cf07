// Package roles define la tabla estática de roles y permisos de la
// plataforma. Es el único punto que conoce qué dashboards y capacidades
// tiene cada rol; la tabla no se muta en runtime.
package roles

// Role rol de usuario (conjunto cerrado).
type Role string

const (
	RoleFounder  Role = "Founder"
	RoleMarketer Role = "Marketer"
	RoleAnalyst  Role = "Analyst"
	RoleAdmin    Role = "Admin"
)

// Dashboard nombre de dashboard (conjunto cerrado).
type Dashboard string

const (
	DashboardHome         Dashboard = "Dashboard"
	DashboardROI          Dashboard = "ROI Calculator"
	DashboardInsights     Dashboard = "Insights"
	DashboardCampaigns    Dashboard = "Campaign Performance"
	DashboardSegmentation Dashboard = "Customer Segmentation"
	DashboardPayments     Dashboard = "Payments & Reports"
	DashboardSubscription Dashboard = "Subscription"
)

// Permissions dashboards permitidos y capacidades de un rol.
type Permissions struct {
	Dashboards        []Dashboard
	CanExport         bool
	CanManageUsers    bool
	CanAccessPayments bool
}

// definitions tabla fija rol → permisos. Sin herencia ni comodines:
// la pertenencia es contención exacta en la lista.
var definitions = map[Role]Permissions{
	RoleFounder: {
		Dashboards: []Dashboard{
			DashboardHome, DashboardROI, DashboardInsights, DashboardCampaigns,
			DashboardSegmentation, DashboardPayments, DashboardSubscription,
		},
		CanExport:         true,
		CanManageUsers:    true,
		CanAccessPayments: true,
	},
	RoleMarketer: {
		Dashboards: []Dashboard{
			DashboardHome, DashboardROI, DashboardInsights, DashboardCampaigns,
		},
		CanExport: true,
	},
	RoleAnalyst: {
		Dashboards: []Dashboard{
			DashboardHome, DashboardROI, DashboardInsights, DashboardSegmentation,
		},
		CanExport: true,
	},
	RoleAdmin: {
		Dashboards: []Dashboard{
			DashboardHome, DashboardPayments, DashboardSubscription,
		},
		CanExport:         true,
		CanManageUsers:    true,
		CanAccessPayments: true,
	},
}

// routes ruta del frontend asociada a cada dashboard.
var routes = map[Dashboard]string{
	DashboardHome:         "/dashboard",
	DashboardROI:          "/dashboards/roi-calculator",
	DashboardInsights:     "/dashboards/insights",
	DashboardCampaigns:    "/dashboards/campaign-performance",
	DashboardSegmentation: "/dashboards/customer-segmentation",
	DashboardPayments:     "/payments",
	DashboardSubscription: "/dashboards/subscription",
}

// HasAccess informa si el rol puede ver el dashboard. Rol o dashboard
// desconocido → false (fail closed, nunca fail open).
func HasAccess(role Role, dashboard Dashboard) bool {
	perms, ok := definitions[role]
	if !ok {
		return false
	}
	for _, d := range perms.Dashboards {
		if d == dashboard {
			return true
		}
	}
	return false
}

// CanExport informa si el rol puede exportar (PDF, reportes).
func CanExport(role Role) bool {
	return definitions[role].CanExport
}

// CanManageUsers informa si el rol puede administrar usuarios.
func CanManageUsers(role Role) bool {
	return definitions[role].CanManageUsers
}

// CanAccessPayments informa si el rol puede acceder a pagos.
func CanAccessPayments(role Role) bool {
	return definitions[role].CanAccessPayments
}

// IsValidRole protege contra roles corruptos en sesiones: pertenencia al
// conjunto cerrado.
func IsValidRole(s string) bool {
	_, ok := definitions[Role(s)]
	return ok
}

// IsValidDashboard pertenencia del nombre al conjunto cerrado de dashboards.
func IsValidDashboard(s string) bool {
	_, ok := routes[Dashboard(s)]
	return ok
}

// All devuelve los roles definidos.
func All() []Role {
	return []Role{RoleFounder, RoleMarketer, RoleAnalyst, RoleAdmin}
}

// Dashboards devuelve todos los dashboards definidos.
func Dashboards() []Dashboard {
	return []Dashboard{
		DashboardHome, DashboardROI, DashboardInsights, DashboardCampaigns,
		DashboardSegmentation, DashboardPayments, DashboardSubscription,
	}
}

// AvailableDashboards dashboards permitidos para el rol (copia; la tabla
// interna nunca se expone mutable).
func AvailableDashboards(role Role) []Dashboard {
	perms, ok := definitions[role]
	if !ok {
		return nil
	}
	out := make([]Dashboard, len(perms.Dashboards))
	copy(out, perms.Dashboards)
	return out
}

// Route devuelve la ruta del frontend para el dashboard.
func Route(d Dashboard) (string, bool) {
	r, ok := routes[d]
	return r, ok
}
