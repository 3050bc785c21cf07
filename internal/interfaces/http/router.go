package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ViggenKorir/smartistics-api/internal/application/auth"
	"github.com/ViggenKorir/smartistics-api/internal/application/billing"
	"github.com/ViggenKorir/smartistics-api/internal/application/invoicing"
	"github.com/ViggenKorir/smartistics-api/internal/domain/roles"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC      *invoicing.UseCase
	SubscriptionUC *billing.SubscriptionUseCase
	AuthUC         *auth.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Put("/", invoiceHandler.BulkAction)
	invoices.Delete("/", invoiceHandler.BulkDelete)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Patch("/:id", invoiceHandler.Patch)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/history", invoiceHandler.History)
	invoices.Get("/:id/pdf", RequireExport(), invoiceHandler.PDF)

	// Dashboards (protegido)
	dashboards := protected.Group("/dashboards")
	dashboardHandler := NewDashboardHandler()
	dashboards.Get("/", dashboardHandler.List)
	dashboards.Get("/:name/access", dashboardHandler.Access)

	// Subscriptions (protegido, solo roles con acceso al dashboard Subscription)
	subscriptions := protected.Group("/subscription", RequireDashboard(roles.DashboardSubscription))
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subscriptions.Post("/upgrade", subscriptionHandler.Upgrade)
	subscriptions.Get("/:userId", subscriptionHandler.Get)
	subscriptions.Put("/:userId", subscriptionHandler.Update)
}
