package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViggenKorir/smartistics-api/internal/application/auth"
	"github.com/ViggenKorir/smartistics-api/internal/application/billing"
	"github.com/ViggenKorir/smartistics-api/internal/application/invoicing"
	"github.com/ViggenKorir/smartistics-api/internal/infrastructure/jsonstore"
	"github.com/ViggenKorir/smartistics-api/internal/infrastructure/memstore"
	"github.com/ViggenKorir/smartistics-api/internal/infrastructure/payments"
	apphttp "github.com/ViggenKorir/smartistics-api/internal/interfaces/http"
	"github.com/ViggenKorir/smartistics-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de integración sobre el router completo: envolvente de respuesta,
// rutas anidadas, acciones bulk y la puerta de rol del grupo de suscripciones.
// ──────────────────────────────────────────────────────────────────────────────

func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := jsonstore.Open(filepath.Join(t.TempDir(), "db.json"))

	opts := []payments.Option{
		payments.WithLatency(0),
		payments.WithRand(func() float64 { return 0.0 }),
	}
	processors := map[string]billing.PaymentProcessor{
		"card":   payments.NewCardSimulator(opts...),
		"mpesa":  payments.NewMpesaSimulator(opts...),
		"paypal": payments.NewPaypalSimulator(opts...),
	}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		InvoiceUC:      invoicing.NewUseCase(jsonstore.NewInvoiceRepository(store), nil, logger.Nop()),
		SubscriptionUC: billing.NewSubscriptionUseCase(memstore.NewSubscriptionRepository(), processors, logger.Nop()),
		AuthUC: auth.NewUseCase(jsonstore.NewUserRepository(store), auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func createInvoiceBody() map[string]any {
	return map[string]any{
		"client": map[string]any{
			"name":    "Acme Corp",
			"address": "Calle Principal 1",
			"phone":   "555-0100",
			"email":   "billing@acme.example",
		},
		"items": []map[string]any{
			{"description": "Consultoría", "unitPrice": 100, "quantity": 2},
		},
		"taxRate": 10,
	}
}

// ── Facturas ──────────────────────────────────────────────────────────────────

// Ciclo completo: crear, leer, actualizar estado, historial, eliminar.
func TestRouter_CicloDeFactura(t *testing.T) {
	app := buildAPI(t)
	token := tokenForRole(t, "Founder")

	// Crear: 201 con envolvente success/data.
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/", token, createInvoiceBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, true, body["success"])
	inv := body["data"].(map[string]any)
	id := inv["id"].(string)
	assert.Equal(t, "draft", inv["status"])
	assert.Contains(t, inv["invoiceNumber"], "#CRF")

	// Leer por id.
	resp = doJSON(t, app, http.MethodGet, "/api/invoices/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Actualizar estado.
	resp = doJSON(t, app, http.MethodPut, "/api/invoices/"+id, token, map[string]any{"status": "sent"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "sent", body["data"].(map[string]any)["status"])

	// El historial registra el cambio.
	resp = doJSON(t, app, http.MethodGet, "/api/invoices/"+id+"/history", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	history := body["data"].([]any)
	require.Len(t, history, 1)

	// Eliminar.
	resp = doJSON(t, app, http.MethodDelete, "/api/invoices/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_ListadoPaginado(t *testing.T) {
	app := buildAPI(t)
	token := tokenForRole(t, "Founder")
	for i := 0; i < 12; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/invoices/", token, createInvoiceBody())
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/?page=2&limit=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Len(t, body["data"].([]any), 2)
	page := body["pagination"].(map[string]any)
	assert.Equal(t, float64(12), page["total"])
	assert.Equal(t, float64(2), page["totalPages"])
}

func TestRouter_ValidacionDevuelveErroresPorCampo(t *testing.T) {
	app := buildAPI(t)
	token := tokenForRole(t, "Founder")

	in := createInvoiceBody()
	in["items"] = []map[string]any{}
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/", token, in)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "items")
}

// PUT sobre la colección requiere la acción bulk conocida.
func TestRouter_BulkStatusUpdate(t *testing.T) {
	app := buildAPI(t)
	token := tokenForRole(t, "Founder")

	var ids []string
	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/invoices/", token, createInvoiceBody())
		body := decodeBody(t, resp)
		ids = append(ids, body["data"].(map[string]any)["id"].(string))
	}

	// Acción desconocida → 400.
	resp := doJSON(t, app, http.MethodPut, "/api/invoices/?action=otra-cosa", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Acción válida con un id fantasma: permisivo, actualiza 2.
	resp = doJSON(t, app, http.MethodPut, "/api/invoices/?action=bulk-status-update", token, map[string]any{
		"invoiceIds": append(ids, "fantasma"),
		"status":     "paid",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], "2 facturas")
}

func TestRouter_BulkDelete(t *testing.T) {
	app := buildAPI(t)
	token := tokenForRole(t, "Founder")

	resp := doJSON(t, app, http.MethodPost, "/api/invoices/", token, createInvoiceBody())
	body := decodeBody(t, resp)
	id := body["data"].(map[string]any)["id"].(string)

	// Sin ids → 400.
	resp = doJSON(t, app, http.MethodDelete, "/api/invoices/", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/invoices/?ids="+id+",fantasma", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Contains(t, body["message"], "1 facturas")
}

func TestRouter_SinTokenRecibe401(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ── Dashboards ────────────────────────────────────────────────────────────────

func TestRouter_DashboardsDelRol(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboards/", tokenForRole(t, "Admin"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	data := body["data"].(map[string]any)
	assert.Equal(t, "Admin", data["role"])
	assert.Len(t, data["dashboards"].([]any), 3)
}

// El nombre del dashboard viaja URL-escapado en la ruta.
func TestRouter_ConsultaDeAccesoConNombreEscapado(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet,
		"/api/dashboards/Payments%20%26%20Reports/access", tokenForRole(t, "Analyst"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	data := body["data"].(map[string]any)
	assert.Equal(t, "Payments & Reports", data["dashboard"])
	assert.Equal(t, false, data["hasAccess"])
	assert.Equal(t, "/payments", data["route"])
}

func TestRouter_DashboardDesconocido404(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet,
		"/api/dashboards/Secreto/access", tokenForRole(t, "Founder"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ── Suscripciones ─────────────────────────────────────────────────────────────

// El grupo de suscripciones exige un rol con el dashboard Subscription.
func TestRouter_SuscripcionesGateadasPorRol(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/subscription/user2", tokenForRole(t, "Marketer"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/subscription/user2", tokenForRole(t, "Founder"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "plus", data["tier"])
	assert.Equal(t, false, data["isLocked"])
}

func TestRouter_UpgradeDeSuscripcion(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/subscription/upgrade", tokenForRole(t, "Admin"), map[string]any{
		"userId":        "user1",
		"planId":        "plus",
		"billingCycle":  "monthly",
		"paymentMethod": "card",
		"amount":        12,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["transactionId"])
	sub := data["subscription"].(map[string]any)
	assert.Equal(t, "plus", sub["tier"])
	assert.Equal(t, "active", sub["status"])
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func TestRouter_RegistroYLogin(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "ana@example.com",
		"password": "clave-muy-larga",
		"name":     "Ana",
		"role":     "Founder",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	user := body["data"].(map[string]any)
	assert.NotContains(t, user, "passwordHash", "el hash jamás sale en la API")

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "ana@example.com",
		"password": "clave-muy-larga",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	loginData := body["data"].(map[string]any)
	tok := loginData["token"].(string)
	require.NotEmpty(t, tok)

	// El token emitido sirve para las rutas protegidas.
	resp = doJSON(t, app, http.MethodGet, "/api/invoices/", "Bearer "+tok, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Usuario inexistente y password incorrecto responden idéntico.
func TestRouter_LoginNoFiltraEmails(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "nadie@example.com",
		"password": "lo-que-sea",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "credenciales inválidas", body["message"])
}
