package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ViggenKorir/smartistics-api/internal/application/dto"
	"github.com/ViggenKorir/smartistics-api/internal/application/invoicing"
	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
	"github.com/ViggenKorir/smartistics-api/internal/domain/invoice"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	uc *invoicing.UseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *invoicing.UseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List lista facturas paginadas con filtros opcionales, o devuelve una sola
// si viene ?id=.
// GET /api/invoices?id=&page=&limit=&status=&q=&startDate=&endDate=&minAmount=&maxAmount=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		inv, err := h.uc.Get(c.Context(), id)
		if err != nil {
			return failErr(c, err)
		}
		return ok(c, inv)
	}

	q := invoicing.ListQuery{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
		Status: c.Query("status"),
		Query:  c.Query("q"),
	}
	if dr := parseDateRange(c.Query("startDate"), c.Query("endDate")); dr != nil {
		q.DateRange = dr
	}
	if min := parseAmount(c.Query("minAmount")); min != nil {
		q.MinAmount = min
	}
	if max := parseAmount(c.Query("maxAmount")); max != nil {
		q.MaxAmount = max
	}

	invoices, page, err := h.uc.List(c.Context(), q)
	if err != nil {
		return failErr(c, err)
	}
	return okPage(c, invoices, page)
}

// Create crea una factura nueva en estado draft.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	inv, errs, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errs != nil {
			return failFields(c, "validación fallida", errs)
		}
		return failErr(c, err)
	}
	return created(c, inv)
}

// BulkAction acciones masivas sobre la colección.
// PUT /api/invoices?action=bulk-status-update
func (h *InvoiceHandler) BulkAction(c *fiber.Ctx) error {
	if c.Query("action") != "bulk-status-update" {
		return fail(c, fiber.StatusBadRequest, "acción inválida")
	}
	var in dto.BulkStatusUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido: se requieren invoiceIds y status")
	}
	n, errs, err := h.uc.BulkUpdateStatus(c.Context(), in)
	if err != nil {
		if errs != nil {
			return failFields(c, "validación fallida", errs)
		}
		return failErr(c, err)
	}
	return okMessage(c, nil, fmt.Sprintf("%d facturas actualizadas", n))
}

// BulkDelete elimina varias facturas por id.
// DELETE /api/invoices?ids=a,b,c
func (h *InvoiceHandler) BulkDelete(c *fiber.Ctx) error {
	raw := c.Query("ids")
	if raw == "" {
		return fail(c, fiber.StatusBadRequest, "no se indicaron ids de factura")
	}
	ids := strings.Split(raw, ",")
	n, err := h.uc.BulkDelete(c.Context(), ids)
	if err != nil {
		return failErr(c, err)
	}
	return okMessage(c, nil, fmt.Sprintf("%d facturas eliminadas", n))
}

// GetByID obtiene una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, inv)
}

// Update actualización parcial tipada; si vienen items se reemplazan y se
// recalculan los totales.
// PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	inv, errs, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		if errs != nil {
			return failFields(c, "validación fallida", errs)
		}
		return failErr(c, err)
	}
	return okMessage(c, inv, "factura actualizada")
}

// Patch merge superficial de campos arbitrarios, sin recálculo.
// PATCH /api/invoices/:id
func (h *InvoiceHandler) Patch(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	inv, err := h.uc.Patch(c.Context(), GetUserID(c), c.Params("id"), fields)
	if err != nil {
		return failErr(c, err)
	}
	return okMessage(c, inv, "factura actualizada")
}

// Delete elimina una factura.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return okMessage(c, fiber.Map{"id": id}, "factura eliminada")
}

// History historial de cambios de la factura, más reciente primero.
// GET /api/invoices/:id/history
func (h *InvoiceHandler) History(c *fiber.Ctx) error {
	history, err := h.uc.History(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	if history == nil {
		history = []entity.InvoiceHistory{}
	}
	return okMessage(c, history, fmt.Sprintf("%d entradas de historial", len(history)))
}

// PDF exporta la factura (requiere capacidad de exportación del rol).
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, err := h.uc.RenderPDF(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="invoice-`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}

func parseDateRange(start, end string) *invoice.DateRange {
	if start == "" || end == "" {
		return nil
	}
	s, err1 := parseDate(start)
	e, err2 := parseDate(end)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &invoice.DateRange{Start: s, End: e}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func parseAmount(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
