// Package invoicing orquesta el ciclo de vida de las facturas: validación,
// normalización, recálculo de totales y persistencia. Es el único escritor
// del almacén de facturas.
package invoicing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ViggenKorir/smartistics-api/internal/application/dto"
	"github.com/ViggenKorir/smartistics-api/internal/application/validate"
	"github.com/ViggenKorir/smartistics-api/internal/domain"
	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
	"github.com/ViggenKorir/smartistics-api/internal/domain/invoice"
	"github.com/ViggenKorir/smartistics-api/internal/domain/repository"
	"github.com/ViggenKorir/smartistics-api/pkg/logger"
)

// defaultTerms términos estándar cuando la petición no trae ninguno.
const defaultTerms = "Standard terms and conditions apply"

// defaultVendor bloque de emisor por defecto mientras la plataforma no
// gestione emisores configurables.
func defaultVendor() entity.Vendor {
	return entity.Vendor{
		Name:          "Company Name",
		Address:       "Company Address",
		Phone:         []string{""},
		Email:         "contact@company.com",
		Website:       "www.company.com",
		AccountNumber: "DEFAULT-ACCOUNT",
		BankName:      "DEFAULT BANK",
		BankBranch:    "MAIN BRANCH",
	}
}

// UseCase casos de uso de facturación.
type UseCase struct {
	repo repository.InvoiceRepository
	pdf  PDFGenerator
	log  *logger.Logger
	now  func() time.Time
}

// NewUseCase construye el caso de uso. pdf puede ser nil si la exportación
// no está habilitada.
func NewUseCase(repo repository.InvoiceRepository, pdf PDFGenerator, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, pdf: pdf, log: log, now: time.Now}
}

// ── Create ────────────────────────────────────────────────────────────────────

// Create valida, calcula totales y persiste una factura nueva en estado
// draft. Ante error de validación no se escribe nada.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, map[string]string, error) {
	if errs := validateInvoiceInput(&in); errs != nil {
		return nil, errs, domain.ErrInvalidInput
	}

	now := uc.now()
	taxRate := decimal.Zero
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}
	items := buildItems(in.Items)
	subtotal := invoice.Subtotal(items)
	taxAmount := invoice.TaxAmount(subtotal, taxRate)

	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	terms := in.TermsAndConditions
	if terms == "" {
		terms = defaultTerms
	}

	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: invoice.GenerateNumber(),
		IssueDate:     now,
		DueDate:       parseDateOr(in.DueDate, now),
		Status:        entity.StatusDraft,
		Client:        toClient(in.Client),
		Vendor:        defaultVendor(),
		Items:         items,
		Subtotal:      subtotal,
		TaxRate:       taxRate,
		TaxAmount:     taxAmount,
		Total:         invoice.Total(subtotal, taxAmount),
		Currency:      currency,
		TermsAndConditions: terms,
	}

	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, nil, err
	}
	uc.log.Info().Str("invoice_id", inv.ID).Str("number", inv.InvoiceNumber).Msg("factura creada")
	return inv, nil, nil
}

// ── Lectura ───────────────────────────────────────────────────────────────────

// Get devuelve la factura o domain.ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	return uc.repo.GetByID(ctx, id)
}

// ListQuery parámetros de listado/búsqueda.
// Page y Limit se normalizan a ≥1; no hay tope superior para Limit
// (permisividad documentada).
type ListQuery struct {
	Page      int
	Limit     int
	Status    string
	Query     string
	Fields    []string
	DateRange *invoice.DateRange
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// List devuelve una página de facturas en orden de inserción (salvo que se
// apliquen filtros, que estrechan sin reordenar) más metadatos de paginación.
// Una página más allá del final devuelve lista vacía, no error.
func (uc *UseCase) List(ctx context.Context, q ListQuery) ([]entity.Invoice, dto.Pagination, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	filtered := invoice.Search(all, invoice.SearchOptions{
		Query:     q.Query,
		Fields:    q.Fields,
		Status:    entity.InvoiceStatus(q.Status),
		DateRange: q.DateRange,
		MinAmount: q.MinAmount,
		MaxAmount: q.MaxAmount,
	})

	total := len(filtered)
	totalPages := (total + q.Limit - 1) / q.Limit
	start := (q.Page - 1) * q.Limit
	end := start + q.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	page := dto.Pagination{Page: q.Page, Limit: q.Limit, Total: total, TotalPages: totalPages}
	return filtered[start:end], page, nil
}

// History historial de la factura, más reciente primero. Una factura sin
// historial (o inexistente) devuelve lista vacía.
func (uc *UseCase) History(ctx context.Context, invoiceID string) ([]entity.InvoiceHistory, error) {
	return uc.repo.HistoryByInvoiceID(ctx, invoiceID)
}

// ── Update / Patch ────────────────────────────────────────────────────────────

// Update aplica una actualización parcial tipada. Si vienen items se
// reemplazan por completo (ids nuevos) y se recalculan los totales con el
// taxRate recibido o el existente; si no vienen, solo se sobreescriben los
// campos escalares presentes y los totales quedan intactos.
func (uc *UseCase) Update(ctx context.Context, changedBy, id string, in dto.UpdateInvoiceRequest) (*entity.Invoice, map[string]string, error) {
	if errs := validateUpdateInput(&in); errs != nil {
		return nil, errs, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	updated := *existing
	changes := map[string]any{}

	if in.Client != nil {
		updated.Client = toClient(*in.Client)
		changes["client"] = updated.Client
	}
	if in.DueDate != "" {
		updated.DueDate = parseDateOr(in.DueDate, existing.DueDate)
		changes["dueDate"] = updated.DueDate
	}
	if in.Status != "" {
		updated.Status = entity.InvoiceStatus(in.Status)
		changes["status"] = updated.Status
	}
	if in.TermsAndConditions != "" {
		updated.TermsAndConditions = in.TermsAndConditions
		changes["termsAndConditions"] = updated.TermsAndConditions
	}

	if in.Items != nil {
		taxRate := existing.TaxRate
		if in.TaxRate != nil {
			taxRate = *in.TaxRate
			changes["taxRate"] = taxRate
		}
		items := buildItems(in.Items)
		subtotal := invoice.Subtotal(items)
		taxAmount := invoice.TaxAmount(subtotal, taxRate)

		updated.Items = items
		updated.TaxRate = taxRate
		updated.Subtotal = subtotal
		updated.TaxAmount = taxAmount
		updated.Total = invoice.Total(subtotal, taxAmount)
		changes["items"] = items
	}

	if err := uc.repo.Update(ctx, &updated, uc.historyRecord(existing, changedBy, changes)); err != nil {
		return nil, nil, err
	}
	return &updated, nil, nil
}

// Patch merge superficial de campos arbitrarios sobre el JSON de la factura.
// Sin garantías de recálculo: quien parchea subtotales es responsable de su
// consistencia (comportamiento heredado, documentado).
func (uc *UseCase) Patch(ctx context.Context, changedBy, id string, fields map[string]any) (*entity.Invoice, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(existing)
	if err != nil {
		return nil, fmt.Errorf("invoicing: serializar factura: %w", err)
	}
	var merged map[string]any
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, fmt.Errorf("invoicing: decodificar factura: %w", err)
	}
	for k, v := range fields {
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("invoicing: serializar merge: %w", err)
	}
	var updated entity.Invoice
	if err := json.Unmarshal(out, &updated); err != nil {
		return nil, domain.ErrInvalidInput
	}
	// La identidad es inmutable aunque el patch intente tocarla.
	updated.ID = existing.ID

	if err := uc.repo.Update(ctx, &updated, uc.historyRecord(existing, changedBy, fields)); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ── Delete / Bulk ─────────────────────────────────────────────────────────────

// Delete elimina la factura de forma permanente y devuelve su id.
func (uc *UseCase) Delete(ctx context.Context, changedBy, id string) (string, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	change := uc.historyRecord(existing, changedBy, map[string]any{"deleted": true})
	if err := uc.repo.Delete(ctx, id, change); err != nil {
		return "", err
	}
	return existing.ID, nil
}

// BulkUpdateStatus aplica el estado a cada id existente; los no encontrados
// se omiten en silencio (semántica bulk permisiva).
func (uc *UseCase) BulkUpdateStatus(ctx context.Context, in dto.BulkStatusUpdateRequest) (int, map[string]string, error) {
	if errs := validate.Struct(in); errs != nil {
		return 0, errs, domain.ErrInvalidInput
	}
	n, err := uc.repo.UpdateStatusMany(ctx, in.InvoiceIDs, entity.InvoiceStatus(in.Status))
	if err != nil {
		return 0, nil, err
	}
	uc.log.Info().Int("updated", n).Str("status", in.Status).Msg("bulk status update")
	return n, nil, nil
}

// BulkDelete elimina cada id existente y devuelve cuántas se eliminaron;
// los ids no encontrados se ignoran.
func (uc *UseCase) BulkDelete(ctx context.Context, ids []string) (int, error) {
	n, err := uc.repo.DeleteMany(ctx, ids)
	if err != nil {
		return 0, err
	}
	uc.log.Info().Int("deleted", n).Msg("bulk delete")
	return n, nil
}

// ── PDF ───────────────────────────────────────────────────────────────────────

// RenderPDF exporta la factura a PDF.
func (uc *UseCase) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("invoicing: exportación PDF no configurada")
	}
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Render(ctx, inv)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// buildItems asigna id nuevo a cada línea y recalcula su importe; el amount
// del cliente nunca se acepta.
func buildItems(in []dto.InvoiceItemRequest) []entity.InvoiceItem {
	items := make([]entity.InvoiceItem, len(in))
	for i, it := range in {
		items[i] = entity.InvoiceItem{
			ID:          uuid.New().String(),
			Description: it.Description,
			Details:     it.Details,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Amount:      invoice.ItemAmount(it.UnitPrice, it.Quantity),
		}
	}
	return items
}

func toClient(c dto.ClientRequest) entity.Client {
	return entity.Client{
		Name:    c.Name,
		Company: c.Company,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
	}
}

func (uc *UseCase) historyRecord(prev *entity.Invoice, changedBy string, changes map[string]any) *entity.InvoiceHistory {
	prevCopy := *prev
	return &entity.InvoiceHistory{
		ID:              uuid.New().String(),
		InvoiceID:       prev.ID,
		Timestamp:       uc.now(),
		Changes:         changes,
		ChangedBy:       changedBy,
		PreviousVersion: &prevCopy,
	}
}

// parseDateOr acepta RFC3339 o fecha simple; valor inválido o vacío → def.
func parseDateOr(s string, def time.Time) time.Time {
	if s == "" {
		return def
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return def
}

// validateInvoiceInput valida forma (tags) y restricciones numéricas que el
// validador no cubre sobre decimal: precio ≥ 0, cantidad > 0, taxRate 0..100.
func validateInvoiceInput(in *dto.CreateInvoiceRequest) map[string]string {
	errs := validate.Struct(*in)
	if errs == nil {
		errs = map[string]string{}
	}
	itemErrors(in.Items, errs)
	taxRateError(in.TaxRate, errs)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateUpdateInput(in *dto.UpdateInvoiceRequest) map[string]string {
	errs := validate.Struct(*in)
	if errs == nil {
		errs = map[string]string{}
	}
	itemErrors(in.Items, errs)
	taxRateError(in.TaxRate, errs)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func itemErrors(items []dto.InvoiceItemRequest, errs map[string]string) {
	for i, it := range items {
		if it.UnitPrice.IsNegative() {
			errs[fmt.Sprintf("items[%d].unitPrice", i)] = "no puede ser negativo"
		}
		if !it.Quantity.IsPositive() {
			errs[fmt.Sprintf("items[%d].quantity", i)] = "debe ser mayor que cero"
		}
	}
}

func taxRateError(rate *decimal.Decimal, errs map[string]string) {
	if rate == nil {
		return
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		errs["taxRate"] = "debe estar entre 0 y 100"
	}
}
