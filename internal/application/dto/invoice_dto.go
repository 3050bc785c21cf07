package dto

import (
	"github.com/shopspring/decimal"
)

// ClientRequest datos del cliente en creación/actualización de facturas.
// Name, address, phone y email son obligatorios; company es opcional.
type ClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company,omitempty"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}

// InvoiceItemRequest línea de factura. Amount nunca se acepta del cliente:
// se recalcula siempre a partir de unitPrice y quantity.
type InvoiceItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Details     string          `json:"details,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// DueDate acepta RFC3339 o "2006-01-02"; vacío → ahora.
type CreateInvoiceRequest struct {
	Client             ClientRequest        `json:"client" validate:"required"`
	Items              []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	DueDate            string               `json:"dueDate,omitempty"`
	TaxRate            *decimal.Decimal     `json:"taxRate,omitempty"`
	Currency           string               `json:"currency,omitempty" validate:"omitempty,len=3"`
	TermsAndConditions string               `json:"termsAndConditions,omitempty"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id. Campos ausentes se
// conservan. Si Items viene presente se reemplazan por completo y se
// recalculan los totales.
type UpdateInvoiceRequest struct {
	Client             *ClientRequest       `json:"client,omitempty"`
	Items              []InvoiceItemRequest `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	DueDate            string               `json:"dueDate,omitempty"`
	TaxRate            *decimal.Decimal     `json:"taxRate,omitempty"`
	Status             string               `json:"status,omitempty" validate:"omitempty,oneof=draft sent paid overdue cancelled"`
	TermsAndConditions string               `json:"termsAndConditions,omitempty"`
}

// BulkStatusUpdateRequest body para PUT /api/invoices?action=bulk-status-update.
type BulkStatusUpdateRequest struct {
	InvoiceIDs []string `json:"invoiceIds" validate:"required,min=1"`
	Status     string   `json:"status" validate:"required,oneof=draft sent paid overdue cancelled"`
}
