package entity

import "time"

// InvoiceHistory registro append-only de versiones de una factura.
// Cada mutación (update, patch, delete) añade una entrada con los campos
// cambiados y la versión anterior completa.
type InvoiceHistory struct {
	ID              string         `json:"id"`
	InvoiceID       string         `json:"invoiceId"`
	Version         int            `json:"version"`
	Timestamp       time.Time      `json:"timestamp"`
	Changes         map[string]any `json:"changes"`
	ChangedBy       string         `json:"changedBy"`
	PreviousVersion *Invoice       `json:"previousVersion,omitempty"`
}
