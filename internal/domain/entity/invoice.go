package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de una factura. No hay máquina de estados: cualquier
// estado puede pasar a cualquier otro (comportamiento heredado, documentado).
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "draft"
	StatusSent      InvoiceStatus = "sent"
	StatusPaid      InvoiceStatus = "paid"
	StatusOverdue   InvoiceStatus = "overdue"
	StatusCancelled InvoiceStatus = "cancelled"
)

// Valid informa si el estado pertenece al conjunto cerrado.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// Client datos del cliente, copiados dentro de la factura (no referenciados).
type Client struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
}

// Vendor datos del emisor, con campos bancarios.
type Vendor struct {
	Name          string   `json:"name"`
	Logo          string   `json:"logo,omitempty"`
	Slogan        string   `json:"slogan,omitempty"`
	Address       string   `json:"address"`
	Phone         []string `json:"phone"`
	Email         string   `json:"email"`
	Website       string   `json:"website"`
	AccountNumber string   `json:"accountNumber"`
	BankName      string   `json:"bankName"`
	BankBranch    string   `json:"bankBranch"`
}

// Signature bloque de firma de la factura.
type Signature struct {
	Image string `json:"image,omitempty"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// InvoiceItem línea de factura. Amount siempre se recalcula al (re)recibir
// la línea; nunca se acepta del cliente cuando vienen unitPrice y quantity.
type InvoiceItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Details     string          `json:"details,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice representa una factura completa con cliente, emisor, líneas y
// totales derivados. Invariante: Subtotal, TaxAmount y Total siempre
// consistentes con Items y TaxRate (se recalculan en cada mutación que los
// toque).
type Invoice struct {
	ID                 string          `json:"id"`
	InvoiceNumber      string          `json:"invoiceNumber"`
	IssueDate          time.Time       `json:"issueDate"`
	DueDate            time.Time       `json:"dueDate"`
	Status             InvoiceStatus   `json:"status"`
	Client             Client          `json:"client"`
	Vendor             Vendor          `json:"vendor"`
	Items              []InvoiceItem   `json:"items"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	TaxRate            decimal.Decimal `json:"taxRate"`
	TaxAmount          decimal.Decimal `json:"taxAmount"`
	Total              decimal.Decimal `json:"total"`
	Currency           string          `json:"currency"`
	TermsAndConditions string          `json:"termsAndConditions"`
	Signature          Signature       `json:"signature"`
}
