// Package pdf implementa la exportación de la factura a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor + slogan       │  N° Factura + Fechas       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FACTURAR A: cliente (nombre, empresa, dirección, contacto) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P. Unitario | Importe          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto (tasa%) / TOTAL               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: datos bancarios + términos + firma                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
	"github.com/ViggenKorir/smartistics-api/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoInvoiceRenderer implementa invoicing.PDFGenerator usando Maroto v2.
type MarotoInvoiceRenderer struct{}

// NewMarotoInvoiceRenderer construye el renderer.
func NewMarotoInvoiceRenderer() *MarotoInvoiceRenderer { return &MarotoInvoiceRenderer{} }

// Render genera el PDF de la factura y devuelve sus bytes.
func (r *MarotoInvoiceRenderer) Render(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.InvoiceNumber, true).
		WithAuthor(inv.Vendor.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(inv) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(inv)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(inv)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: emisor (izq) y número + fechas (der).
func headerRow(inv *entity.Invoice) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(inv.Vendor.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(inv.Vendor.Slogan, props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
			text.New(inv.Vendor.Address, props.Text{
				Size: 8, Top: 13, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(format.InvoiceNumber(inv.InvoiceNumber), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Emitida: "+format.Date(inv.IssueDate, format.LayoutDDMMMYYYY), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
			text.New("Vence: "+format.Date(inv.DueDate, format.LayoutDDMMMYYYY), props.Text{
				Size: 8, Align: align.Right, Top: 16, Color: colorGray,
			}),
		),
	)
}

// clientRow: bloque "facturar a".
func clientRow(inv *entity.Invoice) core.Row {
	c := inv.Client
	nameLine := c.Name
	if c.Company != "" {
		nameLine += " - " + c.Company
	}
	contact := strings.TrimSpace(c.Phone + "  " + c.Email)
	return row.New(18).Add(
		col.New(12).Add(
			text.New("FACTURAR A", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nameLine, props.Text{Size: 9, Top: 6}),
			text.New(c.Address, props.Text{Size: 8, Top: 10, Color: colorGray}),
			text.New(contact, props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(1).Add(text.New("Cant", h)),
		col.New(6).Add(text.New("Descripción", h)),
		col.New(2).Add(text.New("P. Unitario", alignRight(h))),
		col.New(3).Add(text.New("Importe", alignRight(h))),
	)
}

func itemRows(inv *entity.Invoice) []core.Row {
	rows := make([]core.Row, 0, len(inv.Items))
	for _, it := range inv.Items {
		desc := it.Description
		if it.Details != "" {
			desc += " (" + it.Details + ")"
		}
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(it.Quantity.String(), props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(desc, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(format.Currency(it.UnitPrice, inv.Currency), rightCell())),
			col.New(3).Add(text.New(format.Currency(it.Amount, inv.Currency), rightCell())),
		))
	}
	return rows
}

func totalsRows(inv *entity.Invoice) []core.Row {
	label := props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorGray}
	value := props.Text{Size: 8, Align: align.Right, Top: 1}
	return []core.Row{
		row.New(6).Add(
			col.New(9).Add(text.New("Subtotal", label)),
			col.New(3).Add(text.New(format.Currency(inv.Subtotal, inv.Currency), value)),
		),
		row.New(6).Add(
			col.New(9).Add(text.New(fmt.Sprintf("Impuesto (%s%%)", inv.TaxRate.String()), label)),
			col.New(3).Add(text.New(format.Currency(inv.TaxAmount, inv.Currency), value)),
		),
		row.New(8).Add(
			col.New(9).Add(text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary,
			})),
			col.New(3).Add(text.New(format.Currency(inv.Total, inv.Currency), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			})),
		),
	}
}

func footerRows(inv *entity.Invoice) []core.Row {
	v := inv.Vendor
	bank := fmt.Sprintf("%s - %s - Cuenta %s", v.BankName, v.BankBranch, v.AccountNumber)
	rows := []core.Row{
		row.New(10).Add(
			col.New(12).Add(
				text.New("Datos bancarios: "+bank, props.Text{Size: 7, Top: 1, Color: colorGray}),
				text.New(inv.TermsAndConditions, props.Text{Size: 7, Top: 5, Color: colorGray}),
			),
		),
	}
	if inv.Signature.Name != "" {
		rows = append(rows, row.New(12).Add(
			col.New(8),
			col.New(4).Add(
				text.New(inv.Signature.Name, props.Text{Size: 8, Top: 4, Align: align.Center}),
				text.New(inv.Signature.Title, props.Text{Size: 7, Top: 8, Align: align.Center, Color: colorGray}),
			),
		))
	}
	return rows
}

func alignRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}

func rightCell() props.Text {
	return props.Text{Size: 8, Top: 1, Align: align.Right}
}
