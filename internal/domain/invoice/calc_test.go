package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
	"github.com/ViggenKorir/smartistics-api/internal/domain/invoice"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cálculo de totales: cada etapa redondea a 2 decimales (half-up) antes de
// pasar a la siguiente. Importe de línea → subtotal → impuesto → total.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// Caso de referencia: 2 unidades a 100.00 con 10% de impuesto.
func TestCalc_DosUnidadesConDiezPorciento(t *testing.T) {
	amount := invoice.ItemAmount(dec("100"), dec("2"))
	assert.True(t, dec("200").Equal(amount), "importe de línea debe ser 200.00")

	items := []entity.InvoiceItem{{UnitPrice: dec("100"), Quantity: dec("2"), Amount: amount}}
	subtotal := invoice.Subtotal(items)
	assert.True(t, dec("200").Equal(subtotal), "subtotal debe ser 200.00")

	tax := invoice.TaxAmount(subtotal, dec("10"))
	assert.True(t, dec("20").Equal(tax), "impuesto debe ser 20.00")

	total := invoice.Total(subtotal, tax)
	assert.True(t, dec("220").Equal(total), "total debe ser 220.00")
}

// El importe de línea se redondea antes de sumar al subtotal.
func TestCalc_RedondeoPorLinea(t *testing.T) {
	// 3 x 0.335 = 1.005 → 1.01 (half-up)
	amount := invoice.ItemAmount(dec("0.335"), dec("3"))
	assert.Equal(t, "1.01", amount.StringFixed(2))

	// El subtotal suma importes ya redondeados, no precios crudos.
	items := []entity.InvoiceItem{
		{Amount: invoice.ItemAmount(dec("0.335"), dec("3"))},
		{Amount: invoice.ItemAmount(dec("0.335"), dec("3"))},
	}
	subtotal := invoice.Subtotal(items)
	assert.Equal(t, "2.02", subtotal.StringFixed(2),
		"el subtotal debe sumar importes redondeados por línea")
}

func TestCalc_ImpuestoRedondeaHalfUp(t *testing.T) {
	// 7.5% de 33.33 = 2.49975 → 2.50
	tax := invoice.TaxAmount(dec("33.33"), dec("7.5"))
	assert.Equal(t, "2.50", tax.StringFixed(2))
}

func TestCalc_SinItemsSubtotalCero(t *testing.T) {
	subtotal := invoice.Subtotal(nil)
	assert.True(t, subtotal.IsZero(), "sin líneas el subtotal es cero")

	tax := invoice.TaxAmount(subtotal, dec("16"))
	assert.True(t, tax.IsZero())
	assert.True(t, invoice.Total(subtotal, tax).IsZero())
}

func TestCalc_TasaCeroNoAgregaImpuesto(t *testing.T) {
	tax := invoice.TaxAmount(dec("150"), decimal.Zero)
	assert.True(t, tax.IsZero())
	assert.True(t, dec("150").Equal(invoice.Total(dec("150"), tax)))
}

func TestCalc_CantidadFraccionaria(t *testing.T) {
	// 2.5 horas a 19.99 = 49.975 → 49.98
	amount := invoice.ItemAmount(dec("19.99"), dec("2.5"))
	assert.Equal(t, "49.98", amount.StringFixed(2))
}
