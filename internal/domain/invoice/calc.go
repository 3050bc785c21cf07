// Package invoice contiene la lógica pura del dominio de facturación:
// cálculo de totales, búsqueda/filtrado y generación de números de factura.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
)

// El redondeo es a 2 decimales en CADA etapa (línea, subtotal, impuesto,
// total), no una sola vez al final. El error de redondeo encadenado (hasta
// 0.01 frente al cálculo sin redondear) es una característica aceptada:
// mantiene compatibilidad bit a bit con los totales de facturas existentes.

var hundred = decimal.NewFromInt(100)

// ItemAmount importe de una línea: round(unitPrice * quantity, 2).
// No rechaza entradas negativas; esa validación es del llamador.
func ItemAmount(unitPrice, quantity decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(quantity).Round(2)
}

// Subtotal suma de los importes de las líneas, redondeada a 2 decimales.
func Subtotal(items []entity.InvoiceItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	return sum.Round(2)
}

// TaxAmount impuesto: round(subtotal * taxRate / 100, 2).
func TaxAmount(subtotal, taxRatePercent decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(taxRatePercent).Div(hundred).Round(2)
}

// Total round(subtotal + taxAmount, 2).
func Total(subtotal, taxAmount decimal.Decimal) decimal.Decimal {
	return subtotal.Add(taxAmount).Round(2)
}
