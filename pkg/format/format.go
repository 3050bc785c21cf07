// Package format reúne utilidades puras de presentación: moneda, fechas y
// número de factura. Son las mismas convenciones que usa el frontend de
// Smartistics, para que ambos lados rendericen idéntico.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formatea un monto con el símbolo de la moneda (estilo en-US,
// dos decimales). Códigos ISO desconocidos caen a USD.
func Currency(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	v, _ := amount.Round(2).Float64()
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(v)))
}

// Layouts de fecha soportados (los mismos nombres que usa el frontend).
const (
	LayoutDDMMYYYY  = "DD-MM-YYYY"
	LayoutMMDDYYYY  = "MM/DD/YYYY"
	LayoutYYYYMMDD  = "YYYY-MM-DD"
	LayoutDDMMMYYYY = "DD-MMM-YYYY"
)

// Date formatea una fecha según el layout nombrado. Un layout desconocido
// cae a DD-MM-YYYY.
func Date(t time.Time, layout string) string {
	switch layout {
	case LayoutMMDDYYYY:
		return t.Format("01/02/2006")
	case LayoutYYYYMMDD:
		return t.Format("2006-01-02")
	case LayoutDDMMMYYYY:
		return t.Format("02-Jan-2006")
	default:
		return t.Format("02-01-2006")
	}
}

// InvoiceNumber garantiza que el número de factura lleve el prefijo "#".
func InvoiceNumber(number string) string {
	if strings.HasPrefix(number, "#") {
		return number
	}
	return "#" + number
}
