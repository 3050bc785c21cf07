package invoice

import (
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
)

// DefaultSearchFields campos consultados cuando el llamador no indica otros.
var DefaultSearchFields = []string{"invoiceNumber", "client.name", "client.company"}

// DateRange rango inclusivo sobre la fecha de emisión.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// SearchOptions consulta de texto libre más filtros. El texto se evalúa
// primero (OR entre campos); los filtros se aplican después en AND.
type SearchOptions struct {
	Query     string
	Fields    []string // dot-paths sobre el JSON de la factura, ej. "client.name"
	Status    entity.InvoiceStatus
	DateRange *DateRange
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// Search filtra la lista de facturas según las opciones. Devuelve una lista
// nueva preservando el orden de entrada; nunca muta la original. Query vacío
// empareja todo.
func Search(invoices []entity.Invoice, opts SearchOptions) []entity.Invoice {
	fields := opts.Fields
	if len(fields) == 0 {
		fields = DefaultSearchFields
	}

	results := make([]entity.Invoice, 0, len(invoices))
	term := strings.ToLower(opts.Query)

	for _, inv := range invoices {
		if term != "" && !matchesAnyField(&inv, fields, term) {
			continue
		}
		if opts.Status != "" && inv.Status != opts.Status {
			continue
		}
		if r := opts.DateRange; r != nil {
			if inv.IssueDate.Before(r.Start) || inv.IssueDate.After(r.End) {
				continue
			}
		}
		if opts.MinAmount != nil && inv.Total.LessThan(*opts.MinAmount) {
			continue
		}
		if opts.MaxAmount != nil && inv.Total.GreaterThan(*opts.MaxAmount) {
			continue
		}
		results = append(results, inv)
	}
	return results
}

// matchesAnyField true si ALGÚN campo contiene el término (OR lógico).
func matchesAnyField(inv *entity.Invoice, fields []string, term string) bool {
	for _, path := range fields {
		if v, ok := fieldString(inv, path); ok {
			if strings.Contains(strings.ToLower(v), term) {
				return true
			}
		}
	}
	return false
}

// fieldString resuelve un dot-path ("client.name") contra la factura usando
// los nombres de los tags json. Path inexistente o valor no textual → false.
func fieldString(inv *entity.Invoice, path string) (string, bool) {
	v := reflect.ValueOf(inv).Elem()
	for _, part := range strings.Split(path, ".") {
		v = reflect.Indirect(v)
		if v.Kind() != reflect.Struct {
			return "", false
		}
		f, ok := fieldByJSONTag(v, part)
		if !ok {
			return "", false
		}
		v = f
	}
	if v.Kind() == reflect.String {
		return v.String(), true
	}
	return "", false
}

func fieldByJSONTag(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag == name || (tag == "" && strings.EqualFold(t.Field(i).Name, name)) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}
