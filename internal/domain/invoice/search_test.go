package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
	"github.com/ViggenKorir/smartistics-api/internal/domain/invoice"
)

func buildSearchFixture() []entity.Invoice {
	return []entity.Invoice{
		{
			ID:            "inv-1",
			InvoiceNumber: "#CRF100001AAAA",
			Client:        entity.Client{Name: "Acme Corp", Company: "Acme Holdings"},
			Status:        entity.StatusDraft,
			IssueDate:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Total:         dec("50"),
		},
		{
			ID:            "inv-2",
			InvoiceNumber: "#CRF100002BBBB",
			Client:        entity.Client{Name: "Beta Ltd", Company: "Beta Group"},
			Status:        entity.StatusSent,
			IssueDate:     time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
			Total:         dec("150"),
		},
		{
			ID:            "inv-3",
			InvoiceNumber: "#CRF100003CCCC",
			Client:        entity.Client{Name: "Gamma Inc", Company: "Gamma Global"},
			Status:        entity.StatusPaid,
			IssueDate:     time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
			Total:         dec("250"),
		},
	}
}

// Query vacío sin filtros devuelve todas las facturas en el mismo orden.
func TestSearch_QueryVacioDevuelveTodo(t *testing.T) {
	fixture := buildSearchFixture()
	results := invoice.Search(fixture, invoice.SearchOptions{})

	require.Len(t, results, 3)
	assert.Equal(t, "inv-1", results[0].ID, "el orden de entrada debe preservarse")
	assert.Equal(t, "inv-3", results[2].ID)
}

// El texto se busca sin distinguir mayúsculas en los campos por defecto.
func TestSearch_TextoCaseInsensitive(t *testing.T) {
	results := invoice.Search(buildSearchFixture(), invoice.SearchOptions{Query: "acme"})

	require.Len(t, results, 1)
	assert.Equal(t, "inv-1", results[0].ID)
}

// El texto empareja por OR entre campos: número de factura también cuenta.
func TestSearch_TextoPorNumeroDeFactura(t *testing.T) {
	results := invoice.Search(buildSearchFixture(), invoice.SearchOptions{Query: "100002"})

	require.Len(t, results, 1)
	assert.Equal(t, "inv-2", results[0].ID)
}

// Campos explícitos restringen dónde se busca el término.
func TestSearch_CamposExplicitos(t *testing.T) {
	// "Group" solo aparece en client.company; buscando en client.name no hay match.
	results := invoice.Search(buildSearchFixture(), invoice.SearchOptions{
		Query:  "group",
		Fields: []string{"client.name"},
	})
	assert.Empty(t, results)

	results = invoice.Search(buildSearchFixture(), invoice.SearchOptions{
		Query:  "group",
		Fields: []string{"client.company"},
	})
	require.Len(t, results, 1)
	assert.Equal(t, "inv-2", results[0].ID)
}

// Los filtros se aplican en AND tras el texto.
func TestSearch_FiltroDeEstado(t *testing.T) {
	results := invoice.Search(buildSearchFixture(), invoice.SearchOptions{
		Status: entity.StatusPaid,
	})

	require.Len(t, results, 1)
	assert.Equal(t, "inv-3", results[0].ID)
}

// Rango de montos inclusivo: de [50, 150, 250] con min=100 y max=200
// solo sobrevive 150.
func TestSearch_RangoDeMontos(t *testing.T) {
	min := dec("100")
	max := dec("200")
	results := invoice.Search(buildSearchFixture(), invoice.SearchOptions{
		MinAmount: &min,
		MaxAmount: &max,
	})

	require.Len(t, results, 1)
	assert.Equal(t, "inv-2", results[0].ID)
}

// Los extremos del rango de montos son inclusivos.
func TestSearch_MontoExactoEnElLimite(t *testing.T) {
	min := dec("250")
	results := invoice.Search(buildSearchFixture(), invoice.SearchOptions{MinAmount: &min})

	require.Len(t, results, 1)
	assert.Equal(t, "inv-3", results[0].ID)
}

// Rango de fechas inclusivo sobre la fecha de emisión.
func TestSearch_RangoDeFechas(t *testing.T) {
	results := invoice.Search(buildSearchFixture(), invoice.SearchOptions{
		DateRange: &invoice.DateRange{
			Start: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
	})

	require.Len(t, results, 2)
	assert.Equal(t, "inv-2", results[0].ID)
	assert.Equal(t, "inv-3", results[1].ID)
}

// Dot-path desconocido no revienta: simplemente no empareja.
func TestSearch_CampoInexistenteNoEmpareja(t *testing.T) {
	results := invoice.Search(buildSearchFixture(), invoice.SearchOptions{
		Query:  "acme",
		Fields: []string{"client.noexiste"},
	})
	assert.Empty(t, results)
}

// Search nunca muta la lista original.
func TestSearch_NoMutaLaEntrada(t *testing.T) {
	fixture := buildSearchFixture()
	_ = invoice.Search(fixture, invoice.SearchOptions{Status: entity.StatusPaid})

	assert.Len(t, fixture, 3, "la lista original debe quedar intacta")
	assert.Equal(t, entity.StatusDraft, fixture[0].Status)
}
