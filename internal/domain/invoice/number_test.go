package invoice_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ViggenKorir/smartistics-api/internal/domain/invoice"
)

var numberPattern = regexp.MustCompile(`^#CRF\d{6}[0-9A-Z]{4}$`)

// El número generado siempre sigue el formato #CRF + 6 dígitos + 4 caracteres
// alfanuméricos en mayúsculas.
func TestGenerateNumber_Formato(t *testing.T) {
	for i := 0; i < 50; i++ {
		n := invoice.GenerateNumber()
		assert.Regexp(t, numberPattern, n)
	}
}

func TestGenerateNumber_SufijoAleatorioVaria(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		seen[invoice.GenerateNumber()] = true
	}
	// Con sufijo aleatorio de 4 caracteres, 20 llamadas seguidas no deberían
	// colisionar todas en el mismo valor.
	assert.Greater(t, len(seen), 1)
}
