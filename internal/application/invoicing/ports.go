package invoicing

import (
	"context"

	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
)

// PDFGenerator puerto de exportación de la factura a PDF.
// Lo implementa infrastructure/pdf; la interfaz evita acoplar el caso de uso
// a Maroto.
type PDFGenerator interface {
	Render(ctx context.Context, inv *entity.Invoice) ([]byte, error)
}
