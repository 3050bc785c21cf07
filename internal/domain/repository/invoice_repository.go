package repository

import (
	"context"

	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas y su
// historial. El historial se escribe junto con la mutación que lo origina
// para que la reescritura del documento sea una sola.
type InvoiceRepository interface {
	List(ctx context.Context) ([]entity.Invoice, error)
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	Create(ctx context.Context, inv *entity.Invoice) error
	// Update reemplaza la factura completa. Si change no es nil se añade al
	// historial con la versión asignada por el store.
	Update(ctx context.Context, inv *entity.Invoice, change *entity.InvoiceHistory) error
	Delete(ctx context.Context, id string, change *entity.InvoiceHistory) error
	// UpdateStatusMany aplica el estado a cada id encontrado; los ids
	// inexistentes se omiten en silencio. Devuelve cuántas se actualizaron.
	UpdateStatusMany(ctx context.Context, ids []string, status entity.InvoiceStatus) (int, error)
	// DeleteMany elimina cada id encontrado; devuelve cuántas se eliminaron.
	DeleteMany(ctx context.Context, ids []string) (int, error)
	// HistoryByInvoiceID historial de una factura, más reciente primero.
	HistoryByInvoiceID(ctx context.Context, invoiceID string) ([]entity.InvoiceHistory, error)
}
