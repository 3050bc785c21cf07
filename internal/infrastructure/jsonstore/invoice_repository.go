package jsonstore

import (
	"context"
	"sort"

	"github.com/ViggenKorir/smartistics-api/internal/domain"
	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
)

// InvoiceRepository implementa repository.InvoiceRepository sobre el
// documento JSON.
type InvoiceRepository struct {
	s *Store
}

// NewInvoiceRepository construye el repositorio.
func NewInvoiceRepository(s *Store) *InvoiceRepository {
	return &InvoiceRepository{s: s}
}

// List devuelve todas las facturas en orden de inserción.
func (r *InvoiceRepository) List(_ context.Context) ([]entity.Invoice, error) {
	var out []entity.Invoice
	err := r.s.view(func(doc *document) error {
		out = make([]entity.Invoice, len(doc.Invoices.Current))
		copy(out, doc.Invoices.Current)
		return nil
	})
	return out, err
}

// GetByID devuelve la factura o domain.ErrNotFound.
func (r *InvoiceRepository) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	var out *entity.Invoice
	err := r.s.view(func(doc *document) error {
		for i := range doc.Invoices.Current {
			if doc.Invoices.Current[i].ID == id {
				inv := doc.Invoices.Current[i]
				out = &inv
				return nil
			}
		}
		return domain.ErrNotFound
	})
	return out, err
}

// Create añade la factura al final de la colección y reescribe el documento.
func (r *InvoiceRepository) Create(_ context.Context, inv *entity.Invoice) error {
	return r.s.update(func(doc *document) error {
		doc.Invoices.Current = append(doc.Invoices.Current, *inv)
		return nil
	})
}

// Update reemplaza la factura y, si change no es nil, añade la entrada de
// historial con la versión siguiente para esa factura.
func (r *InvoiceRepository) Update(_ context.Context, inv *entity.Invoice, change *entity.InvoiceHistory) error {
	return r.s.update(func(doc *document) error {
		for i := range doc.Invoices.Current {
			if doc.Invoices.Current[i].ID == inv.ID {
				doc.Invoices.Current[i] = *inv
				appendHistory(doc, change)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina la factura por id, registrando el cambio en el historial.
func (r *InvoiceRepository) Delete(_ context.Context, id string, change *entity.InvoiceHistory) error {
	return r.s.update(func(doc *document) error {
		cur := doc.Invoices.Current
		for i := range cur {
			if cur[i].ID == id {
				doc.Invoices.Current = append(cur[:i:i], cur[i+1:]...)
				appendHistory(doc, change)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// UpdateStatusMany semántica bulk permisiva: los ids no encontrados se
// omiten sin error.
func (r *InvoiceRepository) UpdateStatusMany(_ context.Context, ids []string, status entity.InvoiceStatus) (int, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	n := 0
	err := r.s.update(func(doc *document) error {
		for i := range doc.Invoices.Current {
			if wanted[doc.Invoices.Current[i].ID] {
				doc.Invoices.Current[i].Status = status
				n++
			}
		}
		return nil
	})
	return n, err
}

// DeleteMany elimina cada id encontrado; los demás se ignoran en silencio.
func (r *InvoiceRepository) DeleteMany(_ context.Context, ids []string) (int, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	n := 0
	err := r.s.update(func(doc *document) error {
		kept := doc.Invoices.Current[:0]
		for _, inv := range doc.Invoices.Current {
			if wanted[inv.ID] {
				n++
				continue
			}
			kept = append(kept, inv)
		}
		doc.Invoices.Current = kept
		return nil
	})
	return n, err
}

// HistoryByInvoiceID historial de la factura, más reciente primero.
func (r *InvoiceRepository) HistoryByInvoiceID(_ context.Context, invoiceID string) ([]entity.InvoiceHistory, error) {
	var out []entity.InvoiceHistory
	err := r.s.view(func(doc *document) error {
		for _, h := range doc.Invoices.History {
			if h.InvoiceID == invoiceID {
				out = append(out, h)
			}
		}
		sort.Slice(out, func(i, j int) bool {
			return out[i].Timestamp.After(out[j].Timestamp)
		})
		return nil
	})
	return out, err
}

// appendHistory asigna la versión (entradas previas de esa factura + 1) y
// añade el registro.
func appendHistory(doc *document, change *entity.InvoiceHistory) {
	if change == nil {
		return
	}
	version := 1
	for _, h := range doc.Invoices.History {
		if h.InvoiceID == change.InvoiceID {
			version++
		}
	}
	change.Version = version
	doc.Invoices.History = append(doc.Invoices.History, *change)
}
