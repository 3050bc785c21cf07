// Package jsonstore persiste el estado de la aplicación en un único
// documento JSON que se lee completo, se muta en memoria y se reescribe
// completo en cada mutación.
//
// Decisión explícita de concurrencia: todas las operaciones se serializan
// con un mutex por instancia de Store. Sin el mutex dos escritores
// concurrentes podrían perder una actualización (last-writer-wins sobre el
// archivo completo); con él el archivo es el único recurso compartido y
// cada ciclo leer-mutar-escribir es atómico para el llamador.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
)

// document layout del archivo: invoices.current + invoices.history + users.
type document struct {
	Invoices struct {
		Current []entity.Invoice        `json:"current"`
		History []entity.InvoiceHistory `json:"history"`
	} `json:"invoices"`
	Users []entity.User `json:"users"`
}

// Store documento JSON con acceso serializado.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open crea el Store sobre la ruta dada. No toca el disco: un archivo
// inexistente equivale a una base vacía y se crea en la primera escritura.
func Open(path string) *Store {
	return &Store{path: path}
}

// load lee y decodifica el documento completo. Archivo inexistente → vacío.
func (s *Store) load() (*document, error) {
	doc := &document{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, nil
		}
		return nil, fmt.Errorf("jsonstore: leer %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("jsonstore: decodificar %s: %w", s.path, err)
	}
	return doc, nil
}

// save reescribe el documento completo (indentado, como el frontend).
func (s *Store) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: codificar: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("jsonstore: escribir %s: %w", s.path, err)
	}
	return nil
}

// view ejecuta fn sobre una lectura consistente del documento.
func (s *Store) view(fn func(*document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// update ejecuta fn y reescribe el documento si fn no falla. La mutación es
// atómica desde el punto de vista del llamador: o se aplica completa o el
// archivo queda como estaba.
func (s *Store) update(fn func(*document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}
