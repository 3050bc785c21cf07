package jsonstore

import (
	"context"
	"strings"

	"github.com/ViggenKorir/smartistics-api/internal/domain"
	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
)

// UserRepository implementa repository.UserRepository sobre el mismo
// documento JSON que las facturas.
type UserRepository struct {
	s *Store
}

// NewUserRepository construye el repositorio.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

// Create añade el usuario y reescribe el documento.
func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	return r.s.update(func(doc *document) error {
		doc.Users = append(doc.Users, *user)
		return nil
	})
}

// FindByEmail búsqueda case-insensitive; nil sin error si no existe.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	var out *entity.User
	err := r.s.view(func(doc *document) error {
		for i := range doc.Users {
			if strings.EqualFold(doc.Users[i].Email, email) {
				u := doc.Users[i]
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

// GetByID devuelve el usuario o domain.ErrUserNotFound.
func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.s.view(func(doc *document) error {
		for i := range doc.Users {
			if doc.Users[i].ID == id {
				u := doc.Users[i]
				out = &u
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	return out, err
}
