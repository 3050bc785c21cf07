package repository

import (
	"context"

	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
)

// SubscriptionRepository puerto de la capa mock de suscripciones.
// No hay persistencia durable: la implementación sirve fixtures en memoria.
type SubscriptionRepository interface {
	// Get devuelve nil sin error si el usuario no tiene suscripción.
	Get(ctx context.Context, userID string) (*entity.Subscription, error)
	Put(ctx context.Context, sub *entity.Subscription) error
}
