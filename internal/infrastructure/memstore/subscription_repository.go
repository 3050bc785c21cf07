// Package memstore implementa repositorios mock en memoria. Las
// suscripciones no se persisten de forma durable: se sirven desde fixtures
// que cubren los escenarios de interés (free activo, plus activo, plus
// expirado en gracia, premium expirado con bloqueo).
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
)

// SubscriptionRepository fixtures en memoria con acceso serializado.
type SubscriptionRepository struct {
	mu   sync.Mutex
	subs map[string]entity.Subscription
}

// NewSubscriptionRepository construye el repositorio con los fixtures cargados.
func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{subs: seedSubscriptions(time.Now())}
}

// Get devuelve nil sin error si el usuario no tiene suscripción registrada.
func (r *SubscriptionRepository) Get(_ context.Context, userID string) (*entity.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sub, ok := r.subs[userID]; ok {
		return &sub, nil
	}
	return nil, nil
}

// Put guarda o reemplaza la suscripción del usuario.
func (r *SubscriptionRepository) Put(_ context.Context, sub *entity.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.UserID] = *sub
	return nil
}

func seedSubscriptions(now time.Time) map[string]entity.Subscription {
	days := func(n int) *time.Time {
		t := now.Add(time.Duration(n) * 24 * time.Hour)
		return &t
	}
	return map[string]entity.Subscription{
		"user1": {
			UserID:        "user1",
			Tier:          entity.TierFree,
			Status:        entity.SubActive,
			Amount:        decimal.Zero,
			Currency:      "USD",
			PaymentStatus: "active",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		"user2": {
			UserID:          "user2",
			Tier:            entity.TierPlus,
			Status:          entity.SubActive,
			ExpiryDate:      days(30),
			NextBillingDate: days(30),
			Amount:          decimal.NewFromInt(12),
			Currency:        "USD",
			PaymentStatus:   "active",
			PaymentMethod:   "card",
			CreatedAt:       now.Add(-30 * 24 * time.Hour),
			UpdatedAt:       now,
		},
		"user3": {
			// Expirada hace 3 días: aún dentro de la gracia de 7 días.
			UserID:        "user3",
			Tier:          entity.TierPlus,
			Status:        entity.SubExpired,
			ExpiryDate:    days(-3),
			Amount:        decimal.NewFromInt(12),
			Currency:      "USD",
			PaymentStatus: "failed",
			PaymentMethod: "card",
			CreatedAt:     now.Add(-60 * 24 * time.Hour),
			UpdatedAt:     now.Add(-3 * 24 * time.Hour),
		},
		"user4": {
			// Expirada hace 10 días: cuenta bloqueada (isLocked).
			UserID:        "user4",
			Tier:          entity.TierPremium,
			Status:        entity.SubExpired,
			ExpiryDate:    days(-10),
			Amount:        decimal.NewFromInt(16),
			Currency:      "USD",
			PaymentStatus: "failed",
			PaymentMethod: "paypal",
			CreatedAt:     now.Add(-90 * 24 * time.Hour),
			UpdatedAt:     now.Add(-10 * 24 * time.Hour),
		},
	}
}
