package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Planes de suscripción.
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPlus    SubscriptionTier = "plus"
	TierPremium SubscriptionTier = "premium"
)

// Valid informa si el plan pertenece al conjunto cerrado.
func (t SubscriptionTier) Valid() bool {
	switch t {
	case TierFree, TierPlus, TierPremium:
		return true
	}
	return false
}

// Estados de suscripción.
type SubscriptionStatus string

const (
	SubActive    SubscriptionStatus = "active"
	SubPending   SubscriptionStatus = "pending"
	SubExpired   SubscriptionStatus = "expired"
	SubCancelled SubscriptionStatus = "cancelled"
)

// Subscription suscripción de un usuario. No se persiste de forma durable:
// se sirve desde fixtures o se recalcula (capa mock).
type Subscription struct {
	UserID          string             `json:"userId"`
	Tier            SubscriptionTier   `json:"tier"`
	Status          SubscriptionStatus `json:"status"`
	ExpiryDate      *time.Time         `json:"expiryDate"`
	NextBillingDate *time.Time         `json:"nextBillingDate"`
	Amount          decimal.Decimal    `json:"amount"`
	Currency        string             `json:"currency"`
	PaymentStatus   string             `json:"paymentStatus"`
	PaymentMethod   string             `json:"paymentMethod,omitempty"`
	BillingCycle    string             `json:"billingCycle,omitempty"`
	TransactionID   string             `json:"transactionId,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// DaysOverdue días completos transcurridos desde el vencimiento (0 si no
// venció o no tiene fecha de expiración).
func (s *Subscription) DaysOverdue(now time.Time) int {
	if s.ExpiryDate == nil {
		return 0
	}
	days := int(now.Sub(*s.ExpiryDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// IsLocked la cuenta queda bloqueada tras 7 días de gracia desde expirada.
func (s *Subscription) IsLocked(now time.Time) bool {
	return s.Status == SubExpired && s.DaysOverdue(now) > 7
}
