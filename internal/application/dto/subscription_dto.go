package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
)

// UpgradeSubscriptionRequest body para POST /api/subscription/upgrade.
type UpgradeSubscriptionRequest struct {
	UserID        string           `json:"userId" validate:"required"`
	PlanID        string           `json:"planId" validate:"required,oneof=free plus premium"`
	BillingCycle  string           `json:"billingCycle" validate:"required,oneof=monthly annually"`
	PaymentMethod string           `json:"paymentMethod" validate:"required,oneof=card mpesa paypal"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
	Currency      string           `json:"currency,omitempty"`
}

// UpdateSubscriptionRequest body para PUT /api/subscription/:userId.
// Merge superficial: solo los campos presentes sobreescriben.
type UpdateSubscriptionRequest struct {
	Tier            *string          `json:"tier,omitempty" validate:"omitempty,oneof=free plus premium"`
	Status          *string          `json:"status,omitempty" validate:"omitempty,oneof=active pending expired cancelled"`
	ExpiryDate      *time.Time       `json:"expiryDate,omitempty"`
	NextBillingDate *time.Time       `json:"nextBillingDate,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	PaymentStatus   *string          `json:"paymentStatus,omitempty"`
	PaymentMethod   *string          `json:"paymentMethod,omitempty"`
}

// SubscriptionResponse suscripción con los campos derivados calculados en
// el servidor.
type SubscriptionResponse struct {
	entity.Subscription
	DaysOverdue int  `json:"daysOverdue"`
	IsLocked    bool `json:"isLocked"`
}

// NewSubscriptionResponse calcula los derivados con el reloj dado.
func NewSubscriptionResponse(sub *entity.Subscription, now time.Time) SubscriptionResponse {
	return SubscriptionResponse{
		Subscription: *sub,
		DaysOverdue:  sub.DaysOverdue(now),
		IsLocked:     sub.IsLocked(now),
	}
}

// UpgradeResult respuesta de un upgrade exitoso.
type UpgradeResult struct {
	Subscription  SubscriptionResponse `json:"subscription"`
	TransactionID string               `json:"transactionId"`
}
