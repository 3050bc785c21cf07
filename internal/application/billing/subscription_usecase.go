// Package billing gestiona la capa mock de suscripciones: consulta,
// actualización y upgrade con pago simulado contra una tabla fija de precios.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ViggenKorir/smartistics-api/internal/application/dto"
	"github.com/ViggenKorir/smartistics-api/internal/application/validate"
	"github.com/ViggenKorir/smartistics-api/internal/domain"
	"github.com/ViggenKorir/smartistics-api/internal/domain/entity"
	"github.com/ViggenKorir/smartistics-api/internal/domain/repository"
	"github.com/ViggenKorir/smartistics-api/pkg/logger"
)

// planPrices tabla fija de precios por plan y ciclo de facturación.
var planPrices = map[string]map[string]decimal.Decimal{
	"plus": {
		"monthly":  decimal.NewFromInt(12),
		"annually": decimal.NewFromInt(120),
	},
	"premium": {
		"monthly":  decimal.NewFromInt(16),
		"annually": decimal.NewFromInt(160),
	},
}

// SubscriptionUseCase casos de uso de suscripción.
type SubscriptionUseCase struct {
	repo       repository.SubscriptionRepository
	processors map[string]PaymentProcessor
	log        *logger.Logger
	now        func() time.Time
}

// NewSubscriptionUseCase construye el caso de uso. processors mapea método
// de pago ("card", "mpesa", "paypal") a su simulador.
func NewSubscriptionUseCase(repo repository.SubscriptionRepository, processors map[string]PaymentProcessor, log *logger.Logger) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo, processors: processors, log: log, now: time.Now}
}

// Get devuelve la suscripción del usuario con derivados calculados;
// sin registro → free activo por defecto.
func (uc *SubscriptionUseCase) Get(ctx context.Context, userID string) (*dto.SubscriptionResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	sub, err := uc.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		sub = uc.defaultSubscription(userID)
	}
	resp := dto.NewSubscriptionResponse(sub, uc.now())
	return &resp, nil
}

// Update merge superficial de los campos presentes; actualiza updatedAt.
func (uc *SubscriptionUseCase) Update(ctx context.Context, userID string, in dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, map[string]string, error) {
	if userID == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	if errs := validate.Struct(in); errs != nil {
		return nil, errs, domain.ErrInvalidInput
	}

	sub, err := uc.repo.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if sub == nil {
		sub = uc.defaultSubscription(userID)
	}

	if in.Tier != nil {
		sub.Tier = entity.SubscriptionTier(*in.Tier)
	}
	if in.Status != nil {
		sub.Status = entity.SubscriptionStatus(*in.Status)
	}
	if in.ExpiryDate != nil {
		sub.ExpiryDate = in.ExpiryDate
	}
	if in.NextBillingDate != nil {
		sub.NextBillingDate = in.NextBillingDate
	}
	if in.Amount != nil {
		sub.Amount = *in.Amount
	}
	if in.PaymentStatus != nil {
		sub.PaymentStatus = *in.PaymentStatus
	}
	if in.PaymentMethod != nil {
		sub.PaymentMethod = *in.PaymentMethod
	}
	sub.UpdatedAt = uc.now()

	if err := uc.repo.Put(ctx, sub); err != nil {
		return nil, nil, err
	}
	resp := dto.NewSubscriptionResponse(sub, uc.now())
	return &resp, nil, nil
}

// Upgrade valida plan/método/monto contra la tabla de precios, delega el
// cobro al simulador del método y activa la suscripción si el pago entra.
// El plan free no requiere pago (downgrade directo).
func (uc *SubscriptionUseCase) Upgrade(ctx context.Context, in dto.UpgradeSubscriptionRequest) (*dto.UpgradeResult, map[string]string, error) {
	if errs := validate.Struct(in); errs != nil {
		return nil, errs, domain.ErrInvalidInput
	}

	if in.PlanID == "free" {
		txID := fmt.Sprintf("free_%d", uc.now().UnixMilli())
		return uc.activate(ctx, in, decimal.Zero, "none", txID)
	}

	expected := planPrices[in.PlanID][in.BillingCycle]
	if !in.Amount.Equal(expected) {
		return nil, map[string]string{"amount": "monto inválido para el plan seleccionado"}, domain.ErrInvalidInput
	}

	processor, ok := uc.processors[in.PaymentMethod]
	if !ok {
		return nil, map[string]string{"paymentMethod": "método de pago no soportado"}, domain.ErrInvalidInput
	}

	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	uc.log.Info().Str("user_id", in.UserID).Str("method", in.PaymentMethod).
		Str("plan", in.PlanID).Msg("procesando pago")

	txID, err := processor.Process(ctx, *in.Amount, currency)
	if err != nil {
		return nil, nil, err
	}
	return uc.activate(ctx, in, *in.Amount, in.PaymentMethod, txID)
}

// activate guarda la suscripción activa con expiración según el ciclo.
func (uc *SubscriptionUseCase) activate(ctx context.Context, in dto.UpgradeSubscriptionRequest, amount decimal.Decimal, method, txID string) (*dto.UpgradeResult, map[string]string, error) {
	now := uc.now()
	expiry := now.Add(30 * 24 * time.Hour)
	if in.BillingCycle == "annually" {
		expiry = now.Add(365 * 24 * time.Hour)
	}
	nextBilling := expiry

	sub := &entity.Subscription{
		UserID:          in.UserID,
		Tier:            entity.SubscriptionTier(in.PlanID),
		Status:          entity.SubActive,
		ExpiryDate:      &expiry,
		NextBillingDate: &nextBilling,
		Amount:          amount,
		Currency:        "USD",
		PaymentStatus:   "active",
		PaymentMethod:   method,
		BillingCycle:    in.BillingCycle,
		TransactionID:   txID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Put(ctx, sub); err != nil {
		return nil, nil, err
	}
	uc.log.Info().Str("user_id", in.UserID).Str("plan", in.PlanID).
		Str("transaction_id", txID).Msg("suscripción actualizada")

	return &dto.UpgradeResult{
		Subscription:  dto.NewSubscriptionResponse(sub, now),
		TransactionID: txID,
	}, nil, nil
}

func (uc *SubscriptionUseCase) defaultSubscription(userID string) *entity.Subscription {
	now := uc.now()
	return &entity.Subscription{
		UserID:        userID,
		Tier:          entity.TierFree,
		Status:        entity.SubActive,
		Amount:        decimal.Zero,
		Currency:      "USD",
		PaymentStatus: "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
