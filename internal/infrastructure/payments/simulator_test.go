package payments_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViggenKorir/smartistics-api/internal/domain"
	"github.com/ViggenKorir/smartistics-api/internal/infrastructure/payments"
)

func TestSimulator_PagoAprobado(t *testing.T) {
	sim := payments.NewCardSimulator(
		payments.WithLatency(0),
		payments.WithRand(func() float64 { return 0.0 }),
	)

	txID, err := sim.Process(context.Background(), decimal.NewFromInt(12), "USD")
	require.NoError(t, err)
	assert.Regexp(t, `^card_\d+_[a-z0-9]{9}$`, txID)
}

// Cada método rechaza con su propia razón, envolviendo el error sentinel.
func TestSimulator_RechazoPorMetodo(t *testing.T) {
	decline := []payments.Option{
		payments.WithLatency(0),
		payments.WithRand(func() float64 { return 1.0 }),
	}
	cases := []struct {
		name   string
		sim    *payments.Simulator
		reason string
	}{
		{"card", payments.NewCardSimulator(decline...), "tarjeta"},
		{"mpesa", payments.NewMpesaSimulator(decline...), "M-Pesa"},
		{"paypal", payments.NewPaypalSimulator(decline...), "PayPal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.sim.Process(context.Background(), decimal.NewFromInt(12), "USD")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrPaymentDeclined)
			assert.Contains(t, err.Error(), tc.reason)
		})
	}
}

// Un contexto cancelado interrumpe la espera de latencia.
func TestSimulator_ContextoCancelado(t *testing.T) {
	sim := payments.NewCardSimulator(payments.WithLatency(5 * time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Process(ctx, decimal.NewFromInt(12), "USD")
	assert.ErrorIs(t, err, context.Canceled)
}
