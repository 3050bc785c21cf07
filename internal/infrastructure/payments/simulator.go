// Package payments implementa los simuladores de pasarela de pago (tarjeta,
// M-Pesa, PayPal). Son placeholders con latencia artificial y tasa de éxito
// aleatoria, no lógica de negocio real: solo cumplen el contrato
// entrada/salida que necesita la capa de suscripciones.
package payments

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ViggenKorir/smartistics-api/internal/domain"
)

const tokenChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// Simulator pasarela simulada. rng y wait son inyectables para que los
// tests sean deterministas y sin esperas.
type Simulator struct {
	method        string
	successRate   float64
	latency       time.Duration
	declineReason string
	rng           func() float64
	wait          func(context.Context, time.Duration) error
}

// Option configura un Simulator.
type Option func(*Simulator)

// WithRand reemplaza la fuente de aleatoriedad (tests).
func WithRand(rng func() float64) Option {
	return func(s *Simulator) { s.rng = rng }
}

// WithLatency reemplaza la latencia simulada (tests: 0).
func WithLatency(d time.Duration) Option {
	return func(s *Simulator) { s.latency = d }
}

func newSimulator(method string, successRate float64, latency time.Duration, declineReason string, opts []Option) *Simulator {
	s := &Simulator{
		method:        method,
		successRate:   successRate,
		latency:       latency,
		declineReason: declineReason,
		rng:           rand.Float64,
		wait:          sleepCtx,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewCardSimulator tarjeta: 95% de éxito, ~1s de latencia.
func NewCardSimulator(opts ...Option) *Simulator {
	return newSimulator("card", 0.95, time.Second,
		"pago con tarjeta rechazado, verifique los datos de su tarjeta", opts)
}

// NewMpesaSimulator M-Pesa: 97% de éxito, ~1.5s de latencia.
func NewMpesaSimulator(opts ...Option) *Simulator {
	return newSimulator("mpesa", 0.97, 1500*time.Millisecond,
		"pago M-Pesa fallido, verifique que tenga saldo suficiente", opts)
}

// NewPaypalSimulator PayPal: 96% de éxito, ~0.8s de latencia.
func NewPaypalSimulator(opts ...Option) *Simulator {
	return newSimulator("paypal", 0.96, 800*time.Millisecond,
		"pago PayPal fallido, verifique su cuenta PayPal", opts)
}

// Process simula el cobro. Devuelve el id de transacción o un error que
// envuelve domain.ErrPaymentDeclined con la razón específica del método.
func (s *Simulator) Process(ctx context.Context, _ decimal.Decimal, _ string) (string, error) {
	if err := s.wait(ctx, s.latency); err != nil {
		return "", err
	}
	if s.rng() >= s.successRate {
		return "", fmt.Errorf("%w: %s", domain.ErrPaymentDeclined, s.declineReason)
	}
	return fmt.Sprintf("%s_%d_%s", s.method, time.Now().UnixMilli(), randomToken(9)), nil
}

// sleepCtx duerme respetando la cancelación del contexto.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func randomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = tokenChars[rand.Intn(len(tokenChars))]
	}
	return string(b)
}
