package billing

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentProcessor contrato de las pasarelas de pago simuladas. Devuelve el
// id de transacción, o un error que envuelve domain.ErrPaymentDeclined con
// la razón específica del método.
type PaymentProcessor interface {
	Process(ctx context.Context, amount decimal.Decimal, currency string) (string, error)
}
