package ports

import "context"

// PaymentGateway charges the given amount and returns the provider's
// transaction reference. A declined charge is reported as
// domain.ErrPaymentDeclined.
type PaymentGateway interface {
	Charge(ctx context.Context, orderID string, amountCents int64, cardToken string) (string, error)
}
