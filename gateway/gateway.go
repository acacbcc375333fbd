package gateway

import "context"

// PaymentGateway creates a payment intent for an amount in minor currency
// units and returns the client-side confirmation secret.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}
