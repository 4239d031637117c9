// Package billing creates payment intents with Stripe.
package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrNotConfigured is returned by Disabled.
var ErrNotConfigured = errors.New("payment provider is not configured")

// StripeGateway implements core.PaymentGateway on the Stripe PaymentIntents API.
type StripeGateway struct {
	api      *client.API
	currency string
}

// NewStripeGateway creates a gateway charging in currency. backends may be nil
// to use the default Stripe endpoints.
func NewStripeGateway(secretKey, currency string, backends *stripe.Backends) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("%w: stripe secret key is required", ErrNotConfigured)
	}
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeGateway{api: api, currency: currency}, nil
}

// CreatePaymentIntent creates a card-only intent. Stripe replays the original
// response for a repeated idempotency key.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, idempotencyKey string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// Disabled stands in when no Stripe key is configured.
type Disabled struct{}

func (Disabled) CreatePaymentIntent(context.Context, int64, string) (string, error) {
	return "", ErrNotConfigured
}
