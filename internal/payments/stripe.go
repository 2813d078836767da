package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
)

// Provider creates charge intents with the payment processor. The amount is
// in minor currency units.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

type StripeProvider struct{}

func NewStripeProvider(secretKey string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{}
}

// CreateIntent requests a card payment intent and returns the client-side
// confirmation secret. Provider errors are not retried.
func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: payment processing failed: %v", apperr.ErrUpstream, err)
	}
	return intent.ClientSecret, nil
}
