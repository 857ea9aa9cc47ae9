package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
)

func TestCheckoutSessionParams(t *testing.T) {
	params := checkoutSessionParams("user@example.com", "price_123")

	assert.Equal(t, "user@example.com", *params.CustomerEmail)
	assert.Equal(t, string(stripe.CheckoutSessionModeSubscription), *params.Mode)

	require.Len(t, params.LineItems, 1)
	assert.Equal(t, "price_123", *params.LineItems[0].Price)
	assert.Equal(t, int64(1), *params.LineItems[0].Quantity)

	assert.Equal(t, checkoutSuccessURL, *params.SuccessURL)
	assert.Equal(t, checkoutCancelURL, *params.CancelURL)
}

func TestNewStripeServiceSetsAPIKey(t *testing.T) {
	NewStripeService("sk_test_abc")
	assert.Equal(t, "sk_test_abc", stripe.Key)
}
