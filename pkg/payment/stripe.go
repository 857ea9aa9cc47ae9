package payment

import (
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/customer"
	"github.com/stripe/stripe-go/v74/paymentmethod"
	"github.com/stripe/stripe-go/v74/subscription"
)

// Redirect targets for the hosted checkout page.
const (
	checkoutSuccessURL = "http://localhost:3000/success"
	checkoutCancelURL  = "https://localhost:3000/cancel"
)

type StripeService struct {
	secretKey string
}

func NewStripeService(secretKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{
		secretKey: secretKey,
	}
}

func (s *StripeService) CreateCheckoutSession(userEmail string, priceID string, metadata map[string]string) (*stripe.CheckoutSession, error) {
	params := checkoutSessionParams(userEmail, priceID)
	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	return session.New(params)
}

func checkoutSessionParams(userEmail string, priceID string) *stripe.CheckoutSessionParams {
	return &stripe.CheckoutSessionParams{
		CustomerEmail: stripe.String(userEmail),
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(checkoutSuccessURL),
		CancelURL:  stripe.String(checkoutCancelURL),
	}
}

func (s *StripeService) CreateCustomer(email string, address *stripe.AddressParams) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{
		Email:   stripe.String(email),
		Address: address,
	}

	return customer.New(params)
}

func (s *StripeService) UpdateCustomerAddress(customerID string, address *stripe.AddressParams) (*stripe.Customer, error) {
	return customer.Update(customerID, &stripe.CustomerParams{
		Address: address,
	})
}

func (s *StripeService) AttachPaymentMethod(customerID string, paymentMethodID string) error {
	_, err := paymentmethod.Attach(paymentMethodID, &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerID),
	})
	return err
}

// SetDefaultPaymentMethod makes the payment method the customer's invoice default.
func (s *StripeService) SetDefaultPaymentMethod(customerID string, paymentMethodID string) error {
	_, err := customer.Update(customerID, &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	})
	return err
}

// ListSubscriptions returns the customer's subscriptions in any status,
// newest first, up to limit.
func (s *StripeService) ListSubscriptions(customerID string, limit int64) ([]*stripe.Subscription, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	params.Limit = stripe.Int64(limit)

	var subscriptions []*stripe.Subscription
	iter := subscription.List(params)
	for iter.Next() {
		subscriptions = append(subscriptions, iter.Subscription())
	}

	return subscriptions, iter.Err()
}
