package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"github.com/omnis-app/billing-backend/internal/models"
	"github.com/omnis-app/billing-backend/pkg/payment"
)

const (
	proPlan      = "Pro"
	activeStatus = "active"
)

// UserStore is the subset of the user repository the payment flow needs.
type UserStore interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateSubscription(ctx context.Context, userID string, subscription models.Subscription) error
	SetStripeCustomerID(ctx context.Context, userID string, customerID string) error
}

type PaymentService struct {
	stripeService *payment.StripeService
	userStore     UserStore
	logger        *zap.Logger
}

func NewPaymentService(stripeService *payment.StripeService, userStore UserStore, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		stripeService: stripeService,
		userStore:     userStore,
		logger:        logger,
	}
}

// CreateCheckoutSession creates a subscription-mode checkout session for the
// user. The user id travels in the session metadata so the webhook can link
// the completed checkout back to the user document.
func (s *PaymentService) CreateCheckoutSession(req models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error) {
	sess, err := s.stripeService.CreateCheckoutSession(req.Email, req.PriceID, map[string]string{
		"userId": req.UserID,
	})
	if err != nil {
		s.logger.Error("failed to create checkout session",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		return nil, err
	}

	return &models.CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

// HandleStripeWebhook processes a verified Stripe event. Only
// checkout.session.completed is acted on; all other event types are
// acknowledged without side effects.
func (s *PaymentService) HandleStripeWebhook(ctx context.Context, event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		// A signed event can still arrive without a data object.
		if event.Data == nil {
			return fmt.Errorf("event %s has no data object", event.ID)
		}

		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("failed to parse checkout session: %w", err)
		}

		userID := sess.Metadata["userId"]

		subscription := models.Subscription{
			Plan:   proPlan,
			Status: activeStatus,
		}
		if sess.Customer != nil {
			subscription.StripeCustomerID = sess.Customer.ID
		}
		if sess.Subscription != nil {
			subscription.StripeSubscriptionID = sess.Subscription.ID
		}

		if err := s.userStore.UpdateSubscription(ctx, userID, subscription); err != nil {
			s.logger.Error("failed to update user subscription",
				zap.String("user_id", userID),
				zap.Error(err))
			return err
		}

		s.logger.Info("subscription updated",
			zap.String("user_id", userID),
			zap.String("stripe_subscription_id", subscription.StripeSubscriptionID))
	}

	return nil
}

// SavePaymentMethod attaches a payment method to the user's Stripe customer,
// creating the customer first if the user doesn't have one yet, and makes it
// the invoice default.
func (s *PaymentService) SavePaymentMethod(ctx context.Context, req models.SavePaymentMethodRequest) (string, error) {
	user, err := s.userStore.GetByID(ctx, req.UserID)
	if err != nil {
		return "", err
	}

	address := addressParams(req.BillingAddress)

	customerID := user.StripeCustomerID
	if customerID == "" {
		cust, err := s.stripeService.CreateCustomer(user.Email, address)
		if err != nil {
			s.logger.Error("failed to create Stripe customer",
				zap.String("user_id", req.UserID),
				zap.Error(err))
			return "", err
		}
		customerID = cust.ID

		if err := s.userStore.SetStripeCustomerID(ctx, req.UserID, customerID); err != nil {
			return "", err
		}
	} else {
		if _, err := s.stripeService.UpdateCustomerAddress(customerID, address); err != nil {
			s.logger.Error("failed to update Stripe customer address",
				zap.String("user_id", req.UserID),
				zap.Error(err))
			return "", err
		}
	}

	if err := s.stripeService.AttachPaymentMethod(customerID, req.PaymentMethodID); err != nil {
		return "", err
	}

	if err := s.stripeService.SetDefaultPaymentMethod(customerID, req.PaymentMethodID); err != nil {
		return "", err
	}

	return customerID, nil
}

// GetSubscriptionInfo returns the user's most recent subscription, or nil
// when the user has no Stripe customer or no subscriptions.
func (s *PaymentService) GetSubscriptionInfo(ctx context.Context, userID string) (*models.SubscriptionInfo, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.StripeCustomerID == "" {
		return nil, nil
	}

	subscriptions, err := s.stripeService.ListSubscriptions(user.StripeCustomerID, 1)
	if err != nil {
		s.logger.Error("failed to list subscriptions",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, err
	}

	if len(subscriptions) == 0 {
		return nil, nil
	}

	subscription := subscriptions[0]
	info := &models.SubscriptionInfo{
		Status:           string(subscription.Status),
		CurrentPeriodEnd: subscription.CurrentPeriodEnd,
	}
	if subscription.Items != nil && len(subscription.Items.Data) > 0 && subscription.Items.Data[0].Price != nil {
		info.PlanName = subscription.Items.Data[0].Price.Nickname
	}

	return info, nil
}

func addressParams(address *models.BillingAddress) *stripe.AddressParams {
	if address == nil {
		return nil
	}

	return &stripe.AddressParams{
		Line1:      stripe.String(address.Line1),
		Line2:      stripe.String(address.Line2),
		City:       stripe.String(address.City),
		State:      stripe.String(address.State),
		PostalCode: stripe.String(address.PostalCode),
		Country:    stripe.String(address.Country),
	}
}
