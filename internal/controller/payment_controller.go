package controller

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/omnis-app/billing-backend/internal/models"
	"github.com/omnis-app/billing-backend/internal/service"
)

type PaymentController struct {
	paymentService *service.PaymentService
}

func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

func (c *PaymentController) CreateCheckoutSession(req models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error) {
	return c.paymentService.CreateCheckoutSession(req)
}

func (c *PaymentController) HandleStripeWebhook(ctx context.Context, event *stripe.Event) error {
	return c.paymentService.HandleStripeWebhook(ctx, event)
}

func (c *PaymentController) SavePaymentMethod(ctx context.Context, req models.SavePaymentMethodRequest) (string, error) {
	return c.paymentService.SavePaymentMethod(ctx, req)
}

func (c *PaymentController) GetSubscriptionInfo(ctx context.Context, userID string) (*models.SubscriptionInfo, error) {
	return c.paymentService.GetSubscriptionInfo(ctx, userID)
}
