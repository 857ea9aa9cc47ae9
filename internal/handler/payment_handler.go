package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v74/webhook"
	"go.uber.org/zap"

	"github.com/omnis-app/billing-backend/internal/controller"
	"github.com/omnis-app/billing-backend/internal/models"
	"github.com/omnis-app/billing-backend/pkg/utils"
)

type PaymentHandler struct {
	paymentController *controller.PaymentController
	validator         *utils.Validator
	webhookSecret     string
	logger            *zap.Logger
}

func NewPaymentHandler(paymentController *controller.PaymentController, validator *utils.Validator, webhookSecret string, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentController: paymentController,
		validator:         validator,
		webhookSecret:     webhookSecret,
		logger:            logger,
	}
}

func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req models.CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	session, err := h.paymentController.CreateCheckoutSession(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"url": session.URL,
	})
}

func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	payload := c.Body()

	signatureHeader := c.Get("Stripe-Signature")
	if signatureHeader == "" {
		h.logger.Error("missing Stripe-Signature header")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing Stripe-Signature header",
		})
	}

	// Verify the raw body against the signature before trusting anything in it.
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, h.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		h.logger.Error("webhook signature verification failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Webhook signature verification failed",
		})
	}

	if err := h.paymentController.HandleStripeWebhook(c.Context(), &event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user subscription",
		})
	}

	// Acknowledge receipt with an empty body.
	return c.SendString("")
}

func (h *PaymentHandler) SavePaymentMethod(c *fiber.Ctx) error {
	var req models.SavePaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	customerID, err := h.paymentController.SavePaymentMethod(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"customerId": customerID,
	})
}

func (h *PaymentHandler) GetSubscriptionInfo(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	info, err := h.paymentController.GetSubscriptionInfo(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if info == nil {
		return c.JSON(nil)
	}

	return c.JSON(info)
}
