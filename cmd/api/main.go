package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/omnis-app/billing-backend/internal/config"
	"github.com/omnis-app/billing-backend/internal/controller"
	"github.com/omnis-app/billing-backend/internal/handler"
	"github.com/omnis-app/billing-backend/internal/repository"
	"github.com/omnis-app/billing-backend/internal/service"
	"github.com/omnis-app/billing-backend/pkg/database"
	"github.com/omnis-app/billing-backend/pkg/payment"
	"github.com/omnis-app/billing-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("File .env not found!")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zapLogger.Sync()

	// Initialize Firestore (once, shared across requests)
	ctx := context.Background()
	firestoreClient, err := database.NewFirestoreClient(ctx)
	if err != nil {
		log.Fatal("Failed to initialize Firestore: ", err)
	}
	defer firestoreClient.Close()

	// Repositories
	userRepo := repository.NewUserRepository(firestoreClient)

	// Stripe service
	stripeService := payment.NewStripeService(cfg.StripeSecretKey)

	// Services
	paymentService := service.NewPaymentService(stripeService, userRepo, zapLogger)

	// Controllers
	paymentController := controller.NewPaymentController(paymentService)

	// Validator
	validator := utils.NewValidator()

	// Handlers
	paymentHandler := handler.NewPaymentHandler(paymentController, validator, cfg.StripeWebhookSecret, zapLogger)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Stripe-Signature",
		AllowMethods: "GET, POST",
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	api.Post("/create-checkout-session", paymentHandler.CreateCheckoutSession)
	api.Post("/webhook", paymentHandler.HandleStripeWebhook)
	api.Post("/save-payment-method", paymentHandler.SavePaymentMethod)
	api.Get("/subscription-info", paymentHandler.GetSubscriptionInfo)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
