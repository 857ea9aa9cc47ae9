package models

type CreateCheckoutSessionRequest struct {
	Email   string `json:"email" validate:"required,email"`
	PriceID string `json:"priceId" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type SavePaymentMethodRequest struct {
	UserID          string          `json:"userId" validate:"required"`
	PaymentMethodID string          `json:"paymentMethodId" validate:"required"`
	BillingAddress  *BillingAddress `json:"billingAddress" validate:"required"`
}

type BillingAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type SubscriptionInfo struct {
	PlanName         string `json:"planName"`
	Status           string `json:"status"`
	CurrentPeriodEnd int64  `json:"current_period_end"`
}
