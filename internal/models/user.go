package models

// User is the Firestore document stored under users/<userId>. Documents are
// created by the signup flow; this service only reads and updates them.
type User struct {
	FullName         string        `firestore:"fullName,omitempty" json:"full_name,omitempty"`
	Email            string        `firestore:"email" json:"email"`
	StripeCustomerID string        `firestore:"stripeCustomerId,omitempty" json:"stripe_customer_id,omitempty"`
	Subscription     *Subscription `firestore:"subscription,omitempty" json:"subscription,omitempty"`
}

// Subscription is always written as a whole, never field by field.
type Subscription struct {
	Plan                 string `firestore:"plan" json:"plan"`
	Status               string `firestore:"status" json:"status"`
	StripeCustomerID     string `firestore:"stripeCustomerId" json:"stripe_customer_id"`
	StripeSubscriptionID string `firestore:"stripeSubscriptionId" json:"stripe_subscription_id"`
}
