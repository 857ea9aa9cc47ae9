package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/omnis-app/billing-backend/internal/models"
)

const usersCollection = "users"

type UserRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{
		client: client,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", userID, err)
	}

	return &user, nil
}

// UpdateSubscription overwrites the user's subscription field as a whole.
// The update fails if the document does not exist.
func (r *UserRepository) UpdateSubscription(ctx context.Context, userID string, subscription models.Subscription) error {
	_, err := r.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "subscription", Value: subscription},
	})
	if err != nil {
		return fmt.Errorf("failed to update subscription for user %s: %w", userID, err)
	}

	return nil
}

func (r *UserRepository) SetStripeCustomerID(ctx context.Context, userID string, customerID string) error {
	_, err := r.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "stripeCustomerId", Value: customerID},
	})
	if err != nil {
		return fmt.Errorf("failed to set Stripe customer id for user %s: %w", userID, err)
	}

	return nil
}
