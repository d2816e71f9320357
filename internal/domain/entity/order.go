package entity

import (
	"time"
)

// Order records one purchased line item. Orders are created by the webhook
// reconciler once per (checkout session, product) and never updated.
type Order struct {
	ID        string `json:"id" firestore:"id"`
	UserID    string `json:"user_id" firestore:"userId"`
	ProductID string `json:"product_id" firestore:"productId"`
	Name      string `json:"name" firestore:"name"`

	StripeCheckoutSessionID string `json:"stripe_checkout_session_id" firestore:"stripeCheckoutSessionId"`
	StripeAccountID         string `json:"stripe_account_id" firestore:"stripeAccountId"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
