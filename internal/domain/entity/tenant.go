package entity

import (
	"time"
)

type Tenant struct {
	ID              string `json:"id" firestore:"id"`
	Name            string `json:"name" firestore:"name"`
	Slug            string `json:"slug" firestore:"slug"`
	StripeAccountID string `json:"stripe_account_id" firestore:"stripeAccountId"`

	// StripeDetailsSubmitted is flipped by the webhook reconciler only,
	// on account.updated events from the payment processor.
	StripeDetailsSubmitted bool `json:"stripe_details_submitted" firestore:"stripeDetailsSubmitted"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
