package service

import (
	"context"
	"encoding/json"
)

// CheckoutLineItem is one product offered in a checkout session. UnitAmount
// is in minor currency units.
type CheckoutLineItem struct {
	Name        string
	Description string
	UnitAmount  int64
	Quantity    int64
	Metadata    map[string]string
}

type CheckoutSessionRequest struct {
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
	LineItems     []CheckoutLineItem
}

// CheckoutSession is the processor-hosted payment page.
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionLineItem is a purchased line item re-fetched from the processor
// with its product data expanded.
type SessionLineItem struct {
	ProductName string
	Quantity    int64
	AmountTotal int64
	Metadata    map[string]string
}

// WebhookEvent is a verified processor event. Data carries the raw event
// object; callers decode it per event type.
type WebhookEvent struct {
	ID      string
	Type    string
	Account string
	Data    json.RawMessage
}

// PaymentService is the boundary to the payment processor. Money movement
// itself is entirely the processor's concern.
type PaymentService interface {
	CreateAccount(ctx context.Context) (string, error)
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error)
	GetSessionLineItems(ctx context.Context, sessionID, accountID string) ([]SessionLineItem, error)
	// ConstructEvent verifies the signature header against the shared
	// webhook secret before any payload field is trusted.
	ConstructEvent(payload []byte, sigHeader string) (*WebhookEvent, error)
}
