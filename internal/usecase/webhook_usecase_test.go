package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"ebazaar/internal/domain/entity"
	"ebazaar/internal/domain/service"
	"ebazaar/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutCompletedEvent(t *testing.T, sessionID, userID string) *service.WebhookEvent {
	t.Helper()
	data, err := json.Marshal(map[string]interface{}{
		"id":       sessionID,
		"metadata": map[string]string{"userId": userID},
	})
	require.NoError(t, err)
	return &service.WebhookEvent{
		ID:      "evt_1",
		Type:    "checkout.session.completed",
		Account: "acct_seller",
		Data:    data,
	}
}

func TestCheckoutCompletedCreatesOrderPerLineItem(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	payment := &fakePaymentService{lineItems: []service.SessionLineItem{
		{ProductName: "Icon pack", Metadata: map[string]string{"id": "p1", "name": "Icon pack", "stripeAccountId": "acct_seller"}},
		{ProductName: "Font kit", Metadata: map[string]string{"id": "p2", "name": "Font kit", "stripeAccountId": "acct_seller"}},
	}}
	uc := NewWebhookUseCase(orderRepo, newFakeTenantRepo(), newFakeUserRepo(&entity.User{ID: "u1"}), payment)

	err := uc.ProcessEvent(context.Background(), checkoutCompletedEvent(t, "cs_1", "u1"))
	require.NoError(t, err)

	require.Len(t, orderRepo.orders, 2)
	assert.Equal(t, "u1", orderRepo.orders[0].UserID)
	assert.Equal(t, "p1", orderRepo.orders[0].ProductID)
	assert.Equal(t, "cs_1", orderRepo.orders[0].StripeCheckoutSessionID)
	assert.Equal(t, "acct_seller", orderRepo.orders[1].StripeAccountID)
}

func TestCheckoutCompletedIsIdempotent(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	payment := &fakePaymentService{lineItems: []service.SessionLineItem{
		{Metadata: map[string]string{"id": "p1", "name": "Icon pack"}},
	}}
	uc := NewWebhookUseCase(orderRepo, newFakeTenantRepo(), newFakeUserRepo(&entity.User{ID: "u1"}), payment)

	event := checkoutCompletedEvent(t, "cs_1", "u1")
	require.NoError(t, uc.ProcessEvent(context.Background(), event))
	require.NoError(t, uc.ProcessEvent(context.Background(), event))

	// The delivery retry must not mint a second order.
	assert.Len(t, orderRepo.orders, 1)
}

func TestCheckoutCompletedRequiresUserMetadata(t *testing.T) {
	uc := NewWebhookUseCase(&fakeOrderRepo{}, newFakeTenantRepo(), newFakeUserRepo(), &fakePaymentService{})

	data, _ := json.Marshal(map[string]interface{}{"id": "cs_1", "metadata": map[string]string{}})
	err := uc.ProcessEvent(context.Background(), &service.WebhookEvent{
		Type: "checkout.session.completed",
		Data: data,
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCheckoutCompletedRequiresLineItemProductID(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	payment := &fakePaymentService{lineItems: []service.SessionLineItem{
		{Metadata: map[string]string{"name": "Icon pack"}},
	}}
	uc := NewWebhookUseCase(orderRepo, newFakeTenantRepo(), newFakeUserRepo(&entity.User{ID: "u1"}), payment)

	err := uc.ProcessEvent(context.Background(), checkoutCompletedEvent(t, "cs_1", "u1"))

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Empty(t, orderRepo.orders)
}

func TestAccountUpdatedFlipsTenantFlag(t *testing.T) {
	tenantRepo := newFakeTenantRepo(&entity.Tenant{ID: "t1", Slug: "ana-shop", StripeAccountID: "acct_seller"})
	uc := NewWebhookUseCase(&fakeOrderRepo{}, tenantRepo, newFakeUserRepo(), &fakePaymentService{})

	data, _ := json.Marshal(map[string]interface{}{"id": "acct_seller", "details_submitted": true})
	err := uc.ProcessEvent(context.Background(), &service.WebhookEvent{
		Type: "account.updated",
		Data: data,
	})
	require.NoError(t, err)

	tenant, err := tenantRepo.GetByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, tenant.StripeDetailsSubmitted)
}

func TestAccountUpdatedUnknownAccount(t *testing.T) {
	uc := NewWebhookUseCase(&fakeOrderRepo{}, newFakeTenantRepo(), newFakeUserRepo(), &fakePaymentService{})

	data, _ := json.Marshal(map[string]interface{}{"id": "acct_missing", "details_submitted": true})
	err := uc.ProcessEvent(context.Background(), &service.WebhookEvent{
		Type: "account.updated",
		Data: data,
	})

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUnhandledEventType(t *testing.T) {
	uc := NewWebhookUseCase(&fakeOrderRepo{}, newFakeTenantRepo(), newFakeUserRepo(), &fakePaymentService{})

	err := uc.ProcessEvent(context.Background(), &service.WebhookEvent{Type: "invoice.paid"})

	assert.Error(t, err)
}
