package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"ebazaar/internal/domain/entity"
	"ebazaar/internal/domain/repository"
	"ebazaar/internal/domain/service"
	"ebazaar/pkg/errors"
	"ebazaar/pkg/logger"
)

type WebhookUseCase struct {
	orderRepo  repository.OrderRepository
	tenantRepo repository.TenantRepository
	userRepo   repository.UserRepository
	payment    service.PaymentService
}

func NewWebhookUseCase(
	orderRepo repository.OrderRepository,
	tenantRepo repository.TenantRepository,
	userRepo repository.UserRepository,
	payment service.PaymentService,
) *WebhookUseCase {
	return &WebhookUseCase{
		orderRepo:  orderRepo,
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		payment:    payment,
	}
}

// VerifyAndParse checks the signature header against the shared secret and
// decodes the event envelope. Nothing in the payload is trusted before this.
func (uc *WebhookUseCase) VerifyAndParse(payload []byte, sigHeader string) (*service.WebhookEvent, error) {
	return uc.payment.ConstructEvent(payload, sigHeader)
}

type checkoutSessionData struct {
	ID       string            `json:"id"`
	Metadata map[string]string `json:"metadata"`
}

type accountData struct {
	ID               string `json:"id"`
	DetailsSubmitted bool   `json:"details_submitted"`
}

// ProcessEvent reconciles one verified processor event against local state.
// Callers are expected to have filtered the event type already; anything
// else here is a routing mistake, not processor noise.
func (uc *WebhookUseCase) ProcessEvent(ctx context.Context, event *service.WebhookEvent) error {
	switch event.Type {
	case "checkout.session.completed":
		return uc.handleCheckoutCompleted(ctx, event)
	case "account.updated":
		return uc.handleAccountUpdated(ctx, event)
	default:
		return errors.Internal(fmt.Sprintf("Unhandled event type %s", event.Type), nil)
	}
}

func (uc *WebhookUseCase) handleCheckoutCompleted(ctx context.Context, event *service.WebhookEvent) error {
	var session checkoutSessionData
	if err := json.Unmarshal(event.Data, &session); err != nil {
		return errors.BadRequest("Malformed checkout session payload", err)
	}

	userID := session.Metadata["userId"]
	if userID == "" {
		return errors.BadRequest("Checkout session is missing user metadata", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	items, err := uc.payment.GetSessionLineItems(ctx, session.ID, event.Account)
	if err != nil {
		return err
	}

	for _, item := range items {
		productID := item.Metadata["id"]
		if productID == "" {
			return errors.BadRequest("Line item is missing product metadata", nil)
		}

		// Delivery retries replay the same event; one order per
		// (session, product) regardless of how often it arrives.
		existing, err := uc.orderRepo.GetBySessionAndProduct(ctx, session.ID, productID)
		if err != nil && !errors.Is(err, "NOT_FOUND") {
			return err
		}
		if existing != nil {
			logger.Info("Skipping already reconciled order: session=%s product=%s", session.ID, productID)
			continue
		}

		order := &entity.Order{
			UserID:                  user.ID,
			ProductID:               productID,
			Name:                    item.Metadata["name"],
			StripeCheckoutSessionID: session.ID,
			StripeAccountID:         item.Metadata["stripeAccountId"],
		}
		if err := uc.orderRepo.Create(ctx, order); err != nil {
			return err
		}
	}

	return nil
}

func (uc *WebhookUseCase) handleAccountUpdated(ctx context.Context, event *service.WebhookEvent) error {
	var account accountData
	if err := json.Unmarshal(event.Data, &account); err != nil {
		return errors.BadRequest("Malformed account payload", err)
	}

	tenant, err := uc.tenantRepo.GetByStripeAccountID(ctx, account.ID)
	if err != nil {
		return err
	}

	tenant.StripeDetailsSubmitted = account.DetailsSubmitted
	return uc.tenantRepo.Update(ctx, tenant)
}
