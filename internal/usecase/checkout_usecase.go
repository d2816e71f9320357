package usecase

import (
	"context"
	"fmt"
	"math"

	"ebazaar/internal/domain/entity"
	"ebazaar/internal/domain/repository"
	"ebazaar/internal/domain/service"
	"ebazaar/pkg/errors"
)

type CheckoutUseCase struct {
	productRepo repository.ProductRepository
	tenantRepo  repository.TenantRepository
	userRepo    repository.UserRepository
	payment     service.PaymentService
	appURL      string
}

func NewCheckoutUseCase(
	productRepo repository.ProductRepository,
	tenantRepo repository.TenantRepository,
	userRepo repository.UserRepository,
	payment service.PaymentService,
	appURL string,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		productRepo: productRepo,
		tenantRepo:  tenantRepo,
		userRepo:    userRepo,
		payment:     payment,
		appURL:      appURL,
	}
}

type CheckoutProducts struct {
	Products   []*entity.Product `json:"products"`
	TotalPrice float64           `json:"totalPrice"`
}

// GetProducts loads the cart contents for review before payment. Every
// requested id must resolve; a stale cart entry fails the whole lookup.
func (uc *CheckoutUseCase) GetProducts(ctx context.Context, ids []string) (*CheckoutProducts, error) {
	if len(ids) == 0 {
		return &CheckoutProducts{Products: []*entity.Product{}}, nil
	}

	products, err := uc.productRepo.ListByIDs(ctx, ids, 2)
	if err != nil {
		return nil, err
	}
	if len(products) != len(ids) {
		return nil, errors.NotFound("Products", nil)
	}

	total := 0.0
	for _, product := range products {
		product.Content = ""
		total += product.Price
	}

	return &CheckoutProducts{Products: products, TotalPrice: total}, nil
}

// Purchase opens a hosted checkout session for the given cart on the
// tenant's connected account.
func (uc *CheckoutUseCase) Purchase(ctx context.Context, userID, tenantSlug string, productIDs []string) (*service.CheckoutSession, error) {
	if len(productIDs) == 0 {
		return nil, errors.BadRequest("No products selected", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tenant, err := uc.tenantRepo.GetBySlug(ctx, tenantSlug)
	if err != nil {
		return nil, err
	}
	if !tenant.StripeDetailsSubmitted {
		return nil, errors.Forbidden("This shop is not yet able to accept payments", nil)
	}

	cart, err := uc.GetProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	// Every product must belong to the tenant whose checkout this is;
	// the session's connected account is the tenant's, so a foreign
	// product would credit the sale to the wrong seller.
	for _, product := range cart.Products {
		if product.TenantSlug != tenant.Slug {
			return nil, errors.NotFound("Products", nil)
		}
	}

	lineItems := make([]service.CheckoutLineItem, 0, len(cart.Products))
	for _, product := range cart.Products {
		lineItems = append(lineItems, service.CheckoutLineItem{
			Name:       product.Name,
			UnitAmount: int64(math.Round(product.Price * 100)),
			Quantity:   1,
			Metadata: map[string]string{
				"stripeAccountId": tenant.StripeAccountID,
				"id":              product.ID,
				"name":            product.Name,
				"price":           fmt.Sprintf("%g", product.Price),
			},
		})
	}

	session, err := uc.payment.CreateCheckoutSession(ctx, service.CheckoutSessionRequest{
		CustomerEmail: user.Email,
		SuccessURL:    uc.appURL + "/tenants/" + tenant.Slug + "/checkout?success=true",
		CancelURL:     uc.appURL + "/tenants/" + tenant.Slug + "/checkout?cancel=true",
		Metadata:      map[string]string{"userId": user.ID},
		LineItems:     lineItems,
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Verify returns an onboarding link for the user's tenant so it can finish
// submitting payment details to the processor.
func (uc *CheckoutUseCase) Verify(ctx context.Context, userID string) (string, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(user.Tenants) == 0 {
		return "", errors.Forbidden("You do not own a shop", nil)
	}

	tenant, err := uc.tenantRepo.GetByID(ctx, user.Tenants[0])
	if err != nil {
		return "", err
	}

	return uc.payment.CreateAccountLink(ctx, tenant.StripeAccountID, uc.appURL+"/admin", uc.appURL+"/admin")
}
