package handler

import (
	"strings"

	"ebazaar/internal/usecase"
	"ebazaar/pkg/errors"
	"ebazaar/pkg/response"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

type purchaseRequest struct {
	TenantSlug string   `json:"tenantSlug" validate:"required"`
	ProductIDs []string `json:"productIds" validate:"required,min=1"`
}

// GetProducts resolves a cart before payment. Public: carts live on the
// client until purchase.
func (h *CheckoutHandler) GetProducts(c echo.Context) error {
	raw := c.QueryParam("ids")
	if raw == "" {
		return response.Error(c, errors.BadRequest("ids query parameter is required", nil))
	}

	cart, err := h.checkoutUseCase.GetProducts(c.Request().Context(), strings.Split(raw, ","))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CheckoutHandler) Purchase(c echo.Context) error {
	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	session, err := h.checkoutUseCase.Purchase(c.Request().Context(), uid, req.TenantSlug, req.ProductIDs)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"url": session.URL})
}

// Verify hands back an onboarding link so the caller's shop can finish
// payment setup.
func (h *CheckoutHandler) Verify(c echo.Context) error {
	uid := c.Get("uid").(string)

	link, err := h.checkoutUseCase.Verify(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"url": link})
}
