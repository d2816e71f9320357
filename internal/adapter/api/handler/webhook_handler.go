package handler

import (
	"fmt"
	"io"
	"net/http"

	"ebazaar/internal/usecase"
	"ebazaar/pkg/logger"

	"github.com/labstack/echo/v4"
)

type WebhookHandler struct {
	webhookUseCase *usecase.WebhookUseCase
}

func NewWebhookHandler(webhookUseCase *usecase.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		webhookUseCase: webhookUseCase,
	}
}

// permittedEvents is the allow-list of processor events this service
// reconciles. Anything else is acknowledged untouched so the processor
// stops retrying it.
var permittedEvents = map[string]bool{
	"checkout.session.completed": true,
	"account.updated":            true,
}

// HandleStripeWebhook answers the payment processor's event delivery. The
// response shape is plain JSON, not the API envelope, because the processor
// is the consumer here.
func (h *WebhookHandler) HandleStripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Webhook error: unable to read request body",
		})
	}

	sigHeader := c.Request().Header.Get("Stripe-Signature")

	event, err := h.webhookUseCase.VerifyAndParse(payload, sigHeader)
	if err != nil {
		logger.Warn("Webhook signature verification failed: %v", err)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": fmt.Sprintf("Webhook error: %v", err),
		})
	}

	if permittedEvents[event.Type] {
		if err := h.webhookUseCase.ProcessEvent(c.Request().Context(), event); err != nil {
			logger.Error("Webhook handler failed for event %s (%s): %v", event.ID, event.Type, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"message": "Webhook handler failed.",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Received"})
}
