package router

import (
	"ebazaar/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupWebhookRouter(e *echo.Echo) {
	webhookHandler := handler.GetWebhookHandler()

	// Authenticated by signature, not by bearer token.
	e.POST("/v1/webhooks/stripe", webhookHandler.HandleStripeWebhook)
}
