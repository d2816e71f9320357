package router

import (
	"ebazaar/internal/adapter/api/middleware"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware, authClient *auth.Client) {
	SetupAuthRouter(e, authMiddleware, rateLimitMiddleware)
	SetupProductRouter(e, authMiddleware, authClient)
	SetupReviewRouter(e, authMiddleware)
	SetupCategoryRouter(e)
	SetupCheckoutRouter(e, authMiddleware)
	SetupLibraryRouter(e, authMiddleware)
	SetupWebhookRouter(e)
	SetupHealthRouter(e)
}
