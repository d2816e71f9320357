package router

import (
	"ebazaar/internal/adapter/api/handler"
	"ebazaar/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCheckoutRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	checkoutHandler := handler.GetCheckoutHandler()

	e.GET("/v1/checkout/products", checkoutHandler.GetProducts)

	checkout := e.Group("/v1/checkout")
	checkout.Use(authMiddleware.Authenticate)
	checkout.POST("/purchase", checkoutHandler.Purchase)
	checkout.POST("/verify", checkoutHandler.Verify)
}
