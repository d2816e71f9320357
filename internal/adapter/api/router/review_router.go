package router

import (
	"ebazaar/internal/adapter/api/handler"
	"ebazaar/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	productReviews := e.Group("/v1/products/:productId/reviews")
	productReviews.Use(authMiddleware.Authenticate)
	productReviews.GET("", reviewHandler.GetOwnReview)
	productReviews.POST("", reviewHandler.CreateReview)

	reviews := e.Group("/v1/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.PUT("/:id", reviewHandler.UpdateReview)
}
