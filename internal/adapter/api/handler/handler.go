package handler

import (
	"ebazaar/internal/usecase"
)

var (
	authHandler     *AuthHandler
	productHandler  *ProductHandler
	reviewHandler   *ReviewHandler
	categoryHandler *CategoryHandler
	checkoutHandler *CheckoutHandler
	libraryHandler  *LibraryHandler
	webhookHandler  *WebhookHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	productUseCase *usecase.ProductUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
	libraryUseCase *usecase.LibraryUseCase,
	webhookUseCase *usecase.WebhookUseCase,
	defaultPageLimit int,
) {
	authHandler = NewAuthHandler(authUseCase)
	productHandler = NewProductHandler(productUseCase, defaultPageLimit)
	reviewHandler = NewReviewHandler(reviewUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase)
	libraryHandler = NewLibraryHandler(libraryUseCase, defaultPageLimit)
	webhookHandler = NewWebhookHandler(webhookUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}

func GetLibraryHandler() *LibraryHandler {
	return libraryHandler
}

func GetWebhookHandler() *WebhookHandler {
	return webhookHandler
}
