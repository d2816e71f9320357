package router

import (
	"ebazaar/internal/adapter/api/handler"
	"ebazaar/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupLibraryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	libraryHandler := handler.GetLibraryHandler()

	library := e.Group("/v1/library")
	library.Use(authMiddleware.Authenticate)
	library.GET("", libraryHandler.ListPurchased)
	library.GET("/:productId", libraryHandler.GetPurchased)
}
