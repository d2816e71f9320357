package router

import (
	"ebazaar/internal/adapter/api/handler"
	"ebazaar/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register, rateLimitMiddleware.Limit("register"))
	auth.POST("/login", authHandler.Login, rateLimitMiddleware.Limit("login"))
	auth.GET("/session", authHandler.Session)

	me := e.Group("/v1/auth")
	me.Use(authMiddleware.Authenticate)
	me.GET("/me", authHandler.Me)
}
