// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"currex/internal/delivery/http/middleware"
	"currex/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CurrencyHandler *handler.CurrencyHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	currencyHandler *handler.CurrencyHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		currencyHandler: params.CurrencyHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Currency routes that require a valid bearer token
	currencyGroup := e.Group("/currency")
	currencyGroup.Use(r.authMiddleware.Authenticate)
	{
		currencyGroup.GET("/testverified", r.currencyHandler.TestVerified)
		currencyGroup.GET("/exchange", r.currencyHandler.Exchange)
		currencyGroup.GET("/list", r.currencyHandler.List)
	}
}
