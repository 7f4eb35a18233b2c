// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"authd/internal/delivery/http/middleware"
	"authd/internal/delivery/http/router/handler"
	"authd/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOTP)
		authGroup.POST("/resend-verification", r.authHandler.ResendVerification)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// OAuth callback routes (query parameter or JSON body)
	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.GET("/:provider/callback", r.authHandler.OAuthCallback)
		oauthGroup.POST("/:provider/callback", r.authHandler.OAuthCallback)
	}

	// Auth routes that require a valid access token
	sessionGroup := e.Group("/auth")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.POST("/logout-all", r.authHandler.LogoutAll)
		sessionGroup.POST("/change-password", r.authHandler.ChangePassword)
		sessionGroup.DELETE("/account", r.authHandler.DeleteAccount)
	}

	// Account routes that require authentication; profile access additionally
	// requires a verified email
	accountGroup := e.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/profile", r.accountHandler.GetProfile, r.authMiddleware.RequireVerified)
		accountGroup.PATCH("/profile", r.accountHandler.UpdateProfile, r.authMiddleware.RequireVerified)
		accountGroup.GET("/sessions", r.accountHandler.ListSessions)
		accountGroup.GET("/:id/sessions", r.accountHandler.ListAccountSessions,
			r.authMiddleware.RequireOwnerOrAdmin("id"))
	}

	// Administrative routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/accounts/:id", r.accountHandler.GetAccount)
	}
}
