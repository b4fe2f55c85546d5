// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/kumpul/backend/internal/integration/entrypoint/controller"
	"github.com/kumpul/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	savingsController     *controller.SavingsController
	hangoutController     *controller.HangoutController
	dashboardController   *controller.DashboardController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	savingsController *controller.SavingsController,
	hangoutController *controller.HangoutController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		savingsController:     savingsController,
		hangoutController:     hangoutController,
		dashboardController:   dashboardController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.GET("/breakdown", r.transactionController.CategoryBreakdown)
				transactions.POST("/suggest-category", r.transactionController.SuggestCategory)
			}
		}

		// Savings goal routes (require authentication)
		if r.savingsController != nil && r.authMiddleware != nil {
			savings := v1.Group("/savings")
			savings.Use(r.authMiddleware.Authenticate())
			{
				savings.GET("", r.savingsController.List)
				savings.POST("", r.savingsController.Create)
				savings.PUT("/:id", r.savingsController.Update)
				savings.DELETE("/:id", r.savingsController.Delete)
				savings.POST("/:id/deposit", r.savingsController.Deposit)
			}
		}

		// Hangout routes (require authentication)
		if r.hangoutController != nil && r.authMiddleware != nil {
			hangouts := v1.Group("/hangouts")
			hangouts.Use(r.authMiddleware.Authenticate())
			{
				hangouts.GET("", r.hangoutController.List)
				hangouts.POST("", r.hangoutController.Create)
				hangouts.POST("/join", r.hangoutController.Join)
				hangouts.GET("/:id", r.hangoutController.Get)
				hangouts.PUT("/:id", r.hangoutController.Update)
				hangouts.DELETE("/:id", r.hangoutController.Delete)
				hangouts.POST("/:id/settle", r.hangoutController.Settle)
				hangouts.POST("/:id/confirm", r.hangoutController.Confirm)
				hangouts.POST("/:id/mark-paid", r.hangoutController.MarkPaid)
				hangouts.POST("/:id/invite", r.hangoutController.Invite)
				hangouts.POST("/:id/expenses", r.hangoutController.AddExpense)
				hangouts.PUT("/:id/expenses/:expenseId", r.hangoutController.UpdateExpense)
				hangouts.DELETE("/:id/expenses/:expenseId", r.hangoutController.DeleteExpense)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.Overview)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
