// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerbook/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	authController    *controller.AuthController
	expenseController *controller.ExpenseController
	revenueController *controller.RevenueController
	loginRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	expenseController *controller.ExpenseController,
	revenueController *controller.RevenueController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		expenseController: expenseController,
		revenueController: revenueController,
		loginRateLimiter:  loginRateLimiter,
		authMiddleware:    authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery.
	r.engine = gin.Default()

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
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)

				loginHandlers := []gin.HandlerFunc{}
				if r.loginRateLimiter != nil {
					loginHandlers = append(loginHandlers, r.loginRateLimiter.Middleware())
				}
				loginHandlers = append(loginHandlers, r.authController.Login)
				auth.POST("/login", loginHandlers...)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.GET("/:monthYear", r.expenseController.ListMonth)
				expenses.GET("/:monthYear/:expenseId", r.expenseController.Get)
				expenses.POST("", r.expenseController.Create)
				expenses.PUT("/:monthYear/:expenseId", r.expenseController.Update)
				expenses.DELETE("/:monthYear/:expenseId", r.expenseController.Delete)
			}
		}

		// Revenue routes (require authentication)
		if r.revenueController != nil && r.authMiddleware != nil {
			revenues := v1.Group("/revenues")
			revenues.Use(r.authMiddleware.Authenticate())
			{
				revenues.GET("", r.revenueController.List)
				revenues.GET("/:monthYear", r.revenueController.ListMonth)
				revenues.GET("/:monthYear/:revenueId", r.revenueController.Get)
				revenues.POST("", r.revenueController.Create)
				revenues.PUT("/:monthYear/:revenueId", r.revenueController.Update)
				revenues.DELETE("/:monthYear/:revenueId", r.revenueController.Delete)
			}
		}
	}
}
