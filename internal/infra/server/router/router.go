// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dompetku/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	transactionController  *controller.TransactionController
	debtController         *controller.DebtController
	dashboardController    *controller.DashboardController
	notificationController *controller.NotificationController
	profileController      *controller.ProfileController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	debtController *controller.DebtController,
	dashboardController *controller.DashboardController,
	notificationController *controller.NotificationController,
	profileController *controller.ProfileController,
) *Router {
	return &Router{
		healthController:       healthController,
		transactionController:  transactionController,
		debtController:         debtController,
		dashboardController:    dashboardController,
		notificationController: notificationController,
		profileController:      profileController,
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

// setupAPIRoutes configures the main API routes. The app is single-user
// and local, so no routes require authentication.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Transaction routes
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Debt routes
		if r.debtController != nil {
			debts := v1.Group("/debts")
			{
				debts.GET("", r.debtController.List)
				debts.POST("", r.debtController.Create)
				debts.GET("/:id", r.debtController.Get)
				debts.DELETE("/:id", r.debtController.Delete)
				debts.POST("/:id/payments", r.debtController.AddPayment)
			}
		}

		// Dashboard routes
		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/balance", r.dashboardController.Balance)
				dashboard.GET("/budget", r.dashboardController.Budget)
				dashboard.GET("/trend", r.dashboardController.Trend)
				dashboard.GET("/payoff", r.dashboardController.Payoff)
				dashboard.GET("/debts/:id/estimate", r.dashboardController.Estimate)
			}
		}

		// Notification routes
		if r.notificationController != nil {
			notifications := v1.Group("/notifications")
			{
				notifications.GET("", r.notificationController.List)
				notifications.POST("/read-all", r.notificationController.MarkAllRead)
			}
		}

		// Profile routes
		if r.profileController != nil {
			profile := v1.Group("/profile")
			{
				profile.GET("", r.profileController.Get)
				profile.PATCH("", r.profileController.Update)
			}
		}
	}
}
