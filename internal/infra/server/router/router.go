// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/levy-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/levy-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	recordController    *controller.RecordController
	templateController  *controller.TemplateController
	settingController   *controller.SettingController
	mutationRateLimiter *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	recordController *controller.RecordController,
	templateController *controller.TemplateController,
	settingController *controller.SettingController,
	mutationRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		recordController:    recordController,
		templateController:  templateController,
		settingController:   settingController,
		mutationRateLimiter: mutationRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
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
	v1.Use(r.authMiddleware.Authenticate())
	{
		v1.GET("/template", r.templateController.Get)

		limit := r.mutationRateLimiter.Middleware()

		records := v1.Group("/records")
		{
			records.GET("", r.recordController.List)
			records.POST("", limit, r.recordController.Create)
			records.POST("/reconcile", r.recordController.Reconcile)
			records.GET("/:id", r.recordController.Get)
			records.PUT("/:id", limit, r.recordController.Update)
			records.DELETE("/:id", limit, r.recordController.Delete)
			records.GET("/:id/layout", r.recordController.Layout)
			records.POST("/:id/duplicate", limit, r.recordController.Duplicate)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/settings/runtime", r.settingController.Get)
			admin.PUT("/settings/runtime", r.settingController.Update)
		}
	}
}
