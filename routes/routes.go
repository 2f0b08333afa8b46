// Package routes assembles the gin route tree, following the teacher's
// SetupAllRoutes/SetupAPIRoutes/SetupHealthRoutes split.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zipcodetw/zipcodetw/app/controllers"
	"github.com/zipcodetw/zipcodetw/app/middleware"
)

// SetupAPIRoutes wires the /v1 group: the public lookup endpoint and the
// admin directory-load endpoint.
func SetupAPIRoutes(router *gin.Engine, zipcodeController *controllers.ZipcodeController, directoryController *controllers.DirectoryController) {
	v1 := router.Group("/v1")
	{
		v1.GET("/zipcode", zipcodeController.Find)

		admin := v1.Group("/admin")
		{
			admin.POST("/directory/load", directoryController.Load)
		}
	}
}

// SetupHealthRoutes wires the liveness/readiness/root health checks.
func SetupHealthRoutes(router *gin.Engine, zipcodeController *controllers.ZipcodeController) {
	router.GET("/health", zipcodeController.Health)
	router.GET("/ready", zipcodeController.Health)
	router.GET("/live", zipcodeController.Health)
}

// SetupAllRoutes wires middleware, the health routes, the API routes, and
// a JSON 404 handler.
func SetupAllRoutes(router *gin.Engine, zipcodeController *controllers.ZipcodeController, directoryController *controllers.DirectoryController) {
	setupMiddleware(router)

	SetupHealthRoutes(router, zipcodeController)
	SetupAPIRoutes(router, zipcodeController, directoryController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "ROUTE_NOT_FOUND",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
}
