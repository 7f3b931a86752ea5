package routes

import (
	"facility/internal/container"
	"facility/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, container *container.Container) {
	container.AssetHandler.RegisterRoutes(router)
	container.UserHandler.RegisterRoutes(router)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckMiddleware())
}
