package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		claims := v1.Group("/claims")
		{
			claims.POST("", handler.SubmitClaim)
			claims.GET("", handler.ListClaims)
			claims.GET("/:id", handler.GetClaim)
			claims.PATCH("/:id/status", handler.UpdateStatus)
		}

		v1.GET("/stats", handler.GetStats)
	}
}
