package routes

import (
	"github.com/gin-gonic/gin"

	"writeassess/controllers"
)

// SetupSessionRoutes sets up the credential and text type routes
func SetupSessionRoutes(router *gin.RouterGroup) {
	session := router.Group("/session")
	{
		session.GET("", controllers.GetSession)
		session.PUT("/api-key", controllers.SetAPIKey)
		session.DELETE("/api-key", controllers.ClearAPIKey)
		session.PUT("/text-type", controllers.SetTextType)
	}
}
