package routes

import (
	"github.com/gin-gonic/gin"

	"writeassess/controllers"
)

// SetupPracticeRoutes sets up practice topic and video exercise routes
func SetupPracticeRoutes(router *gin.RouterGroup) {
	practice := router.Group("/practice")
	{
		practice.POST("/topic", controllers.NewTopic)
		practice.POST("/video", controllers.StartVideo)
		practice.POST("/video/ended", controllers.VideoEnded)
		practice.PUT("/video/notes", controllers.SetNotes)
		practice.POST("/video/close", controllers.CloseVideo)
	}
}
