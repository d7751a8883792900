package routes

import (
	"github.com/gin-gonic/gin"

	"writeassess/controllers"
)

// SetupAssessmentRoutes sets up grading and word count routes
func SetupAssessmentRoutes(router *gin.RouterGroup) {
	router.POST("/wordcount", controllers.WordCount)

	grade := router.Group("/grade")
	{
		grade.POST("", controllers.Grade)
		grade.GET("/result", controllers.GetResult)
		grade.GET("/result/text", controllers.GetResultText)
		grade.DELETE("/result", controllers.ClearResult)
	}
}
