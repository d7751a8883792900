package routes

import (
	"github.com/gin-gonic/gin"

	"writeassess/controllers"
)

// SetupRubricRoutes sets up the read-only rubric and structure routes
func SetupRubricRoutes(router *gin.RouterGroup) {
	router.GET("/rubric", controllers.GetRubric)
	router.GET("/rubric/:category", controllers.GetRubricCategory)
	router.GET("/text-types", controllers.ListTextTypes)
	router.GET("/text-types/:type/structure", controllers.GetStructure)
}
