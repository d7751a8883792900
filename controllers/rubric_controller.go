package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"writeassess/catalog"
	"writeassess/models"
)

func GetRubric(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":    catalog.Categories(),
		"maxTotalScore": models.MaxTotalScore,
		"minWordCount":  models.MinWordCount,
	})
}

func GetRubricCategory(c *gin.Context) {
	category, err := models.ParseRubricCategory(c.Param("category"))
	if err != nil {
		notFound(c, "Unknown rubric category")
		return
	}
	c.JSON(http.StatusOK, catalog.Rubric(category))
}

func ListTextTypes(c *gin.Context) {
	out := make([]models.TextTypeInfo, 0, len(models.TextTypes))
	for _, t := range models.TextTypes {
		out = append(out, t.Info())
	}
	c.JSON(http.StatusOK, out)
}

func GetStructure(c *gin.Context) {
	textType, err := models.ParseTextType(c.Param("type"))
	if err != nil {
		notFound(c, "Unknown text type")
		return
	}
	c.JSON(http.StatusOK, catalog.Structure(textType))
}
