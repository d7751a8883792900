package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"writeassess/middlewares"
	"writeassess/models"
	"writeassess/services"
)

type GradeRequest struct {
	Text     string `json:"text"`
	TextType string `json:"textType"`
}

type WordCountRequest struct {
	Text string `json:"text"`
}

func WordCount(c *gin.Context) {
	var req WordCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, "Invalid request payload")
		return
	}
	c.JSON(http.StatusOK, models.NewWordCountStatus(services.CountWords(req.Text)))
}

// Grade submits text for grading and waits for the result. textType, when
// present, overrides the session's selection for this request only.
func Grade(c *gin.Context) {
	var req GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, "Invalid request payload")
		return
	}
	session := middlewares.CurrentSession(c)

	textType := session.TextType()
	if req.TextType != "" {
		parsed, err := models.ParseTextType(req.TextType)
		if err != nil {
			invalidInput(c, "Unknown text type: "+req.TextType)
			return
		}
		textType = parsed
	}

	result, err := session.Assessment.Grade(c.Request.Context(), session.APIKey(), textType, req.Text)
	if err != nil {
		respondError(c, err, "Failed to grade text")
		return
	}
	c.JSON(http.StatusOK, result.Summarize())
}

func GetResult(c *gin.Context) {
	c.JSON(http.StatusOK, middlewares.CurrentSession(c).Assessment.Snapshot())
}

// GetResultText returns the plain-text report of the current result
func GetResultText(c *gin.Context) {
	result := middlewares.CurrentSession(c).Assessment.Result()
	if result == nil {
		notFound(c, "No grading result yet")
		return
	}
	c.String(http.StatusOK, services.FormatResultsAsText(result))
}

func ClearResult(c *gin.Context) {
	middlewares.CurrentSession(c).Assessment.Clear()
	c.Status(http.StatusNoContent)
}
