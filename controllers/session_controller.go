package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"writeassess/middlewares"
	"writeassess/models"
)

type APIKeyRequest struct {
	APIKey string `json:"apiKey"`
}

type TextTypeRequest struct {
	TextType string `json:"textType" binding:"required"`
}

func GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, middlewares.CurrentSession(c).Snapshot())
}

// SetAPIKey stores the caller's key. An empty key clears it.
func SetAPIKey(c *gin.Context) {
	var req APIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, "Invalid request payload")
		return
	}
	session := middlewares.CurrentSession(c)
	if err := session.SetAPIKey(c.Request.Context(), req.APIKey); err != nil {
		respondError(c, err, "Failed to save API key")
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

func ClearAPIKey(c *gin.Context) {
	session := middlewares.CurrentSession(c)
	if err := session.ClearAPIKey(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to clear API key")
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

func SetTextType(c *gin.Context) {
	var req TextTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, "Invalid request payload")
		return
	}
	textType, err := models.ParseTextType(req.TextType)
	if err != nil {
		invalidInput(c, "Unknown text type: "+req.TextType)
		return
	}
	session := middlewares.CurrentSession(c)
	if err := session.SetTextType(textType); err != nil {
		respondError(c, err, "Failed to set text type")
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}
