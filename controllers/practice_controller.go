package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"writeassess/middlewares"
	"writeassess/models"
)

type TopicRequest struct {
	TextType string `json:"textType"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

type CloseVideoRequest struct {
	Confirm bool `json:"confirm"`
}

// NewTopic produces a practice topic for the session's text type, or for
// textType when the body names one.
func NewTopic(c *gin.Context) {
	var req TopicRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidInput(c, "Invalid request payload")
			return
		}
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

	if _, err := session.Practice.NewTopic(c.Request.Context(), session.APIKey(), textType); err != nil {
		respondError(c, err, "Failed to generate topic")
		return
	}
	c.JSON(http.StatusOK, session.Practice.Snapshot())
}

func StartVideo(c *gin.Context) {
	session := middlewares.CurrentSession(c)
	if _, _, err := session.Practice.StartVideoExercise(); err != nil {
		respondError(c, err, "Failed to start video exercise")
		return
	}
	c.JSON(http.StatusOK, session.Practice.Snapshot())
}

func VideoEnded(c *gin.Context) {
	progress, err := middlewares.CurrentSession(c).Practice.PlaybackEnded()
	if err != nil {
		respondError(c, err, "Failed to record playback")
		return
	}
	c.JSON(http.StatusOK, progress)
}

func SetNotes(c *gin.Context) {
	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, "Invalid request payload")
		return
	}
	session := middlewares.CurrentSession(c)
	if err := session.Practice.SetNotes(req.Notes); err != nil {
		respondError(c, err, "Failed to save notes")
		return
	}
	c.JSON(http.StatusOK, session.Practice.Snapshot())
}

// CloseVideo closes the viewer. Closing early answers 409 with the warning
// until the request carries confirm=true.
func CloseVideo(c *gin.Context) {
	var req CloseVideoRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidInput(c, "Invalid request payload")
			return
		}
	}
	session := middlewares.CurrentSession(c)
	if err := session.Practice.CloseVideo(req.Confirm); err != nil {
		respondError(c, err, "Failed to close video")
		return
	}
	c.JSON(http.StatusOK, session.Practice.Snapshot())
}
