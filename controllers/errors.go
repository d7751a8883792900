package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"writeassess/services"
)

// statusForKind maps an error kind onto the HTTP status returned for it
func statusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.KindMissingCredential, services.KindEmptySubmission, services.KindInvalidInput:
		return http.StatusBadRequest
	case services.KindBusy, services.KindConfirmationRequired:
		return http.StatusConflict
	case services.KindProvider, services.KindTransport, services.KindMalformedResponse:
		return http.StatusBadGateway
	case services.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": message, "kind": kind} for a typed error and
// a generic 500 with fallback for anything else.
func respondError(c *gin.Context, err error, fallback string) {
	var e *services.Error
	if errors.As(err, &e) {
		c.JSON(statusForKind(e.Kind), gin.H{"error": e.Error(), "kind": e.Kind})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "kind": "internal"})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message, "kind": services.KindNotFound})
}

func invalidInput(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message, "kind": services.KindInvalidInput})
}
