package controllers

import (
	"errors"
	"net/http"

	"github.com/Srinandan2003/CollabSphere/services"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto an HTTP status and a
// {message} body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
