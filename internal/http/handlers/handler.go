package handlers

import (
	"errors"
	"net/http"

	"taskdeck/internal/domain"
	"taskdeck/internal/logger"
	"taskdeck/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Auth  *service.AuthService
	Tasks *service.TaskService
}

func NewHandler(auth *service.AuthService, tasks *service.TaskService) *Handler {
	return &Handler{Auth: auth, Tasks: tasks}
}

// writeError maps a service error onto the HTTP taxonomy. Anything outside
// the taxonomy is a store failure: generic 500 body, detail only in logs.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrBadCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTokenMissing):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTokenInvalid):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
