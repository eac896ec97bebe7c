package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	authdomain "github.com/taskboard-io/taskboard-backend/internal/auth/domain"
	projdomain "github.com/taskboard-io/taskboard-backend/internal/projects/domain"
	taskdomain "github.com/taskboard-io/taskboard-backend/internal/tasks/domain"
	"github.com/taskboard-io/taskboard-backend/internal/validation"
)

// RespondError translates service errors into the API's error contract:
// 422 with a per-field map for validation failures, 404 for missing
// resources, 401 for auth failures, 500 for everything else.
func RespondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The given data was invalid.",
			"errors":  verrs,
		})
		return
	}

	switch {
	case errors.Is(err, projdomain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "project not found"})
	case errors.Is(err, taskdomain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
	case errors.Is(err, authdomain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
	case errors.Is(err, authdomain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthenticated"})
	default:
		logrus.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
