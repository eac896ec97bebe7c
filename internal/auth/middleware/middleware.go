package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/taskboard-io/taskboard-backend/internal/api/http"
	"github.com/taskboard-io/taskboard-backend/internal/auth/domain"
	"github.com/taskboard-io/taskboard-backend/internal/auth/service"
)

const (
	CtxUserID = "user_id"
	CtxToken  = "bearer_token"
)

// RequireAuth validates the bearer token on every request before any
// business logic runs, and stores the authenticated user id in the context.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthenticated"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if errors.Is(err, domain.ErrInvalidToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthenticated"})
			return
		}
		if err != nil {
			// Infrastructure failures are not the caller's fault.
			httpapi.RespondError(c, err)
			c.Abort()
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxToken, token)
		c.Next()
	}
}

// ExtractToken pulls the token out of the Authorization: Bearer header.
func ExtractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.HasPrefix(header, "Bearer ") {
		return header[7:]
	}
	return ""
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) int64 {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
