package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/logging"
	"github.com/dmitrijs2005/gophblog/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const contextKeyUserID = "user_id"

// UserIDFromContext returns the caller id set by RequireToken, "" if unset.
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(contextKeyUserID)
}

// RequireToken rejects requests without a valid bearer token with 401 and
// stores the verified user id in the gin context otherwise. Nothing after
// this middleware runs for a rejected request.
func RequireToken(v auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := auth.Authenticate(c.GetHeader(common.AuthorizationHeaderName), v)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, common.ErrMissingToken) {
				msg = "No token"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, messageResponse{Message: msg})
			return
		}
		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}

// RequestLogger logs one line per request through logger.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error(c.Request.Context(), "request", args...)
			return
		}
		logger.Info(c.Request.Context(), "request", args...)
	}
}
