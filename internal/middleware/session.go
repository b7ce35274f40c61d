package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campusai-api/internal/session"
	appErrors "github.com/noah-isme/campusai-api/pkg/errors"
	"github.com/noah-isme/campusai-api/pkg/response"
)

// ContextSessionKey is where the resolved session lives in the Gin context.
const ContextSessionKey = "session"

// RequireSession guards a route group: requests without a valid session
// are rejected with 401 before any handler runs.
func RequireSession(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := manager.Resolve(c)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Authentication required"))
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, sess)
		c.Next()
	}
}

// SessionFromContext returns the resolved session, nil when the request
// was not authenticated.
func SessionFromContext(c *gin.Context) *session.Session {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil
	}
	sess, ok := value.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
