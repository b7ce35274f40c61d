package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campusai-api/internal/middleware"
)

// sessionUserID returns the authenticated user's id, 0 when the request
// carries no session.
func sessionUserID(c *gin.Context) int {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		return 0
	}
	return sess.UserID
}
