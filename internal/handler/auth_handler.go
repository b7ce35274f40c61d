package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campusai-api/internal/models"
	"github.com/noah-isme/campusai-api/internal/service"
	"github.com/noah-isme/campusai-api/internal/session"
	appErrors "github.com/noah-isme/campusai-api/pkg/errors"
	"github.com/noah-isme/campusai-api/pkg/response"
)

// AuthHandler wires the account endpoints to the auth service and the
// session manager.
type AuthHandler struct {
	service  *service.AuthService
	sessions *session.Manager
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{service: svc, sessions: sessions}
}

// Register creates an account and signs the new user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid register payload"))
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.sessions.Issue(c, user.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, user)
}

// Login authenticates credentials and establishes a session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	user, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.sessions.Issue(c, user.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, user)
}

// Logout destroys the session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": "logged out"})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.UserByID(c.Request.Context(), sessionUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}
