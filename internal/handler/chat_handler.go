package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campusai-api/internal/models"
	"github.com/noah-isme/campusai-api/internal/service"
	appErrors "github.com/noah-isme/campusai-api/pkg/errors"
	"github.com/noah-isme/campusai-api/pkg/response"
)

// ChatHandler serves the assistant conversation endpoints.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler creates a new handler.
func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// History returns the authenticated user's conversation oldest first.
func (h *ChatHandler) History(c *gin.Context) {
	messages, err := h.service.History(c.Request.Context(), sessionUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, messages)
}

// Send stores the user's message and the assistant's reply and returns
// both. Assistant outages degrade to a canned reply, never an error.
func (h *ChatHandler) Send(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid chat payload"))
		return
	}

	exchange, err := h.service.Send(c.Request.Context(), sessionUserID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exchange)
}
