package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campusai-api/internal/service"
	appErrors "github.com/noah-isme/campusai-api/pkg/errors"
	"github.com/noah-isme/campusai-api/pkg/response"
)

// EventHandler serves campus events and registrations.
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler creates a new handler.
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{service: svc}
}

// List returns every event with its tags.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, events)
}

// Featured returns the featured event, or an empty body when none is
// flagged.
func (h *EventHandler) Featured(c *gin.Context) {
	event, err := h.service.Featured(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if event == nil {
		response.OK(c, nil)
		return
	}
	response.OK(c, event)
}

// Register signs the authenticated user up for the event in the path.
func (h *EventHandler) Register(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid event id"))
		return
	}

	registration, err := h.service.Register(c.Request.Context(), eventID, sessionUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, registration)
}
