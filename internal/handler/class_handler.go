package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campusai-api/internal/service"
	appErrors "github.com/noah-isme/campusai-api/pkg/errors"
	"github.com/noah-isme/campusai-api/pkg/response"
)

// ClassHandler serves class and timetable endpoints.
type ClassHandler struct {
	service *service.ClassService
}

// NewClassHandler creates a new handler.
func NewClassHandler(svc *service.ClassService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// List returns every class.
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// Today returns the authenticated user's classes for the current weekday.
func (h *ClassHandler) Today(c *gin.Context) {
	classes, err := h.service.Today(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// ByDay returns classes for the weekday in the "day" query parameter.
func (h *ClassHandler) ByDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Query("day"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "day must be an integer between 0 and 6"))
		return
	}

	classes, err := h.service.ByDay(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// Schedules returns every timetable slot.
func (h *ClassHandler) Schedules(c *gin.Context) {
	schedules, err := h.service.Schedules(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, schedules)
}
