package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campusai-api/internal/models"
	"github.com/noah-isme/campusai-api/internal/service"
	appErrors "github.com/noah-isme/campusai-api/pkg/errors"
	"github.com/noah-isme/campusai-api/pkg/response"
)

// CounselingHandler serves the counselor roster and appointment booking.
type CounselingHandler struct {
	service *service.CounselingService
}

// NewCounselingHandler creates a new handler.
func NewCounselingHandler(svc *service.CounselingService) *CounselingHandler {
	return &CounselingHandler{service: svc}
}

// Counselors returns the counseling staff.
func (h *CounselingHandler) Counselors(c *gin.Context) {
	counselors, err := h.service.Counselors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, counselors)
}

// Book creates an appointment for the authenticated user.
func (h *CounselingHandler) Book(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid appointment payload"))
		return
	}

	appointment, err := h.service.Book(c.Request.Context(), sessionUserID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, appointment)
}

// MyAppointments lists the authenticated user's bookings.
func (h *CounselingHandler) MyAppointments(c *gin.Context) {
	appointments, err := h.service.MyAppointments(c.Request.Context(), sessionUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, appointments)
}
