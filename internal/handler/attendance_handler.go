package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campusai-api/internal/models"
	"github.com/noah-isme/campusai-api/internal/service"
	appErrors "github.com/noah-isme/campusai-api/pkg/errors"
	"github.com/noah-isme/campusai-api/pkg/export"
	"github.com/noah-isme/campusai-api/pkg/response"
)

// AttendanceHandler serves attendance marking, the summary, and exports.
type AttendanceHandler struct {
	service *service.AttendanceService
}

// NewAttendanceHandler creates a new handler.
func NewAttendanceHandler(svc *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: svc}
}

// Summary returns the authenticated user's attendance percentages.
func (h *AttendanceHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), sessionUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// Mark records the user's status for one class session. Marking the same
// session twice updates the earlier row instead of adding another.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req models.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"))
		return
	}

	record, err := h.service.Mark(c.Request.Context(), sessionUserID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// Export streams the user's attendance history as CSV or PDF.
func (h *AttendanceHandler) Export(c *gin.Context) {
	format := export.Format(c.DefaultQuery("format", string(export.FormatCSV)))

	rendered, err := h.service.Export(c.Request.Context(), sessionUserID(c), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("attendance.%s", format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, format.ContentType(), rendered)
}
