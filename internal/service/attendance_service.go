package service

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campusai-api/internal/models"
	appErrors "github.com/noah-isme/campusai-api/pkg/errors"
	"github.com/noah-isme/campusai-api/pkg/export"
)

type attendanceRepository interface {
	Upsert(ctx context.Context, record *models.Attendance) (*models.Attendance, error)
	SummaryCounts(ctx context.Context, userID int) (*models.AttendanceCounts, error)
	ListByUser(ctx context.Context, userID int) ([]models.Attendance, error)
}

// AttendanceService covers marking, the dashboard summary, and history
// downloads.
type AttendanceService struct {
	repo      attendanceRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(repo attendanceRepository, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AttendanceService{repo: repo, validator: validate, logger: logger}
}

// Mark writes the user's status for one class session on one day. Marking
// the same session again replaces the previous status.
func (s *AttendanceService) Mark(ctx context.Context, userID int, req models.MarkAttendanceRequest) (*models.Attendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	record := &models.Attendance{
		UserID:     userID,
		ClassID:    req.ClassID,
		ScheduleID: req.ScheduleID,
		Date:       req.Date,
		Status:     models.AttendanceStatus(req.Status),
	}
	return s.repo.Upsert(ctx, record)
}

// Summary aggregates the user's marks into percentages. The overall rate
// mirrors the presence rate, matching what the dashboard has always
// displayed. Zero marks yield all zeros.
func (s *AttendanceService) Summary(ctx context.Context, userID int) (*models.AttendanceSummary, error) {
	counts, err := s.repo.SummaryCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &models.AttendanceSummary{Total: counts.Total}
	if counts.Total > 0 {
		summary.Present = float64(counts.Present) / float64(counts.Total) * 100
		summary.Absent = float64(counts.Absent) / float64(counts.Total) * 100
		summary.Overall = summary.Present
	}
	return summary, nil
}

// Export renders the user's attendance history in the requested format.
func (s *AttendanceService) Export(ctx context.Context, userID int, format export.Format) ([]byte, error) {
	if !format.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	history, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Title:   "Attendance History",
		Headers: []string{"Date", "Class ID", "Schedule ID", "Status"},
		Rows:    make([][]string, 0, len(history)),
	}
	for _, record := range history {
		dataset.Rows = append(dataset.Rows, []string{
			record.Date.String(),
			strconv.Itoa(record.ClassID),
			strconv.Itoa(record.ScheduleID),
			string(record.Status),
		})
	}

	rendered, err := export.Render(format, dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return rendered, nil
}
