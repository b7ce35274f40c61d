package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/campusai-api/internal/models"
)

type counselingRepository interface {
	Counselors(ctx context.Context) ([]models.Counselor, error)
	CreateAppointment(ctx context.Context, appt *models.CounselingAppointment) (*models.CounselingAppointment, error)
	AppointmentsByUser(ctx context.Context, userID int) ([]models.CounselingAppointment, error)
}

// CounselingService serves the counselor roster and bookings.
type CounselingService struct {
	repo      counselingRepository
	validator *validator.Validate
}

// NewCounselingService constructs a CounselingService.
func NewCounselingService(repo counselingRepository, validate *validator.Validate) *CounselingService {
	if validate == nil {
		validate = validator.New()
	}
	return &CounselingService{repo: repo, validator: validate}
}

// Counselors returns the counseling staff.
func (s *CounselingService) Counselors(ctx context.Context) ([]models.Counselor, error) {
	return s.repo.Counselors(ctx)
}

// Book creates an appointment for the user. CounselorID may be omitted for
// "any available counselor"; status always starts as scheduled. Slots are
// not exclusive, so two students can book the same counselor and time.
func (s *CounselingService) Book(ctx context.Context, userID int, req models.BookAppointmentRequest) (*models.CounselingAppointment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	appt := &models.CounselingAppointment{
		UserID:          userID,
		CounselorID:     req.CounselorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Type:            req.Type,
		Notes:           req.Notes,
		Status:          models.AppointmentScheduled,
	}
	return s.repo.CreateAppointment(ctx, appt)
}

// MyAppointments lists the user's bookings.
func (s *CounselingService) MyAppointments(ctx context.Context, userID int) ([]models.CounselingAppointment, error) {
	return s.repo.AppointmentsByUser(ctx, userID)
}
