package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campusai-api/internal/models"
)

// CounselingRepository provides persistence for counselors and
// appointments.
type CounselingRepository struct {
	db *sqlx.DB
}

// NewCounselingRepository creates a new counseling repository.
func NewCounselingRepository(db *sqlx.DB) *CounselingRepository {
	return &CounselingRepository{db: db}
}

// Counselors returns the counseling staff roster.
func (r *CounselingRepository) Counselors(ctx context.Context) ([]models.Counselor, error) {
	var counselors []models.Counselor
	if err := r.db.SelectContext(ctx, &counselors, "SELECT id, name, specialty, bio FROM counselors ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list counselors: %w", err)
	}
	return counselors, nil
}

const appointmentColumns = "id, user_id, counselor_id, appointment_date, appointment_time, type, notes, status, created_at"

// CreateAppointment books a session. Overlapping bookings for the same
// counselor and slot are allowed.
func (r *CounselingRepository) CreateAppointment(ctx context.Context, appt *models.CounselingAppointment) (*models.CounselingAppointment, error) {
	const query = `INSERT INTO counseling_appointments (user_id, counselor_id, appointment_date, appointment_time, type, notes, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + appointmentColumns

	var stored models.CounselingAppointment
	err := r.db.GetContext(ctx, &stored, query,
		appt.UserID, appt.CounselorID, appt.AppointmentDate, appt.AppointmentTime, appt.Type, appt.Notes, appt.Status)
	if err != nil {
		return nil, fmt.Errorf("create counseling appointment: %w", err)
	}
	return &stored, nil
}

// AppointmentsByUser lists a user's bookings, soonest first.
func (r *CounselingRepository) AppointmentsByUser(ctx context.Context, userID int) ([]models.CounselingAppointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM counseling_appointments
WHERE user_id = $1 ORDER BY appointment_date ASC, appointment_time ASC`

	var rows []models.CounselingAppointment
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list appointments by user: %w", err)
	}
	return rows, nil
}
