package models

import "time"

// AppointmentStatus tracks the lifecycle of a counseling booking.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Counselor is a member of the counseling staff.
type Counselor struct {
	ID        int     `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Specialty string  `db:"specialty" json:"specialty"`
	Bio       *string `db:"bio" json:"bio,omitempty"`
}

// CounselingAppointment is a booked session. CounselorID is nil when the
// student asked for any available counselor.
type CounselingAppointment struct {
	ID              int               `db:"id" json:"id"`
	UserID          int               `db:"user_id" json:"userId"`
	CounselorID     *int              `db:"counselor_id" json:"counselorId,omitempty"`
	AppointmentDate Date              `db:"appointment_date" json:"appointmentDate"`
	AppointmentTime string            `db:"appointment_time" json:"appointmentTime"`
	Type            string            `db:"type" json:"type"`
	Notes           *string           `db:"notes" json:"notes,omitempty"`
	Status          AppointmentStatus `db:"status" json:"status"`
	CreatedAt       time.Time         `db:"created_at" json:"createdAt"`
}

// BookAppointmentRequest is the payload for booking a session.
type BookAppointmentRequest struct {
	CounselorID     *int    `json:"counselorId" validate:"omitempty,gt=0"`
	AppointmentDate Date    `json:"appointmentDate" validate:"required"`
	AppointmentTime string  `json:"appointmentTime" validate:"required"`
	Type            string  `json:"type" validate:"required,oneof=academic career personal mental-health"`
	Notes           *string `json:"notes"`
}
