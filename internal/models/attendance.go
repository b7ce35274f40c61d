package models

import "time"

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceExcused AttendanceStatus = "excused"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceExcused:
		return true
	default:
		return false
	}
}

// Attendance is one mark for a class session on a given day. A user holds
// at most one row per (user, class, schedule, date); repeated marks
// overwrite status and updatedAt.
type Attendance struct {
	ID         int              `db:"id" json:"id"`
	UserID     int              `db:"user_id" json:"userId"`
	ClassID    int              `db:"class_id" json:"classId"`
	ScheduleID int              `db:"schedule_id" json:"scheduleId"`
	Date       Date             `db:"date" json:"date"`
	Status     AttendanceStatus `db:"status" json:"status"`
	UpdatedAt  time.Time        `db:"updated_at" json:"updatedAt"`
}

// MarkAttendanceRequest is the payload for marking a session.
type MarkAttendanceRequest struct {
	ClassID    int    `json:"classId" validate:"required"`
	ScheduleID int    `json:"scheduleId" validate:"required"`
	Date       Date   `json:"date" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=present absent excused"`
}

// AttendanceCounts are the raw aggregates for one user.
type AttendanceCounts struct {
	Present int `db:"present"`
	Absent  int `db:"absent"`
	Total   int `db:"total"`
}

// AttendanceSummary is the percentage view the dashboard renders.
type AttendanceSummary struct {
	Overall float64 `json:"overall"`
	Present float64 `json:"present"`
	Absent  float64 `json:"absent"`
	Total   int     `json:"total"`
}
