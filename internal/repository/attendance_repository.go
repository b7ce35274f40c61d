package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campusai-api/internal/models"
)

// AttendanceRepository handles persistence for attendance marks.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert inserts or updates the mark for one class session on one day.
// The unique index on (user_id, class_id, schedule_id, date) makes the
// write atomic under concurrent requests.
func (r *AttendanceRepository) Upsert(ctx context.Context, record *models.Attendance) (*models.Attendance, error) {
	record.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO attendances (user_id, class_id, schedule_id, date, status, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, class_id, schedule_id, date)
DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
RETURNING id, user_id, class_id, schedule_id, date, status, updated_at`

	var stored models.Attendance
	err := r.db.GetContext(ctx, &stored, query,
		record.UserID, record.ClassID, record.ScheduleID, record.Date, record.Status, record.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert attendance: %w", err)
	}
	return &stored, nil
}

// SummaryCounts aggregates a user's marks into present/absent/total counts.
func (r *AttendanceRepository) SummaryCounts(ctx context.Context, userID int) (*models.AttendanceCounts, error) {
	const query = `SELECT COUNT(*) AS total,
COALESCE(SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END), 0) AS present,
COALESCE(SUM(CASE WHEN status = 'absent' THEN 1 ELSE 0 END), 0) AS absent
FROM attendances WHERE user_id = $1`

	var counts models.AttendanceCounts
	if err := r.db.GetContext(ctx, &counts, query, userID); err != nil {
		return nil, fmt.Errorf("attendance summary counts: %w", err)
	}
	return &counts, nil
}

// ListByUser returns a user's full attendance history, most recent first.
func (r *AttendanceRepository) ListByUser(ctx context.Context, userID int) ([]models.Attendance, error) {
	const query = `SELECT id, user_id, class_id, schedule_id, date, status, updated_at
FROM attendances WHERE user_id = $1 ORDER BY date DESC, id DESC`

	var rows []models.Attendance
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list attendance by user: %w", err)
	}
	return rows, nil
}
