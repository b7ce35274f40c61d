package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campusai-api/internal/models"
)

// ScheduleRepository provides persistence for timetable slots.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository creates a new schedule repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleColumns = "id, class_id, day_of_week, start_time, end_time"

// List returns every schedule slot ordered by weekday and start time.
func (r *ScheduleRepository) List(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	query := "SELECT " + scheduleColumns + " FROM schedules ORDER BY day_of_week ASC, start_time ASC"
	if err := r.db.SelectContext(ctx, &schedules, query); err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

// FindByID loads one slot, nil when absent.
func (r *ScheduleRepository) FindByID(ctx context.Context, id int) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.GetContext(ctx, &schedule, "SELECT "+scheduleColumns+" FROM schedules WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find schedule by id: %w", err)
	}
	return &schedule, nil
}
