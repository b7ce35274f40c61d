package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campusai-api/internal/models"
)

// ClassRepository provides persistence for classes and their timetable
// slots.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository creates a new class repository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

const classColumns = "id, name, description, professor, location, color"

// List returns every class.
func (r *ClassRepository) List(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.SelectContext(ctx, &classes, "SELECT "+classColumns+" FROM classes ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// FindByID loads one class, nil when absent.
func (r *ClassRepository) FindByID(ctx context.Context, id int) (*models.Class, error) {
	var class models.Class
	err := r.db.GetContext(ctx, &class, "SELECT "+classColumns+" FROM classes WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find class by id: %w", err)
	}
	return &class, nil
}

type classScheduleRow struct {
	models.Class
	ScheduleID int    `db:"schedule_id"`
	DayOfWeek  int    `db:"day_of_week"`
	StartTime  string `db:"start_time"`
	EndTime    string `db:"end_time"`
}

// ListByDay inner-joins classes with their schedule slots for one weekday,
// ordered by start time. Each matching slot yields one row with the slot
// embedded.
func (r *ClassRepository) ListByDay(ctx context.Context, dayOfWeek int) ([]models.ClassWithSchedule, error) {
	const query = `SELECT c.id, c.name, c.description, c.professor, c.location, c.color,
s.id AS schedule_id, s.day_of_week, s.start_time, s.end_time
FROM classes c
INNER JOIN schedules s ON s.class_id = c.id
WHERE s.day_of_week = $1
ORDER BY s.start_time ASC`

	var rows []classScheduleRow
	if err := r.db.SelectContext(ctx, &rows, query, dayOfWeek); err != nil {
		return nil, fmt.Errorf("list classes by day: %w", err)
	}

	result := make([]models.ClassWithSchedule, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.ClassWithSchedule{
			Class: row.Class,
			Schedule: models.Schedule{
				ID:        row.ScheduleID,
				ClassID:   row.Class.ID,
				DayOfWeek: row.DayOfWeek,
				StartTime: row.StartTime,
				EndTime:   row.EndTime,
			},
		})
	}
	return result, nil
}
