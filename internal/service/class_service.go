package service

import (
	"context"
	"time"

	"github.com/noah-isme/campusai-api/internal/models"
	appErrors "github.com/noah-isme/campusai-api/pkg/errors"
)

type classRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	ListByDay(ctx context.Context, dayOfWeek int) ([]models.ClassWithSchedule, error)
}

type scheduleRepository interface {
	List(ctx context.Context) ([]models.Schedule, error)
}

// ClassService serves class and timetable reads.
type ClassService struct {
	classes   classRepository
	schedules scheduleRepository
	now       func() time.Time
}

// NewClassService constructs a ClassService. The clock defaults to
// time.Now and is injectable for tests.
func NewClassService(classes classRepository, schedules scheduleRepository, now func() time.Time) *ClassService {
	if now == nil {
		now = time.Now
	}
	return &ClassService{classes: classes, schedules: schedules, now: now}
}

// List returns every class.
func (s *ClassService) List(ctx context.Context) ([]models.Class, error) {
	return s.classes.List(ctx)
}

// Today returns the classes scheduled for the current weekday, ordered by
// start time.
func (s *ClassService) Today(ctx context.Context) ([]models.ClassWithSchedule, error) {
	return s.classes.ListByDay(ctx, int(s.now().Weekday()))
}

// ByDay returns the classes for a given weekday. Day must be 0 (Sunday)
// through 6 (Saturday).
func (s *ClassService) ByDay(ctx context.Context, day int) ([]models.ClassWithSchedule, error) {
	if day < 0 || day > 6 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "day must be between 0 and 6")
	}
	return s.classes.ListByDay(ctx, day)
}

// Schedules returns every timetable slot.
func (s *ClassService) Schedules(ctx context.Context) ([]models.Schedule, error) {
	return s.schedules.List(ctx)
}
